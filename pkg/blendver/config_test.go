package blendver_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blendver/blendver/pkg/blendver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := blendver.LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, blendver.Config{}, cfg)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	content := `git: /opt/git/bin/git
deps_tool: /opt/blendver/blendfile-deps
blender: /usr/bin/blender-4.2
exclude:
  - "cache/**"
  - "*.tmp"
description: production shots
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, blendver.ConfigName), []byte(content), 0644))

	cfg, err := blendver.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "/opt/git/bin/git", cfg.Git)
	assert.Equal(t, "/opt/blendver/blendfile-deps", cfg.DepsTool)
	assert.Equal(t, "/usr/bin/blender-4.2", cfg.Blender)
	assert.Equal(t, []string{"cache/**", "*.tmp"}, cfg.Exclude)
	assert.Equal(t, "production shots", cfg.Description)
}

func TestLoadConfigMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, blendver.ConfigName), []byte(":\t:garbage"), 0644))

	_, err := blendver.LoadConfig(dir)
	assert.Error(t, err)
}

func TestOpenMergesConfigAndOptions(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "scene.blend")
	require.NoError(t, os.WriteFile(docPath, []byte("blend"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, blendver.ConfigName),
		[]byte("exclude: [\"cache/**\"]\n"), 0644))

	h, err := blendver.Open(docPath, blendver.WithExcludes("*.tmp"))
	require.NoError(t, err)

	state, ok := h.State().(blendver.HistoryState)
	require.True(t, ok)
	assert.Equal(t, 2, state.Excludes, "config and option excludes must merge")
	assert.False(t, state.Versioned)
	assert.Equal(t, docPath, state.Document)
}
