package blendver_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/blendver/blendver/pkg/blendver"
	"github.com/blendver/blendver/pkg/core"
)

func TestResolveRejectsForeignExtensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
	}{
		{"no extension", "scenes/robot"},
		{"wrong extension", "scenes/robot.png"},
		{"extension as prefix", "robot.blend.bak"},
		{"empty", ""},
		{"directory-ish", "scenes/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := blendver.Resolve(tt.path)
			if !errors.Is(err, core.ErrNotDocument) {
				t.Errorf("Resolve(%q) err = %v, want ErrNotDocument", tt.path, err)
			}
		})
	}
}

func TestResolveAbsolutizes(t *testing.T) {
	doc, err := blendver.Resolve("robot.blend")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !filepath.IsAbs(doc.Path) {
		t.Errorf("resolved path %q is not absolute", doc.Path)
	}
	if filepath.Base(doc.Path) != "robot.blend" {
		t.Errorf("resolved path %q lost its base name", doc.Path)
	}
}

func TestResolveKeepsAbsoluteInput(t *testing.T) {
	in := filepath.Join(t.TempDir(), "robot.blend")
	doc, err := blendver.Resolve(in)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if doc.Path != in {
		t.Errorf("Resolve(%q) = %q", in, doc.Path)
	}
}
