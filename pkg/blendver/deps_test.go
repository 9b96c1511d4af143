package blendver_test

import (
	"testing"

	"github.com/blendver/blendver/pkg/blendver"
	"github.com/stretchr/testify/assert"
)

func TestFilterDependencies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{
			name: "mixed addressing forms",
			raw:  []string{"//tex/a.png", "//tex/a.png", "/abs/b.png", "//../c.png", "//d.png"},
			want: []string{"d.png", "tex/a.png"},
		},
		{
			name: "absolute dropped silently",
			raw:  []string{"/usr/share/fonts/mono.ttf"},
			want: nil,
		},
		{
			name: "upward traversal dropped",
			raw:  []string{"//../shared/tex.png", "//a/../../b.png", "//.."},
			want: nil,
		},
		{
			name: "traversal that stays inside is kept",
			raw:  []string{"//tex/../cache/sim.vdb"},
			want: []string{"cache/sim.vdb"},
		},
		{
			name: "bare marker dropped",
			raw:  []string{"//", "//."},
			want: nil,
		},
		{
			name: "relative without marker dropped",
			raw:  []string{"tex/a.png", "./tex/a.png"},
			want: nil,
		},
		{
			name: "backslash separators normalized",
			raw:  []string{`//tex\a.png`},
			want: []string{"tex/a.png"},
		},
		{
			name: "empty input",
			raw:  nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := blendver.FilterDependencies(tt.raw, nil)
			assert.Equal(t, tt.want, emptyToNil(got))
		})
	}
}

func TestFilterDependenciesOrderIndependent(t *testing.T) {
	t.Parallel()

	forward := []string{"//z.png", "//tex/a.png", "//b.png"}
	backward := []string{"//b.png", "//tex/a.png", "//z.png"}

	assert.Equal(t,
		blendver.FilterDependencies(forward, nil),
		blendver.FilterDependencies(backward, nil),
		"result must not depend on scanner output order")
}

func TestFilterDependenciesIdempotent(t *testing.T) {
	t.Parallel()

	raw := []string{"//tex/a.png", "//d.png", "//tex/a.png"}
	once := blendver.FilterDependencies(raw, nil)

	// Re-feeding the filtered set (with the marker restored) must be a
	// fixed point.
	again := make([]string, len(once))
	for i, rel := range once {
		again[i] = "//" + rel
	}
	assert.Equal(t, once, blendver.FilterDependencies(again, nil))
}

func TestFilterDependenciesExcludeGlobs(t *testing.T) {
	t.Parallel()

	raw := []string{"//tex/a.png", "//cache/sim.vdb", "//cache/deep/frame.vdb", "//notes.txt"}

	got := blendver.FilterDependencies(raw, []string{"cache/**", "*.txt"})
	assert.Equal(t, []string{"tex/a.png"}, got)
}

func emptyToNil(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}
