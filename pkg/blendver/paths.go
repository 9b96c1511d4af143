package blendver

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/blendver/blendver/pkg/core"
)

// Resolve normalizes a document path to its absolute canonical form.
// Paths that do not carry the recognized extension are rejected before
// any filesystem access.
func Resolve(path string) (core.Document, error) {
	if !strings.HasSuffix(path, core.Ext) {
		return core.Document{}, fmt.Errorf("%w: %s", core.ErrNotDocument, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return core.Document{}, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return core.Document{Path: abs}, nil
}
