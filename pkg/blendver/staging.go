package blendver

import (
	"fmt"
	"os"
	"path/filepath"
)

// withStaging runs body inside a throwaway working tree wired to the
// repository handle, and removes the tree again on every exit path.
//
// The .git entry is a symbolic link, not a hard link: the handle does
// not necessarily exist yet on the very first init, and a symlink may
// dangle until the backend creates it. It is only created when absent
// so the first-time and later lifecycles stay distinguishable.
func (h *History) withStaging(body func(stage string) error) error {
	stage := h.doc.StagingDir()
	if err := os.Mkdir(stage, 0755); err != nil && !os.IsExist(err) {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(stage)

	link := filepath.Join(stage, ".git")
	if _, err := os.Lstat(link); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to inspect staging metadata link: %w", err)
		}
		if err := os.Symlink(h.doc.RepoDir(), link); err != nil {
			return fmt.Errorf("failed to link staging to repository: %w", err)
		}
	}

	return body(stage)
}

// stageFile hard-links the file at rel (relative to the document's
// directory) into the staging tree, preserving its relative location.
// A hard link, never a copy and never a symlink: the backend must see
// the identical file content, and a symlink would make it commit a link
// marker instead. Removing the staging tree later leaves the user's
// original files untouched.
func stageFile(stage, dir, rel string) error {
	dst := filepath.Join(stage, rel)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create staging path for %s: %w", rel, err)
	}
	if err := os.Link(filepath.Join(dir, rel), dst); err != nil {
		return fmt.Errorf("failed to stage %s: %w", rel, err)
	}
	return nil
}
