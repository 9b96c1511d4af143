package blendver

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// DefaultDepsTool is the dependency scanner looked up on PATH when no
// override is configured.
const DefaultDepsTool = "blendfile-deps"

// discover runs the dependency scanner against the document and returns
// the raw, unfiltered set of reported file paths.
//
// The scanner prints a JSON object whose values are lists of records;
// every "filepath" field across all categories is unioned into the
// result.
func (h *History) discover() ([]string, error) {
	exe, err := h.lookupDepsTool()
	if err != nil {
		return nil, err
	}

	args := []string{"--json", "--all"}
	if h.blenderExec != "" {
		args = append(args, "--blender", h.blenderExec)
	}
	args = append(args, h.doc.Path)

	if h.logger != nil {
		h.logger.Debug("executing dependency scanner", "exe", exe, "args", args)
	}

	cmd := exec.Command(exe, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("dependency scan of %s failed: %w\n%s",
			h.doc.Name(), err, stderr.String())
	}

	var raw []string
	gjson.ParseBytes(stdout.Bytes()).ForEach(func(_, category gjson.Result) bool {
		category.ForEach(func(_, rec gjson.Result) bool {
			if fp := rec.Get("filepath"); fp.Exists() {
				raw = append(raw, fp.String())
			}
			return true
		})
		return true
	})
	return raw, nil
}

// lookupDepsTool finds the scanner executable. A PATH miss is retried
// once against the directory containing the running binary, so an
// installation that ships both executables side by side works without
// PATH setup.
func (h *History) lookupDepsTool() (string, error) {
	tool := h.depsTool
	if tool == "" {
		tool = DefaultDepsTool
	}

	exe, err := exec.LookPath(tool)
	if err == nil {
		return exe, nil
	}

	if self, selfErr := os.Executable(); selfErr == nil {
		sibling := filepath.Join(filepath.Dir(self), tool)
		if _, statErr := os.Stat(sibling); statErr == nil {
			return sibling, nil
		}
	}

	return "", fmt.Errorf("dependency scanner %q not found: %w", tool, err)
}
