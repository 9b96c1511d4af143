package git

import (
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDirectModeArgs(t *testing.T) {
	c := Direct("", "/work/scene.blend.history", "/work", nil)

	got := c.argv([]string{"log", "--raw"})
	want := []string{"--git-dir", "/work/scene.blend.history", "--work-tree", "/work", "log", "--raw"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("argv = %v, want %v", got, want)
	}
	if c.exe != DefaultExe {
		t.Errorf("exe = %q, want %q", c.exe, DefaultExe)
	}
}

func TestStagedModeArgs(t *testing.T) {
	// Staged mode must never pass --git-dir; the .git link inside the
	// staging directory is the only metadata pointer.
	c := Staged("/opt/git", "/work/scene.blend.staging", nil)

	got := c.argv([]string{"commit", "-m", "msg"})
	if got[0] == "--git-dir" {
		t.Fatal("staged mode leaked --git-dir")
	}
	if c.exe != "/opt/git" {
		t.Errorf("exe override ignored, got %q", c.exe)
	}
}

func TestEnvDeterministicDates(t *testing.T) {
	// 2024-03-15 10:30:00 in a non-UTC zone; the rendered dates must be
	// fixed to UTC regardless.
	zone := time.FixedZone("UTC+9", 9*60*60)
	stamp := time.Date(2024, 3, 15, 10, 30, 0, 0, zone)

	env := (&Env{AuthorDate: stamp, CommitterDate: stamp}).environ()

	var author, committer, tz string
	for _, kv := range env {
		switch {
		case strings.HasPrefix(kv, "GIT_AUTHOR_DATE="):
			author = kv
		case strings.HasPrefix(kv, "GIT_COMMITTER_DATE="):
			committer = kv
		case strings.HasPrefix(kv, "TZ="):
			tz = kv
		}
	}

	const want = "2024-03-15 01:30:00 +0000"
	if author != "GIT_AUTHOR_DATE="+want {
		t.Errorf("author date = %q", author)
	}
	if committer != "GIT_COMMITTER_DATE="+want {
		t.Errorf("committer date = %q", committer)
	}
	if tz != "TZ=UTC" {
		t.Errorf("tz = %q", tz)
	}
}

func TestBackendErrorMessage(t *testing.T) {
	err := &BackendError{
		Args:   []string{"log"},
		Output: "fatal: not a git repository",
		Err:    errors.New("exit status 128"),
	}

	msg := err.Error()
	if !strings.Contains(msg, "git log") || !strings.Contains(msg, "not a git repository") {
		t.Errorf("unhelpful error message: %q", msg)
	}
	if err.ExitCode() != -1 {
		t.Errorf("ExitCode for non-exec error = %d, want -1", err.ExitCode())
	}
}

func TestOutputFailure(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	tmp := t.TempDir()
	c := Direct("", filepath.Join(tmp, "missing.history"), tmp, nil)

	_, err := c.Output("log")
	if err == nil {
		t.Fatal("log against a missing metadata store must fail")
	}
	var be *BackendError
	if !errors.As(err, &be) {
		t.Fatalf("error type = %T, want *BackendError", err)
	}
	if be.ExitCode() <= 0 {
		t.Errorf("ExitCode = %d, want positive", be.ExitCode())
	}
}
