// Package git wraps the git executable for a single document history.
//
// It exposes two invocation modes. Direct mode points --git-dir at the
// repository handle and runs with the document's real directory as the
// working tree; it serves log, reset, show and checkout. Staged mode runs
// inside the staging directory with no --git-dir at all: the .git link
// inside the staging directory makes the metadata store implicit. The
// asymmetry is a hard backend constraint: committing with --git-dir
// pointed at the handle makes git treat it as a bare repository and
// refuse working-tree commits.
package git

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"
)

// DefaultExe is the backend executable looked up on PATH when no
// override is configured.
const DefaultExe = "git"

// Client runs git subcommands in one of the two modes.
type Client struct {
	exe     string
	gitDir  string // set in direct mode only
	workDir string
	logger  *slog.Logger
}

// Direct creates a read-mode client: explicit metadata store, explicit
// real working tree. The work tree is passed on the command line so a
// stale core.worktree binding in the handle's config can never redirect
// an operation away from the document's directory.
func Direct(exe, gitDir, workDir string, logger *slog.Logger) *Client {
	if exe == "" {
		exe = DefaultExe
	}
	return &Client{exe: exe, gitDir: gitDir, workDir: workDir, logger: logger}
}

// Staged creates a write-mode client rooted at the staging directory.
// The metadata store is whatever the .git entry inside workDir points at.
func Staged(exe, workDir string, logger *slog.Logger) *Client {
	if exe == "" {
		exe = DefaultExe
	}
	return &Client{exe: exe, workDir: workDir, logger: logger}
}

// Env carries per-call environment overrides for write operations.
// The dates are rendered in UTC so that history is reproducible across
// machines regardless of the operator's locale.
type Env struct {
	AuthorDate    time.Time
	CommitterDate time.Time
}

func (e *Env) environ() []string {
	env := os.Environ()
	env = append(env,
		"GIT_AUTHOR_DATE="+gitDate(e.AuthorDate),
		"GIT_COMMITTER_DATE="+gitDate(e.CommitterDate),
		"TZ=UTC",
	)
	return env
}

func gitDate(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05 +0000")
}

func (c *Client) argv(args []string) []string {
	if c.gitDir != "" {
		return append([]string{"--git-dir", c.gitDir, "--work-tree", c.workDir}, args...)
	}
	return args
}

func (c *Client) command(env *Env, args ...string) *exec.Cmd {
	full := c.argv(args)
	if c.logger != nil {
		c.logger.Debug("executing git", "args", full, "dir", c.workDir)
	}
	cmd := exec.Command(c.exe, full...)
	cmd.Dir = c.workDir
	if env != nil {
		cmd.Env = env.environ()
	}
	return cmd
}

// Output runs a subcommand and captures its combined output, trimmed.
func (c *Client) Output(args ...string) (string, error) {
	return c.OutputEnv(nil, args...)
}

// OutputEnv is Output with per-call environment overrides.
func (c *Client) OutputEnv(env *Env, args ...string) (string, error) {
	cmd := c.command(env, args...)
	out, err := cmd.CombinedOutput()
	output := strings.TrimSpace(string(out))
	if err != nil {
		return output, &BackendError{Args: c.argv(args), Output: output, Err: err}
	}
	return output, nil
}

// Stream runs a subcommand intended for human consumption, piping its
// output to w without capture. Diagnostics still go to the process
// stderr.
func (c *Client) Stream(w io.Writer, args ...string) error {
	cmd := c.command(nil, args...)
	cmd.Stdout = w
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return &BackendError{Args: c.argv(args), Err: err}
	}
	return nil
}

// BackendError is a non-zero exit from the git subprocess, propagated
// as-is with whatever diagnostic the backend produced.
type BackendError struct {
	Args   []string
	Output string
	Err    error
}

func (e *BackendError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("git %s: %v\n%s", strings.Join(e.Args, " "), e.Err, e.Output)
	}
	return fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// ExitCode returns the subprocess exit status, or -1 when the process
// did not run at all.
func (e *BackendError) ExitCode() int {
	var exit *exec.ExitError
	if errors.As(e.Err, &exit) {
		return exit.ExitCode()
	}
	return -1
}
