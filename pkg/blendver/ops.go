package blendver

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/blendver/blendver/pkg/core"
	"github.com/blendver/blendver/pkg/git"
)

// History manages the version history of a single document.
//
// Every operation is synchronous and blocking; callers must serialize
// concurrent access to the same document externally, since two
// simultaneous writes race on the shared staging directory.
type History struct {
	doc         core.Document
	gitExec     string
	depsTool    string
	blenderExec string
	exclude     []string
	description string
	logger      *slog.Logger
}

// Open resolves the document path and builds a History for it. It does
// not require the history to be initialized; every operation checks its
// own precondition.
func Open(path string, opts ...Option) (*History, error) {
	doc, err := Resolve(path)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	var cfg Config
	if !o.skipConfig {
		cfg, err = LoadConfig(doc.Dir())
		if err != nil {
			return nil, err
		}
	}

	h := &History{
		doc:         doc,
		gitExec:     firstOf(o.gitExec, cfg.Git),
		depsTool:    firstOf(o.depsTool, cfg.DepsTool),
		blenderExec: firstOf(o.blenderExec, cfg.Blender),
		exclude:     append(cfg.Exclude, o.exclude...),
		description: cfg.Description,
		logger:      o.logger,
	}
	return h, nil
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Document returns the resolved document identity.
func (h *History) Document() core.Document { return h.doc }

// Versioned reports whether history has been initialized for the
// document. The repository handle's existence is the sole signal.
func (h *History) Versioned() bool {
	info, err := os.Stat(h.doc.RepoDir())
	return err == nil && info.IsDir()
}

func (h *History) direct() *git.Client {
	return git.Direct(h.gitExec, h.doc.RepoDir(), h.doc.Dir(), h.logger)
}

func (h *History) requireVersioned() error {
	if !h.Versioned() {
		return fmt.Errorf("%w: %s", core.ErrNotVersioned, h.doc.Path)
	}
	return nil
}

// Init creates the repository handle for the document. The description,
// when non-empty, is written as free text into the handle; it falls
// back to the configured default.
func (h *History) Init(description string) error {
	if h.Versioned() {
		return fmt.Errorf("%w: %s", core.ErrAlreadyVersioned, h.doc.RepoDir())
	}

	err := h.withStaging(func(stage string) error {
		if err := os.MkdirAll(h.doc.RepoDir(), 0755); err != nil {
			return fmt.Errorf("failed to create repository handle: %w", err)
		}
		staged := git.Staged(h.gitExec, stage, h.logger)
		if _, err := staged.Output("init"); err != nil {
			return err
		}
		// init through the metadata link can record the handle as bare
		// and binds core.worktree to the staging directory, which is
		// deleted right after. Strip both so later direct-mode calls
		// operate on the document's real directory; an absent key
		// exits 5 and is fine.
		for _, key := range []string{"core.bare", "core.worktree"} {
			if _, err := h.direct().Output("config", "--unset", key); err != nil {
				var be *git.BackendError
				if !errors.As(err, &be) || be.ExitCode() != 5 {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		// The handle did not exist when this call started, so whatever
		// is there is our partial state; a leftover would make the
		// document read as Versioned while holding no usable history.
		os.RemoveAll(h.doc.RepoDir())
		return err
	}

	desc := firstOf(description, h.description)
	if desc != "" {
		descPath := filepath.Join(h.doc.RepoDir(), "description")
		if err := os.WriteFile(descPath, []byte(desc+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write description: %w", err)
		}
	}
	return nil
}

// hasCommits reports whether the history has at least one commit.
func (h *History) hasCommits() bool {
	_, err := h.direct().Output("rev-parse", "--verify", "-q", "HEAD")
	return err == nil
}

// List returns every commit in the history, newest first. An empty
// history yields an empty slice, not an error.
func (h *History) List() ([]core.CommitRecord, error) {
	if err := h.requireVersioned(); err != nil {
		return nil, err
	}
	if !h.hasCommits() {
		return nil, nil
	}

	out, err := h.direct().Output("log", "--pretty=format:%H %at %s")
	if err != nil {
		return nil, err
	}

	var records []core.CommitRecord
	for _, line := range strings.Split(out, "\n") {
		rec, ok := parseLogLine(line)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseLogLine(line string) (core.CommitRecord, bool) {
	parts := strings.SplitN(strings.TrimSpace(line), " ", 3)
	if len(parts) < 2 {
		return core.CommitRecord{}, false
	}
	ts, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return core.CommitRecord{}, false
	}
	rec := core.CommitRecord{Hash: parts[0], Time: time.Unix(ts, 0)}
	if len(parts) == 3 {
		rec.Subject = parts[2]
	}
	return rec, true
}

// LogOptions are display flags forwarded verbatim to the backend log.
type LogOptions struct {
	Format string
	Raw    bool
}

// Log streams the raw backend log output to w.
func (h *History) Log(w io.Writer, opts LogOptions) error {
	if err := h.requireVersioned(); err != nil {
		return err
	}
	args := []string{"log"}
	if opts.Format != "" {
		args = append(args, "--format="+opts.Format)
	}
	if opts.Raw {
		args = append(args, "--raw")
	}
	return h.direct().Stream(w, args...)
}

// Commit snapshots the document together with its eligible dependencies
// into a single new commit. The commit's author and committer dates are
// the document's own modification time rendered in UTC, never the
// wall clock, so identical content commits identically on any machine.
func (h *History) Commit(message string) error {
	if err := h.requireVersioned(); err != nil {
		return err
	}
	if strings.TrimSpace(message) == "" {
		return core.ErrEmptyMessage
	}

	info, err := os.Stat(h.doc.Path)
	if err != nil {
		return fmt.Errorf("failed to stat document: %w", err)
	}

	raw, err := h.discover()
	if err != nil {
		return err
	}
	deps := FilterDependencies(raw, h.exclude)
	if h.logger != nil {
		h.logger.Debug("filtered dependencies", "raw", len(raw), "eligible", len(deps))
	}

	return h.withStaging(func(stage string) error {
		staged := git.Staged(h.gitExec, stage, h.logger)

		files := append([]string{h.doc.Name()}, deps...)
		for _, rel := range files {
			if err := stageFile(stage, h.doc.Dir(), filepath.FromSlash(rel)); err != nil {
				return err
			}
			if _, err := staged.Output("add", rel); err != nil {
				return err
			}
		}

		env := &git.Env{AuthorDate: info.ModTime(), CommitterDate: info.ModTime()}
		_, err := staged.OutputEnv(env, "commit", "-m", message)
		return err
	})
}

// Uncommit rolls the history pointer back one step and streams the
// removed commit's changes to w for operator confirmation. Files in the
// index are left as they were; this is a pointer rollback, not a
// working-tree rollback.
func (h *History) Uncommit(w io.Writer) (string, error) {
	if err := h.requireVersioned(); err != nil {
		return "", err
	}

	direct := h.direct()
	head, err := direct.Output("rev-parse", "--verify", "-q", "HEAD")
	if err != nil {
		return "", fmt.Errorf("%w: %s", core.ErrNoCommits, h.doc.Path)
	}

	if _, err := direct.Output("reset", "--soft", "HEAD~1"); err != nil {
		return "", err
	}
	if err := direct.Stream(w, "show", "--raw", head); err != nil {
		return head, err
	}
	return head, nil
}

// Checkout force-restores every tracked path in the document's real
// directory tree to its state at ref. An unresolvable ref is reported
// by the backend.
func (h *History) Checkout(ref string) error {
	if err := h.requireVersioned(); err != nil {
		return err
	}
	_, err := h.direct().Output("checkout", "-f", ref, "--", ".")
	return err
}
