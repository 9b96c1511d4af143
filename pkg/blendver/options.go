package blendver

import "log/slog"

// options holds the internal configuration for a History.
type options struct {
	gitExec     string
	depsTool    string
	blenderExec string
	exclude     []string
	skipConfig  bool
	logger      *slog.Logger
}

// Option defines a functional option for configuring a History.
type Option func(*options)

func defaultOptions() *options {
	return &options{}
}

// WithGitExec overrides the backend executable (default: "git" on PATH).
func WithGitExec(exe string) Option {
	return func(o *options) {
		o.gitExec = exe
	}
}

// WithDepsTool overrides the dependency scanner executable.
func WithDepsTool(exe string) Option {
	return func(o *options) {
		o.depsTool = exe
	}
}

// WithBlenderExec forwards an executable override to the dependency
// scanner.
func WithBlenderExec(exe string) Option {
	return func(o *options) {
		o.blenderExec = exe
	}
}

// WithExcludes adds dependency exclude globs on top of any configured
// in the config file.
func WithExcludes(patterns ...string) Option {
	return func(o *options) {
		o.exclude = append(o.exclude, patterns...)
	}
}

// WithoutConfig disables loading of the per-directory config file.
func WithoutConfig() Option {
	return func(o *options) {
		o.skipConfig = true
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
