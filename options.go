package mizuno

import (
	"log/slog"

	"github.com/brennie/mizuno/internal/config"
)

// Option configures a connection using the functional options pattern.
type Option func(*config.Options)

// applyOptions applies functional options to a fresh Options struct.
func applyOptions(opts []Option) *config.Options {
	options := &config.Options{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *config.Options) {
		o.Logger = logger
	}
}

// WithHgPath sets the explicit path to the hg binary.
// If not set, the binary is searched for in PATH and common installation
// directories.
func WithHgPath(path string) Option {
	return func(o *config.Options) {
		o.HgPath = path
	}
}

// WithDir sets the working directory for the server process. Commands
// operate on the repository at or above this directory.
func WithDir(dir string) Option {
	return func(o *config.Options) {
		o.Dir = dir
	}
}

// WithEnv provides additional environment variables for the server process.
// The plain-mode and encoding variables the protocol depends on cannot be
// overridden.
func WithEnv(env map[string]string) Option {
	return func(o *config.Options) {
		o.Env = env
	}
}

// WithTransport injects a custom transport instead of spawning an hg
// subprocess. Intended for testing; when set, WithHgPath, WithDir, and
// WithEnv have no effect.
func WithTransport(transport Transport) Option {
	return func(o *config.Options) {
		o.Transport = transport
	}
}
