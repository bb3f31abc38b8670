// Package config provides configuration types for the mizuno SDK.
package config

import "log/slog"

// Options configures how a connection to the Mercurial command server is
// established.
type Options struct {
	// Logger is the slog logger for debug output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// HgPath is an explicit path to the hg binary. If empty, the binary is
	// searched for in PATH and common installation directories.
	HgPath string

	// Dir sets the working directory for the server process. If empty, the
	// current working directory is used.
	Dir string

	// Env provides additional environment variables for the server process.
	// These are applied on top of the inherited environment but cannot
	// override the plain-mode and encoding variables the protocol requires.
	Env map[string]string

	// Transport overrides the default subprocess transport. Intended for
	// testing; when set, HgPath, Dir, and Env are ignored.
	Transport Transport
}
