// Package subprocess provides the subprocess-based transport for the
// Mercurial command server.
//
// This package implements the Transport interface by spawning
// `hg serve --cmdserver pipe` as a child process and exchanging protocol
// bytes over its stdin/stdout pipes. It handles process lifecycle and
// best-effort termination.
package subprocess
