package config

import (
	"context"
	"io"
)

// Transport carries the raw protocol byte streams between the client and the
// command server. Implement this to test the protocol engine without a real
// Mercurial installation.
//
// The default implementation is the subprocess pipe transport, which spawns
// `hg serve --cmdserver pipe` and owns its process handle exclusively.
type Transport interface {
	// Reads return protocol bytes from the server. Writes send command bytes
	// to the server. Both block until satisfied or failed; neither is safe
	// for concurrent use with itself.
	io.Reader
	io.Writer

	// Start launches the transport. It must be called exactly once, before
	// any read or write.
	Start(ctx context.Context) error

	// Stderr returns the server's diagnostic output captured so far. Stderr
	// is not part of the protocol; it is surfaced only to enrich errors.
	Stderr() string

	// Close terminates the transport, releasing the underlying process with
	// a best-effort kill. It is safe to call Close multiple times.
	Close() error
}
