package mizuno

import (
	"context"
	stderrors "errors"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"

	sdkerrors "github.com/brennie/mizuno/internal/errors"
	"github.com/brennie/mizuno/internal/subprocess"
	"github.com/brennie/mizuno/internal/wire"
)

// Connection is a live connection to one Mercurial command server.
//
// A Connection exclusively owns its server process: no other component reads
// or writes its pipes. The handshake runs exactly once, during Connect; the
// negotiated encoding and capability set never change afterwards.
//
// Connections are single-use and not safe for concurrent use. All reads and
// writes block the calling goroutine; there is no timeout anywhere, so a hung
// server blocks the caller until Close is called from elsewhere or the
// process dies.
type Connection struct {
	log          *slog.Logger
	transport    Transport
	encoding     string
	capabilities CapabilitySet
	closed       bool
}

// Connect spawns a Mercurial command server and performs the protocol
// handshake.
//
// The server is launched as `hg serve --cmdserver pipe` with environment
// overrides forcing plain mode and strict UTF-8 encoding. Immediately after
// spawning, Connect reads the server's hello frame and negotiates the
// encoding and capability set. On any handshake failure the subprocess is
// terminated and an error describing the failure is returned; retrying is the
// caller's responsibility.
//
// Returns HgNotFoundError if the binary cannot be located, SpawnError if the
// process fails to start, and ErrMissingRunCommand if the server does not
// advertise the runcommand capability.
func Connect(ctx context.Context, opts ...Option) (*Connection, error) {
	options := applyOptions(opts)

	log := options.Logger
	if log == nil {
		log = NopLogger()
	}

	log = log.With("component", "connection", "conn_id", ulid.Make().String())

	transport := options.Transport
	if transport == nil {
		transport = subprocess.NewPipeTransport(log, options)
	} else {
		log.Debug("Using injected custom transport")
	}

	if err := transport.Start(ctx); err != nil {
		return nil, err
	}

	conn := &Connection{
		log:       log,
		transport: transport,
	}

	if err := conn.handshake(); err != nil {
		// The connection never becomes usable, so tear the process down on
		// this exit path too.
		_ = transport.Close()

		return nil, err
	}

	log.Info("Connected to Mercurial command server",
		"encoding", conn.encoding,
		"capabilities", len(conn.capabilities),
	)

	return conn, nil
}

// handshake reads and parses the hello frame, populating the connection's
// encoding and capability set.
func (c *Connection) handshake() error {
	chunk, err := wire.ReadChunk(c.transport)
	if err != nil {
		// A server that refuses to start writes its complaint to stderr and
		// exits, which surfaces here as a short read on the hello.
		if stderr := c.transport.Stderr(); stderr != "" {
			return &sdkerrors.ProcessError{ExitCode: -1, Stderr: stderr, Err: err}
		}

		return err
	}

	output, ok := chunk.(wire.OutputChunk)
	if !ok {
		return &sdkerrors.HelloChannelError{Channel: chunk.Channel().String()}
	}

	if !utf8.Valid(output.Data) {
		return &sdkerrors.HelloDecodeError{Err: stderrors.New("invalid UTF-8")}
	}

	var (
		encoding     string
		capabilities CapabilitySet
	)

	for line := range strings.SplitSeq(string(output.Data), "\n") {
		key, value, found := strings.Cut(line, ": ")
		if !found {
			continue
		}

		switch key {
		case "capabilities":
			capabilities = newCapabilitySet(strings.Split(value, " "))
		case "encoding":
			encoding = value
		default:
			// Unknown hello fields are ignored for forward compatibility.
		}
	}

	if encoding == "" {
		return sdkerrors.ErrNoEncoding
	}

	if capabilities == nil {
		return sdkerrors.ErrNoCapabilities
	}

	if !capabilities.Contains(CapabilityRunCommand) {
		return sdkerrors.ErrMissingRunCommand
	}

	c.encoding = encoding
	c.capabilities = capabilities

	return nil
}

// Encoding returns the encoding negotiated during the handshake.
func (c *Connection) Encoding() string {
	return c.encoding
}

// Capabilities returns the capability set negotiated during the handshake.
// The returned set is shared and must not be modified.
func (c *Connection) Capabilities() CapabilitySet {
	return c.capabilities
}

// RunCommand dispatches one command to the server and returns its response
// sequence.
//
// The arguments are sent exactly as given; no shell quoting or argument
// parsing happens on this side. A failure to write the command frame is
// returned eagerly; read failures surface as the terminal item of the
// response sequence.
//
// The returned sequence must be drained (or the connection discarded) before
// the next RunCommand: the protocol supports exactly one in-flight command
// per connection, and issuing another while frames remain leaves the stream
// in an undefined state.
func (c *Connection) RunCommand(ctx context.Context, args ...string) (ResponseSequence, error) {
	if c.closed {
		return nil, sdkerrors.ErrConnectionClosed
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.log.Debug("Dispatching command", "args", args)

	if err := wire.WriteCommand(c.transport, args); err != nil {
		return nil, err
	}

	return c.responseSequence(), nil
}

// responseSequence lazily reads frames until the first result chunk. Once the
// result has been yielded the sequence reports completion unconditionally, so
// buffered bytes belonging to a later command are never consumed. A read
// error terminates the sequence as its final item.
func (c *Connection) responseSequence() ResponseSequence {
	finished := false

	return func(yield func(Chunk, error) bool) {
		for !finished {
			chunk, err := wire.ReadChunk(c.transport)
			if err != nil {
				finished = true

				yield(nil, err)

				return
			}

			if chunk.Channel() == ChannelResult {
				finished = true
			}

			if !yield(chunk, nil) {
				return
			}
		}
	}
}

// ReadChunk reads one raw frame from the server. It is the escape hatch
// below the command-dispatch layer for callers that manage protocol state
// themselves; mixing it with an undrained RunCommand sequence will
// desynchronize the stream.
func (c *Connection) ReadChunk() (Chunk, error) {
	if c.closed {
		return nil, sdkerrors.ErrConnectionClosed
	}

	return wire.ReadChunk(c.transport)
}

// Close terminates the server process with a best-effort kill.
//
// No goodbye is sent; the process is killed outright and errors from an
// already-dead process are discarded. Close is safe to call multiple times.
func (c *Connection) Close() error {
	if c.closed {
		return nil
	}

	c.closed = true
	c.log.Debug("Closing connection")

	return c.transport.Close()
}
