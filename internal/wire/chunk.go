package wire

// Chunk is one decoded frame from the command server. The concrete type is
// one of OutputChunk, ErrorChunk, DebugChunk, ResultChunk, InputRequestChunk,
// or LineInputRequestChunk.
type Chunk interface {
	// Channel reports which channel the chunk arrived on.
	Channel() Channel
}

// Compile-time verification that all chunk types implement Chunk.
var (
	_ Chunk = OutputChunk{}
	_ Chunk = ErrorChunk{}
	_ Chunk = DebugChunk{}
	_ Chunk = ResultChunk{}
	_ Chunk = InputRequestChunk{}
	_ Chunk = LineInputRequestChunk{}
)

// OutputChunk carries command output bytes. The payload is not required to be
// valid text in the negotiated encoding.
type OutputChunk struct {
	Data []byte
}

// Channel implements Chunk.
func (OutputChunk) Channel() Channel { return ChannelOutput }

// ErrorChunk carries command error output bytes.
type ErrorChunk struct {
	Data []byte
}

// Channel implements Chunk.
func (ErrorChunk) Channel() Channel { return ChannelError }

// DebugChunk carries debug output bytes.
type DebugChunk struct {
	Data []byte
}

// Channel implements Chunk.
func (DebugChunk) Channel() Channel { return ChannelDebug }

// ResultChunk carries the exit status of a completed command. It is the final
// chunk of every command's response sequence.
type ResultChunk struct {
	Code uint32
}

// Channel implements Chunk.
func (ResultChunk) Channel() Channel { return ChannelResult }

// InputRequestChunk is the server asking for up to Bytes bytes of input.
// Fulfilling input requests is not supported; the request is surfaced to the
// caller as-is.
type InputRequestChunk struct {
	Bytes uint32
}

// Channel implements Chunk.
func (InputRequestChunk) Channel() Channel { return ChannelInput }

// LineInputRequestChunk is the server asking for one line of input, at most
// Bytes bytes. Fulfilling input requests is not supported; the request is
// surfaced to the caller as-is.
type LineInputRequestChunk struct {
	Bytes uint32
}

// Channel implements Chunk.
func (LineInputRequestChunk) Channel() Channel { return ChannelLineInput }
