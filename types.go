package mizuno

import (
	"iter"

	"github.com/brennie/mizuno/internal/wire"
)

// Re-export wire types from the internal package.

// Channel identifies the kind of a frame multiplexed onto the command
// server's output stream.
type Channel = wire.Channel

// The channels of the pipe protocol.
const (
	// ChannelOutput carries command output bytes.
	ChannelOutput = wire.ChannelOutput
	// ChannelError carries command error output bytes.
	ChannelError = wire.ChannelError
	// ChannelDebug carries debug output bytes.
	ChannelDebug = wire.ChannelDebug
	// ChannelResult carries a command's exit status.
	ChannelResult = wire.ChannelResult
	// ChannelInput requests bytes of input from the client.
	ChannelInput = wire.ChannelInput
	// ChannelLineInput requests a line of input from the client.
	ChannelLineInput = wire.ChannelLineInput
)

// Chunk is one decoded frame from the command server. The concrete type is
// one of OutputChunk, ErrorChunk, DebugChunk, ResultChunk, InputRequestChunk,
// or LineInputRequestChunk.
type Chunk = wire.Chunk

// OutputChunk carries command output bytes.
type OutputChunk = wire.OutputChunk

// ErrorChunk carries command error output bytes.
type ErrorChunk = wire.ErrorChunk

// DebugChunk carries debug output bytes.
type DebugChunk = wire.DebugChunk

// ResultChunk carries the exit status of a completed command. It is the
// final chunk of every command's response sequence.
type ResultChunk = wire.ResultChunk

// InputRequestChunk is the server asking for bytes of input. Fulfilling
// input requests is not supported; the request is surfaced as-is.
type InputRequestChunk = wire.InputRequestChunk

// LineInputRequestChunk is the server asking for one line of input.
// Fulfilling input requests is not supported; the request is surfaced as-is.
type LineInputRequestChunk = wire.LineInputRequestChunk

// ResponseSequence is the lazy, finite sequence of chunks produced by one
// command. It terminates inclusively at the first ResultChunk; a read error
// is yielded as its final item. Each step blocks until a complete frame has
// been read. The sequence is not restartable: once terminated it yields
// nothing, and no bytes beyond the terminating frame are consumed.
type ResponseSequence = iter.Seq2[Chunk, error]
