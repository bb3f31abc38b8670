package mizuno

import "github.com/brennie/mizuno/internal/errors"

// Re-export error types from the internal package.

// MizunoError is the base interface for all SDK errors.
type MizunoError = errors.MizunoError

// HgNotFoundError indicates the hg binary was not found.
type HgNotFoundError = errors.HgNotFoundError

// SpawnError indicates the hg subprocess could not be started.
type SpawnError = errors.SpawnError

// FrameReadError indicates an IO failure while reading a frame, tagged with
// the stage (channel tag, length field, or payload bytes) that failed.
type FrameReadError = errors.FrameReadError

// FrameStage identifies which exact-length read of a frame failed.
type FrameStage = errors.FrameStage

// Frame read stages.
const (
	// StageChannel is the one-byte channel tag read.
	StageChannel = errors.StageChannel
	// StageLength is the four-byte length or value field read.
	StageLength = errors.StageLength
	// StagePayload is the payload bytes read.
	StagePayload = errors.StagePayload
)

// InvalidChannelError indicates the server sent an unrecognized channel tag
// byte. The stream is desynchronized from that point on.
type InvalidChannelError = errors.InvalidChannelError

// HelloChannelError indicates the hello arrived on a channel other than
// output.
type HelloChannelError = errors.HelloChannelError

// HelloDecodeError indicates the hello payload was not valid UTF-8.
type HelloDecodeError = errors.HelloDecodeError

// CommandWriteError indicates a command frame could not be written.
type CommandWriteError = errors.CommandWriteError

// ProcessError indicates the hg subprocess died unexpectedly. Stderr carries
// whatever diagnostics the process wrote before exiting; ExitCode is -1 when
// the exit status is unknown.
type ProcessError = errors.ProcessError

// Re-export sentinel errors from the internal package.
var (
	// ErrNoEncoding indicates the hello had no encoding field.
	ErrNoEncoding = errors.ErrNoEncoding

	// ErrNoCapabilities indicates the hello had no capabilities field.
	ErrNoCapabilities = errors.ErrNoCapabilities

	// ErrMissingRunCommand indicates the server does not advertise the
	// runcommand capability.
	ErrMissingRunCommand = errors.ErrMissingRunCommand

	// ErrConnectionClosed indicates the connection has been closed and
	// cannot be reused.
	ErrConnectionClosed = errors.ErrConnectionClosed

	// ErrInputUnsupported indicates the server requested interactive input,
	// which this client does not fulfill.
	ErrInputUnsupported = errors.ErrInputUnsupported
)
