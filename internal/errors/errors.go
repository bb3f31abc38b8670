package errors

import (
	"errors"
	"fmt"
)

// MizunoError is the base interface for all SDK errors.
type MizunoError interface {
	error
	IsMizunoError() bool
}

// Compile-time verification that all error types implement MizunoError.
var (
	_ MizunoError = (*HgNotFoundError)(nil)
	_ MizunoError = (*SpawnError)(nil)
	_ MizunoError = (*FrameReadError)(nil)
	_ MizunoError = (*InvalidChannelError)(nil)
	_ MizunoError = (*HelloChannelError)(nil)
	_ MizunoError = (*HelloDecodeError)(nil)
	_ MizunoError = (*CommandWriteError)(nil)
	_ MizunoError = (*ProcessError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrNoEncoding indicates the hello from Mercurial had no encoding field.
	ErrNoEncoding = errors.New("hello from Mercurial missing encoding")

	// ErrNoCapabilities indicates the hello from Mercurial had no capabilities field.
	ErrNoCapabilities = errors.New("hello from Mercurial missing capabilities")

	// ErrMissingRunCommand indicates the server does not advertise the
	// runcommand capability, without which dispatching commands is meaningless.
	ErrMissingRunCommand = errors.New("Mercurial lacks runcommand capability")

	// ErrConnectionClosed indicates the connection has been closed and cannot
	// be reused. Connections are single-use; build a new one with Connect.
	ErrConnectionClosed = errors.New("connection closed")

	// ErrInputUnsupported indicates the server requested interactive input,
	// which this client does not fulfill.
	ErrInputUnsupported = errors.New("interactive input is not supported")

	// ErrTransportNotStarted indicates a read or write was attempted before
	// the transport was started. This is a programming error, not a protocol
	// condition.
	ErrTransportNotStarted = errors.New("transport not started")
)

// FrameStage identifies which exact-length read of a frame failed. Frames are
// read in up to three stages (channel tag, length field, payload bytes);
// tagging IO errors with the stage pinpoints where the stream desynchronized.
type FrameStage string

// Frame read stages.
const (
	StageChannel FrameStage = "channel"
	StageLength  FrameStage = "length"
	StagePayload FrameStage = "payload"
)

// HgNotFoundError indicates the hg binary was not found.
type HgNotFoundError struct {
	SearchedPaths []string
}

func (e *HgNotFoundError) Error() string {
	return fmt.Sprintf("hg not found in: %v", e.SearchedPaths)
}

// IsMizunoError implements MizunoError.
func (e *HgNotFoundError) IsMizunoError() bool { return true }

// SpawnError indicates the hg subprocess could not be started or its pipes
// could not be set up.
type SpawnError struct {
	Err error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start hg: %v", e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// IsMizunoError implements MizunoError.
func (e *SpawnError) IsMizunoError() bool { return true }

// FrameReadError indicates an IO failure while reading a frame from the
// server, tagged with the stage at which the read failed.
type FrameReadError struct {
	Stage FrameStage
	Err   error
}

func (e *FrameReadError) Error() string {
	return fmt.Sprintf("could not read frame %s: %v", e.Stage, e.Err)
}

func (e *FrameReadError) Unwrap() error {
	return e.Err
}

// IsMizunoError implements MizunoError.
func (e *FrameReadError) IsMizunoError() bool { return true }

// InvalidChannelError indicates the server sent a channel tag byte this
// client does not recognize. The error itself is recoverable, but the stream
// is left desynchronized: subsequent reads on the same connection are
// unreliable and the connection should be discarded.
type InvalidChannelError struct {
	Byte byte
}

func (e *InvalidChannelError) Error() string {
	return fmt.Sprintf("unknown channel %q", e.Byte)
}

// IsMizunoError implements MizunoError.
func (e *InvalidChannelError) IsMizunoError() bool { return true }

// HelloChannelError indicates the hello arrived on a channel other than output.
type HelloChannelError struct {
	Channel string
}

func (e *HelloChannelError) Error() string {
	return fmt.Sprintf("hello from Mercurial on invalid channel: got %s but expected output", e.Channel)
}

// IsMizunoError implements MizunoError.
func (e *HelloChannelError) IsMizunoError() bool { return true }

// HelloDecodeError indicates the hello payload was not valid UTF-8.
type HelloDecodeError struct {
	Err error
}

func (e *HelloDecodeError) Error() string {
	return fmt.Sprintf("could not decode hello from Mercurial: %v", e.Err)
}

func (e *HelloDecodeError) Unwrap() error {
	return e.Err
}

// IsMizunoError implements MizunoError.
func (e *HelloDecodeError) IsMizunoError() bool { return true }

// CommandWriteError indicates the command frame could not be written to the
// server's stdin.
type CommandWriteError struct {
	Err error
}

func (e *CommandWriteError) Error() string {
	return fmt.Sprintf("could not write command: %v", e.Err)
}

func (e *CommandWriteError) Unwrap() error {
	return e.Err
}

// IsMizunoError implements MizunoError.
func (e *CommandWriteError) IsMizunoError() bool { return true }

// ProcessError indicates the hg subprocess died unexpectedly. Stderr carries
// whatever diagnostics the process wrote before exiting.
type ProcessError struct {
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ProcessError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("hg exited (code %d): %s", e.ExitCode, e.Stderr)
	}

	return fmt.Sprintf("hg exited (code %d): %v", e.ExitCode, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// IsMizunoError implements MizunoError.
func (e *ProcessError) IsMizunoError() bool { return true }
