package wire

import "github.com/brennie/mizuno/internal/errors"

// Channel identifies the kind of a frame multiplexed onto the command
// server's output stream.
type Channel int

// The channels of the pipe protocol.
const (
	// ChannelOutput carries command output bytes.
	ChannelOutput Channel = iota
	// ChannelError carries command error output bytes.
	ChannelError
	// ChannelDebug carries debug output bytes.
	ChannelDebug
	// ChannelResult carries a command's exit status.
	ChannelResult
	// ChannelInput requests up to N bytes of input from the client.
	ChannelInput
	// ChannelLineInput requests up to one line of input, at most N bytes.
	ChannelLineInput
)

// Wire tags for each channel.
const (
	tagOutput    = 'o'
	tagError     = 'e'
	tagDebug     = 'd'
	tagResult    = 'r'
	tagInput     = 'I'
	tagLineInput = 'L'
)

// ChannelFromByte maps a wire tag byte to its channel. An unrecognized byte
// yields an InvalidChannelError; the stream should be considered
// desynchronized from that point on.
func ChannelFromByte(b byte) (Channel, error) {
	switch b {
	case tagOutput:
		return ChannelOutput, nil
	case tagError:
		return ChannelError, nil
	case tagDebug:
		return ChannelDebug, nil
	case tagResult:
		return ChannelResult, nil
	case tagInput:
		return ChannelInput, nil
	case tagLineInput:
		return ChannelLineInput, nil
	default:
		return 0, &errors.InvalidChannelError{Byte: b}
	}
}

func (c Channel) String() string {
	switch c {
	case ChannelOutput:
		return "output"
	case ChannelError:
		return "error"
	case ChannelDebug:
		return "debug"
	case ChannelResult:
		return "result"
	case ChannelInput:
		return "input"
	case ChannelLineInput:
		return "line input"
	default:
		return "unknown"
	}
}
