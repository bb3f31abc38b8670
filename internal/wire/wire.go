package wire

import (
	"encoding/binary"
	"io"
	"strings"

	"github.com/brennie/mizuno/internal/errors"
)

// commandPrefix introduces every command frame written to the server.
const commandPrefix = "runcommand\n"

// ReadChunk reads exactly one frame from r and decodes it. It blocks until a
// complete frame has been read or a read fails.
//
// Every sub-read is exact-length: a short read or premature end of stream is
// reported as a FrameReadError tagged with the stage that failed. An
// unrecognized channel tag is reported as an InvalidChannelError; it does not
// consume any further bytes, so the stream is desynchronized for subsequent
// reads.
func ReadChunk(r io.Reader) (Chunk, error) {
	var tag [1]byte
	if _, err := io.ReadFull(r, tag[:]); err != nil {
		return nil, &errors.FrameReadError{Stage: errors.StageChannel, Err: err}
	}

	channel, err := ChannelFromByte(tag[0])
	if err != nil {
		return nil, err
	}

	switch channel {
	case ChannelOutput, ChannelError, ChannelDebug:
		var lenBuf [4]byte
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			return nil, &errors.FrameReadError{Stage: errors.StageLength, Err: err}
		}

		data := make([]byte, binary.BigEndian.Uint32(lenBuf[:]))
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, &errors.FrameReadError{Stage: errors.StagePayload, Err: err}
		}

		switch channel {
		case ChannelOutput:
			return OutputChunk{Data: data}, nil
		case ChannelError:
			return ErrorChunk{Data: data}, nil
		default:
			return DebugChunk{Data: data}, nil
		}

	default:
		// Result, Input, and LineInput carry a bare uint32 in the same
		// position as the length field.
		var valBuf [4]byte
		if _, err := io.ReadFull(r, valBuf[:]); err != nil {
			return nil, &errors.FrameReadError{Stage: errors.StageLength, Err: err}
		}

		value := binary.BigEndian.Uint32(valBuf[:])

		switch channel {
		case ChannelResult:
			return ResultChunk{Code: value}, nil
		case ChannelInput:
			return InputRequestChunk{Bytes: value}, nil
		default:
			return LineInputRequestChunk{Bytes: value}, nil
		}
	}
}

// WriteCommand writes one runcommand frame to w: the literal bytes
// "runcommand\n", a big-endian uint32 equal to the byte length of the
// NUL-joined argument blob, then the blob itself. Adjacent arguments are
// separated by a single NUL byte with no trailing separator.
//
// The frame is assembled in memory and written with a single Write call so a
// failure cannot leave a partial command on the pipe.
func WriteCommand(w io.Writer, args []string) error {
	blob := strings.Join(args, "\x00")

	frame := make([]byte, 0, len(commandPrefix)+4+len(blob))
	frame = append(frame, commandPrefix...)
	frame = binary.BigEndian.AppendUint32(frame, uint32(len(blob)))
	frame = append(frame, blob...)

	if _, err := w.Write(frame); err != nil {
		return &errors.CommandWriteError{Err: err}
	}

	return nil
}
