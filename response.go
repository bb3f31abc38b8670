package mizuno

import (
	sdkerrors "github.com/brennie/mizuno/internal/errors"
)

// Collect drains a response sequence, concatenating the output and error
// payloads and capturing the command's exit status.
//
// Debug chunks are discarded. If the server requests interactive input the
// command cannot make progress, so Collect stops with ErrInputUnsupported;
// the connection should be discarded. A read error mid-sequence is returned
// as-is.
func Collect(seq ResponseSequence) (output, errOutput []byte, code uint32, err error) {
	for chunk, chunkErr := range seq {
		if chunkErr != nil {
			return output, errOutput, 0, chunkErr
		}

		switch c := chunk.(type) {
		case OutputChunk:
			output = append(output, c.Data...)
		case ErrorChunk:
			errOutput = append(errOutput, c.Data...)
		case ResultChunk:
			code = c.Code
		case DebugChunk:
			// Discarded.
		case InputRequestChunk, LineInputRequestChunk:
			return output, errOutput, 0, sdkerrors.ErrInputUnsupported
		}
	}

	return output, errOutput, code, nil
}
