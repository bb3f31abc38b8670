package wire

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	sdkerrors "github.com/brennie/mizuno/internal/errors"
)

func TestReadChunk_Output(t *testing.T) {
	r := bytes.NewReader([]byte{'o', 0, 0, 0, 5, 'h', 'e', 'l', 'l', 'o'})

	chunk, err := ReadChunk(r)
	require.NoError(t, err)
	require.Equal(t, OutputChunk{Data: []byte("hello")}, chunk)
	require.Equal(t, ChannelOutput, chunk.Channel())
}

func TestReadChunk_PayloadChannels(t *testing.T) {
	tests := []struct {
		name string
		tag  byte
		want Chunk
	}{
		{"error", 'e', ErrorChunk{Data: []byte("oops")}},
		{"debug", 'd', DebugChunk{Data: []byte("oops")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bytes.NewReader([]byte{tt.tag, 0, 0, 0, 4, 'o', 'o', 'p', 's'})

			chunk, err := ReadChunk(r)
			require.NoError(t, err)
			require.Equal(t, tt.want, chunk)
		})
	}
}

func TestReadChunk_Result(t *testing.T) {
	r := bytes.NewReader([]byte{'r', 0, 0, 0, 0})

	chunk, err := ReadChunk(r)
	require.NoError(t, err)
	require.Equal(t, ResultChunk{Code: 0}, chunk)
}

func TestReadChunk_ResultNonZero(t *testing.T) {
	r := bytes.NewReader([]byte{'r', 0, 0, 0, 255})

	chunk, err := ReadChunk(r)
	require.NoError(t, err)
	require.Equal(t, ResultChunk{Code: 255}, chunk)
}

func TestReadChunk_InputRequests(t *testing.T) {
	tests := []struct {
		name string
		tag  byte
		want Chunk
	}{
		{"input", 'I', InputRequestChunk{Bytes: 4096}},
		{"line input", 'L', LineInputRequestChunk{Bytes: 4096}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bytes.NewReader([]byte{tt.tag, 0, 0, 0x10, 0})

			chunk, err := ReadChunk(r)
			require.NoError(t, err)
			require.Equal(t, tt.want, chunk)
		})
	}
}

func TestReadChunk_EmptyPayload(t *testing.T) {
	r := bytes.NewReader([]byte{'o', 0, 0, 0, 0})

	chunk, err := ReadChunk(r)
	require.NoError(t, err)
	require.Equal(t, ChannelOutput, chunk.Channel())
	require.Empty(t, chunk.(OutputChunk).Data)
}

func TestReadChunk_InvalidChannel(t *testing.T) {
	r := bytes.NewReader([]byte{'x', 0, 0, 0, 0})

	_, err := ReadChunk(r)

	var invalidChannel *sdkerrors.InvalidChannelError
	require.ErrorAs(t, err, &invalidChannel)
	require.Equal(t, byte('x'), invalidChannel.Byte)
}

func TestReadChunk_ShortReads(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		stage sdkerrors.FrameStage
	}{
		{"empty stream", nil, sdkerrors.StageChannel},
		{"truncated length", []byte{'o', 0, 0}, sdkerrors.StageLength},
		{"truncated payload", []byte{'o', 0, 0, 0, 5, 'h', 'i'}, sdkerrors.StagePayload},
		{"truncated result", []byte{'r', 0, 0}, sdkerrors.StageLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadChunk(bytes.NewReader(tt.input))

			var frameErr *sdkerrors.FrameReadError
			require.ErrorAs(t, err, &frameErr)
			require.Equal(t, tt.stage, frameErr.Stage)
		})
	}
}

func TestReadChunk_LeavesTrailingBytes(t *testing.T) {
	r := bytes.NewReader([]byte{'r', 0, 0, 0, 0, 'o', 0, 0, 0, 1, '!'})

	_, err := ReadChunk(r)
	require.NoError(t, err)

	rest, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, []byte{'o', 0, 0, 0, 1, '!'}, rest)
}

func TestWriteCommand(t *testing.T) {
	var buf bytes.Buffer

	err := WriteCommand(&buf, []string{"status", "-v"})
	require.NoError(t, err)

	want := append([]byte("runcommand\n"), 0, 0, 0, 9)
	want = append(want, []byte("status\x00-v")...)
	require.Equal(t, want, buf.Bytes())
}

func TestWriteCommand_SingleArgument(t *testing.T) {
	var buf bytes.Buffer

	err := WriteCommand(&buf, []string{"init"})
	require.NoError(t, err)

	want := append([]byte("runcommand\n"), 0, 0, 0, 4)
	want = append(want, []byte("init")...)
	require.Equal(t, want, buf.Bytes())
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestWriteCommand_WriteFailure(t *testing.T) {
	root := io.ErrClosedPipe

	err := WriteCommand(failingWriter{err: root}, []string{"status"})

	var writeErr *sdkerrors.CommandWriteError
	require.ErrorAs(t, err, &writeErr)
	require.ErrorIs(t, err, root)
}

func TestChannelFromByte_RoundTrip(t *testing.T) {
	tags := map[byte]Channel{
		'o': ChannelOutput,
		'e': ChannelError,
		'd': ChannelDebug,
		'r': ChannelResult,
		'I': ChannelInput,
		'L': ChannelLineInput,
	}

	for tag, want := range tags {
		got, err := ChannelFromByte(tag)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestChannelString(t *testing.T) {
	require.Equal(t, "output", ChannelOutput.String())
	require.Equal(t, "line input", ChannelLineInput.String())
	require.Equal(t, "unknown", Channel(42).String())
}
