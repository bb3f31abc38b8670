package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHgNotFoundError(t *testing.T) {
	err := &HgNotFoundError{
		SearchedPaths: []string{"/usr/bin/hg", "/opt/bin/hg"},
	}

	require.Equal(t, "hg not found in: [/usr/bin/hg /opt/bin/hg]", err.Error())
	require.True(t, err.IsMizunoError())
}

func TestSpawnError(t *testing.T) {
	root := errors.New("fork failed")
	err := &SpawnError{Err: root}

	require.Equal(t, "failed to start hg: fork failed", err.Error())
	require.ErrorIs(t, err, root)
	require.True(t, err.IsMizunoError())
}

func TestFrameReadError(t *testing.T) {
	root := errors.New("unexpected EOF")

	tests := []struct {
		stage FrameStage
		want  string
	}{
		{StageChannel, "could not read frame channel: unexpected EOF"},
		{StageLength, "could not read frame length: unexpected EOF"},
		{StagePayload, "could not read frame payload: unexpected EOF"},
	}

	for _, tt := range tests {
		err := &FrameReadError{Stage: tt.stage, Err: root}

		require.Equal(t, tt.want, err.Error())
		require.ErrorIs(t, err, root)
		require.True(t, err.IsMizunoError())
	}
}

func TestInvalidChannelError(t *testing.T) {
	err := &InvalidChannelError{Byte: 'x'}

	require.Equal(t, `unknown channel 'x'`, err.Error())
	require.True(t, err.IsMizunoError())
}

func TestHelloChannelError(t *testing.T) {
	err := &HelloChannelError{Channel: "result"}

	require.Equal(
		t,
		"hello from Mercurial on invalid channel: got result but expected output",
		err.Error(),
	)
	require.True(t, err.IsMizunoError())
}

func TestHelloDecodeError(t *testing.T) {
	root := errors.New("invalid UTF-8")
	err := &HelloDecodeError{Err: root}

	require.Equal(t, "could not decode hello from Mercurial: invalid UTF-8", err.Error())
	require.ErrorIs(t, err, root)
	require.True(t, err.IsMizunoError())
}

func TestCommandWriteError(t *testing.T) {
	root := errors.New("broken pipe")
	err := &CommandWriteError{Err: root}

	require.Equal(t, "could not write command: broken pipe", err.Error())
	require.ErrorIs(t, err, root)
	require.True(t, err.IsMizunoError())
}

func TestProcessError_WithStderr(t *testing.T) {
	err := &ProcessError{
		ExitCode: 255,
		Stderr:   "abort: repository requires features unknown to this Mercurial",
	}

	require.Equal(
		t,
		"hg exited (code 255): abort: repository requires features unknown to this Mercurial",
		err.Error(),
	)
	require.True(t, err.IsMizunoError())
}

func TestProcessError_WithoutStderr(t *testing.T) {
	root := errors.New("signal: killed")
	err := &ProcessError{ExitCode: -1, Err: root}

	require.Equal(t, "hg exited (code -1): signal: killed", err.Error())
	require.ErrorIs(t, err, root)
	require.True(t, err.IsMizunoError())
}
