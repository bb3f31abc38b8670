package subprocess

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"sync"

	"github.com/brennie/mizuno/internal/config"
	"github.com/brennie/mizuno/internal/errors"
	"github.com/brennie/mizuno/internal/hg"
)

// maxStderrBufferSize caps the captured stderr buffer. Stderr is drained
// until the process exits so the pipe never fills, but the buffer stops
// growing after this limit to prevent unbounded memory usage.
const maxStderrBufferSize = 1024 * 1024 // 1MB

// PipeTransport implements Transport by spawning an hg command server and
// owning its process handle exclusively. Protocol bytes flow over the child's
// stdout (reads) and stdin (writes); stderr is drained in the background for
// diagnostics only.
type PipeTransport struct {
	log     *slog.Logger
	options *config.Options

	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout io.ReadCloser
	stderr io.ReadCloser

	stderrWg  sync.WaitGroup
	stderrMu  sync.Mutex
	stderrBuf strings.Builder

	mu     sync.Mutex // protects closed
	closed bool
}

// Compile-time verification that PipeTransport implements the Transport interface.
var _ config.Transport = (*PipeTransport)(nil)

// NewPipeTransport creates a transport that will spawn the hg command server
// when started.
//
// Binary discovery is deferred to Start, which searches in the following
// order:
//  1. The explicit path in options.HgPath (if provided)
//  2. The system PATH
//  3. Common installation directories (/usr/local/bin, /usr/bin, ~/.local/bin)
func NewPipeTransport(log *slog.Logger, options *config.Options) *PipeTransport {
	return &PipeTransport{
		log:     log.With("component", "pipe_transport"),
		options: options,
	}
}

// Start spawns the hg command server subprocess.
//
// It discovers the hg binary, launches it with `serve --cmdserver pipe` and
// the plain-mode environment overrides, and wires up the stdin/stdout pipes.
// Returns HgNotFoundError if the binary cannot be located, or SpawnError if
// the process fails to start.
func (t *PipeTransport) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	discoverer := hg.NewDiscoverer(&hg.Config{
		HgPath: t.options.HgPath,
		Logger: t.log,
	})

	hgPath, err := discoverer.Discover()
	if err != nil {
		return err
	}

	t.log.Debug("Starting hg command server", "hg_path", hgPath, "dir", t.options.Dir)

	//nolint:gosec // G204: launching a user-configured binary is the point of this transport
	cmd := exec.Command(hgPath, hg.ServerArgs()...)
	cmd.Env = hg.BuildEnvironment(t.options)
	cmd.Dir = t.options.Dir

	stdin, err := cmd.StdinPipe()
	if err != nil {
		t.log.Error("Failed to create stdin pipe", "error", err)

		return &errors.SpawnError{Err: err}
	}

	t.stdin = stdin

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		t.log.Error("Failed to create stdout pipe", "error", err)

		return &errors.SpawnError{Err: err}
	}

	t.stdout = stdout

	stderr, err := cmd.StderrPipe()
	if err != nil {
		t.log.Error("Failed to create stderr pipe", "error", err)

		return &errors.SpawnError{Err: err}
	}

	t.stderr = stderr

	if err := cmd.Start(); err != nil {
		t.log.Error("Failed to start hg", "error", err)

		return &errors.SpawnError{Err: err}
	}

	t.cmd = cmd
	t.log.Info("hg command server started", "pid", cmd.Process.Pid)

	t.stderrWg.Go(t.drainStderr)

	return nil
}

// drainStderr reads the child's stderr until EOF, keeping up to
// maxStderrBufferSize bytes for error reporting. Killing the process closes
// the pipe, which unblocks the scan.
func (t *PipeTransport) drainStderr() {
	scanner := bufio.NewScanner(t.stderr)
	for scanner.Scan() {
		line := scanner.Text()
		t.log.Debug("hg stderr", "line", line)

		t.stderrMu.Lock()

		if t.stderrBuf.Len() < maxStderrBufferSize {
			if t.stderrBuf.Len() > 0 {
				t.stderrBuf.WriteString("\n")
			}

			t.stderrBuf.WriteString(line)
		}

		t.stderrMu.Unlock()
	}

	if err := scanner.Err(); err != nil {
		t.log.Debug("Stderr scanner error", "error", err)
	}
}

// Read reads protocol bytes from the server's stdout. It blocks until at
// least one byte is available, EOF, or a pipe error.
func (t *PipeTransport) Read(p []byte) (int, error) {
	if t.stdout == nil {
		return 0, errors.ErrTransportNotStarted
	}

	return t.stdout.Read(p)
}

// Write sends command bytes to the server's stdin.
func (t *PipeTransport) Write(p []byte) (int, error) {
	if t.stdin == nil {
		return 0, errors.ErrTransportNotStarted
	}

	t.mu.Lock()
	closed := t.closed
	t.mu.Unlock()

	if closed {
		return 0, errors.ErrConnectionClosed
	}

	return t.stdin.Write(p)
}

// Stderr returns the diagnostics the server has written to stderr so far.
func (t *PipeTransport) Stderr() string {
	t.stderrMu.Lock()
	defer t.stderrMu.Unlock()

	return t.stderrBuf.String()
}

// Close terminates the hg process with a best-effort kill and reaps it.
//
// There is no goodbye message in the protocol; the process is killed
// outright. Errors from an already-dead process are discarded. Close is safe
// to call multiple times.
func (t *PipeTransport) Close() error {
	t.mu.Lock()

	if t.closed {
		t.mu.Unlock()

		return nil
	}

	t.closed = true
	t.mu.Unlock()

	if t.cmd == nil || t.cmd.Process == nil {
		return nil
	}

	t.log.Debug("Killing hg process", "pid", t.cmd.Process.Pid)

	_ = t.cmd.Process.Kill()

	// Reap the child and let the stderr drain finish; the kill closed its
	// pipe, so neither blocks for long.
	_ = t.cmd.Wait()
	t.stderrWg.Wait()

	return nil
}
