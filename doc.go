// Package mizuno is a client for the Mercurial command server.
//
// Instead of paying process-startup cost for every hg invocation, mizuno
// spawns `hg serve --cmdserver pipe` once and exchanges framed messages with
// it over its stdin/stdout pipes. A Connection performs the protocol
// handshake on construction and then dispatches any number of commands over
// the same process.
//
// # Basic Usage
//
//	ctx := context.Background()
//
//	conn, err := mizuno.Connect(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conn.Close()
//
//	seq, err := conn.RunCommand(ctx, "status", "-v")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for chunk, err := range seq {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    switch c := chunk.(type) {
//	    case mizuno.OutputChunk:
//	        os.Stdout.Write(c.Data)
//	    case mizuno.ResultChunk:
//	        fmt.Printf("exit status %d\n", c.Code)
//	    }
//	}
//
// Or use Collect to drain a whole response at once:
//
//	seq, err := conn.RunCommand(ctx, "log", "-l", "5")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	stdout, stderr, code, err := mizuno.Collect(seq)
//
// # Concurrency
//
// The protocol supports exactly one in-flight command per connection; issuing
// another RunCommand before the previous response sequence is drained leaves
// the stream in an undefined state. Connections are independent of each
// other, so parallelism is achieved by opening more connections.
//
// # Logging
//
// Logging is disabled by default. Pass a logger to observe the subprocess
// lifecycle and command dispatch:
//
//	conn, err := mizuno.Connect(ctx, mizuno.WithLogger(slog.Default()))
package mizuno
