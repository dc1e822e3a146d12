// Package worker implements the isolated execution context.
//
// A worker is a message loop (Serve) that receives protocol.Request values,
// runs fibonacci.Recursive and answers with one protocol.Response each. It
// shares no memory with its parent: every message is JSON-encoded across a
// pipe. Two Spawners are provided:
//
//   - ProcessSpawner re-executes the current binary with the hidden Command
//     argument. Terminate kills the process.
//   - InProcessSpawner runs Serve on a goroutine behind io.Pipe. Terminate
//     closes the pipes; the computation itself cannot be interrupted, but its
//     result is never delivered.
package worker
