// Package executor runs the Fibonacci computation in one of two contexts.
//
// Foreground runs it on the caller's goroutine and blocks until the entire
// call tree has finished. Background hands it to an isolated worker and owns
// the single live worker Handle: every Dispatch terminates the previous
// handle before spawning a new one, so only the most recent job can ever
// produce a result.
package executor
