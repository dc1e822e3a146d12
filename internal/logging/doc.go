// Package logging provides the logging interface used by fibworker.
// It wraps zerolog so the event loop, the executors and the worker process
// log the same structured fields.
package logging
