package metrics

import "runtime"

// RuntimeSnapshot holds a point-in-time reading of the primary process.
type RuntimeSnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	NumGoroutine int    // in-process workers show up here
}

// RuntimeCollector reads runtime statistics.
type RuntimeCollector struct{}

// NewRuntimeCollector creates a new runtime collector.
func NewRuntimeCollector() *RuntimeCollector {
	return &RuntimeCollector{}
}

// Snapshot reads current runtime statistics.
func (rc *RuntimeCollector) Snapshot() RuntimeSnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return RuntimeSnapshot{
		HeapAlloc:    m.HeapAlloc,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		NumGoroutine: runtime.NumGoroutine(),
	}
}
