package tui

import (
	"time"

	"github.com/agbru/fibworker/internal/executor"
	"github.com/agbru/fibworker/internal/metrics"
	"github.com/agbru/fibworker/internal/sysmon"
)

// foregroundStartMsg arrives once the deferral has elapsed; handling it runs
// the computation inside Update.
type foregroundStartMsg struct {
	n int64
}

// backgroundResultMsg carries the end of one background job.
type backgroundResultMsg struct {
	jobID   uint64
	outcome executor.Outcome
	err     error
}

// probeTickMsg carries the time its timer fired. The gap between that and
// the moment Update sees it is the event loop lag.
type probeTickMsg time.Time

// sysTickMsg schedules the next system sample.
type sysTickMsg time.Time

// SysStatsMsg carries a system-wide CPU and memory sample.
type SysStatsMsg struct {
	sysmon.Stats
}

// MemStatsMsg carries a runtime snapshot of this process.
type MemStatsMsg struct {
	metrics.RuntimeSnapshot
}
