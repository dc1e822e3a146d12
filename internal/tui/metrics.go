package tui

import (
	"fmt"
	"strings"

	"github.com/agbru/fibworker/internal/metrics"
	"github.com/agbru/fibworker/internal/sysmon"
)

const cpuSamples = 30

// MetricsModel shows system CPU load and the runtime state of this process.
type MetricsModel struct {
	cpu     *RingBuffer
	core    *RingBuffer
	mem     float64
	runtime metrics.RuntimeSnapshot
}

// NewMetricsModel creates an empty monitor line.
func NewMetricsModel() MetricsModel {
	return MetricsModel{
		cpu:  NewRingBuffer(cpuSamples),
		core: NewRingBuffer(cpuSamples),
	}
}

// UpdateSysStats appends a system sample.
func (m *MetricsModel) UpdateSysStats(s sysmon.Stats) {
	m.cpu.Push(s.CPUPercent)
	m.core.Push(s.BusiestCore)
	m.mem = s.MemPercent
}

// UpdateRuntime replaces the runtime snapshot.
func (m *MetricsModel) UpdateRuntime(s metrics.RuntimeSnapshot) {
	m.runtime = s
}

// SetWidth sizes the sparkline history to the available width.
func (m *MetricsModel) SetWidth(w int) {
	n := (w - 60) / 2
	if n < 10 {
		n = 10
	}
	m.cpu.Resize(n)
	m.core.Resize(n)
}

// View renders the monitor line.
func (m MetricsModel) View() string {
	pipe := metricLabelStyle.Render(" | ")
	parts := []string{
		fmt.Sprintf("%s %s %s",
			metricLabelStyle.Render("CPU"),
			cpuSparklineStyle.Render(RenderSparkline(m.cpu.Slice())),
			metricValueStyle.Render(fmt.Sprintf("%3.0f%%", m.cpu.Last()))),
		fmt.Sprintf("%s %s %s",
			metricLabelStyle.Render("Core"),
			coreSparklineStyle.Render(RenderSparkline(m.core.Slice())),
			metricValueStyle.Render(fmt.Sprintf("%3.0f%%", m.core.Last()))),
		fmt.Sprintf("%s %s",
			metricLabelStyle.Render("Mem"),
			metricValueStyle.Render(fmt.Sprintf("%.0f%%", m.mem))),
		fmt.Sprintf("%s %s",
			metricLabelStyle.Render("Heap"),
			metricValueStyle.Render(formatBytes(m.runtime.HeapAlloc))),
		fmt.Sprintf("%s %s",
			metricLabelStyle.Render("Goroutines"),
			metricValueStyle.Render(fmt.Sprintf("%d", m.runtime.NumGoroutine))),
	}
	return " " + strings.Join(parts, pipe)
}

func formatBytes(b uint64) string {
	switch {
	case b >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(b)/(1<<30))
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
