package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibworker/internal/format"
)

const appTitle = "Fibonacci Calculator with Isolated Workers"

// HeaderModel renders the top bar: title, version, uptime.
type HeaderModel struct {
	startTime time.Time
	version   string
	width     int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		version:   version,
	}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header. The uptime only advances when the event loop
// is free to render, so it also stalls during a main-thread computation.
func (h HeaderModel) View() string {
	title := titleStyle.Render(appTitle)
	if h.version != "" && h.version != "dev" {
		title += versionStyle.Render(" " + h.version)
	}

	uptime := elapsedStyle.Render(fmt.Sprintf("Uptime: %s", format.FormatExecutionDuration(time.Since(h.startTime))))

	innerWidth := h.width - 2
	gap := innerWidth - lipgloss.Width(title) - lipgloss.Width(uptime)
	if gap < 1 {
		gap = 1
	}

	return headerStyle.Width(h.width).Render(title + spaces(gap) + uptime)
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
