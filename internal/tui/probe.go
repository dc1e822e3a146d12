package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// probeInterval is the period of the lag probe timer.
	probeInterval = 100 * time.Millisecond
	// lagFullScale is the lag drawn as a full sparkline block.
	lagFullScale = 500 * time.Millisecond
	lagSamples   = 40
)

// ProbeModel is the responsiveness test: a click counter the user drives by
// hand, plus two passive indicators that freeze while Update is blocked.
type ProbeModel struct {
	clicks  uint64
	spinner spinner.Model
	lag     *RingBuffer
	lastLag time.Duration
	maxLag  time.Duration
}

// NewProbeModel creates a probe with a zero counter.
func NewProbeModel() ProbeModel {
	return ProbeModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle)),
		lag:     NewRingBuffer(lagSamples),
	}
}

// Increment records one click.
func (p *ProbeModel) Increment() {
	p.clicks++
}

// Clicks returns the counter value.
func (p ProbeModel) Clicks() uint64 { return p.clicks }

// RecordLag stores one event loop lag sample.
func (p *ProbeModel) RecordLag(d time.Duration) {
	if d < 0 {
		d = 0
	}
	p.lastLag = d
	if d > p.maxLag {
		p.maxLag = d
	}
	p.lag.Push(lagPercent(d))
}

// LastLag returns the most recent lag sample.
func (p ProbeModel) LastLag() time.Duration { return p.lastLag }

// MaxLag returns the worst lag seen so far.
func (p ProbeModel) MaxLag() time.Duration { return p.maxLag }

// Update forwards spinner ticks.
func (p ProbeModel) Update(msg tea.Msg) (ProbeModel, tea.Cmd) {
	var cmd tea.Cmd
	p.spinner, cmd = p.spinner.Update(msg)
	return p, cmd
}

// View renders the probe section.
func (p ProbeModel) View(focused bool, width int) string {
	button := buttonStyle
	if focused {
		button = focusedButtonStyle
	}

	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render("UI Responsiveness Test"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Press space repeatedly to test if the UI is responsive:"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s clicks   %s",
		button.Render("Click Me!"),
		counterStyle.Render(fmt.Sprintf("%d", p.clicks)),
		p.spinner.View())
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s %s",
		metricLabelStyle.Render("Loop lag:"),
		lagSparklineStyle.Render(RenderSparkline(p.lag.Slice())),
		metricValueStyle.Render(fmt.Sprintf("%s (max %s)", formatLag(p.lastLag), formatLag(p.maxLag))))

	return panelStyle.Width(width - 2).Render(b.String())
}

// lagPercent maps a lag onto 0..100 for the sparkline.
func lagPercent(d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	if d >= lagFullScale {
		return 100
	}
	return float64(d) / float64(lagFullScale) * 100
}

func formatLag(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}
