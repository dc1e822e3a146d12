package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibworker/internal/executor"
)

// PanelState is the life cycle of one result panel.
type PanelState int

const (
	PanelIdle PanelState = iota
	PanelCalculating
	PanelDone
	// PanelError is only reachable from the worker panel.
	PanelError
)

const (
	resultPlaceholder = "Result will appear here"
	workingText       = "Working..."
)

// PanelModel is one column: a trigger button, a result box and a status line.
type PanelModel struct {
	title    string
	subtitle string
	button   string
	accent   lipgloss.Style

	state  PanelState
	result string
	errMsg string
	width  int
}

// NewPanelModel creates an idle panel.
func NewPanelModel(title, subtitle, button string, accent lipgloss.Style) PanelModel {
	return PanelModel{
		title:    title,
		subtitle: subtitle,
		button:   button,
		accent:   accent,
		result:   resultPlaceholder,
	}
}

// Start marks a computation as in flight.
func (p *PanelModel) Start() {
	p.state = PanelCalculating
	p.result = workingText
	p.errMsg = ""
}

// Finish shows a completed computation.
func (p *PanelModel) Finish(o executor.Outcome) {
	p.state = PanelDone
	p.result = o.String()
}

// Fail shows a failure in the status line. The result box keeps its text.
func (p *PanelModel) Fail(err error) {
	p.state = PanelError
	p.errMsg = err.Error()
}

// State returns the current state.
func (p PanelModel) State() PanelState { return p.state }

// Result returns the text of the result box.
func (p PanelModel) Result() string { return p.result }

// Status returns the text of the status line.
func (p PanelModel) Status() string {
	switch p.state {
	case PanelCalculating:
		return "Calculating..."
	case PanelDone:
		return "Done!"
	case PanelError:
		return "Error: " + p.errMsg
	}
	return ""
}

// SetWidth updates the outer width.
func (p *PanelModel) SetWidth(w int) {
	p.width = w
}

// View renders the panel. focused highlights its button.
func (p PanelModel) View(focused bool) string {
	inner := p.width - 4
	if inner < 10 {
		inner = 10
	}

	button := buttonStyle
	if focused {
		button = focusedButtonStyle
	}

	var status string
	switch p.state {
	case PanelDone:
		status = statusDoneStyle.Render(p.Status())
	case PanelError:
		status = statusErrorStyle.Render(p.Status())
	default:
		status = statusStyle.Render(p.Status())
	}

	var b strings.Builder
	b.WriteString(p.accent.Render(p.title))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(p.subtitle))
	b.WriteString("\n\n")
	b.WriteString(button.Render(p.button))
	b.WriteString("\n")
	b.WriteString(resultStyle.Width(inner - 2).Render(p.result))
	b.WriteString("\n")
	b.WriteString(status)

	return panelStyle.Width(p.width - 2).Render(b.String())
}
