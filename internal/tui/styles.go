package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibworker/internal/ui"
)

// Style variables for the page.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle         lipgloss.Style
	headerStyle        lipgloss.Style
	titleStyle         lipgloss.Style
	versionStyle       lipgloss.Style
	elapsedStyle       lipgloss.Style
	introStyle         lipgloss.Style
	labelStyle         lipgloss.Style
	inputStyle         lipgloss.Style
	focusedInputStyle  lipgloss.Style
	workerTitleStyle   lipgloss.Style
	mainTitleStyle     lipgloss.Style
	sectionTitleStyle  lipgloss.Style
	subtitleStyle      lipgloss.Style
	buttonStyle        lipgloss.Style
	focusedButtonStyle lipgloss.Style
	resultStyle        lipgloss.Style
	statusStyle        lipgloss.Style
	statusDoneStyle    lipgloss.Style
	statusErrorStyle   lipgloss.Style
	counterStyle       lipgloss.Style
	spinnerStyle       lipgloss.Style
	metricLabelStyle   lipgloss.Style
	metricValueStyle   lipgloss.Style
	lagSparklineStyle  lipgloss.Style
	cpuSparklineStyle  lipgloss.Style
	coreSparklineStyle lipgloss.Style
	hintStyle          lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Focus)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	elapsedStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	introStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	inputStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	focusedInputStyle = inputStyle.
		BorderForeground(t.Focus)

	workerTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Worker)

	mainTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Main)

	sectionTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Text)

	subtitleStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	buttonStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 2)

	focusedButtonStyle = buttonStyle.
		Bold(true).
		Foreground(t.Focus).
		BorderForeground(t.Focus)

	resultStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(t.Dim).
		PaddingLeft(1).
		Height(2)

	statusStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(t.Dim)

	statusDoneStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(t.Success)

	statusErrorStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(t.Error)

	counterStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Focus)

	spinnerStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	metricLabelStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	metricValueStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	lagSparklineStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	cpuSparklineStyle = lipgloss.NewStyle().
		Foreground(t.Worker)

	coreSparklineStyle = lipgloss.NewStyle().
		Foreground(t.Main)

	hintStyle = lipgloss.NewStyle().
		Foreground(t.Warning)
}
