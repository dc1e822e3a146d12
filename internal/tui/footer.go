package tui

import (
	"github.com/charmbracelet/bubbles/help"
)

// FooterModel renders the key hints and the last input hint.
type FooterModel struct {
	help help.Model
	hint string
}

// NewFooterModel creates a footer with short help.
func NewFooterModel() FooterModel {
	h := help.New()
	h.Styles.ShortKey = metricValueStyle
	h.Styles.ShortDesc = metricLabelStyle
	h.Styles.FullKey = metricValueStyle
	h.Styles.FullDesc = metricLabelStyle
	return FooterModel{help: h}
}

// SetWidth updates the available width.
func (f *FooterModel) SetWidth(w int) {
	f.help.Width = w
}

// SetHint shows a one-line notice above the key hints.
func (f *FooterModel) SetHint(s string) {
	f.hint = s
}

// Hint returns the current notice.
func (f FooterModel) Hint() string { return f.hint }

// ToggleHelp switches between short and full help.
func (f *FooterModel) ToggleHelp() {
	f.help.ShowAll = !f.help.ShowAll
}

// View renders the footer for km.
func (f FooterModel) View(km KeyMap) string {
	keys := " " + f.help.View(km)
	if f.hint == "" {
		return keys
	}
	return " " + hintStyle.Render(f.hint) + "\n" + keys
}
