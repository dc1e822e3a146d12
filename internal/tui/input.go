package tui

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/fibworker/internal/errors"
	"github.com/agbru/fibworker/internal/fibonacci"
)

const inputHint = "Enter an integer, e.g. 35"

// newNumberInput builds the number field, prefilled with n.
func newNumberInput(n int64) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = strconv.FormatInt(fibonacci.DefaultN, 10)
	ti.CharLimit = 20
	ti.Width = 12
	ti.SetValue(strconv.FormatInt(n, 10))
	return ti
}

// isInputRune reports whether r may be typed into the number field.
func isInputRune(r rune) bool {
	return unicode.IsDigit(r) || r == '-'
}

// filterInputKey drops every rune the number field does not accept.
// ok is false when nothing is left to deliver.
func filterInputKey(msg tea.KeyMsg) (tea.KeyMsg, bool) {
	if msg.Type != tea.KeyRunes {
		return msg, true
	}
	kept := make([]rune, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		if isInputRune(r) {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return msg, false
	}
	msg.Runes = kept
	return msg, true
}

// parseInput reads the field the way a number input would: surrounding
// blanks are ignored, anything else must be a base-10 integer no larger than
// fibonacci.MaxDepth. Failures are apperrors.ValidationError.
func parseInput(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, apperrors.ValidationError{Field: "input", Message: inputHint}
	}
	if err := fibonacci.CheckDepth(n); err != nil {
		return 0, err
	}
	return n, nil
}

// inputProblem is the footer text for a rejected input.
func inputProblem(err error) string {
	var verr apperrors.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return inputHint
}
