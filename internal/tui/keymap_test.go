package tui

import (
	"slices"
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"Next", km.Next, []string{"tab"}},
		{"Prev", km.Prev, []string{"shift+tab"}},
		{"Activate", km.Activate, []string{"enter"}},
		{"Worker", km.Worker, []string{"w"}},
		{"Main", km.Main, []string{"m"}},
		{"Click", km.Click, []string{" "}},
		{"Help", km.Help, []string{"?"}},
		{"Quit", km.Quit, []string{"q", "ctrl+c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.binding.Enabled() {
				t.Errorf("%s binding disabled", tt.name)
			}
			if got := tt.binding.Keys(); !slices.Equal(got, tt.keys) {
				t.Errorf("%s keys = %q, want %q", tt.name, got, tt.keys)
			}
			// A shortcut the number input accepts could never fire.
			for _, k := range tt.binding.Keys() {
				if rs := []rune(k); len(rs) == 1 && isInputRune(rs[0]) {
					t.Errorf("%s binding %q collides with the number input", tt.name, k)
				}
			}
		})
	}
}

func TestKeyMap_HelpListsShortcuts(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Fatal("ShortHelp is empty")
	}
	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != 8 {
		t.Errorf("FullHelp lists %d bindings, want 8", total)
	}
}
