package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jetty-boot/internal/core"
)

func TestMapKeyToFrame(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		jet    bool
		text   string
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionClimb, true, " "},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionClimb, true, ""},
		{"e", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")}, core.ActionClimb, true, "e"},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, true, ""},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.ActionBackspace, false, ""},
		{"p", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, core.ActionPause, false, "p"},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit, false, ""},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, false, ""},
		{"plain letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, core.ActionNone, false, "a"},
	}

	keys := DefaultKeyMap()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			jet := keys.MapKeyToFrame(tt.msg, &frame)

			if jet != tt.jet {
				t.Errorf("jet = %v, want %v", jet, tt.jet)
			}
			if tt.action != core.ActionNone && !frame.Has(tt.action) {
				t.Errorf("expected %v to be set", tt.action)
			}
			if tt.action == core.ActionNone && len(frame.Actions) != 0 {
				t.Errorf("expected no actions, got %v", frame.Actions)
			}
			if string(frame.Text) != tt.text {
				t.Errorf("text = %q, want %q", string(frame.Text), tt.text)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) != 3 {
		t.Errorf("ShortHelp() has %d bindings, want 3", len(keys.ShortHelp()))
	}

	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 5 {
		t.Errorf("FullHelp() has %d bindings, want 5", total)
	}
}
