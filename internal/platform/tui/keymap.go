package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jetty-boot/internal/core"
)

// KeyMap defines the key bindings for the game.
// Printable keys are also forwarded as typed text, so the name entry screen
// accepts every letter even when it is bound to an action.
type KeyMap struct {
	Climb     key.Binding
	Confirm   key.Binding
	Backspace key.Binding
	Pause     key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Climb, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Climb, k.Confirm, k.Backspace},
		{k.Pause, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Climb: key.NewBinding(
			key.WithKeys(" ", "up", "e"),
			key.WithHelp("space/up/e", "climb"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// MapKeyToFrame adds the actions and text for a key message to frame.
// Returns true if the key drives the jet; enter counts, as it climbs in play.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	jet := false
	switch {
	case key.Matches(msg, k.Quit):
		frame.Set(core.ActionQuit)
		return false
	case key.Matches(msg, k.Confirm):
		frame.Set(core.ActionConfirm)
		jet = true
	case key.Matches(msg, k.Backspace):
		frame.Set(core.ActionBackspace)
	case key.Matches(msg, k.Pause):
		frame.Set(core.ActionPause)
	case key.Matches(msg, k.Climb):
		frame.Set(core.ActionClimb)
		jet = true
	}

	switch msg.Type {
	case tea.KeyRunes:
		frame.Type(msg.Runes...)
	case tea.KeySpace:
		frame.Type(' ')
	}
	return jet
}
