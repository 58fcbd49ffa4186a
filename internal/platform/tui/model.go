package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jetty-boot/internal/core"
	"github.com/vovakirdan/jetty-boot/internal/games/jettyboot"
)

// helpRows is the space kept below the game for the key help line.
const helpRows = 1

// Model is the Bubble Tea model driving a jettyboot.Session.
// Terminals only report key presses, never releases, so a climb key counts as
// held for holdTicks ticks after each press. Key repeat keeps it held.
type Model struct {
	session    *jettyboot.Session
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	holdTicks  int
	holdLeft   int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the session.
func NewModel(session *jettyboot.Session, cfg core.RuntimeConfig, holdTicks int) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return Model{
		session:    session,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-helpRows, 1)),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		holdTicks:  holdTicks,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
			m.holdLeft = m.holdTicks
		}
		return m, nil

	case tea.WindowSizeMsg:
		// The session keeps running; only the viewport changes.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(msg.Height-helpRows, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one session step with the input gathered since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.holdLeft > 0 {
		m.inputFrame.SetHeld(core.ActionClimb)
		m.holdLeft--
	}

	m.session.Step(m.inputFrame)
	m.inputFrame.Clear()

	if m.session.Quit() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Session returns the driven session.
func (m Model) Session() *jettyboot.Session {
	return m.session
}

// Run starts the Bubble Tea program for the session.
func Run(session *jettyboot.Session, cfg core.RuntimeConfig, holdTicks int) error {
	model := NewModel(session, cfg, holdTicks)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
