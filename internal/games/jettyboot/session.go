package jettyboot

import (
	"io"
	"math/rand"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jetty-boot/internal/config"
	"github.com/vovakirdan/jetty-boot/internal/core"
)

// Mode is the top-level screen the session is showing.
type Mode int

const (
	ModeNameEntry Mode = iota
	ModeMenu
	ModeGame
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNameEntry:
		return "name_entry"
	case ModeMenu:
		return "menu"
	case ModeGame:
		return "game"
	default:
		return "unknown"
	}
}

// Record is the single persisted player record.
type Record struct {
	Name      string
	HighScore int
}

// RecordStore persists the player record.
// Load returns whatever it could read alongside any error, so a malformed
// score still yields the stored name.
type RecordStore interface {
	Load() (Record, error)
	Save(Record) error
}

// MenuRow is one leaderboard line on the menu.
type MenuRow struct {
	Rank   int
	Name   string
	Score  int
	Player bool // The persisted record rather than a house row
}

// Session drives mode switching, input dispatch and persistence around a Game.
type Session struct {
	cfg    config.JettyConfig
	store  RecordStore
	logger *log.Logger

	mode   Mode
	record Record
	draft  []rune
	game   *Game
	frames uint64
	quit   bool
}

// NewSession loads the record from store and opens on the name entry screen,
// pre-filled with the stored name. A failed load is logged and play continues
// with whatever was read.
func NewSession(cfg config.JettyConfig, store RecordStore, src rand.Source, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		cfg:    cfg,
		store:  store,
		logger: logger,
		mode:   ModeNameEntry,
		game:   NewGame(cfg, src),
	}

	if store != nil {
		rec, err := store.Load()
		if err != nil {
			logger.Warn("couldn't load high score", "err", err)
		}
		s.record = rec
	}
	s.draft = []rune(truncate(s.record.Name, cfg.Gameplay.MaxNameLength))
	return s
}

// Step processes one tick of input in the current mode.
func (s *Session) Step(in core.InputFrame) {
	s.frames++
	if in.Has(core.ActionQuit) {
		s.quit = true
		return
	}

	switch s.mode {
	case ModeNameEntry:
		s.stepNameEntry(in)
	case ModeMenu:
		if in.Has(core.ActionClimb) || in.Has(core.ActionConfirm) {
			s.startGame()
		}
	case ModeGame:
		s.stepGame(in)
	}
}

func (s *Session) stepNameEntry(in core.InputFrame) {
	switch {
	case in.Has(core.ActionConfirm):
		s.record.Name = string(s.draft)
		s.save()
		s.logger.Info("player name set", "name", s.record.Name)
		s.mode = ModeMenu
		return
	case in.Has(core.ActionBackspace):
		if len(s.draft) > 0 {
			s.draft = s.draft[:len(s.draft)-1]
		}
	}

	for _, r := range in.Text {
		if len(s.draft) >= s.cfg.Gameplay.MaxNameLength {
			break
		}
		if unicode.IsPrint(r) {
			s.draft = append(s.draft, r)
		}
	}
}

func (s *Session) stepGame(in core.InputFrame) {
	if s.game.Phase() == PhaseGameOver {
		if in.Has(core.ActionClimb) || in.Has(core.ActionConfirm) {
			s.mode = ModeMenu
		}
		return
	}

	// Enter doubles as a climb key during play.
	if in.Has(core.ActionConfirm) {
		in = in.Clone()
		in.Set(core.ActionClimb)
	}

	level := s.game.State().Level
	res := s.game.Step(in)

	if res.Events.Has(EventScored) && res.State.Score > s.record.HighScore {
		s.record.HighScore = res.State.Score
		s.save()
	}
	if res.Events.Has(EventLevelCleared) {
		s.logger.Debug("level cleared", "level", level, "score", res.State.Score)
	}
	if res.Events.Has(EventGameOver) {
		s.logger.Info("game over", "level", res.State.Level, "score", res.State.Score, "high", s.record.HighScore)
	}
}

func (s *Session) startGame() {
	s.game.Reset()
	s.mode = ModeGame
	s.logger.Debug("game started", "player", s.record.Name)
}

func (s *Session) save() {
	if s.store == nil {
		return
	}
	if err := s.store.Save(s.record); err != nil {
		s.logger.Warn("couldn't save high score", "err", err)
		return
	}
	s.logger.Debug("record saved", "name", s.record.Name, "high", s.record.HighScore)
}

// Mode returns the active mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Game returns the game kernel.
func (s *Session) Game() *Game {
	return s.game
}

// Record returns the in-memory player record.
func (s *Session) Record() Record {
	return s.record
}

// Draft returns the name being typed on the name entry screen.
func (s *Session) Draft() string {
	return string(s.draft)
}

// CursorVisible reports whether the name entry cursor is in its on phase.
func (s *Session) CursorVisible() bool {
	return s.frames/30%2 == 0
}

// Quit reports whether the player asked to leave.
func (s *Session) Quit() bool {
	return s.quit
}

// MenuRows returns the leaderboard: house rows followed by the player's record.
func (s *Session) MenuRows() []MenuRow {
	rows := make([]MenuRow, 0, len(s.cfg.Menu.HouseScores)+1)
	for _, h := range s.cfg.Menu.HouseScores {
		rows = append(rows, MenuRow{Rank: len(rows) + 1, Name: h.Name, Score: h.Score})
	}
	rows = append(rows, MenuRow{
		Rank:   len(rows) + 1,
		Name:   s.record.Name,
		Score:  s.record.HighScore,
		Player: true,
	})
	return rows
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
