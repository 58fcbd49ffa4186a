package jettyboot

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/jetty-boot/internal/core"
)

// Visual characters for rendering
const (
	BootChar       = '█'
	JetChar        = '▒'
	PillarChar     = '█'
	PillarCapChar  = '▓'
	BandLineChar   = '─'
	LifeChar       = '♦'
	NameCursorChar = '_'
)

// viewport maps world pixels onto a column-centered block of screen cells.
// Terminal cells are about twice as tall as wide, so the viewport is as many
// columns wide as the screen is rows tall.
type viewport struct {
	left, width, height int
	worldW, worldH      int
}

func newViewport(dst *core.Screen, worldW, worldH int) viewport {
	w := core.Clamp(dst.Height(), 1, dst.Width())
	return viewport{
		left:   (dst.Width() - w) / 2,
		width:  w,
		height: dst.Height(),
		worldW: worldW,
		worldH: worldH,
	}
}

func (v viewport) col(x int) int {
	return v.left + floorDiv(x*v.width, v.worldW)
}

func (v viewport) row(y int) int {
	return floorDiv(y*v.height, v.worldH)
}

// project converts a world rect into the cells it covers, clipped to the
// viewport. Any non-empty rect covers at least one cell.
func (v viewport) project(r core.Rect) core.Rect {
	if r.Empty() {
		return core.Rect{}
	}
	x0, y0 := v.col(r.X), v.row(r.Y)
	x1 := core.Max(v.col(r.Right()-1)+1, x0+1)
	y1 := core.Max(v.row(r.Bottom()-1)+1, y0+1)

	x0 = core.Clamp(x0, v.left, v.left+v.width)
	x1 = core.Clamp(x1, v.left, v.left+v.width)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Render draws the active mode to dst.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	v := newViewport(dst, s.cfg.World.Width, s.cfg.World.Height)

	switch s.mode {
	case ModeNameEntry:
		s.renderNameEntry(dst, v)
	case ModeMenu:
		s.renderMenu(dst, v)
	case ModeGame:
		s.renderGame(dst, v)
	}
}

func (s *Session) renderTitle(dst *core.Screen, v viewport) {
	dst.DrawTextCentered(v.left, v.width, v.row(48), "JETTY BOOT", core.ColorWhite)
}

func (s *Session) renderNameEntry(dst *core.Screen, v viewport) {
	s.renderTitle(dst, v)
	dst.DrawTextCentered(v.left, v.width, v.row(140), "Choose a name:", core.ColorGreen)
	dst.DrawTextCentered(v.left, v.width, v.row(140)+1, s.bracketedDraft(), core.ColorWhite)
}

// bracketedDraft renders the draft padded to the name length, with a
// blinking cursor while there is room to type.
func (s *Session) bracketedDraft() string {
	limit := s.cfg.Gameplay.MaxNameLength
	text := string(s.draft)
	if len(s.draft) < limit {
		if s.CursorVisible() {
			text += string(NameCursorChar)
		} else {
			text += " "
		}
	}
	pad := limit - len([]rune(text))
	if pad < 0 {
		pad = 0
	}
	return "[" + text + strings.Repeat(string(NameCursorChar), pad) + "]"
}

func (s *Session) renderMenu(dst *core.Screen, v viewport) {
	s.renderTitle(dst, v)
	dst.DrawTextCentered(v.left, v.width, v.row(140), "High Scores", core.ColorGreen)

	nameCol := v.col(56)
	scoreCol := v.col(220)
	top := v.row(170)
	for i, r := range s.MenuRows() {
		c := core.ColorGreen
		if r.Player {
			c = core.ColorWhite
		}
		y := top + i
		dst.DrawTextColor(v.col(32), y, fmt.Sprintf("%d.", r.Rank), c)
		dst.DrawTextColor(nameCol, y, r.Name, c)
		dst.DrawTextColor(scoreCol, y, fmt.Sprintf("%d", r.Score), c)
	}

	dst.DrawTextCentered(v.left, v.width, v.row(460), "INSERT 5 CREDITS", core.ColorGreen)
}

func (s *Session) renderGame(dst *core.Screen, v viewport) {
	g := s.game
	world := s.cfg.World

	dst.DrawHLine(v.left, v.row(world.PlayTop), v.width, BandLineChar, core.ColorGray)
	dst.DrawHLine(v.left, v.row(world.PlayBottom), v.width, BandLineChar, core.ColorGray)

	for _, sp := range g.Sprites() {
		switch sp.Kind {
		case SpritePillar:
			for _, b := range sp.Bands {
				if b.Cap {
					dst.DrawRect(v.project(b.Rect), PillarCapChar, core.ColorBrightGreen)
				} else {
					dst.DrawRect(v.project(b.Rect), PillarChar, core.ColorGreen)
				}
			}
		case SpriteBoot:
			cells := v.project(sp.Rect)
			dst.DrawRect(cells, BootChar, core.ColorWhite)
			if sp.Pose == PoseClimb && !cells.Empty() {
				dst.DrawHLine(cells.X, cells.Bottom()-1, cells.W, JetChar, core.ColorOrange)
			}
		}
	}

	s.renderHUD(dst, v)
}

func (s *Session) renderHUD(dst *core.Screen, v viewport) {
	g := s.game
	state := g.State()

	dst.DrawTextCentered(v.left, v.width, v.row(76), "HIGH SCORE", core.ColorGreen)
	dst.DrawTextCentered(v.left, v.width, v.row(96), fmt.Sprintf("%d", s.record.HighScore), core.ColorGreen)
	dst.DrawTextCentered(v.left, v.width, v.row(116), s.record.Name, core.ColorGreen)
	dst.DrawTextCentered(v.left, v.width, v.row(136), fmt.Sprintf("%d", state.Score), core.ColorWhite)
	dst.DrawTextColor(v.col(240), v.row(136), fmt.Sprintf("LVL %d", state.Level), core.ColorGreen)

	lives := v.row(140)
	for i := 0; i < state.Lives; i++ {
		dst.SetColor(v.col(4)+i, lives, LifeChar, core.ColorOrange)
	}

	mid := v.row(s.cfg.World.Height/2 - 24)
	switch {
	case g.Phase() == PhaseGameOver:
		dst.DrawTextCentered(v.left, v.width, mid, "GAME OVER", core.ColorOrange)
	case g.ShowBanner():
		dst.DrawTextCentered(v.left, v.width, mid, fmt.Sprintf("LEVEL %d", state.Level), core.ColorWhite)
	}
	if state.Paused {
		dst.DrawTextCentered(v.left, v.width, v.row(s.cfg.World.PlayBottom)+1, "PAUSED", core.ColorWhite)
	}
}
