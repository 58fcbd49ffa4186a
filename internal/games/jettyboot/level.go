package jettyboot

import (
	"math"

	"github.com/vovakirdan/jetty-boot/internal/config"
)

// Tracker owns level, lives, score and the world scroll offset.
type Tracker struct {
	Level      int     // Current level, starting at 1
	Lives      int     // Lives remaining
	Score      int     // Pillars passed this game
	Offset     float64 // Distance the world has scrolled this level
	LastScored int     // Floored progress at the last score check

	cfg config.JettyConfig
}

// NewTracker creates a tracker for a fresh game.
func NewTracker(cfg config.JettyConfig) *Tracker {
	return &Tracker{
		Level: 1,
		Lives: cfg.Gameplay.Lives,
		cfg:   cfg,
	}
}

// ObstacleCount returns the number of pillars in the current level.
func (t *Tracker) ObstacleCount() int {
	return t.cfg.Gameplay.BaseObstacles + t.Level
}

// Scroll advances or rewinds the offset for one update of phase.
func (t *Tracker) Scroll(phase Phase, ticks int) {
	speed := t.cfg.Physics.ScrollSpeed * float64(ticks)
	switch {
	case phase.Scrolls():
		t.Offset += speed
	case phase == PhaseRespawn:
		t.Offset = math.Max(t.Offset-speed*t.cfg.Physics.RespawnScrollMultiplier, 0)
	}
}

// Progress returns how many pillars the offset has reached, as a fraction.
func (t *Tracker) Progress() float64 {
	return (t.Offset-t.cfg.FirstObstacleOffset())/t.cfg.Pitch() + 1
}

// Passed returns the floored progress, clamped to [0, ObstacleCount].
func (t *Tracker) Passed() int {
	passed := int(math.Floor(t.Progress()))
	if passed < 0 {
		return 0
	}
	if n := t.ObstacleCount(); passed > n {
		return n
	}
	return passed
}

// UpdateScore adds one point when floored progress moved past the last check.
// Calling it again without a scroll is a no-op.
func (t *Tracker) UpdateScore() bool {
	passed := t.Passed()
	scored := t.LastScored < passed
	if scored {
		t.Score++
	}
	t.LastScored = passed
	return scored
}

// LoseLife decrements lives and reports whether none are left.
func (t *Tracker) LoseLife() bool {
	if t.Lives > 0 {
		t.Lives--
	}
	return t.Lives == 0
}

// AdvanceLevel moves to the next, longer level.
func (t *Tracker) AdvanceLevel() {
	t.Level++
	t.Offset = 0
	t.LastScored = 0
}

// Unwound reports whether the offset is back at the level start.
func (t *Tracker) Unwound() bool {
	return t.Offset == 0
}
