// Package jettyboot implements the Jetty Boot game kernel.
// The player keeps a rocket boot airborne with short upward bursts and
// threads it through the openings of scrolling pillars. Clearing every pillar
// of a level sends the boot off the top of the screen into the next level.
package jettyboot

import (
	"math/rand"

	"github.com/vovakirdan/jetty-boot/internal/config"
	"github.com/vovakirdan/jetty-boot/internal/core"
)

// StepResult is the outcome of one tick.
type StepResult struct {
	State  core.GameState
	Events Event
}

// Game owns the boot, the pillars of the current level and all counters.
// It is not safe for concurrent use; one goroutine drives Step.
type Game struct {
	cfg   config.JettyConfig
	rules Rules
	gen   *Generator

	boot    *Boot
	pillars []Pillar
	tracker *Tracker

	phase        Phase
	ticksInPhase int
	ticksInLevel int
	tick         uint64
	paused       bool
}

// NewGame creates a game whose pillar shapes are drawn from src.
func NewGame(cfg config.JettyConfig, src rand.Source) *Game {
	g := &Game{
		cfg: cfg,
		rules: Rules{
			EntryTicks:    cfg.Gameplay.EntryTicks,
			FlyawayMargin: cfg.Obstacles.FlyawayMargin,
		},
		gen: NewGenerator(cfg, src),
	}
	g.Reset()
	return g
}

// Reset starts a new game at level 1 with full lives.
// The random source keeps advancing, so consecutive games differ.
func (g *Game) Reset() {
	g.tracker = NewTracker(g.cfg)
	g.phase = PhaseInit
	g.ticksInPhase = 0
	g.ticksInLevel = 0
	g.tick = 0
	g.paused = false
	g.regenerate()
}

// regenerate replaces the boot and the whole pillar sequence.
func (g *Game) regenerate() {
	g.boot = NewBoot(g.cfg)
	g.pillars = g.gen.GenerateLevel(g.tracker.ObstacleCount())
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) StepResult {
	if in.Has(core.ActionPause) && g.phase != PhaseGameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return StepResult{State: g.State()}
	}

	if in.Has(core.ActionClimb) || in.IsHeld(core.ActionClimb) {
		g.boot.Climb(g.phase)
	}

	g.tracker.Scroll(g.phase, 1)
	g.boot.Update(g.phase, 1)
	for i := range g.pillars {
		g.pillars[i].Scroll(g.tracker.Offset)
	}

	hit := false
	if g.phase.ChecksHazards() {
		hit = Detect(g.boot, g.pillars, g.cfg).Any()
	}

	var events Event
	if !hit && g.tracker.UpdateScore() {
		events |= EventScored
	}

	next, ev := Transition(g.phase, Observation{
		Hit:           hit,
		Lives:         g.tracker.Lives,
		TicksInPhase:  g.ticksInPhase,
		Progress:      g.tracker.Progress(),
		ObstacleCount: g.tracker.ObstacleCount(),
		OffsetUnwound: g.tracker.Unwound(),
		ActorHome:     g.boot.AtSpawn(),
	}, g.rules)
	events |= ev

	if ev.Has(EventLifeLost) {
		g.tracker.LoseLife()
		g.boot.Stop()
	}

	g.tick++
	g.ticksInLevel++
	if ev.Has(EventLevelCleared) {
		g.tracker.AdvanceLevel()
		g.regenerate()
		g.ticksInLevel = 0
	}

	if next != g.phase {
		g.phase = next
		g.ticksInPhase = 0
	} else {
		g.ticksInPhase++
	}

	return StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.tracker.Score,
		Level:    g.tracker.Level,
		Lives:    g.tracker.Lives,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Phase returns the active phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Boot returns the active boot.
func (g *Game) Boot() *Boot {
	return g.boot
}

// Pillars returns the pillars of the current level.
func (g *Game) Pillars() []Pillar {
	return g.pillars
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.JettyConfig {
	return g.cfg
}

// ShowBanner reports whether the "LEVEL n" banner is visible.
func (g *Game) ShowBanner() bool {
	return g.phase == PhaseInit && g.ticksInLevel <= g.cfg.Gameplay.BannerTicks
}
