package jettyboot

import (
	"math"

	"github.com/vovakirdan/jetty-boot/internal/config"
	"github.com/vovakirdan/jetty-boot/internal/core"
)

// Pose selects which boot image a renderer should draw.
type Pose int

const (
	PoseBase  Pose = iota // Falling or resting
	PoseClimb             // Jet firing
)

// bootPattern is the boot silhouette. It is scaled to the configured actor
// size to build the collision mask.
var bootPattern = []string{
	"..#####...",
	"..#####...",
	"..#####...",
	"..#####...",
	"..#####...",
	"..######..",
	"..########",
	".#########",
	".#########",
	"..#.#.#.#.",
}

// Boot is the player-controlled actor. Horizontal speed is never stored:
// each phase derives it from the physics config.
type Boot struct {
	X, Y float64 // Top-left corner in world pixels
	VY   float64 // Vertical velocity, negative is up

	phys    config.PhysicsConfig
	actor   config.ActorConfig
	ceiling float64 // Flyaway stops here
	mask    *core.Mask
}

// NewBoot creates a boot at its spawn position.
func NewBoot(cfg config.JettyConfig) *Boot {
	return &Boot{
		X:       cfg.Actor.SpawnX,
		Y:       cfg.Actor.SpawnY,
		phys:    cfg.Physics,
		actor:   cfg.Actor,
		ceiling: float64(cfg.World.PlayTop),
		mask:    core.MaskFromPattern(bootPattern, cfg.Actor.Width, cfg.Actor.Height),
	}
}

// Update advances the boot by ticks using the motion rule of phase.
func (b *Boot) Update(phase Phase, ticks int) {
	dt := float64(ticks)

	switch phase {
	case PhaseInit:
		b.X = math.Min(b.X+b.phys.EntrySpeed*dt, b.actor.LaneX)

	case PhaseNormal:
		b.Y += b.VY * dt
		b.VY = math.Min(b.VY+b.phys.Gravity*dt, b.phys.MaxFallSpeed)

	case PhaseRespawn:
		b.X = core.Approach(b.X, b.actor.SpawnX, b.phys.RespawnSpeedX*dt)
		b.Y = core.Approach(b.Y, b.actor.SpawnY, b.phys.RespawnSpeedY*dt)

	case PhaseFlyaway:
		b.X += b.phys.ScrollSpeed * dt
		b.Y = math.Max(b.Y-b.flyawaySpeed()*dt, b.ceiling)

	case PhaseGameOver:
		// frozen
	}
}

// flyawaySpeed picks the climb rate that keeps the boot on a 45 degree exit
// line: height above the ceiling is compared against horizontal progress.
func (b *Boot) flyawaySpeed() float64 {
	height := b.Y - b.ceiling
	switch {
	case height == b.X:
		return b.phys.FlyawayNormal
	case height < b.X:
		return b.phys.FlyawayFast
	default:
		return b.phys.FlyawaySlow
	}
}

// Climb applies the upward impulse. It is honored only in PhaseNormal.
func (b *Boot) Climb(phase Phase) bool {
	if phase != PhaseNormal {
		return false
	}
	b.VY = -b.phys.ClimbImpulse
	return true
}

// Stop zeroes the vertical velocity.
func (b *Boot) Stop() {
	b.VY = 0
}

// AtSpawn reports whether the boot is back at its spawn height.
func (b *Boot) AtSpawn() bool {
	return b.Y == b.actor.SpawnY
}

// Pose returns the image variant for phase. The jet fires while rising and
// throughout the flyaway.
func (b *Boot) Pose(phase Phase) Pose {
	if b.VY < 0 || phase == PhaseFlyaway {
		return PoseClimb
	}
	return PoseBase
}

// Rect returns the boot's world footprint.
func (b *Boot) Rect() core.Rect {
	return core.RectAt(b.X, b.Y, b.actor.Width, b.actor.Height)
}

// Mask returns the boot's opacity mask, local to Rect().
func (b *Boot) Mask() *core.Mask {
	return b.mask
}
