package config

import (
	"errors"
	"fmt"
)

// Validate checks that the configuration can produce a playable level.
// All violations are reported together.
func (c JettyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	w := c.World
	check(w.Width > 0 && w.Height > 0, "world: size must be positive, got %dx%d", w.Width, w.Height)
	check(w.PlayTop >= 0 && w.PlayTop < w.PlayBottom && w.PlayBottom <= w.Height,
		"world: play band [%d, %d) must lie inside the screen height %d", w.PlayTop, w.PlayBottom, w.Height)

	p := c.Physics
	check(p.ScrollSpeed > 0, "physics: scroll_speed must be positive")
	check(p.RespawnScrollMultiplier > 0, "physics: respawn_scroll_multiplier must be positive")
	check(p.Gravity > 0, "physics: gravity must be positive")
	check(p.ClimbImpulse > 0, "physics: climb_impulse must be positive")
	check(p.MaxFallSpeed > 0, "physics: max_fall_speed must be positive")
	check(p.EntrySpeed > 0, "physics: entry_speed must be positive")
	check(p.RespawnSpeedX > 0 && p.RespawnSpeedY > 0, "physics: respawn speeds must be positive")
	check(p.FlyawaySlow > 0 && p.FlyawayNormal > 0 && p.FlyawayFast > 0, "physics: flyaway speeds must be positive")

	a := c.Actor
	check(a.Width > 0 && a.Height > 0, "actor: size must be positive, got %dx%d", a.Width, a.Height)
	check(a.SpawnY > float64(w.PlayTop) && a.SpawnY < float64(w.PlayBottom)-float64(a.Height)/2,
		"actor: spawn_y %.1f must lie strictly inside the play band", a.SpawnY)

	o := c.Obstacles
	check(o.Width > 0, "obstacles: width must be positive")
	check(o.Spacing >= 0, "obstacles: spacing must not be negative")
	check(o.MinOpening > 0, "obstacles: min_opening must be positive, got %d", o.MinOpening)
	check(o.MinOpening <= o.MaxOpening, "obstacles: opening range inverted: min %d > max %d", o.MinOpening, o.MaxOpening)
	check(o.Jitter >= 0, "obstacles: jitter must not be negative")
	check(o.CapHeight >= 0, "obstacles: cap_height must not be negative")
	check((0.5+o.Jitter)*float64(o.MaxOpening) <= float64(c.PlayHeight())/2,
		"obstacles: max_opening %d with jitter %.2f does not fit the play band", o.MaxOpening, o.Jitter)
	check(o.FlyawayMargin >= 0, "obstacles: flyaway_margin must not be negative")

	g := c.Gameplay
	check(g.Lives >= 1, "gameplay: lives must be at least 1, got %d", g.Lives)
	check(g.EntryTicks >= 0 && g.BannerTicks >= 0, "gameplay: tick counts must not be negative")
	check(g.BaseObstacles >= 0, "gameplay: base_obstacles must not be negative")
	check(g.MaxNameLength >= 1, "gameplay: max_name_length must be at least 1")
	check(g.ClimbHoldTicks >= 0, "gameplay: climb_hold_ticks must not be negative")

	check(c.Storage.Backend == BackendFile || c.Storage.Backend == BackendSQLite,
		"storage: unknown backend %q", c.Storage.Backend)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
}
