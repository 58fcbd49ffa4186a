package jettyboot

import "github.com/vovakirdan/jetty-boot/internal/config"

// Hit records which hazards the boot touched this tick.
type Hit struct {
	Obstacle bool
	Top      bool
	Bottom   bool
}

// Any reports whether any hazard was touched.
func (h Hit) Any() bool {
	return h.Obstacle || h.Top || h.Bottom
}

// Collides reports whether an opaque boot pixel overlaps an opaque pillar pixel.
func Collides(b *Boot, p Pillar) bool {
	br := b.Rect()
	pr := p.Rect()
	if !br.Intersects(pr) {
		return false
	}
	return b.Mask().Overlaps(p.Mask(), pr.X-br.X, pr.Y-br.Y)
}

// CollidesAny reports whether the boot collides with any pillar.
func CollidesAny(b *Boot, pillars []Pillar) bool {
	for _, p := range pillars {
		if Collides(b, p) {
			return true
		}
	}
	return false
}

// BreachesTop reports whether the boot reached the top of the play band.
func BreachesTop(b *Boot, world config.WorldConfig) bool {
	return b.Y <= float64(world.PlayTop)
}

// BreachesBottom reports whether the boot sank half its height into the
// bottom of the play band.
func BreachesBottom(b *Boot, world config.WorldConfig, actor config.ActorConfig) bool {
	return b.Y >= float64(world.PlayBottom)-float64(actor.Height)/2
}

// Detect evaluates all hazards for the boot.
func Detect(b *Boot, pillars []Pillar, cfg config.JettyConfig) Hit {
	return Hit{
		Obstacle: CollidesAny(b, pillars),
		Top:      BreachesTop(b, cfg.World),
		Bottom:   BreachesBottom(b, cfg.World, cfg.Actor),
	}
}
