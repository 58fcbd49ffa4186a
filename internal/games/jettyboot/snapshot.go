package jettyboot

import "github.com/vovakirdan/jetty-boot/internal/core"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick         uint64
	Phase        Phase
	TicksInPhase int
	TicksInLevel int
	Level        int
	Lives        int
	Score        int
	Offset       float64
	LastScored   int
	BootX        float64
	BootY        float64
	BootVY       float64
	Openings     []int // Opening size per pillar
	Centers      []int // Gap center per pillar
	Paused       bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	openings := make([]int, len(g.pillars))
	centers := make([]int, len(g.pillars))
	for i, p := range g.pillars {
		openings[i] = p.Opening
		centers[i] = p.Center
	}

	return Snapshot{
		Tick:         g.tick,
		Phase:        g.phase,
		TicksInPhase: g.ticksInPhase,
		TicksInLevel: g.ticksInLevel,
		Level:        g.tracker.Level,
		Lives:        g.tracker.Lives,
		Score:        g.tracker.Score,
		Offset:       g.tracker.Offset,
		LastScored:   g.tracker.LastScored,
		BootX:        g.boot.X,
		BootY:        g.boot.Y,
		BootVY:       g.boot.VY,
		Openings:     openings,
		Centers:      centers,
		Paused:       g.paused,
	}
}

// SpriteKind identifies what a Sprite depicts.
type SpriteKind int

const (
	SpriteBoot SpriteKind = iota
	SpritePillar
)

// Sprite is the drawing contract for renderers: a world footprint plus the
// visual variant to use. Pillars also carry their solid bands.
type Sprite struct {
	Kind  SpriteKind
	Rect  core.Rect
	Pose  Pose
	Bands []Band
}

// Sprites returns the pillars followed by the boot, in draw order.
func (g *Game) Sprites() []Sprite {
	sprites := make([]Sprite, 0, len(g.pillars)+1)
	for _, p := range g.pillars {
		sprites = append(sprites, Sprite{
			Kind:  SpritePillar,
			Rect:  p.Rect(),
			Bands: p.Bands(),
		})
	}
	sprites = append(sprites, Sprite{
		Kind: SpriteBoot,
		Rect: g.boot.Rect(),
		Pose: g.boot.Pose(g.phase),
	})
	return sprites
}
