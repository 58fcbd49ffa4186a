package jettyboot

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/jetty-boot/internal/config"
	"github.com/vovakirdan/jetty-boot/internal/core"
)

// Pillar is a vertical obstacle spanning the play band with a single opening.
// Its shape is fixed at generation; only X changes while the world scrolls.
type Pillar struct {
	Index    int     // Slot in the level sequence
	DefaultX float64 // X at scroll offset zero
	X        float64 // Current horizontal position (left edge)
	Y        int     // Top of the pillar, equal to the top of the play band
	Width    int
	Height   int
	Opening  int // Height of the passable gap
	Center   int // Gap center, relative to Y
	CapH     int // Height of the cap bands next to the gap

	mask *core.Mask
}

// GapTop returns the first open row, relative to Y.
func (p Pillar) GapTop() int {
	return p.Center - p.Opening/2
}

// GapBottom returns the first solid row below the gap, relative to Y.
func (p Pillar) GapBottom() int {
	return p.GapTop() + p.Opening
}

// TopSegment returns the solid block above the gap in local coordinates.
func (p Pillar) TopSegment() core.Rect {
	return core.NewRect(0, 0, p.Width, p.GapTop())
}

// BottomSegment returns the solid block below the gap in local coordinates.
func (p Pillar) BottomSegment() core.Rect {
	return core.NewRect(0, p.GapBottom(), p.Width, p.Height-p.GapBottom())
}

// Rect returns the pillar's world footprint.
func (p Pillar) Rect() core.Rect {
	return core.RectAt(p.X, float64(p.Y), p.Width, p.Height)
}

// Mask returns the pillar's opacity mask, local to Rect().
func (p Pillar) Mask() *core.Mask {
	return p.mask
}

// Band is one solid piece of a pillar in world coordinates, for renderers.
type Band struct {
	Rect core.Rect
	Cap  bool
}

// Bands returns the pillar's solid pieces: the two segments, each split into
// its base block and the cap band bordering the gap.
func (p Pillar) Bands() []Band {
	origin := p.Rect()
	top := p.TopSegment()
	bottom := p.BottomSegment()

	topCapH := core.Min(p.CapH, top.H)
	bottomCapH := core.Min(p.CapH, bottom.H)

	local := []Band{
		{Rect: core.NewRect(0, 0, p.Width, top.H-topCapH)},
		{Rect: core.NewRect(0, top.H-topCapH, p.Width, topCapH), Cap: true},
		{Rect: core.NewRect(0, bottom.Y, p.Width, bottomCapH), Cap: true},
		{Rect: core.NewRect(0, bottom.Y+bottomCapH, p.Width, bottom.H-bottomCapH)},
	}

	bands := make([]Band, 0, len(local))
	for _, b := range local {
		if b.Rect.Empty() {
			continue
		}
		b.Rect.X += origin.X
		b.Rect.Y += origin.Y
		bands = append(bands, b)
	}
	return bands
}

// Scroll positions the pillar for the given world scroll offset.
func (p *Pillar) Scroll(offset float64) {
	p.X = p.DefaultX - offset
}

// Generator produces pillars with randomized openings.
// It is deterministic for a given random source.
type Generator struct {
	cfg        config.ObstacleConfig
	playTop    int
	playHeight int
	rng        *rand.Rand
}

// NewGenerator creates a generator drawing from src.
// A nil src seeds from the clock.
func NewGenerator(cfg config.JettyConfig, src rand.Source) *Generator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Generator{
		cfg:        cfg.Obstacles,
		playTop:    cfg.World.PlayTop,
		playHeight: cfg.PlayHeight(),
		rng:        rand.New(src),
	}
}

// Generate creates the pillar for slot index.
func (g *Generator) Generate(index int) Pillar {
	opening := g.cfg.MinOpening + g.rng.Intn(g.cfg.MaxOpening-g.cfg.MinOpening+1)

	jitter := int(float64(opening) * g.cfg.Jitter)
	center := g.playHeight/2 - jitter + g.rng.Intn(2*jitter+1)

	defaultX := g.cfg.BaseOffset + float64(index*(g.cfg.Width+g.cfg.Spacing))
	return newPillar(index, defaultX, g.playTop, g.cfg.Width, g.playHeight, opening, center, g.cfg.CapHeight)
}

func newPillar(index int, defaultX float64, y, width, height, opening, center, capH int) Pillar {
	p := Pillar{
		Index:    index,
		DefaultX: defaultX,
		X:        defaultX,
		Y:        y,
		Width:    width,
		Height:   height,
		Opening:  opening,
		Center:   center,
		CapH:     capH,
	}

	p.mask = core.NewMask(p.Width, p.Height)
	p.mask.Fill(p.TopSegment())
	p.mask.Fill(p.BottomSegment())
	return p
}

// GenerateLevel creates count pillars for slots 0..count-1.
func (g *Generator) GenerateLevel(count int) []Pillar {
	pillars := make([]Pillar, 0, count)
	for i := 0; i < count; i++ {
		pillars = append(pillars, g.Generate(i))
	}
	return pillars
}
