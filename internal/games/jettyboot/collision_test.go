package jettyboot

import (
	"testing"

	"github.com/vovakirdan/jetty-boot/internal/config"
)

// testPillar has its gap at world rows [260, 380).
func testPillar(x float64) Pillar {
	return newPillar(0, x, 160, 24, 320, 120, 160, 16)
}

func TestCollides(t *testing.T) {
	cfg := config.DefaultJettyConfig()

	tests := []struct {
		name    string
		bootX   float64
		bootY   float64
		pillarX float64
		want    bool
	}{
		{"far apart", 48, 320, 280, false},
		{"inside the gap", 120, 300, 128, false},
		{"clipping the top segment", 120, 240, 128, true},
		{"clipping the bottom segment", 120, 350, 128, true},
		{"boxes overlap at transparent pixels", 120, 390, 100, false},
		{"first opaque column", 120, 390, 101, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoot(cfg)
			b.X, b.Y = tt.bootX, tt.bootY
			if got := Collides(b, testPillar(tt.pillarX)); got != tt.want {
				t.Errorf("Collides() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollidesAny(t *testing.T) {
	cfg := config.DefaultJettyConfig()
	b := NewBoot(cfg)
	b.X, b.Y = 120, 240

	if CollidesAny(b, nil) {
		t.Error("no pillars should never collide")
	}
	if !CollidesAny(b, []Pillar{testPillar(400), testPillar(128)}) {
		t.Error("second pillar should collide")
	}
}

func TestBoundaries(t *testing.T) {
	cfg := config.DefaultJettyConfig()

	tests := []struct {
		name        string
		y           float64
		top, bottom bool
	}{
		{"mid band", 320, false, false},
		{"at the top line", 160, true, false},
		{"just under the top line", 160.5, false, false},
		{"half sunk into the floor", 460, false, true},
		{"just above the floor limit", 459.9, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoot(cfg)
			b.Y = tt.y
			if got := BreachesTop(b, cfg.World); got != tt.top {
				t.Errorf("BreachesTop = %v, want %v", got, tt.top)
			}
			if got := BreachesBottom(b, cfg.World, cfg.Actor); got != tt.bottom {
				t.Errorf("BreachesBottom = %v, want %v", got, tt.bottom)
			}
		})
	}
}

func TestDetect(t *testing.T) {
	cfg := config.DefaultJettyConfig()
	b := NewBoot(cfg)

	if hit := Detect(b, []Pillar{testPillar(280)}, cfg); hit.Any() {
		t.Errorf("spawn position should be clear, got %+v", hit)
	}

	b.Y = 150
	hit := Detect(b, nil, cfg)
	if !hit.Top || hit.Bottom || hit.Obstacle || !hit.Any() {
		t.Errorf("expected top breach only, got %+v", hit)
	}
}
