// Package config provides YAML/TOML configuration loading, difficulty
// presets and validation for Jetty Boot.
package config

// JettyConfig contains all tuning for the game. Distances are world pixels,
// speeds are pixels per tick and durations are ticks.
type JettyConfig struct {
	World     WorldConfig    `yaml:"world" toml:"world"`
	Physics   PhysicsConfig  `yaml:"physics" toml:"physics"`
	Actor     ActorConfig    `yaml:"actor" toml:"actor"`
	Obstacles ObstacleConfig `yaml:"obstacles" toml:"obstacles"`
	Gameplay  GameplayConfig `yaml:"gameplay" toml:"gameplay"`
	Storage   StorageConfig  `yaml:"storage" toml:"storage"`
	Menu      MenuConfig     `yaml:"menu" toml:"menu"`
}

// WorldConfig defines the logical screen and the vertical play band.
type WorldConfig struct {
	Width      int `yaml:"width" toml:"width"`
	Height     int `yaml:"height" toml:"height"`
	PlayTop    int `yaml:"play_top" toml:"play_top"`
	PlayBottom int `yaml:"play_bottom" toml:"play_bottom"`
}

// PhysicsConfig defines motion parameters.
type PhysicsConfig struct {
	ScrollSpeed             float64 `yaml:"scroll_speed" toml:"scroll_speed"`
	RespawnScrollMultiplier float64 `yaml:"respawn_scroll_multiplier" toml:"respawn_scroll_multiplier"`
	Gravity                 float64 `yaml:"gravity" toml:"gravity"`
	ClimbImpulse            float64 `yaml:"climb_impulse" toml:"climb_impulse"`
	MaxFallSpeed            float64 `yaml:"max_fall_speed" toml:"max_fall_speed"`
	EntrySpeed              float64 `yaml:"entry_speed" toml:"entry_speed"`
	RespawnSpeedX           float64 `yaml:"respawn_speed_x" toml:"respawn_speed_x"`
	RespawnSpeedY           float64 `yaml:"respawn_speed_y" toml:"respawn_speed_y"`
	FlyawaySlow             float64 `yaml:"flyaway_slow" toml:"flyaway_slow"`
	FlyawayNormal           float64 `yaml:"flyaway_normal" toml:"flyaway_normal"`
	FlyawayFast             float64 `yaml:"flyaway_fast" toml:"flyaway_fast"`
}

// ActorConfig defines the boot's footprint and anchor positions.
type ActorConfig struct {
	Width  int     `yaml:"width" toml:"width"`
	Height int     `yaml:"height" toml:"height"`
	SpawnX float64 `yaml:"spawn_x" toml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y" toml:"spawn_y"`
	LaneX  float64 `yaml:"lane_x" toml:"lane_x"` // Where the entry slide stops
}

// ObstacleConfig defines pillar generation.
type ObstacleConfig struct {
	Width         int     `yaml:"width" toml:"width"`
	Spacing       int     `yaml:"spacing" toml:"spacing"`
	MinOpening    int     `yaml:"min_opening" toml:"min_opening"`
	MaxOpening    int     `yaml:"max_opening" toml:"max_opening"`
	Jitter        float64 `yaml:"jitter" toml:"jitter"` // Center jitter as a fraction of the opening
	CapHeight     int     `yaml:"cap_height" toml:"cap_height"`
	BaseOffset    float64 `yaml:"base_offset" toml:"base_offset"` // X of pillar 0
	FlyawayMargin float64 `yaml:"flyaway_margin" toml:"flyaway_margin"`
}

// GameplayConfig defines lives, timings and level length.
type GameplayConfig struct {
	Lives          int `yaml:"lives" toml:"lives"`
	EntryTicks     int `yaml:"entry_ticks" toml:"entry_ticks"`
	BannerTicks    int `yaml:"banner_ticks" toml:"banner_ticks"`
	BaseObstacles  int `yaml:"base_obstacles" toml:"base_obstacles"` // Level n has base + n pillars
	MaxNameLength  int `yaml:"max_name_length" toml:"max_name_length"`
	ClimbHoldTicks int `yaml:"climb_hold_ticks" toml:"climb_hold_ticks"`
}

// StorageConfig selects where the name and high score record lives.
type StorageConfig struct {
	Backend string `yaml:"backend" toml:"backend"` // "file" or "sqlite"
	Path    string `yaml:"path" toml:"path"`       // Empty picks the backend default
}

// MenuConfig defines the attract-mode leaderboard.
type MenuConfig struct {
	HouseScores []HouseScore `yaml:"house_scores" toml:"house_scores"`
}

// HouseScore is a fixed leaderboard row shown above the player's record.
type HouseScore struct {
	Name  string `yaml:"name" toml:"name"`
	Score int    `yaml:"score" toml:"score"`
}

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// PlayHeight returns the height of the play band.
func (c JettyConfig) PlayHeight() int {
	return c.World.PlayBottom - c.World.PlayTop
}

// Pitch returns the horizontal distance between consecutive pillars.
func (c JettyConfig) Pitch() float64 {
	return float64(c.Obstacles.Width + c.Obstacles.Spacing)
}

// FirstObstacleOffset returns the scroll offset at which the first pillar
// starts counting toward progress.
func (c JettyConfig) FirstObstacleOffset() float64 {
	return c.Obstacles.BaseOffset - float64(c.World.Width/2-c.Actor.Width)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal and the empty preset leave the loaded values untouched.
func ApplyPreset(cfg *JettyConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Obstacles.MinOpening = 100
		cfg.Obstacles.MaxOpening = 120
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Obstacles.MinOpening = 70
		cfg.Obstacles.MaxOpening = 100
	}
}
