// Package config provides YAML-based tuning configuration and difficulty
// presets for the game.
package config

// Config contains all tuning parameters for a game session.
// Distances and speeds are in play-field units (the simulation runs on a
// virtual float field, not terminal cells).
type Config struct {
	Field     FieldConfig     `yaml:"field"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Speed     SpeedConfig     `yaml:"speed"`
	Session   SessionConfig   `yaml:"session"`
}

// FieldConfig defines the virtual play-field dimensions.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines gravity and flap impulse.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`    // Downward acceleration, units/s²
	JumpForce float64 `yaml:"jump_force"` // Velocity set on flap (negative = up)
}

// PlayerConfig defines the player sprite and collision box.
// The collision box is a sub-rectangle of the sprite for fairness.
type PlayerConfig struct {
	Size                 float64 `yaml:"size"`                   // Sprite is Size×Size units
	XFraction            float64 `yaml:"x_fraction"`             // Fixed horizontal position as fraction of field width
	CollisionWidthRatio  float64 `yaml:"collision_width_ratio"`  // Box width as fraction of Size
	CollisionHeightRatio float64 `yaml:"collision_height_ratio"` // Box height as fraction of Size
	BlinkDuration        float64 `yaml:"blink_duration"`         // Eyes-closed time after a flap, seconds
}

// ObstaclesConfig defines pipe geometry and spawning.
type ObstaclesConfig struct {
	Width         float64 `yaml:"width"`          // Pipe width in field units
	GapHeight     float64 `yaml:"gap_height"`     // Passable gap height
	MaxGapDelta   float64 `yaml:"max_gap_delta"`  // Max vertical shift between consecutive gap centers
	SpawnInterval float64 `yaml:"spawn_interval"` // Initial seconds between spawns
}

// SpeedConfig defines the difficulty speed ramp.
type SpeedConfig struct {
	Base           float64 `yaml:"base"`             // Starting pipe speed, units/s
	Max            float64 `yaml:"max"`              // Speed cap
	IncreasePerSec float64 `yaml:"increase_per_sec"` // Linear ramp rate
	ScrollFactor   float64 `yaml:"scroll_factor"`    // Background scroll speed as fraction of pipe speed
}

// SessionConfig defines session-level timers.
type SessionConfig struct {
	GameOverLockout float64 `yaml:"game_over_lockout"` // Seconds restart input is ignored after a crash
}

// Normalize fixes values that would break the simulation by construction:
// the spawn-interval division requires a positive speed, and a non-positive
// field makes every position out of bounds.
func (c *Config) Normalize() {
	def := Default()
	if c.Field.Width <= 0 {
		c.Field.Width = def.Field.Width
	}
	if c.Field.Height <= 0 {
		c.Field.Height = def.Field.Height
	}
	if c.Speed.Base <= 0 {
		c.Speed.Base = def.Speed.Base
	}
	if c.Speed.Max < c.Speed.Base {
		c.Speed.Max = c.Speed.Base
	}
	if c.Speed.IncreasePerSec < 0 {
		c.Speed.IncreasePerSec = 0
	}
	if c.Obstacles.SpawnInterval <= 0 {
		c.Obstacles.SpawnInterval = def.Obstacles.SpawnInterval
	}
	if c.Obstacles.GapHeight <= 0 {
		c.Obstacles.GapHeight = def.Obstacles.GapHeight
	}
	if c.Obstacles.Width <= 0 {
		c.Obstacles.Width = def.Obstacles.Width
	}
	if c.Player.Size <= 0 {
		c.Player.Size = def.Player.Size
	}
	if c.Player.XFraction <= 0 || c.Player.XFraction >= 1 {
		c.Player.XFraction = def.Player.XFraction
	}
	if c.Player.CollisionWidthRatio <= 0 || c.Player.CollisionWidthRatio > 1 {
		c.Player.CollisionWidthRatio = def.Player.CollisionWidthRatio
	}
	if c.Player.CollisionHeightRatio <= 0 || c.Player.CollisionHeightRatio > 1 {
		c.Player.CollisionHeightRatio = def.Player.CollisionHeightRatio
	}
	if c.Session.GameOverLockout < 0 {
		c.Session.GameOverLockout = 0
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset adjusts the speed ramp for a difficulty preset.
// The "fixed" preset disables progression entirely; the others scale the
// starting speed and ramp rate.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.IncreasePerSec *= 0.5
		cfg.Obstacles.GapHeight *= 1.15
	case DifficultyHard:
		cfg.Speed.Base *= 1.25
		cfg.Speed.IncreasePerSec *= 1.5
		cfg.Obstacles.GapHeight *= 0.9
	case DifficultyFixed:
		cfg.Speed.IncreasePerSec = 0
	}
}
