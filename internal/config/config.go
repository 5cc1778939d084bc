// Package config provides YAML-based game configuration loading and
// the speed ramp rule for the game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// GameConfig contains all tunable parameters of the game. Distances are in
// world units; the renderer maps world units onto terminal cells.
type GameConfig struct {
	Loop      LoopConfig     `yaml:"loop"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Speed     SpeedConfig    `yaml:"speed"`
	Session   SessionConfig  `yaml:"session"`
	Viewport  ViewportConfig `yaml:"viewport"`
	Sprites   SpriteConfig   `yaml:"sprites"`
	Audio     AudioConfig    `yaml:"audio"`
}

// LoopConfig defines the fixed-timestep simulation cadence.
type LoopConfig struct {
	TickRate   int `yaml:"tick_rate"`    // Physics ticks per second
	MaxFrameMs int `yaml:"max_frame_ms"` // Upper bound on one frame's delta
}

// TickDuration returns the length of one physics tick.
func (l LoopConfig) TickDuration() time.Duration {
	return time.Second / time.Duration(l.TickRate)
}

// MaxFrame returns the accumulator cap.
func (l LoopConfig) MaxFrame() time.Duration {
	return time.Duration(l.MaxFrameMs) * time.Millisecond
}

// PhysicsConfig defines per-tick vertical motion.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Velocity added every tick
	FlapImpulse float64 `yaml:"flap_impulse"` // Velocity set by a flap (negative = up)
}

// PlayerConfig defines the player body.
type PlayerConfig struct {
	X      float64 `yaml:"x"`      // Fixed left edge
	Size   float64 `yaml:"size"`   // Bounding box side
	Radius float64 `yaml:"radius"` // Collision circle radius
}

// ObstacleConfig defines obstacle geometry and spawning.
type ObstacleConfig struct {
	Width             float64 `yaml:"width"`
	GapHeight         int     `yaml:"gap_height"`
	MinSegmentHeight  int     `yaml:"min_segment_height"`
	Spacing           float64 `yaml:"spacing"`      // Spawn when the last obstacle is this far left of the right edge
	SpawnOffset       float64 `yaml:"spawn_offset"` // Spawn this far right of the right edge
	HorizontalPadding float64 `yaml:"horizontal_padding"`
	VerticalPadding   float64 `yaml:"vertical_padding"`
}

// SpeedConfig defines the obstacle scroll speed ramp.
type SpeedConfig struct {
	Base       float64 `yaml:"base"`
	Max        float64 `yaml:"max"`
	Increment  float64 `yaml:"increment"`
	IntervalMs int     `yaml:"interval_ms"`
}

// Interval returns the wall-clock time between speed increases.
func (s SpeedConfig) Interval() time.Duration {
	return time.Duration(s.IntervalMs) * time.Millisecond
}

// SessionConfig defines the session state machine timings.
type SessionConfig struct {
	CountdownSeconds int    `yaml:"countdown_seconds"`
	CountdownTotalMs int    `yaml:"countdown_total_ms"`
	RestartLockoutMs int    `yaml:"restart_lockout_ms"`
	HighScoreKey     string `yaml:"high_score_key"`
}

// CountdownTotal returns how long the countdown lasts before play starts.
func (s SessionConfig) CountdownTotal() time.Duration {
	return time.Duration(s.CountdownTotalMs) * time.Millisecond
}

// RestartLockout returns how long restart input is ignored after a death.
func (s SessionConfig) RestartLockout() time.Duration {
	return time.Duration(s.RestartLockoutMs) * time.Millisecond
}

// ViewportConfig maps terminal cells to world units.
type ViewportConfig struct {
	CellWidth        float64 `yaml:"cell_width"`
	CellHeight       float64 `yaml:"cell_height"`
	RecenterOnResize bool    `yaml:"recenter_on_resize"`
}

// PlayfieldSize converts a terminal size into world dimensions.
func (v ViewportConfig) PlayfieldSize(cols, rows int) (float64, float64) {
	return float64(cols) * v.CellWidth, float64(rows) * v.CellHeight
}

// SpriteConfig holds the glyphs used to draw the game.
// An empty or unprintable glyph falls back to a flat shape.
type SpriteConfig struct {
	Player  string `yaml:"player"`
	Pipe    string `yaml:"pipe"`
	PipeCap string `yaml:"pipe_cap"`
}

// AudioConfig controls the audio cues.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 - 1.0
	SampleRate int     `yaml:"sample_rate"`
}

// Validate reports configuration values the game cannot run with.
func (c GameConfig) Validate() error {
	var errs []error

	if c.Loop.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("loop.tick_rate must be positive, got %d", c.Loop.TickRate))
	}
	if c.Loop.MaxFrameMs <= 0 {
		errs = append(errs, fmt.Errorf("loop.max_frame_ms must be positive, got %d", c.Loop.MaxFrameMs))
	}
	if c.Viewport.CellWidth <= 0 || c.Viewport.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("viewport cell size must be positive, got %gx%g",
			c.Viewport.CellWidth, c.Viewport.CellHeight))
	}
	if c.Obstacles.Width <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.width must be positive, got %g", c.Obstacles.Width))
	}
	if c.Obstacles.GapHeight <= 0 || c.Obstacles.MinSegmentHeight < 0 {
		errs = append(errs, fmt.Errorf("obstacles gap/min segment invalid: %d/%d",
			c.Obstacles.GapHeight, c.Obstacles.MinSegmentHeight))
	}
	if c.Player.Size <= 0 || c.Player.Radius < 0 {
		errs = append(errs, fmt.Errorf("player size/radius invalid: %g/%g", c.Player.Size, c.Player.Radius))
	}
	if c.Speed.Max < c.Speed.Base {
		errs = append(errs, fmt.Errorf("speed.max (%g) below speed.base (%g)", c.Speed.Max, c.Speed.Base))
	}
	if c.Speed.IntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("speed.interval_ms must be positive, got %d", c.Speed.IntervalMs))
	}
	if c.Session.HighScoreKey == "" {
		errs = append(errs, errors.New("session.high_score_key must not be empty"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Empty means "use config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset adjusts the speed ramp for a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Base = 1.5
		cfg.Speed.Max = 4.5
	case DifficultyHard:
		cfg.Speed.Base = 3
		cfg.Speed.Max = 8
		cfg.Speed.IntervalMs = 4000
	case DifficultyFixed:
		cfg.Speed.Increment = 0
	}
}
