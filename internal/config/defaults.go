package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// Default returns the built-in configuration.
func Default() GameConfig {
	return GameConfig{
		Loop: LoopConfig{
			TickRate:   60,
			MaxFrameMs: 250,
		},
		Physics: PhysicsConfig{
			Gravity:     0.8,
			FlapImpulse: -10,
		},
		Player: PlayerConfig{
			X:      100,
			Size:   50,
			Radius: 20,
		},
		Obstacles: ObstacleConfig{
			Width:             50,
			GapHeight:         180,
			MinSegmentHeight:  50,
			Spacing:           400,
			SpawnOffset:       50,
			HorizontalPadding: 10,
			VerticalPadding:   5,
		},
		Speed: SpeedConfig{
			Base:       2,
			Max:        6,
			Increment:  0.3,
			IntervalMs: 5000,
		},
		Session: SessionConfig{
			CountdownSeconds: 3,
			CountdownTotalMs: 4000,
			RestartLockoutMs: 500,
			HighScoreKey:     "highScore",
		},
		Viewport: ViewportConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
		Sprites: SpriteConfig{
			Player:  "●",
			Pipe:    "█",
			PipeCap: "▓",
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
