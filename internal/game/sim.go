// Package game implements the flappy simulation: obstacle generation,
// physics, collisions, scoring, the session state machine and the
// fixed-timestep loop that drives them. Nothing in here draws to a
// terminal; hosts consume read-only snapshots.
package game

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Player is the falling body. X is fixed; Y is the top of its bounding box.
type Player struct {
	X      float64
	Y      float64
	Vel    float64 // Vertical velocity, positive = down
	Size   float64 // Bounding box side
	Radius float64 // Collision circle radius
}

// Center returns the center of the collision circle.
func (p Player) Center() (float64, float64) {
	return p.X + p.Size/2, p.Y + p.Size/2
}

// Sim owns the player, the obstacle sequence, the score and the current
// speed. It has no notion of modes; the session decides when to tick it.
type Sim struct {
	cfg     config.GameConfig
	clock   core.Clock
	factory *ObstacleFactory
	ramp    config.SpeedRamp
	high    *HighScore

	player      Player
	obstacles   []Obstacle
	score       int
	speed       float64
	lastSpeedUp time.Time

	width, height float64
	ticks         int
}

// NewSim creates a simulation. Call Reset before the first Tick.
func NewSim(cfg config.GameConfig, clock core.Clock, seed int64, high *HighScore) *Sim {
	if clock == nil {
		clock = core.SystemClock{}
	}
	if high == nil {
		high = LoadHighScore(nil, cfg.Session.HighScoreKey, nil)
	}
	return &Sim{
		cfg:     cfg,
		clock:   clock,
		factory: NewObstacleFactory(seed, cfg.Obstacles),
		ramp:    config.NewSpeedRamp(cfg.Speed),
		high:    high,
		speed:   cfg.Speed.Base,
		player: Player{
			X:      cfg.Player.X,
			Size:   cfg.Player.Size,
			Radius: cfg.Player.Radius,
		},
	}
}

// Reset starts a new game on a playfield of the given size: player at
// vertical center and at rest, a single fresh obstacle, score 0, base
// speed and a restarted speed ramp.
func (s *Sim) Reset(width, height float64) {
	s.width, s.height = width, height

	s.player.Y = height / 2
	s.player.Vel = 0

	s.obstacles = s.obstacles[:0]
	s.obstacles = append(s.obstacles, s.factory.Create(width+s.cfg.Obstacles.SpawnOffset, height))

	s.score = 0
	s.speed = s.ramp.Base()
	s.lastSpeedUp = s.clock.Now()
	s.ticks = 0
}

// Flap sets the player's velocity to the flap impulse. Whether flapping is
// allowed is decided by the caller.
func (s *Sim) Flap() {
	s.player.Vel = s.cfg.Physics.FlapImpulse
}

// Tick advances the world by one physics step and reports whether the
// player hit the floor or an obstacle. The step always runs to completion
// so score and spawns stay consistent on the tick that ends the game.
func (s *Sim) Tick() (collided bool) {
	s.ticks++

	// Gravity
	s.player.Vel += s.cfg.Physics.Gravity
	s.player.Y += s.player.Vel

	// Ceiling and floor
	if s.player.Y < 0 {
		s.player.Y = 0
	}
	if s.player.Y+s.player.Size > s.height {
		s.player.Y = max(s.height-s.player.Size, 0)
		collided = true
	}

	// Speed ramp
	now := s.clock.Now()
	if s.ramp.Due(s.lastSpeedUp, now) && s.speed < s.ramp.Max() {
		s.speed = s.ramp.Next(s.speed)
		s.lastSpeedUp = now
	}

	// Move, collide and score
	cx, cy := s.player.Center()
	pad := s.cfg.Obstacles
	for i := range s.obstacles {
		o := &s.obstacles[i]
		o.X -= s.speed

		top, bottom := o.Hitboxes(s.height, pad.HorizontalPadding, pad.VerticalPadding)
		if core.CircleHits(cx, cy, s.player.Radius, top) || core.CircleHits(cx, cy, s.player.Radius, bottom) {
			collided = true
		}

		if !o.Passed && o.Right() < s.player.X {
			o.Passed = true
			s.score++
		}
	}

	// Despawn
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.Right() > 0 {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept

	// Spawn
	if len(s.obstacles) == 0 || s.obstacles[len(s.obstacles)-1].X < s.width-pad.Spacing {
		s.obstacles = append(s.obstacles, s.factory.Create(s.width+pad.SpawnOffset, s.height))
	}

	s.high.Offer(s.score)
	return collided
}

// Resize updates the playfield geometry without touching the world. The
// player is only clamped back inside the new bounds unless recenter is set.
func (s *Sim) Resize(width, height float64, recenter bool) {
	s.width, s.height = width, height
	if recenter {
		s.player.Y = height / 2
		return
	}
	s.player.Y = core.ClampF(s.player.Y, 0, max(height-s.player.Size, 0))
}

// Player returns a copy of the player body.
func (s *Sim) Player() Player {
	return s.player
}

// Obstacles returns a copy of the active obstacle sequence.
func (s *Sim) Obstacles() []Obstacle {
	out := make([]Obstacle, len(s.obstacles))
	copy(out, s.obstacles)
	return out
}

// Score returns the current score.
func (s *Sim) Score() int {
	return s.score
}

// HighScore returns the best score seen so far, including the current game.
func (s *Sim) HighScore() int {
	return s.high.Value()
}

// Speed returns the current obstacle scroll speed.
func (s *Sim) Speed() float64 {
	return s.speed
}

// Size returns the playfield size in world units.
func (s *Sim) Size() (width, height float64) {
	return s.width, s.height
}

// Ticks returns the number of physics steps since the last reset.
func (s *Sim) Ticks() int {
	return s.ticks
}
