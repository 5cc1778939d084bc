package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle is a pipe pair: a top segment of SplitHeight, a passable gap of
// GapHeight below it, and a bottom segment down to the floor.
type Obstacle struct {
	X           float64 // Left edge, decreases every tick
	SplitHeight float64 // Height of the top segment
	GapHeight   float64 // Height of the gap below the top segment
	Width       float64
	Passed      bool // Whether the player has passed this obstacle (for scoring)
}

// Right returns the x-coordinate of the right edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// GapBottom returns the y-coordinate where the bottom segment starts.
func (o Obstacle) GapBottom() float64 {
	return o.SplitHeight + o.GapHeight
}

// Hitboxes returns the top and bottom collision rectangles, shrunk by
// hPad on each side horizontally and vPad at each end vertically.
func (o Obstacle) Hitboxes(playfieldHeight, hPad, vPad float64) (top, bottom core.RectF) {
	top = core.RectF{
		X: o.X + hPad,
		Y: vPad,
		W: o.Width - 2*hPad,
		H: o.SplitHeight - 2*vPad,
	}
	bottom = core.RectF{
		X: o.X + hPad,
		Y: o.GapBottom() + vPad,
		W: o.Width - 2*hPad,
		H: playfieldHeight - o.GapBottom() - 2*vPad,
	}
	return top, bottom
}

// ObstacleFactory creates obstacles with a randomized split height.
type ObstacleFactory struct {
	rng *rand.Rand
	cfg config.ObstacleConfig
}

// NewObstacleFactory creates a factory drawing from the given seed.
func NewObstacleFactory(seed int64, cfg config.ObstacleConfig) *ObstacleFactory {
	return &ObstacleFactory{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// SplitRange returns the half-open integer range [lo, hi) split heights are
// drawn from for a playfield of the given height.
//
// When the playfield is too small for two minimum segments plus the gap the
// range collapses to a single value: the minimum segment height, lowered if
// needed so the gap still ends on screen, and never negative.
func (f *ObstacleFactory) SplitRange(playfieldHeight float64) (lo, hi int) {
	lo = f.cfg.MinSegmentHeight
	hi = int(playfieldHeight) - f.cfg.GapHeight - f.cfg.MinSegmentHeight
	if hi > lo {
		return lo, hi
	}

	v := min(lo, int(playfieldHeight)-f.cfg.GapHeight)
	v = max(v, 0)
	return v, v + 1
}

// Create returns a new obstacle at spawnX for a playfield of the given height.
func (f *ObstacleFactory) Create(spawnX, playfieldHeight float64) Obstacle {
	lo, hi := f.SplitRange(playfieldHeight)
	return Obstacle{
		X:           spawnX,
		SplitHeight: float64(lo + f.rng.Intn(hi-lo)),
		GapHeight:   float64(f.cfg.GapHeight),
		Width:       f.cfg.Width,
	}
}
