package game

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestObstacleFactoryRange(t *testing.T) {
	cfg := config.Default().Obstacles
	f := NewObstacleFactory(7, cfg)

	minH := float64(2*cfg.MinSegmentHeight + cfg.GapHeight)
	for h := minH; h <= 1200; h += 37 {
		for i := 0; i < 200; i++ {
			o := f.Create(500, h)
			lo := float64(cfg.MinSegmentHeight)
			hi := h - float64(cfg.GapHeight) - float64(cfg.MinSegmentHeight)
			if o.SplitHeight < lo || o.SplitHeight > hi {
				t.Fatalf("height %g: split %g outside [%g, %g]", h, o.SplitHeight, lo, hi)
			}
			if o.Passed {
				t.Fatal("new obstacle should not be passed")
			}
			if o.X != 500 {
				t.Errorf("X = %g, expected 500", o.X)
			}
		}
	}
}

func TestObstacleFactorySmallPlayfield(t *testing.T) {
	f := NewObstacleFactory(1, config.Default().Obstacles)

	tests := []struct {
		name     string
		height   float64
		expected float64
	}{
		{"exactly fits", 280, 50},
		{"gap still fits", 200, 20},
		{"gap does not fit", 100, 0},
		{"zero height", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lo, hi := f.SplitRange(tc.height)
			if lo < 0 || hi <= lo {
				t.Fatalf("SplitRange(%g) = [%d, %d), expected a non-empty non-negative range", tc.height, lo, hi)
			}
			if got := f.Create(0, tc.height).SplitHeight; got != tc.expected {
				t.Errorf("SplitHeight = %g, expected %g", got, tc.expected)
			}
		})
	}
}

func TestObstacleFactoryDeterminism(t *testing.T) {
	cfg := config.Default().Obstacles
	a := NewObstacleFactory(12345, cfg)
	b := NewObstacleFactory(12345, cfg)

	for i := 0; i < 50; i++ {
		if sa, sb := a.Create(0, 600).SplitHeight, b.Create(0, 600).SplitHeight; sa != sb {
			t.Fatalf("draw %d: %g != %g", i, sa, sb)
		}
	}
}

func TestObstacleHitboxes(t *testing.T) {
	o := Obstacle{X: 100, SplitHeight: 150, GapHeight: 180, Width: 50}

	top, bottom := o.Hitboxes(600, 10, 5)

	if want := (core.RectF{X: 110, Y: 5, W: 30, H: 140}); top != want {
		t.Errorf("top = %+v, expected %+v", top, want)
	}
	if want := (core.RectF{X: 110, Y: 335, W: 30, H: 260}); bottom != want {
		t.Errorf("bottom = %+v, expected %+v", bottom, want)
	}
	if o.Right() != 150 {
		t.Errorf("Right() = %g, expected 150", o.Right())
	}
	if o.GapBottom() != 330 {
		t.Errorf("GapBottom() = %g, expected 330", o.GapBottom())
	}
}
