// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// RectF is an axis-aligned box in world units, used for hitboxes.
type RectF struct {
	X, Y float64
	W, H float64
}

// Translate returns the rectangle moved by (dx, dy).
func (r RectF) Translate(dx, dy float64) RectF {
	return RectF{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// normalized flips negative extents so that W and H are never negative.
func (r RectF) normalized() RectF {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// CircleIntersectsRect reports whether the circle centered at (cx, cy) with
// the given radius touches the rectangle (rx, ry, rw, rh).
//
// The closest point of the rectangle to the circle center is found by
// clamping the center into the rectangle; the circle hits when that point is
// strictly closer than radius. A center inside the rectangle (edges included)
// always hits, so a zero-radius circle still collides by containment and a
// zero-area rectangle still collides along its line.
func CircleIntersectsRect(cx, cy, radius, rx, ry, rw, rh float64) bool {
	r := RectF{X: rx, Y: ry, W: rw, H: rh}.normalized()

	closestX := ClampF(cx, r.X, r.X+r.W)
	closestY := ClampF(cy, r.Y, r.Y+r.H)

	if closestX == cx && closestY == cy {
		return true
	}

	dx := cx - closestX
	dy := cy - closestY
	return dx*dx+dy*dy < radius*radius
}

// CircleHits is CircleIntersectsRect for a RectF.
func CircleHits(cx, cy, radius float64, r RectF) bool {
	return CircleIntersectsRect(cx, cy, radius, r.X, r.Y, r.W, r.H)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
