package config

import (
	"math"
	"time"
)

// SpeedRamp decides when and how much the obstacle speed increases.
// The ramp is gated on wall-clock time, not on tick count, so it behaves
// the same at any frame rate.
type SpeedRamp struct {
	cfg SpeedConfig
}

// NewSpeedRamp creates a ramp for the given speed settings.
func NewSpeedRamp(cfg SpeedConfig) SpeedRamp {
	return SpeedRamp{cfg: cfg}
}

// Base returns the speed a new game starts with.
func (r SpeedRamp) Base() float64 {
	return r.cfg.Base
}

// Max returns the speed cap.
func (r SpeedRamp) Max() float64 {
	return r.cfg.Max
}

// Due reports whether a full interval has elapsed since the last increase.
func (r SpeedRamp) Due(last, now time.Time) bool {
	return now.Sub(last) >= r.cfg.Interval()
}

// Next returns the speed after one increase, never exceeding the cap and
// never decreasing.
func (r SpeedRamp) Next(current float64) float64 {
	if current >= r.cfg.Max || r.cfg.Increment <= 0 {
		return current
	}
	return math.Min(current+r.cfg.Increment, r.cfg.Max)
}
