package game

import "time"

// Loop is a fixed-timestep accumulator. The host calls Frame once per
// display frame with the current time; Loop converts the elapsed wall
// clock into whole physics ticks so the simulation runs at the same rate
// no matter how often frames arrive.
//
// There is exactly one Loop per session and it is either active or not.
// Start on an active loop is a no-op, which keeps resize and fullscreen
// events from ever scheduling a second loop.
type Loop struct {
	step     time.Duration
	maxFrame time.Duration
	tick     func() bool // Returns false to stop the loop

	active bool
	last   time.Time
	acc    time.Duration
	ticks  uint64
}

// NewLoop creates an inactive loop running tick every step. Frame deltas
// above maxFrame are capped so a stalled host cannot trigger a burst of
// catch-up ticks.
func NewLoop(step, maxFrame time.Duration, tick func() bool) *Loop {
	return &Loop{
		step:     step,
		maxFrame: maxFrame,
		tick:     tick,
	}
}

// Start activates the loop at now. Returns false if it was already active.
func (l *Loop) Start(now time.Time) bool {
	if l.active {
		return false
	}
	l.active = true
	l.last = now
	l.acc = 0
	return true
}

// Stop deactivates the loop and drops any accumulated time.
func (l *Loop) Stop() {
	l.active = false
	l.acc = 0
}

// Active reports whether the loop is running.
func (l *Loop) Active() bool {
	return l.active
}

// Ticks returns the total number of ticks run.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Frame runs as many ticks as the time since the previous frame allows
// and returns how many ran. The loop stops itself when a tick returns
// false; remaining accumulated time is discarded.
func (l *Loop) Frame(now time.Time) int {
	if !l.active {
		return 0
	}

	delta := now.Sub(l.last)
	l.last = now
	if delta < 0 {
		delta = 0
	}
	if delta > l.maxFrame {
		delta = l.maxFrame
	}
	l.acc += delta

	n := 0
	for l.active && l.acc >= l.step {
		l.acc -= l.step
		l.ticks++
		n++
		if !l.tick() {
			l.Stop()
		}
	}
	return n
}
