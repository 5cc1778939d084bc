// Package audio plays the game's audio cues with synthesized tones.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Cue timings.
const (
	beepFreq     = 880.0
	beepDuration = 120 * time.Millisecond
	beepAttack   = 5 * time.Millisecond
	beepRelease  = 60 * time.Millisecond

	flapFromFreq = 440.0
	flapToFreq   = 880.0
	flapDuration = 70 * time.Millisecond
	flapAttack   = 3 * time.Millisecond
	flapRelease  = 40 * time.Millisecond
)

// sweep is a sine oscillator whose frequency moves linearly from one
// frequency to another over its duration. A zero-width sweep is a plain tone.
type sweep struct {
	from, to float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewSweep creates a sine streamer gliding from one frequency to another.
func NewSweep(from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		rate:     rate,
	}
}

// NewTone creates a fixed-frequency sine streamer.
func NewTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, rate)
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}

		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(s.position) / float64(s.duration)
		freq := s.from + (s.to-s.from)*progress
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream by a linear volume in [0, 1].
// math.Log2(0) is -Inf, so zero becomes silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// BeepSound is the countdown beep.
func BeepSound(rate beep.SampleRate, vol float64) beep.Streamer {
	tone := NewTone(beepFreq, beepDuration, rate)
	return newVolume(NewEnvelope(tone, beepDuration, beepAttack, beepRelease, rate), vol)
}

// FlapSound is a short upward chirp.
func FlapSound(rate beep.SampleRate, vol float64) beep.Streamer {
	chirp := NewSweep(flapFromFreq, flapToFreq, flapDuration, rate)
	return newVolume(NewEnvelope(chirp, flapDuration, flapAttack, flapRelease, rate), vol)
}
