package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/game"
)

// Player plays cues through the system speaker. All methods are safe to
// call before Init succeeds; they do nothing.
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates an uninitialized player.
func NewPlayer(cfg config.AudioConfig) *Player {
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = 44100
	}
	return &Player{
		rate:   beep.SampleRate(rate),
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
	}
}

// Init opens the speaker. Calling it again after success is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences the mixer.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// PlayBeep plays the countdown beep.
func (p *Player) PlayBeep() {
	p.play(BeepSound(p.rate, p.volume))
}

// PlayFlap plays the flap chirp.
func (p *Player) PlayFlap() {
	p.play(FlapSound(p.rate, p.volume))
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Open returns the cue player for cfg. When audio is disabled or the
// speaker cannot be opened it logs why and returns silent cues.
func Open(cfg config.AudioConfig, logger *log.Logger) (game.Cues, func()) {
	if !cfg.Enabled {
		return game.NopCues{}, func() {}
	}
	if logger == nil {
		logger = log.Default()
	}

	p := NewPlayer(cfg)
	if err := p.Init(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
		return game.NopCues{}, func() {}
	}
	return p, p.Close
}
