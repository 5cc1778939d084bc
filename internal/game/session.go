package game

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Mode is the high-level session state.
type Mode int

const (
	ModeStart Mode = iota
	ModeCountdown
	ModePlaying
	ModeGameOver
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModeCountdown:
		return "countdown"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Option configures a Session.
type Option func(*Session)

// WithCues sets the audio cue player.
func WithCues(c Cues) Option {
	return func(s *Session) {
		if c != nil {
			s.cues = c
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock sets the wall-clock source.
func WithClock(c core.Clock) Option {
	return func(s *Session) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithSeed fixes the obstacle RNG seed.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.seed = seed
	}
}

// WithStore sets the key/value store the high score is persisted in.
func WithStore(store KVStore) Option {
	return func(s *Session) {
		s.store = store
	}
}

// WithID overrides the generated session id.
func WithID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}

// WithTransitionHook registers a callback invoked after every mode change.
func WithTransitionHook(fn func(from, to Mode)) Option {
	return func(s *Session) {
		s.onTransition = fn
	}
}

// Session is the state machine around a Sim. It interprets the flap
// action per mode, runs the countdown, gates restart input after a death
// and owns the single Loop that ticks the simulation while playing.
//
// A Session is not safe for concurrent use; the host drives it from one
// goroutine.
type Session struct {
	id           string
	cfg          config.GameConfig
	clock        core.Clock
	cues         Cues
	logger       *log.Logger
	store        KVStore
	seed         int64
	onTransition func(from, to Mode)

	sim  *Sim
	loop *Loop
	high *HighScore

	mode    Mode
	canFlap bool

	countdownStart time.Time
	lastAnnounced  int
	secondsLeft    int
	fade           float64

	diedAt time.Time
}

// NewSession creates a session in ModeStart on a playfield of the given
// world size. The high score is read from the store once, here.
func NewSession(cfg config.GameConfig, width, height float64, opts ...Option) *Session {
	s := &Session{
		id:            uuid.NewString(),
		cfg:           cfg,
		clock:         core.SystemClock{},
		cues:          NopCues{},
		logger:        log.Default(),
		seed:          time.Now().UnixNano(),
		mode:          ModeStart,
		lastAnnounced: -1,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.high = LoadHighScore(s.store, cfg.Session.HighScoreKey, s.logger)
	s.sim = NewSim(cfg, s.clock, s.seed, s.high)
	s.sim.Reset(width, height)
	s.loop = NewLoop(cfg.Loop.TickDuration(), cfg.Loop.MaxFrame(), s.step)

	return s
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// Mode returns the current mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Sim returns the underlying simulation.
func (s *Session) Sim() *Sim {
	return s.sim
}

// LoopActive reports whether the physics loop is running.
func (s *Session) LoopActive() bool {
	return s.loop.Active()
}

// Flap handles the flap action. In Start it begins the countdown, while
// playing it flaps, and in GameOver it restarts once the lockout has
// elapsed. Anything else is ignored.
func (s *Session) Flap() {
	now := s.clock.Now()

	switch s.mode {
	case ModeStart:
		s.startCountdown(now)
	case ModePlaying:
		if s.canFlap {
			s.sim.Flap()
			s.cues.PlayFlap()
		}
	case ModeGameOver:
		if s.canRestart(now) {
			s.startCountdown(now)
		}
	}
}

// Frame advances the session to the current time: it runs the countdown,
// or the physics ticks that are due while playing. Hosts call Frame once
// per display frame, before rendering.
func (s *Session) Frame() {
	now := s.clock.Now()

	switch s.mode {
	case ModeCountdown:
		s.updateCountdown(now)
	case ModePlaying:
		s.loop.Frame(now)
	}
}

// Resize applies a new playfield size without changing mode or resetting
// the world. While playing it makes sure the loop is running, which is a
// no-op for a loop that already is.
func (s *Session) Resize(width, height float64) {
	s.sim.Resize(width, height, s.cfg.Viewport.RecenterOnResize)
	if s.mode == ModePlaying {
		s.loop.Start(s.clock.Now())
	}
	s.logger.Debug("playfield resized", "session", s.id, "width", width, "height", height, "mode", s.mode)
}

// Snapshot returns a read-only view of the session for rendering.
func (s *Session) Snapshot() Snapshot {
	w, h := s.sim.Size()
	return Snapshot{
		Mode:        s.mode,
		Width:       w,
		Height:      h,
		Player:      s.sim.Player(),
		Obstacles:   s.sim.Obstacles(),
		Score:       s.sim.Score(),
		HighScore:   s.high.Value(),
		SecondsLeft: s.secondsLeft,
		Fade:        s.fade,
		CanRestart:  s.mode == ModeGameOver && s.canRestart(s.clock.Now()),
		Speed:       s.sim.Speed(),
	}
}

// startCountdown resets the world and enters the countdown. The first
// second is announced immediately.
func (s *Session) startCountdown(now time.Time) {
	w, h := s.sim.Size()
	s.sim.Reset(w, h)

	s.countdownStart = now
	s.lastAnnounced = -1
	s.canFlap = false
	s.setMode(ModeCountdown)
	s.updateCountdown(now)
}

func (s *Session) updateCountdown(now time.Time) {
	elapsed := now.Sub(s.countdownStart)
	if elapsed < 0 {
		elapsed = 0
	}

	s.secondsLeft = s.cfg.Session.CountdownSeconds - int(elapsed/time.Second)
	s.fade = 1 - float64(elapsed%time.Second)/float64(time.Second)

	if s.secondsLeft != s.lastAnnounced && s.secondsLeft > 0 {
		s.lastAnnounced = s.secondsLeft
		s.cues.PlayBeep()
	}

	if elapsed >= s.cfg.Session.CountdownTotal() {
		s.canFlap = true
		s.setMode(ModePlaying)
		s.loop.Start(now)
	}
}

// step is the loop's tick function.
func (s *Session) step() bool {
	if s.mode != ModePlaying {
		return false
	}
	if s.sim.Tick() {
		s.gameOver()
		return false
	}
	return true
}

func (s *Session) gameOver() {
	if s.mode != ModePlaying {
		return
	}
	s.diedAt = s.clock.Now()
	s.canFlap = false
	s.loop.Stop()
	s.setMode(ModeGameOver)
}

func (s *Session) canRestart(now time.Time) bool {
	return now.Sub(s.diedAt) >= s.cfg.Session.RestartLockout()
}

func (s *Session) setMode(to Mode) {
	from := s.mode
	s.mode = to
	s.logger.Debug("session transition", "session", s.id, "from", from, "to", to, "score", s.sim.Score())
	if s.onTransition != nil {
		s.onTransition(from, to)
	}
}
