package game

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game/mocks"
)

func newTestSession(t *testing.T, opts ...Option) (*Session, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(time.Unix(1_700_000_000, 0))
	base := []Option{
		WithClock(clock),
		WithSeed(42),
		WithLogger(quietLogger()),
	}
	s := NewSession(config.Default(), testWidth, testHeight, append(base, opts...)...)
	return s, clock
}

// runCountdown advances through the countdown in 100ms frames.
func runCountdown(s *Session, clock *core.ManualClock) {
	for s.Mode() == ModeCountdown {
		clock.Advance(100 * time.Millisecond)
		s.Frame()
	}
}

// playUntilGameOver runs ~60fps frames with no input until the player dies.
func playUntilGameOver(t *testing.T, s *Session, clock *core.ManualClock) {
	t.Helper()
	for i := 0; i < 1000 && s.Mode() == ModePlaying; i++ {
		clock.Advance(16 * time.Millisecond)
		s.Frame()
	}
	if s.Mode() != ModeGameOver {
		t.Fatalf("mode = %v, expected gameover", s.Mode())
	}
}

func TestSessionStartsInStart(t *testing.T) {
	s, clock := newTestSession(t)

	if s.Mode() != ModeStart {
		t.Fatalf("mode = %v, expected start", s.Mode())
	}

	clock.Advance(time.Second)
	s.Frame()
	if s.Mode() != ModeStart {
		t.Errorf("Frame() in start changed mode to %v", s.Mode())
	}
	if s.LoopActive() {
		t.Error("loop should not run before play")
	}
	if s.ID() == "" {
		t.Error("session should have an id")
	}
}

func TestSessionCountdownBeepsThreeTimes(t *testing.T) {
	ctrl := gomock.NewController(t)
	cues := mocks.NewMockCues(ctrl)
	cues.EXPECT().PlayBeep().Times(3)

	s, clock := newTestSession(t, WithCues(cues))

	s.Flap()
	if s.Mode() != ModeCountdown {
		t.Fatalf("mode = %v, expected countdown", s.Mode())
	}
	if snap := s.Snapshot(); snap.SecondsLeft != 3 || snap.Fade != 1 {
		t.Errorf("countdown snapshot = %d/%g, expected 3/1", snap.SecondsLeft, snap.Fade)
	}

	for i := 0; i < 39; i++ {
		clock.Advance(100 * time.Millisecond)
		s.Frame()
	}
	clock.Advance(99 * time.Millisecond)
	s.Frame()
	if s.Mode() != ModeCountdown {
		t.Fatalf("mode = %v at 3999ms, expected countdown", s.Mode())
	}

	clock.Advance(time.Millisecond)
	s.Frame()
	if s.Mode() != ModePlaying {
		t.Fatalf("mode = %v at 4000ms, expected playing", s.Mode())
	}
	if !s.LoopActive() {
		t.Error("loop should be running once playing")
	}
}

func TestSessionCountdownAnnouncesEachSecondOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	cues := mocks.NewMockCues(ctrl)
	cues.EXPECT().PlayBeep().Times(3)

	s, clock := newTestSession(t, WithCues(cues))
	s.Flap()

	seen := map[int]bool{}
	for s.Mode() == ModeCountdown {
		seen[s.Snapshot().SecondsLeft] = true
		clock.Advance(50 * time.Millisecond)
		s.Frame()
	}

	for _, want := range []int{3, 2, 1, 0} {
		if !seen[want] {
			t.Errorf("countdown never showed %d", want)
		}
	}
}

func TestSessionFlapIgnoredDuringCountdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	cues := mocks.NewMockCues(ctrl)
	cues.EXPECT().PlayBeep().AnyTimes()
	cues.EXPECT().PlayFlap().Times(0)

	s, clock := newTestSession(t, WithCues(cues))
	s.Flap()

	clock.Advance(500 * time.Millisecond)
	s.Frame()
	s.Flap()

	if s.Mode() != ModeCountdown {
		t.Errorf("mode = %v, expected countdown", s.Mode())
	}
	if s.Sim().Player().Vel != 0 {
		t.Errorf("player Vel = %g, expected 0", s.Sim().Player().Vel)
	}
}

func TestSessionFlapWhilePlaying(t *testing.T) {
	ctrl := gomock.NewController(t)
	cues := mocks.NewMockCues(ctrl)
	cues.EXPECT().PlayBeep().Times(3)
	cues.EXPECT().PlayFlap().Times(1)

	s, clock := newTestSession(t, WithCues(cues))
	s.Flap()
	runCountdown(s, clock)

	s.Flap()
	if v := s.Sim().Player().Vel; v != -10 {
		t.Errorf("player Vel = %g, expected -10", v)
	}
}

func TestSessionGameOverExactlyOnce(t *testing.T) {
	transitions := map[Mode]int{}
	s, clock := newTestSession(t, WithTransitionHook(func(_, to Mode) {
		transitions[to]++
	}))

	s.Flap()
	runCountdown(s, clock)
	playUntilGameOver(t, s, clock)

	// Keep feeding frames; nothing should happen.
	for i := 0; i < 100; i++ {
		clock.Advance(16 * time.Millisecond)
		s.Frame()
	}

	if transitions[ModeGameOver] != 1 {
		t.Errorf("gameover transitions = %d, expected 1", transitions[ModeGameOver])
	}
	if s.LoopActive() {
		t.Error("loop should stop on game over")
	}
	if s.Mode() != ModeGameOver {
		t.Errorf("mode = %v, expected gameover", s.Mode())
	}
}

func TestSessionRestartLockout(t *testing.T) {
	s, clock := newTestSession(t)

	s.Flap()
	runCountdown(s, clock)
	playUntilGameOver(t, s, clock)

	died := s.diedAt
	clock.Set(died.Add(499 * time.Millisecond))

	if s.Snapshot().CanRestart {
		t.Error("CanRestart should be false inside the lockout")
	}
	s.Flap()
	if s.Mode() != ModeGameOver {
		t.Fatalf("flap at 499ms changed mode to %v", s.Mode())
	}

	clock.Set(died.Add(500 * time.Millisecond))
	if !s.Snapshot().CanRestart {
		t.Error("CanRestart should be true once the lockout elapsed")
	}
	s.Flap()
	if s.Mode() != ModeCountdown {
		t.Fatalf("flap at 500ms: mode = %v, expected countdown", s.Mode())
	}

	snap := s.Snapshot()
	if snap.Score != 0 || len(snap.Obstacles) != 1 || snap.Player.Vel != 0 {
		t.Errorf("restart did not reset the world: %+v", snap)
	}
}

func TestSessionResizeKeepsSingleLoop(t *testing.T) {
	s, clock := newTestSession(t)

	s.Flap()
	runCountdown(s, clock)

	for i := 0; i < 5; i++ {
		s.Resize(testWidth+float64(i*8), testHeight)
	}
	if s.Mode() != ModePlaying {
		t.Fatalf("mode = %v after resize, expected playing", s.Mode())
	}

	clock.Advance(100 * time.Millisecond)
	s.Frame()

	// 100ms at 60Hz is 6 ticks for one loop.
	if got := s.Sim().Ticks(); got != 6 {
		t.Errorf("Ticks() = %d, expected 6", got)
	}
}

func TestSessionResizeKeepsMode(t *testing.T) {
	s, clock := newTestSession(t)

	s.Resize(800, 480)
	if s.Mode() != ModeStart || s.LoopActive() {
		t.Errorf("resize in start: mode = %v, loop active = %v", s.Mode(), s.LoopActive())
	}

	s.Flap()
	s.Resize(720, 400)
	if s.Mode() != ModeCountdown || s.LoopActive() {
		t.Errorf("resize in countdown: mode = %v, loop active = %v", s.Mode(), s.LoopActive())
	}

	runCountdown(s, clock)
	playUntilGameOver(t, s, clock)

	s.Resize(640, 384)
	if s.Mode() != ModeGameOver || s.LoopActive() {
		t.Errorf("resize in gameover: mode = %v, loop active = %v", s.Mode(), s.LoopActive())
	}
}

func TestSessionPersistsHighScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockKVStore(ctrl)
	store.EXPECT().Get("highScore").Return("9", true, nil)

	s, _ := newTestSession(t, WithStore(store))

	if got := s.Snapshot().HighScore; got != 9 {
		t.Errorf("HighScore = %d, expected 9", got)
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected string
	}{
		{ModeStart, "start"},
		{ModeCountdown, "countdown"},
		{ModePlaying, "playing"},
		{ModeGameOver, "gameover"},
		{Mode(99), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.mode.String(); got != tc.expected {
			t.Errorf("Mode(%d).String() = %q, expected %q", tc.mode, got, tc.expected)
		}
	}
}
