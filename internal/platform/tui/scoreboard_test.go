package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// fakeScoreSource serves fixed runs and counts loads.
type fakeScoreSource struct {
	runs   []storage.RunEntry
	stats  storage.RunStats
	high   string
	runErr error
	loads  int
}

func (f *fakeScoreSource) TopRuns(limit int) ([]storage.RunEntry, error) {
	f.loads++
	if f.runErr != nil {
		return nil, f.runErr
	}
	if len(f.runs) > limit {
		return f.runs[:limit], nil
	}
	return f.runs, nil
}

func (f *fakeScoreSource) Stats() (*storage.RunStats, error) {
	return &f.stats, nil
}

func (f *fakeScoreSource) Get(key string) (string, bool, error) {
	if key != "highScore" || f.high == "" {
		return "", false, nil
	}
	return f.high, true, nil
}

func newFakeScoreSource() *fakeScoreSource {
	played := time.Date(2025, 3, 14, 9, 26, 0, 0, time.UTC)
	return &fakeScoreSource{
		runs: []storage.RunEntry{
			{ID: "a1b2c3d4-0000-0000-0000-000000000000", Score: 7, CreatedAt: played},
			{ID: "e5f6a7b8-0000-0000-0000-000000000000", Score: 3, CreatedAt: played},
		},
		stats: storage.RunStats{Runs: 2, BestScore: 7, AvgScore: 5, LastPlayed: played},
		high:  "7",
	}
}

func TestScoreboardViewWithSidebar(t *testing.T) {
	src := newFakeScoreSource()
	m := NewScoreboardModel(src, "highScore", 100, 30)

	view := ansi.Strip(m.View())
	for _, want := range []string{"FLAPPY - HIGH SCORES", "High score: 7", "Runs:       2", "#1", "a1b2c3d4"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestScoreboardViewNarrow(t *testing.T) {
	m := NewScoreboardModel(newFakeScoreSource(), "highScore", 50, 30)

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "High score: 7   Runs: 2") {
		t.Error("narrow view should show the summary line")
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(&fakeScoreSource{}, "highScore", 100, 30)

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "No runs recorded yet.") {
		t.Error("empty scoreboard should say so")
	}
	if !strings.Contains(view, "High score: 0") {
		t.Error("missing high score should show 0")
	}
}

func TestScoreboardLoadError(t *testing.T) {
	src := &fakeScoreSource{runErr: errors.New("database is locked")}
	m := NewScoreboardModel(src, "highScore", 100, 30)

	if !strings.Contains(ansi.Strip(m.View()), "error: database is locked") {
		t.Error("load error should be shown")
	}
}

func TestScoreboardReloadAndQuit(t *testing.T) {
	src := newFakeScoreSource()
	m := NewScoreboardModel(src, "highScore", 100, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if src.loads != 2 {
		t.Errorf("loads = %d, expected 2 after reload", src.loads)
	}

	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestShortID(t *testing.T) {
	tests := []struct {
		id, expected string
	}{
		{"a1b2c3d4-0000-0000-0000-000000000000", "a1b2c3d4"},
		{"plain", "plain"},
		{"", ""},
	}

	for _, tc := range tests {
		if got := shortID(tc.id); got != tc.expected {
			t.Errorf("shortID(%q) = %q, expected %q", tc.id, got, tc.expected)
		}
	}
}
