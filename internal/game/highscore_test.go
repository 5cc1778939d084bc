package game

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/tui-flappy/internal/game/mocks"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestHighScoreWritesOnlyIncreases(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockKVStore(ctrl)

	store.EXPECT().Get("highScore").Return("0", true, nil)
	gomock.InOrder(
		store.EXPECT().Set("highScore", "3").Return(nil),
		store.EXPECT().Set("highScore", "5").Return(nil),
	)

	h := LoadHighScore(store, "highScore", quietLogger())

	scores := []int{0, 3, 2, 5}
	changed := []bool{false, true, false, true}
	for i, s := range scores {
		if got := h.Offer(s); got != changed[i] {
			t.Errorf("Offer(%d) = %v, expected %v", s, got, changed[i])
		}
	}

	if h.Value() != 5 {
		t.Errorf("Value() = %d, expected 5", h.Value())
	}
}

func TestLoadHighScoreFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		ok       bool
		err      error
		expected int
	}{
		{"stored", "42", true, nil, 42},
		{"absent", "", false, nil, 0},
		{"read error", "", false, errors.New("disk on fire"), 0},
		{"unparseable", "lots", true, nil, 0},
		{"negative", "-3", true, nil, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockKVStore(ctrl)
			store.EXPECT().Get("hs").Return(tc.value, tc.ok, tc.err)

			h := LoadHighScore(store, "hs", quietLogger())
			if h.Value() != tc.expected {
				t.Errorf("Value() = %d, expected %d", h.Value(), tc.expected)
			}
		})
	}
}

func TestHighScoreWriteFailureKeepsValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockKVStore(ctrl)

	store.EXPECT().Get("hs").Return("1", true, nil)
	store.EXPECT().Set("hs", "2").Return(errors.New("read-only"))

	h := LoadHighScore(store, "hs", quietLogger())
	if !h.Offer(2) {
		t.Fatal("Offer(2) should raise the high score")
	}
	if h.Value() != 2 {
		t.Errorf("Value() = %d, expected 2", h.Value())
	}
}

func TestHighScoreWithoutStore(t *testing.T) {
	h := LoadHighScore(nil, "hs", quietLogger())
	if h.Value() != 0 {
		t.Fatalf("Value() = %d, expected 0", h.Value())
	}
	h.Offer(4)
	h.Offer(1)
	if h.Value() != 4 {
		t.Errorf("Value() = %d, expected 4", h.Value())
	}
}
