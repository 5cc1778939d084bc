package game

import (
	"strconv"

	"github.com/charmbracelet/log"
)

// HighScore is the single accessor for the best score. The value never
// decreases; every increase is written through to the store.
type HighScore struct {
	store  KVStore
	key    string
	value  int
	logger *log.Logger
}

// LoadHighScore reads the stored high score once. A nil store, a missing
// key, a read error or an unparseable value all start from 0.
func LoadHighScore(store KVStore, key string, logger *log.Logger) *HighScore {
	if logger == nil {
		logger = log.Default()
	}
	h := &HighScore{store: store, key: key, logger: logger}
	if store == nil {
		return h
	}

	raw, ok, err := store.Get(key)
	if err != nil {
		logger.Warn("could not read high score", "key", key, "error", err)
		return h
	}
	if !ok {
		return h
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		logger.Warn("ignoring unparseable high score", "key", key, "value", raw)
		return h
	}
	h.value = v
	return h
}

// Value returns the current high score.
func (h *HighScore) Value() int {
	return h.value
}

// Offer raises the high score to score if it is higher and persists it.
// Returns true when the high score changed. A failed write keeps the new
// value in memory.
func (h *HighScore) Offer(score int) bool {
	if score <= h.value {
		return false
	}
	h.value = score

	if h.store != nil {
		if err := h.store.Set(h.key, strconv.Itoa(score)); err != nil {
			h.logger.Warn("could not persist high score", "score", score, "error", err)
		}
	}
	return true
}
