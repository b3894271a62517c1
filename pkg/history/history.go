// Package history keeps the rolling window of the most recent turns. It is
// the only shared mutable state in the core, so appends and reads are guarded
// for the case where a hotword-triggered turn and a typed turn race.
package history

import (
	"sync"

	"lyra/pkg/models"
)

const DefaultLimit = 5

type History struct {
	mu    sync.Mutex
	turns []models.Turn
	limit int
}

func New(limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{limit: limit}
}

// Append records a completed turn, evicting the oldest entry once the window
// is full.
func (h *History) Append(t models.Turn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.turns = append(h.turns, t)
	if len(h.turns) > h.limit {
		h.turns = h.turns[len(h.turns)-h.limit:]
	}
}

// Last returns the most recent turn, if any.
func (h *History) Last() (models.Turn, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.turns) == 0 {
		return models.Turn{}, false
	}
	return h.turns[len(h.turns)-1], true
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.turns)
}

// Snapshot returns a copy of the window, oldest first.
func (h *History) Snapshot() []models.Turn {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]models.Turn, len(h.turns))
	copy(out, h.turns)
	return out
}
