package history

import (
	"fmt"
	"testing"

	"lyra/pkg/models"
)

func TestHistory_LastEmpty(t *testing.T) {
	h := New(DefaultLimit)
	if _, ok := h.Last(); ok {
		t.Error("Last on empty history reported an entry")
	}
	if h.Len() != 0 {
		t.Errorf("Len on empty history = %d", h.Len())
	}
}

func TestHistory_AppendAndLast(t *testing.T) {
	h := New(DefaultLimit)
	h.Append(models.Turn{UserText: "open notepad"})
	h.Append(models.Turn{UserText: "what time is it"})

	last, ok := h.Last()
	if !ok {
		t.Fatal("Last returned no entry after appends")
	}
	if last.UserText != "what time is it" {
		t.Errorf("Last = %q, want most recent entry", last.UserText)
	}
}

func TestHistory_BoundedEviction(t *testing.T) {
	h := New(DefaultLimit)
	for i := 1; i <= 6; i++ {
		h.Append(models.Turn{UserText: fmt.Sprintf("turn %d", i)})
	}

	if h.Len() != 5 {
		t.Fatalf("Len after 6 appends = %d, want 5", h.Len())
	}
	turns := h.Snapshot()
	for i, turn := range turns {
		want := fmt.Sprintf("turn %d", i+2)
		if turn.UserText != want {
			t.Errorf("turns[%d] = %q, want %q", i, turn.UserText, want)
		}
	}
}

func TestHistory_SnapshotIsCopy(t *testing.T) {
	h := New(DefaultLimit)
	h.Append(models.Turn{UserText: "first"})
	snap := h.Snapshot()
	snap[0].UserText = "mutated"

	last, _ := h.Last()
	if last.UserText != "first" {
		t.Error("mutating a snapshot leaked into the history")
	}
}

func TestHistory_DefaultLimitOnBadValue(t *testing.T) {
	h := New(0)
	for i := 0; i < 10; i++ {
		h.Append(models.Turn{})
	}
	if h.Len() != DefaultLimit {
		t.Errorf("Len = %d, want %d", h.Len(), DefaultLimit)
	}
}
