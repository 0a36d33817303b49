package unlock

import (
	"testing"

	"github.com/barkoapp/barko/internal/plan"
)

func lessons(ids ...string) []plan.Lesson {
	out := make([]plan.Lesson, len(ids))
	for i, id := range ids {
		out[i] = plan.Lesson{ID: id}
	}
	return out
}

func TestFirstLessonNeverLocked(t *testing.T) {
	ls := lessons("1", "2", "3")

	if IsLocked(ls, nil, 0) {
		t.Error("index 0 locked with empty completed set")
	}
	if IsLocked(ls, map[string]bool{"2": true, "3": true}, 0) {
		t.Error("index 0 locked regardless of completed set")
	}
}

func TestSequentialGating(t *testing.T) {
	ls := lessons("1", "2", "3")

	tests := []struct {
		name      string
		completed map[string]bool
		index     int
		want      bool
	}{
		{"nothing completed, index 1", nil, 1, true},
		{"predecessor completed", map[string]bool{"1": true}, 1, false},
		{"predecessor not completed, later lesson done", map[string]bool{"3": true}, 1, true},
		{"index 2 with only lesson 1 done", map[string]bool{"1": true}, 2, true},
		{"index 2 with lesson 2 done", map[string]bool{"2": true}, 2, false},
		{"all done", map[string]bool{"1": true, "2": true}, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLocked(ls, tt.completed, tt.index); got != tt.want {
				t.Errorf("IsLocked(index=%d, completed=%v) = %v, want %v",
					tt.index, tt.completed, got, tt.want)
			}
		})
	}
}

func TestNoTransitiveUnlock(t *testing.T) {
	// Completing lesson 1 unlocks lesson 2 only; lesson 3 stays locked
	// until lesson 2 itself is completed.
	ls := lessons("1", "2", "3")
	completed := map[string]bool{"1": true}

	if IsLocked(ls, completed, 1) {
		t.Error("index 1 should unlock after lesson 1")
	}
	if !IsLocked(ls, completed, 2) {
		t.Error("index 2 should stay locked until lesson 2 completes")
	}
}

func TestOutOfRangeIndexLocked(t *testing.T) {
	ls := lessons("1", "2")
	if !IsLocked(ls, map[string]bool{"1": true, "2": true}, 5) {
		t.Error("out-of-range index should be locked")
	}
}
