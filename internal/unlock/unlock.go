// Package unlock implements the sequential lesson gating rule: the first
// lesson is always accessible, every later lesson unlocks when its
// immediate predecessor is completed.
package unlock

import "github.com/barkoapp/barko/internal/plan"

// IsLocked reports whether the lesson at index is inaccessible given the
// ordered lesson list and the set of completed lesson IDs. Index 0 is
// never locked. Only the direct predecessor matters; completing later
// lessons does not unlock earlier gaps.
func IsLocked(lessons []plan.Lesson, completed map[string]bool, index int) bool {
	if index <= 0 {
		return false
	}
	if index >= len(lessons) {
		return true
	}
	return !completed[lessons[index-1].ID]
}
