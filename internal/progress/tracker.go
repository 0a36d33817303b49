// Package progress coordinates lesson completion: the per-lesson progress
// row, the point award, and the activity streak.
package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/barkoapp/barko/internal/quiz"
	"github.com/barkoapp/barko/internal/store"
)

// Point awards per completion event. Every mark-complete call and every
// passing quiz submission awards again; repeat awards match the original
// behavior and are deliberately kept.
const (
	CompletionPoints = 10
	QuizPassPoints   = 20
)

// ErrInvalidScore is returned for scores outside 0..100.
var ErrInvalidScore = errors.New("progress: score must be between 0 and 100")

// Tracker records lesson completion and quiz results.
type Tracker struct {
	profiles store.ProfileRepo
	rows     store.ProgressRepo
	now      func() time.Time
}

// NewTracker creates a Tracker over the given repositories.
func NewTracker(profiles store.ProfileRepo, rows store.ProgressRepo) *Tracker {
	return &Tracker{
		profiles: profiles,
		rows:     rows,
		now:      time.Now,
	}
}

// MarkComplete marks the lesson complete and awards completion points.
// Attempts and score are untouched; calling it twice leaves them unchanged.
func (t *Tracker) MarkComplete(ctx context.Context, userID, lessonID string) error {
	now := t.now().UTC()

	if err := t.rows.MarkCompleted(ctx, userID, lessonID, now); err != nil {
		return fmt.Errorf("mark complete: %w", err)
	}
	if err := t.profiles.AddPoints(ctx, userID, CompletionPoints); err != nil {
		return fmt.Errorf("award points: %w", err)
	}
	if err := t.bumpStreak(ctx, userID, now); err != nil {
		return fmt.Errorf("update streak: %w", err)
	}
	return nil
}

// RecordQuizScore stores a quiz submission. Attempts increment by one,
// the score replaces the previous one, and completion follows the latest
// score against the pass threshold. Passing awards quiz points.
func (t *Tracker) RecordQuizScore(ctx context.Context, userID, lessonID string, score int) error {
	if score < 0 || score > 100 {
		return ErrInvalidScore
	}

	now := t.now().UTC()
	passed := quiz.Passed(score)

	if err := t.rows.RecordQuiz(ctx, userID, lessonID, score, passed, now); err != nil {
		return fmt.Errorf("record quiz: %w", err)
	}
	if passed {
		if err := t.profiles.AddPoints(ctx, userID, QuizPassPoints); err != nil {
			return fmt.Errorf("award points: %w", err)
		}
	}
	if err := t.bumpStreak(ctx, userID, now); err != nil {
		return fmt.Errorf("update streak: %w", err)
	}
	return nil
}

// bumpStreak maintains the daily activity streak: a second action on the
// same day is a no-op, activity on the next calendar day extends the
// streak, and any gap resets it to one. The write is guarded on the
// last-active value read here; a lost race means a concurrent event
// already recorded today's activity, so recompute from a fresh read.
func (t *Tracker) bumpStreak(ctx context.Context, userID string, now time.Time) error {
	for range 3 {
		p, err := t.profiles.Get(ctx, userID)
		if err != nil {
			return err
		}

		today := now.Truncate(24 * time.Hour)
		days := 1

		if p.LastActive != nil {
			last := p.LastActive.UTC().Truncate(24 * time.Hour)
			switch {
			case last.Equal(today):
				return nil
			case today.Sub(last) == 24*time.Hour:
				days = p.StreakDays + 1
			}
		}

		ok, err := t.profiles.SetStreak(ctx, userID, days, now, p.LastActive)
		if err != nil || ok {
			return err
		}
	}
	// Every attempt lost its race, so the streak already reflects
	// activity at least as recent as this event.
	return nil
}
