package store

import (
	"context"
	"errors"
	"time"

	"github.com/barkoapp/barko/internal/plan"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("store: not found")

// Profile is a learner's identity, onboarding answers, and plan.
type Profile struct {
	UserID              string
	Email               string
	FullName            string
	Country             string
	Language            string
	AgeGroup            string
	IncomeRange         string
	CulturalValue       string
	FinancialGoals      string
	LearningPlan        *plan.LearningPlan
	OnboardingCompleted bool
	SimpleMode          bool
	Points              int
	StreakDays          int
	LastActive          *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ProfilePatch carries a merge patch for profile updates. Nil fields are
// left unchanged.
type ProfilePatch struct {
	FullName       *string
	Country        *string
	Language       *string
	AgeGroup       *string
	IncomeRange    *string
	CulturalValue  *string
	FinancialGoals *string
	SimpleMode     *bool
}

// ProfileRepo manages learner profiles.
type ProfileRepo interface {
	// GetOrCreate returns the profile for userID, creating an empty one
	// if none exists. Concurrent calls for the same user are safe.
	GetOrCreate(ctx context.Context, userID, email string) (*Profile, error)

	// Get returns the profile for userID, or ErrNotFound.
	Get(ctx context.Context, userID string) (*Profile, error)

	// Apply merges the patch into the profile and returns the result.
	Apply(ctx context.Context, userID string, patch ProfilePatch) (*Profile, error)

	// SaveOnboarding stores the onboarding answers and the generated plan
	// in a single upsert, marking onboarding complete.
	SaveOnboarding(ctx context.Context, userID, email string, answers plan.AnswerSet, p *plan.LearningPlan) (*Profile, error)

	// SavePlan replaces the stored learning plan.
	SavePlan(ctx context.Context, userID string, p *plan.LearningPlan) error

	// AddPoints atomically increments the points counter.
	AddPoints(ctx context.Context, userID string, delta int) error

	// SetStreak updates the streak counter and last-active timestamp,
	// guarded on the last-active value the caller read (nil for never
	// active). It reports false without writing when another writer got
	// there first; the caller re-reads and recomputes.
	SetStreak(ctx context.Context, userID string, days int, lastActive time.Time, prev *time.Time) (bool, error)
}

// LessonProgress is one learner's state for one lesson.
type LessonProgress struct {
	UserID      string
	LessonID    string
	Completed   bool
	Score       *int
	Attempts    int
	CompletedAt *time.Time
}

// ProgressRepo manages per-lesson progress rows. All writes are single
// atomic upserts keyed on (user_id, lesson_id).
type ProgressRepo interface {
	// MarkCompleted marks the lesson complete without touching quiz fields.
	MarkCompleted(ctx context.Context, userID, lessonID string, at time.Time) error

	// RecordQuiz stores a quiz submission: the latest score, an attempt
	// increment, and the resulting completion state. A failing retake
	// clears completion.
	RecordQuiz(ctx context.Context, userID, lessonID string, score int, passed bool, at time.Time) error

	// Get returns the row for one lesson, or ErrNotFound.
	Get(ctx context.Context, userID, lessonID string) (*LessonProgress, error)

	// List returns all progress rows for the user.
	List(ctx context.Context, userID string) ([]LessonProgress, error)

	// CompletedIDs returns the set of completed lesson IDs.
	CompletedIDs(ctx context.Context, userID string) (map[string]bool, error)
}

