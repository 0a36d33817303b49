package progress

import (
	"context"
	"testing"
	"time"

	"github.com/barkoapp/barko/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestTracker(t *testing.T, userID string) (*Tracker, *store.Store) {
	t.Helper()
	s := openTestStore(t)
	if _, err := s.ProfileRepo().GetOrCreate(context.Background(), userID, userID+"@example.com"); err != nil {
		t.Fatalf("create profile: %v", err)
	}
	return NewTracker(s.ProfileRepo(), s.ProgressRepo()), s
}

func TestMarkCompleteAwardsPoints(t *testing.T) {
	ctx := context.Background()
	tr, s := newTestTracker(t, "mark-points")

	if err := tr.MarkComplete(ctx, "mark-points", "1"); err != nil {
		t.Fatalf("MarkComplete: %v", err)
	}

	p, err := s.ProfileRepo().Get(ctx, "mark-points")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.Points != CompletionPoints {
		t.Errorf("points = %d, want %d", p.Points, CompletionPoints)
	}

	row, err := s.ProgressRepo().Get(ctx, "mark-points", "1")
	if err != nil {
		t.Fatalf("Get progress: %v", err)
	}
	if !row.Completed {
		t.Error("lesson not marked completed")
	}
	if row.Attempts != 0 {
		t.Errorf("attempts = %d, want 0", row.Attempts)
	}
}

func TestMarkCompleteRepeatAwardsAgain(t *testing.T) {
	ctx := context.Background()
	tr, s := newTestTracker(t, "mark-repeat")

	for i := 0; i < 3; i++ {
		if err := tr.MarkComplete(ctx, "mark-repeat", "1"); err != nil {
			t.Fatalf("MarkComplete #%d: %v", i, err)
		}
	}

	p, _ := s.ProfileRepo().Get(ctx, "mark-repeat")
	if p.Points != 3*CompletionPoints {
		t.Errorf("points = %d, want %d", p.Points, 3*CompletionPoints)
	}

	rows, err := s.ProgressRepo().List(ctx, "mark-repeat")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("progress rows = %d, want 1", len(rows))
	}
}

func TestRecordQuizScorePassing(t *testing.T) {
	ctx := context.Background()
	tr, s := newTestTracker(t, "quiz-pass")

	if err := tr.RecordQuizScore(ctx, "quiz-pass", "2", 85); err != nil {
		t.Fatalf("RecordQuizScore: %v", err)
	}

	p, _ := s.ProfileRepo().Get(ctx, "quiz-pass")
	if p.Points != QuizPassPoints {
		t.Errorf("points = %d, want %d", p.Points, QuizPassPoints)
	}

	row, err := s.ProgressRepo().Get(ctx, "quiz-pass", "2")
	if err != nil {
		t.Fatalf("Get progress: %v", err)
	}
	if !row.Completed {
		t.Error("passing score did not complete the lesson")
	}
	if row.Score == nil || *row.Score != 85 {
		t.Errorf("score = %v, want 85", row.Score)
	}
	if row.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", row.Attempts)
	}
}

func TestRecordQuizScoreFailingAwardsNothing(t *testing.T) {
	ctx := context.Background()
	tr, s := newTestTracker(t, "quiz-fail")

	if err := tr.RecordQuizScore(ctx, "quiz-fail", "2", 40); err != nil {
		t.Fatalf("RecordQuizScore: %v", err)
	}

	p, _ := s.ProfileRepo().Get(ctx, "quiz-fail")
	if p.Points != 0 {
		t.Errorf("points = %d, want 0", p.Points)
	}

	row, _ := s.ProgressRepo().Get(ctx, "quiz-fail", "2")
	if row.Completed {
		t.Error("failing score marked lesson completed")
	}
	if row.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", row.Attempts)
	}
}

func TestRecordQuizScoreFailingRetakeRevokes(t *testing.T) {
	ctx := context.Background()
	tr, s := newTestTracker(t, "quiz-retake")

	if err := tr.RecordQuizScore(ctx, "quiz-retake", "3", 90); err != nil {
		t.Fatalf("pass: %v", err)
	}
	if err := tr.RecordQuizScore(ctx, "quiz-retake", "3", 30); err != nil {
		t.Fatalf("failing retake: %v", err)
	}

	row, _ := s.ProgressRepo().Get(ctx, "quiz-retake", "3")
	if row.Completed {
		t.Error("failing retake left lesson completed")
	}
	if row.CompletedAt != nil {
		t.Error("failing retake left completed_at set")
	}
	if row.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", row.Attempts)
	}

	// Points from the earlier pass are never clawed back.
	p, _ := s.ProfileRepo().Get(ctx, "quiz-retake")
	if p.Points != QuizPassPoints {
		t.Errorf("points = %d, want %d", p.Points, QuizPassPoints)
	}
}

func TestRecordQuizScoreRejectsOutOfRange(t *testing.T) {
	ctx := context.Background()
	tr, _ := newTestTracker(t, "quiz-range")

	for _, score := range []int{-1, 101, 500} {
		if err := tr.RecordQuizScore(ctx, "quiz-range", "1", score); err != ErrInvalidScore {
			t.Errorf("score %d: err = %v, want ErrInvalidScore", score, err)
		}
	}
}

func TestStreakSameDayNoop(t *testing.T) {
	ctx := context.Background()
	tr, s := newTestTracker(t, "streak-same")

	base := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return base }
	if err := tr.MarkComplete(ctx, "streak-same", "1"); err != nil {
		t.Fatalf("MarkComplete: %v", err)
	}

	tr.now = func() time.Time { return base.Add(5 * time.Hour) }
	if err := tr.MarkComplete(ctx, "streak-same", "2"); err != nil {
		t.Fatalf("MarkComplete: %v", err)
	}

	p, _ := s.ProfileRepo().Get(ctx, "streak-same")
	if p.StreakDays != 1 {
		t.Errorf("streak = %d, want 1", p.StreakDays)
	}
}

func TestStreakConsecutiveDaysExtend(t *testing.T) {
	ctx := context.Background()
	tr, s := newTestTracker(t, "streak-grow")

	base := time.Date(2025, 6, 10, 22, 0, 0, 0, time.UTC)
	for day := 0; day < 3; day++ {
		d := day
		tr.now = func() time.Time { return base.AddDate(0, 0, d) }
		if err := tr.MarkComplete(ctx, "streak-grow", "1"); err != nil {
			t.Fatalf("day %d: %v", day, err)
		}
	}

	p, _ := s.ProfileRepo().Get(ctx, "streak-grow")
	if p.StreakDays != 3 {
		t.Errorf("streak = %d, want 3", p.StreakDays)
	}
}

// racingProfileRepo lets a test interleave a concurrent write between a
// tracker's profile read and its guarded streak write.
type racingProfileRepo struct {
	store.ProfileRepo
	hook func()
}

func (r *racingProfileRepo) Get(ctx context.Context, userID string) (*store.Profile, error) {
	p, err := r.ProfileRepo.Get(ctx, userID)
	if h := r.hook; h != nil {
		r.hook = nil
		h()
	}
	return p, err
}

func TestStreakConcurrentWriteNotClobbered(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	if _, err := s.ProfileRepo().GetOrCreate(ctx, "streak-race", ""); err != nil {
		t.Fatalf("create profile: %v", err)
	}

	repo := &racingProfileRepo{ProfileRepo: s.ProfileRepo()}
	tr := NewTracker(repo, s.ProgressRepo())

	day1 := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return day1 }
	if err := tr.MarkComplete(ctx, "streak-race", "1"); err != nil {
		t.Fatalf("day 1: %v", err)
	}

	// While the day-3 event holds its stale day-1 view, a day-2 event
	// lands first. Without the guard the stale writer would reset the
	// streak to 1; with it, the retry sees day 2 and extends to 3.
	day2 := day1.AddDate(0, 0, 1)
	repo.hook = func() {
		ok, err := s.ProfileRepo().SetStreak(ctx, "streak-race", 2, day2, &day1)
		if err != nil || !ok {
			t.Fatalf("interleaved write: ok=%v err=%v", ok, err)
		}
	}

	tr.now = func() time.Time { return day1.AddDate(0, 0, 2) }
	if err := tr.MarkComplete(ctx, "streak-race", "2"); err != nil {
		t.Fatalf("day 3: %v", err)
	}

	p, _ := s.ProfileRepo().Get(ctx, "streak-race")
	if p.StreakDays != 3 {
		t.Errorf("streak = %d, want 3", p.StreakDays)
	}
}

func TestStreakGapResets(t *testing.T) {
	ctx := context.Background()
	tr, s := newTestTracker(t, "streak-gap")

	base := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return base }
	if err := tr.MarkComplete(ctx, "streak-gap", "1"); err != nil {
		t.Fatalf("MarkComplete: %v", err)
	}
	tr.now = func() time.Time { return base.AddDate(0, 0, 1) }
	if err := tr.MarkComplete(ctx, "streak-gap", "2"); err != nil {
		t.Fatalf("MarkComplete: %v", err)
	}

	// Three days idle.
	tr.now = func() time.Time { return base.AddDate(0, 0, 4) }
	if err := tr.MarkComplete(ctx, "streak-gap", "3"); err != nil {
		t.Fatalf("MarkComplete: %v", err)
	}

	p, _ := s.ProfileRepo().Get(ctx, "streak-gap")
	if p.StreakDays != 1 {
		t.Errorf("streak = %d, want 1", p.StreakDays)
	}
}
