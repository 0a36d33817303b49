package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/barkoapp/barko/internal/plan"
)

func strp(s string) *string { return &s }

func TestProfileGetOrCreate(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	p, err := repo.GetOrCreate(ctx, "user-1", "one@example.com")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if p.UserID != "user-1" {
		t.Errorf("user id = %q, want user-1", p.UserID)
	}
	if p.Email != "one@example.com" {
		t.Errorf("email = %q", p.Email)
	}
	if p.OnboardingCompleted {
		t.Error("new profile should not have onboarding completed")
	}

	// Second call returns the same row instead of failing on the unique index.
	again, err := repo.GetOrCreate(ctx, "user-1", "one@example.com")
	if err != nil {
		t.Fatalf("get or create again: %v", err)
	}
	if again.CreatedAt != p.CreatedAt {
		t.Error("expected the original row to be reused")
	}
}

func TestProfileGetNotFound(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.ProfileRepo().Get(ctx, "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProfileApplyPatch(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	if _, err := repo.GetOrCreate(ctx, "user-2", "two@example.com"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	p, err := repo.Apply(ctx, "user-2", ProfilePatch{
		FullName: strp("Awa Diop"),
		Country:  strp("Senegal"),
		Language: strp("fr"),
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if p.FullName != "Awa Diop" || p.Country != "Senegal" || p.Language != "fr" {
		t.Errorf("patch not applied: %+v", p)
	}

	// Fields not in the patch are untouched.
	p, err = repo.Apply(ctx, "user-2", ProfilePatch{FinancialGoals: strp("save for a house")})
	if err != nil {
		t.Fatalf("apply second: %v", err)
	}
	if p.FullName != "Awa Diop" {
		t.Errorf("full name changed by unrelated patch: %q", p.FullName)
	}
	if p.FinancialGoals != "save for a house" {
		t.Errorf("financial goals = %q", p.FinancialGoals)
	}
}

func TestProfileApplyNotFound(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.ProfileRepo().Apply(ctx, "nobody", ProfilePatch{FullName: strp("X")})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProfileSaveOnboarding(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	answers := plan.AnswerSet{
		Country:        "France",
		Language:       "fr",
		AgeGroup:       "25-34",
		IncomeRange:    "30 000-60 000 € par an",
		CulturalValue:  "family",
		FinancialGoals: "rembourser mes dettes",
	}
	generated := plan.Fallback("fr", answers.IncomeRange, answers.FinancialGoals)

	// Works without a pre-existing row.
	p, err := repo.SaveOnboarding(ctx, "user-3", "three@example.com", answers, generated)
	if err != nil {
		t.Fatalf("save onboarding: %v", err)
	}
	if !p.OnboardingCompleted {
		t.Error("onboarding should be marked complete")
	}
	if p.LearningPlan == nil || len(p.LearningPlan.Lessons) != 10 {
		t.Fatalf("expected stored 10-lesson plan, got %+v", p.LearningPlan)
	}
	if p.Language != "fr" {
		t.Errorf("language = %q, want fr", p.Language)
	}

	// Re-onboarding overwrites answers and plan on the same row.
	answers.FinancialGoals = "investir"
	p, err = repo.SaveOnboarding(ctx, "user-3", "three@example.com", answers, generated)
	if err != nil {
		t.Fatalf("save onboarding again: %v", err)
	}
	if p.FinancialGoals != "investir" {
		t.Errorf("financial goals = %q, want investir", p.FinancialGoals)
	}
}

func TestProfileAddPoints(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	if _, err := repo.GetOrCreate(ctx, "user-4", ""); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := repo.AddPoints(ctx, "user-4", 10); err != nil {
		t.Fatalf("add points: %v", err)
	}
	if err := repo.AddPoints(ctx, "user-4", 20); err != nil {
		t.Fatalf("add points: %v", err)
	}

	p, err := repo.Get(ctx, "user-4")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Points != 30 {
		t.Errorf("points = %d, want 30", p.Points)
	}
}

func TestProfileSetStreak(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	if _, err := repo.GetOrCreate(ctx, "user-5", ""); err != nil {
		t.Fatalf("seed: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	ok, err := repo.SetStreak(ctx, "user-5", 3, now, nil)
	if err != nil {
		t.Fatalf("set streak: %v", err)
	}
	if !ok {
		t.Fatal("expected write on never-active profile")
	}

	p, err := repo.Get(ctx, "user-5")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.StreakDays != 3 {
		t.Errorf("streak = %d, want 3", p.StreakDays)
	}
	if p.LastActive == nil || !p.LastActive.Equal(now) {
		t.Errorf("last active = %v, want %v", p.LastActive, now)
	}
}

func TestProfileSetStreakStaleGuard(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	if _, err := repo.GetOrCreate(ctx, "user-6", ""); err != nil {
		t.Fatalf("seed: %v", err)
	}

	day1 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	if ok, err := repo.SetStreak(ctx, "user-6", 1, day1, nil); err != nil || !ok {
		t.Fatalf("first write: ok=%v err=%v", ok, err)
	}

	// A writer still holding the pre-write view must not clobber.
	ok, err := repo.SetStreak(ctx, "user-6", 1, day2, nil)
	if err != nil {
		t.Fatalf("stale write: %v", err)
	}
	if ok {
		t.Fatal("stale guard did not reject the write")
	}

	p, err := repo.Get(ctx, "user-6")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.StreakDays != 1 || p.LastActive == nil || !p.LastActive.Equal(day1) {
		t.Errorf("profile changed through stale write: streak=%d last=%v", p.StreakDays, p.LastActive)
	}

	// The current view goes through.
	if ok, err := repo.SetStreak(ctx, "user-6", 2, day2, p.LastActive); err != nil || !ok {
		t.Fatalf("guarded write: ok=%v err=%v", ok, err)
	}

	p, err = repo.Get(ctx, "user-6")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.StreakDays != 2 {
		t.Errorf("streak = %d, want 2", p.StreakDays)
	}
}
