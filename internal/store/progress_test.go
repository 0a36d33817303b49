package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestProgressMarkCompleted(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	if err := repo.MarkCompleted(ctx, "user-1", "3", now); err != nil {
		t.Fatalf("mark completed: %v", err)
	}

	p, err := repo.Get(ctx, "user-1", "3")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !p.Completed {
		t.Error("expected completed")
	}
	if p.CompletedAt == nil || !p.CompletedAt.Equal(now) {
		t.Errorf("completed at = %v, want %v", p.CompletedAt, now)
	}
	if p.Attempts != 0 {
		t.Errorf("attempts = %d, want 0 (manual completion is not a quiz attempt)", p.Attempts)
	}

	// Marking again is an upsert on the same row, not a second row.
	if err := repo.MarkCompleted(ctx, "user-1", "3", now.Add(time.Hour)); err != nil {
		t.Fatalf("mark again: %v", err)
	}
	rows, err := repo.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
}

func TestProgressQuizPassThenFailingRetake(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)

	// Passing submission completes the lesson.
	if err := repo.RecordQuiz(ctx, "user-2", "1", 85, true, now); err != nil {
		t.Fatalf("record pass: %v", err)
	}
	p, err := repo.Get(ctx, "user-2", "1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !p.Completed {
		t.Error("expected completed after passing score")
	}
	if p.Score == nil || *p.Score != 85 {
		t.Errorf("score = %v, want 85", p.Score)
	}
	if p.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", p.Attempts)
	}

	// A failing retake revokes completion and clears the timestamp.
	if err := repo.RecordQuiz(ctx, "user-2", "1", 40, false, now); err != nil {
		t.Fatalf("record fail: %v", err)
	}
	p, err = repo.Get(ctx, "user-2", "1")
	if err != nil {
		t.Fatalf("get after retake: %v", err)
	}
	if p.Completed {
		t.Error("expected completion revoked by failing retake")
	}
	if p.CompletedAt != nil {
		t.Errorf("completed at should be cleared, got %v", p.CompletedAt)
	}
	if p.Score == nil || *p.Score != 40 {
		t.Errorf("score = %v, want 40", p.Score)
	}
	if p.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", p.Attempts)
	}
}

func TestProgressFailingFirstAttempt(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	if err := repo.RecordQuiz(ctx, "user-3", "2", 33, false, time.Now()); err != nil {
		t.Fatalf("record: %v", err)
	}

	p, err := repo.Get(ctx, "user-3", "2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Completed {
		t.Error("failing score should not complete the lesson")
	}
	if p.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", p.Attempts)
	}
}

func TestProgressCompletedIDs(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	now := time.Now()
	if err := repo.MarkCompleted(ctx, "user-4", "1", now); err != nil {
		t.Fatalf("mark 1: %v", err)
	}
	if err := repo.RecordQuiz(ctx, "user-4", "2", 90, true, now); err != nil {
		t.Fatalf("quiz 2: %v", err)
	}
	if err := repo.RecordQuiz(ctx, "user-4", "3", 50, false, now); err != nil {
		t.Fatalf("quiz 3: %v", err)
	}

	ids, err := repo.CompletedIDs(ctx, "user-4")
	if err != nil {
		t.Fatalf("completed ids: %v", err)
	}
	if !ids["1"] || !ids["2"] {
		t.Errorf("expected lessons 1 and 2 completed, got %v", ids)
	}
	if ids["3"] {
		t.Error("lesson 3 should not be completed")
	}
}

func TestProgressGetNotFound(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.ProgressRepo().Get(ctx, "nobody", "1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProgressIsolatedPerUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	now := time.Now()
	if err := repo.MarkCompleted(ctx, "user-5", "1", now); err != nil {
		t.Fatalf("mark: %v", err)
	}

	ids, err := repo.CompletedIDs(ctx, "user-6")
	if err != nil {
		t.Fatalf("completed ids: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected no completions for other user, got %v", ids)
	}
}
