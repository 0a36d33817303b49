package store

import (
	"context"
	"fmt"
	"time"

	"github.com/barkoapp/barko/ent"
	"github.com/barkoapp/barko/ent/lessonprogress"
)

// progressRepo implements ProgressRepo backed by ent.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) MarkCompleted(ctx context.Context, userID, lessonID string, at time.Time) error {
	err := r.client.LessonProgress.Create().
		SetUserID(userID).
		SetLessonID(lessonID).
		SetCompleted(true).
		SetCompletedAt(at).
		OnConflictColumns(lessonprogress.FieldUserID, lessonprogress.FieldLessonID).
		Update(func(u *ent.LessonProgressUpsert) {
			u.SetCompleted(true)
			u.SetCompletedAt(at)
			u.SetUpdatedAt(time.Now())
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert completion: %w", err)
	}
	return nil
}

func (r *progressRepo) RecordQuiz(ctx context.Context, userID, lessonID string, score int, passed bool, at time.Time) error {
	create := r.client.LessonProgress.Create().
		SetUserID(userID).
		SetLessonID(lessonID).
		SetScore(score).
		SetAttempts(1)
	if passed {
		create.SetCompleted(true).SetCompletedAt(at)
	}

	err := create.
		OnConflictColumns(lessonprogress.FieldUserID, lessonprogress.FieldLessonID).
		Update(func(u *ent.LessonProgressUpsert) {
			u.SetScore(score)
			u.AddAttempts(1)
			u.SetUpdatedAt(time.Now())
			if passed {
				u.SetCompleted(true)
				u.SetCompletedAt(at)
			} else {
				// A failing retake revokes completion.
				u.SetCompleted(false)
				u.ClearCompletedAt()
			}
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert quiz result: %w", err)
	}
	return nil
}

func (r *progressRepo) Get(ctx context.Context, userID, lessonID string) (*LessonProgress, error) {
	row, err := r.client.LessonProgress.Query().
		Where(
			lessonprogress.UserID(userID),
			lessonprogress.LessonID(lessonID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	p := progressFromRow(row)
	return &p, nil
}

func (r *progressRepo) List(ctx context.Context, userID string) ([]LessonProgress, error) {
	rows, err := r.client.LessonProgress.Query().
		Where(lessonprogress.UserID(userID)).
		Order(ent.Asc(lessonprogress.FieldLessonID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	out := make([]LessonProgress, len(rows))
	for i, row := range rows {
		out[i] = progressFromRow(row)
	}
	return out, nil
}

func (r *progressRepo) CompletedIDs(ctx context.Context, userID string) (map[string]bool, error) {
	ids, err := r.client.LessonProgress.Query().
		Where(
			lessonprogress.UserID(userID),
			lessonprogress.Completed(true),
		).
		Select(lessonprogress.FieldLessonID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completed ids: %w", err)
	}

	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

func progressFromRow(row *ent.LessonProgress) LessonProgress {
	return LessonProgress{
		UserID:      row.UserID,
		LessonID:    row.LessonID,
		Completed:   row.Completed,
		Score:       row.Score,
		Attempts:    row.Attempts,
		CompletedAt: row.CompletedAt,
	}
}
