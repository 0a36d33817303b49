package store

import (
	"context"
	"fmt"
	"time"

	"github.com/barkoapp/barko/ent"
	"github.com/barkoapp/barko/ent/profile"
	"github.com/barkoapp/barko/internal/plan"
)

// profileRepo implements ProfileRepo backed by ent.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) GetOrCreate(ctx context.Context, userID, email string) (*Profile, error) {
	// Insert-or-ignore keeps concurrent first requests for the same user
	// from racing; the subsequent read sees whichever row won.
	err := r.client.Profile.Create().
		SetUserID(userID).
		SetEmail(email).
		OnConflictColumns(profile.FieldUserID).
		Ignore().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	return r.Get(ctx, userID)
}

func (r *profileRepo) Get(ctx context.Context, userID string) (*Profile, error) {
	row, err := r.client.Profile.Query().
		Where(profile.UserID(userID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return profileFromRow(row), nil
}

func (r *profileRepo) Apply(ctx context.Context, userID string, patch ProfilePatch) (*Profile, error) {
	upd := r.client.Profile.Update().Where(profile.UserID(userID))

	if patch.FullName != nil {
		upd.SetFullName(*patch.FullName)
	}
	if patch.Country != nil {
		upd.SetCountry(*patch.Country)
	}
	if patch.Language != nil {
		upd.SetLanguage(*patch.Language)
	}
	if patch.AgeGroup != nil {
		upd.SetAgeGroup(*patch.AgeGroup)
	}
	if patch.IncomeRange != nil {
		upd.SetIncomeRange(*patch.IncomeRange)
	}
	if patch.CulturalValue != nil {
		upd.SetCulturalValue(*patch.CulturalValue)
	}
	if patch.FinancialGoals != nil {
		upd.SetFinancialGoals(*patch.FinancialGoals)
	}
	if patch.SimpleMode != nil {
		upd.SetSimpleMode(*patch.SimpleMode)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}

	return r.Get(ctx, userID)
}

func (r *profileRepo) SaveOnboarding(ctx context.Context, userID, email string, answers plan.AnswerSet, p *plan.LearningPlan) (*Profile, error) {
	err := r.client.Profile.Create().
		SetUserID(userID).
		SetEmail(email).
		SetCountry(answers.Country).
		SetLanguage(answers.Language).
		SetAgeGroup(answers.AgeGroup).
		SetIncomeRange(answers.IncomeRange).
		SetCulturalValue(answers.CulturalValue).
		SetFinancialGoals(answers.FinancialGoals).
		SetLearningPlan(p).
		SetOnboardingCompleted(true).
		OnConflictColumns(profile.FieldUserID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("upsert onboarding: %w", err)
	}

	return r.Get(ctx, userID)
}

func (r *profileRepo) SavePlan(ctx context.Context, userID string, p *plan.LearningPlan) error {
	n, err := r.client.Profile.Update().
		Where(profile.UserID(userID)).
		SetLearningPlan(p).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *profileRepo) AddPoints(ctx context.Context, userID string, delta int) error {
	n, err := r.client.Profile.Update().
		Where(profile.UserID(userID)).
		AddPoints(delta).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("add points: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *profileRepo) SetStreak(ctx context.Context, userID string, days int, lastActive time.Time, prev *time.Time) (bool, error) {
	// Compare-and-swap on last_active so two concurrent completion events
	// can't both apply a stale streak computation.
	upd := r.client.Profile.Update().
		Where(profile.UserID(userID))
	if prev == nil {
		upd.Where(profile.LastActiveIsNil())
	} else {
		upd.Where(profile.LastActiveEQ(*prev))
	}

	n, err := upd.
		SetStreakDays(days).
		SetLastActive(lastActive).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("set streak: %w", err)
	}
	return n > 0, nil
}

func profileFromRow(row *ent.Profile) *Profile {
	return &Profile{
		UserID:              row.UserID,
		Email:               row.Email,
		FullName:            row.FullName,
		Country:             row.Country,
		Language:            row.Language,
		AgeGroup:            row.AgeGroup,
		IncomeRange:         row.IncomeRange,
		CulturalValue:       row.CulturalValue,
		FinancialGoals:      row.FinancialGoals,
		LearningPlan:        row.LearningPlan,
		OnboardingCompleted: row.OnboardingCompleted,
		SimpleMode:          row.SimpleMode,
		Points:              row.Points,
		StreakDays:          row.StreakDays,
		LastActive:          row.LastActive,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}
}
