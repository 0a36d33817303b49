// Package profile exposes learner profiles and runs onboarding.
package profile

import (
	"context"
	"fmt"

	"github.com/barkoapp/barko/internal/logger"
	"github.com/barkoapp/barko/internal/plan"
	"github.com/barkoapp/barko/internal/store"
)

// Service wraps the profile repository and the plan service so handlers
// never touch storage or generation directly.
type Service struct {
	profiles store.ProfileRepo
	plans    *plan.Service
	log      *logger.Logger
}

// NewService creates a profile service.
func NewService(profiles store.ProfileRepo, plans *plan.Service, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{profiles: profiles, plans: plans, log: log}
}

// Get returns the profile for the authenticated user, creating one on
// first contact.
func (s *Service) Get(ctx context.Context, userID, email string) (*store.Profile, error) {
	p, err := s.profiles.GetOrCreate(ctx, userID, email)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return p, nil
}

// Update applies a merge patch and returns the updated profile.
func (s *Service) Update(ctx context.Context, userID string, patch store.ProfilePatch) (*store.Profile, error) {
	p, err := s.profiles.Apply(ctx, userID, patch)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return p, nil
}

// Onboard generates a learning plan from the answers and stores both on
// the profile. An AI failure is not fatal: the deterministic fallback
// plan comes back with it and is stored anyway, so the only errors that
// surface are plan.ErrGenerationInProgress and storage failures.
func (s *Service) Onboard(ctx context.Context, userID, email string, answers plan.AnswerSet) (*plan.LearningPlan, error) {
	lp, err := s.plans.GeneratePlan(ctx, userID, answers)
	if lp == nil {
		return nil, err
	}
	if err != nil {
		s.log.Warn("ai plan generation failed, using fallback", "user_id", userID, "error", err.Error())
	}
	if _, err := s.profiles.SaveOnboarding(ctx, userID, email, answers, lp); err != nil {
		return nil, fmt.Errorf("save onboarding: %w", err)
	}
	return lp, nil
}
