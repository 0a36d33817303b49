package plan

import (
	"context"
	"errors"
	"sync"
)

// ErrGenerationInProgress is returned when a plan generation is already
// running for the same user. Onboarding double-submits hit this instead of
// producing duplicate plans.
var ErrGenerationInProgress = errors.New("plan generation already in progress for this user")

// Service serializes plan generation per user on top of a Generator.
type Service struct {
	gen *Generator

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewService creates a plan service.
func NewService(gen *Generator) *Service {
	return &Service{gen: gen, inFlight: make(map[string]struct{})}
}

// GeneratePlan runs plan generation for userID, guarding against a second
// concurrent request for the same user. The returned error carries the AI
// failure when the fallback was used; the plan is never nil unless the
// guard rejected the call.
func (s *Service) GeneratePlan(ctx context.Context, userID string, answers AnswerSet) (*LearningPlan, error) {
	s.mu.Lock()
	if _, busy := s.inFlight[userID]; busy {
		s.mu.Unlock()
		return nil, ErrGenerationInProgress
	}
	s.inFlight[userID] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, userID)
		s.mu.Unlock()
	}()

	return s.gen.Generate(ctx, answers)
}
