package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/barkoapp/barko/internal/llm"
	"github.com/barkoapp/barko/internal/plan"
	"github.com/barkoapp/barko/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	// Nil provider: every plan comes from the deterministic generator.
	gen := plan.NewGenerator(nil, plan.DefaultConfig())
	return NewService(s.ProfileRepo(), plan.NewService(gen), nil), s
}

func TestGetCreatesOnFirstContact(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	p, err := svc.Get(ctx, "user-1", "u1@example.com")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.UserID != "user-1" || p.Email != "u1@example.com" {
		t.Errorf("profile = %q/%q, want user-1/u1@example.com", p.UserID, p.Email)
	}
	if p.OnboardingCompleted {
		t.Error("fresh profile marked onboarded")
	}
}

func TestUpdateMergePatch(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	if _, err := svc.Get(ctx, "user-2", "u2@example.com"); err != nil {
		t.Fatalf("Get: %v", err)
	}

	simple := true
	p, err := svc.Update(ctx, "user-2", store.ProfilePatch{SimpleMode: &simple})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !p.SimpleMode {
		t.Error("simple_mode not applied")
	}
	if p.Email != "u2@example.com" {
		t.Errorf("email = %q, want untouched", p.Email)
	}
}

func TestOnboardStoresPlanAndAnswers(t *testing.T) {
	ctx := context.Background()
	svc, s := newTestService(t)

	answers := plan.AnswerSet{
		Country:        "FR",
		Language:       "fr",
		AgeGroup:       "25-34",
		IncomeRange:    "30k_60k",
		CulturalValue:  "family",
		FinancialGoals: "pay off debt",
	}
	lp, err := svc.Onboard(ctx, "user-3", "u3@example.com", answers)
	if err != nil {
		t.Fatalf("Onboard: %v", err)
	}
	if len(lp.Lessons) != 10 {
		t.Fatalf("lessons = %d, want 10", len(lp.Lessons))
	}

	p, err := s.ProfileRepo().Get(ctx, "user-3")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !p.OnboardingCompleted {
		t.Error("onboarding not marked complete")
	}
	if p.Language != "fr" || p.FinancialGoals != "pay off debt" {
		t.Errorf("answers not stored: language=%q goals=%q", p.Language, p.FinancialGoals)
	}
	if p.LearningPlan == nil || len(p.LearningPlan.Lessons) != 10 {
		t.Error("plan not stored on profile")
	}
}

// blockingProvider parks Generate until released, so a second request
// for the same user can be issued while the first is in flight.
type blockingProvider struct {
	started chan struct{}
	release chan struct{}
}

func (p *blockingProvider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	close(p.started)
	<-p.release
	return nil, &llm.ErrProviderUnavailable{}
}

func (p *blockingProvider) ModelID() string { return "blocking" }

func TestOnboardRejectsConcurrentGeneration(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	prov := &blockingProvider{started: make(chan struct{}), release: make(chan struct{})}
	gen := plan.NewGenerator(prov, plan.DefaultConfig())
	svc := NewService(s.ProfileRepo(), plan.NewService(gen), nil)

	answers := plan.AnswerSet{IncomeRange: "30k_60k", FinancialGoals: "save more"}
	done := make(chan error, 1)
	go func() {
		_, err := svc.Onboard(ctx, "user-4", "u4@example.com", answers)
		done <- err
	}()

	<-prov.started
	if _, err := svc.Onboard(ctx, "user-4", "u4@example.com", answers); !errors.Is(err, plan.ErrGenerationInProgress) {
		t.Errorf("concurrent onboard err = %v, want ErrGenerationInProgress", err)
	}

	close(prov.release)
	if err := <-done; err != nil {
		t.Fatalf("first onboard: %v", err)
	}
}
