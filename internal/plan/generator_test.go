package plan

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/barkoapp/barko/internal/llm"
)

const validPlanJSON = `{
	"lessons": [
		{
			"id": "ai-1",
			"title": "Side Income Basics",
			"description": "Find your first extra income stream",
			"category": "Income Management",
			"difficulty": 2,
			"estimatedMinutes": 12,
			"why": "Extra income accelerates every other goal.",
			"quiz": [
				{
					"id": "ai-1-1",
					"question": "What is a side income?",
					"options": ["Extra earnings", "A loan", "A tax", "A budget"],
					"correctAnswer": "Extra earnings",
					"explanation": "Side income is money earned beyond your main job."
				}
			]
		}
	],
	"estimatedCompletionWeeks": 2,
	"personalizedMessage": "A plan built around your goals."
}`

func testAnswers() AnswerSet {
	return AnswerSet{
		Language:       "en",
		IncomeRange:    "30k_60k",
		FinancialGoals: "earn more",
	}
}

func TestGenerateUsesAIPlan(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validPlanJSON)})
	gen := NewGenerator(mock, DefaultConfig())

	p, err := gen.Generate(context.Background(), testAnswers())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(p.Lessons) != 1 || p.Lessons[0].ID != "ai-1" {
		t.Errorf("plan = %+v, want the AI lesson", p.Lessons)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
	if mock.Calls[0].Schema == nil {
		t.Error("request carried no schema")
	}
}

func TestGenerateFallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	gen := NewGenerator(mock, DefaultConfig())

	p, err := gen.Generate(context.Background(), testAnswers())
	if err == nil {
		t.Error("expected an error describing the AI failure")
	}
	if p == nil || len(p.Lessons) != 10 {
		t.Fatalf("fallback plan missing: %+v", p)
	}
	if p.Lessons[0].ID != "1" {
		t.Errorf("lesson id = %q, want template plan", p.Lessons[0].ID)
	}
}

func TestGenerateFallsBackOnGarbage(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`this is not json`)})
	gen := NewGenerator(mock, DefaultConfig())

	p, err := gen.Generate(context.Background(), testAnswers())
	if err == nil {
		t.Error("expected a parse error")
	}
	if len(p.Lessons) != 10 {
		t.Errorf("fallback lessons = %d, want 10", len(p.Lessons))
	}
}

func TestGenerateNilProviderSkipsAI(t *testing.T) {
	gen := NewGenerator(nil, DefaultConfig())
	p, err := gen.Generate(context.Background(), testAnswers())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(p.Lessons) != 10 {
		t.Errorf("lessons = %d, want template plan", len(p.Lessons))
	}
}

func TestParsePlanFencedResponse(t *testing.T) {
	fenced := "```json\n" + validPlanJSON + "\n```"
	p, err := ParsePlan(json.RawMessage(fenced))
	if err != nil {
		t.Fatalf("ParsePlan: %v", err)
	}
	if p.Lessons[0].ID != "ai-1" {
		t.Errorf("lesson id = %q", p.Lessons[0].ID)
	}
}

func TestParsePlanEmptyLessons(t *testing.T) {
	_, err := ParsePlan(json.RawMessage(`{"lessons": []}`))
	if err == nil || !strings.Contains(err.Error(), "missing lessons") {
		t.Errorf("err = %v, want missing lessons", err)
	}
}

func TestParsePlanPatchesMissingQuiz(t *testing.T) {
	raw := `{"lessons":[{"id":"x","title":"T","description":"D","category":"Savings","difficulty":1,"estimatedMinutes":5,"why":"W"}]}`
	p, err := ParsePlan(json.RawMessage(raw))
	if err != nil {
		t.Fatalf("ParsePlan: %v", err)
	}
	q := p.Lessons[0].Quiz
	if len(q) != 3 {
		t.Fatalf("patched quiz = %d questions, want 3", len(q))
	}
	if q[0].ID != "x-1" || q[2].ID != "x-3" {
		t.Errorf("placeholder ids = %q..%q", q[0].ID, q[2].ID)
	}
	for _, question := range q {
		if !answerInOptions(question) {
			t.Errorf("placeholder question %s: correctAnswer not among options", question.ID)
		}
	}
}

func TestParsePlanRejectsBadCorrectAnswer(t *testing.T) {
	raw := `{"lessons":[{"id":"x","title":"T","description":"D","category":"Savings","difficulty":1,"estimatedMinutes":5,"why":"W",
		"quiz":[{"id":"x-1","question":"Q","options":["A","B"],"correctAnswer":"C","explanation":"E"}]}]}`
	_, err := ParsePlan(json.RawMessage(raw))
	if err == nil || !strings.Contains(err.Error(), "correctAnswer") {
		t.Errorf("err = %v, want correctAnswer violation", err)
	}
}

func TestGenerateDiscardsBadCorrectAnswerToFallback(t *testing.T) {
	raw := `{"lessons":[{"id":"x","title":"T","description":"D","category":"Savings","difficulty":1,"estimatedMinutes":5,"why":"W",
		"quiz":[{"id":"x-1","question":"Q","options":["A","B"],"correctAnswer":"C","explanation":"E"}]}]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(raw)})
	gen := NewGenerator(mock, DefaultConfig())

	p, err := gen.Generate(context.Background(), testAnswers())
	if err == nil {
		t.Error("expected validation error")
	}
	if len(p.Lessons) != 10 {
		t.Errorf("fallback lessons = %d, want 10", len(p.Lessons))
	}
}

func TestServiceGuardsConcurrentGeneration(t *testing.T) {
	gen := NewGenerator(nil, DefaultConfig())
	svc := NewService(gen)

	// Mark a generation in flight by hand; the guard keys on the user id.
	svc.mu.Lock()
	svc.inFlight["busy-user"] = struct{}{}
	svc.mu.Unlock()

	_, err := svc.GeneratePlan(context.Background(), "busy-user", testAnswers())
	if !errors.Is(err, ErrGenerationInProgress) {
		t.Errorf("err = %v, want ErrGenerationInProgress", err)
	}

	// Other users are unaffected.
	p, err := svc.GeneratePlan(context.Background(), "free-user", testAnswers())
	if err != nil || len(p.Lessons) != 10 {
		t.Errorf("free user: plan=%v err=%v", p, err)
	}
}
