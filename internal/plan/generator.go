package plan

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/barkoapp/barko/internal/llm"
)

// Generator produces learning plans: an AI path backed by an LLM provider,
// with the deterministic template generator as recovery for any request,
// parse, or validation failure. Generate is total in practice since the
// fallback cannot fail.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

// NewGenerator creates a plan generator. A nil provider disables the AI
// path entirely; every plan then comes from the template generator.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// Generate builds a plan for the given onboarding answers. The returned
// error reports why the AI path was skipped or failed; the plan itself is
// always usable.
func (g *Generator) Generate(ctx context.Context, answers AnswerSet) (*LearningPlan, error) {
	if g.provider == nil {
		return Fallback(answers.Language, answers.IncomeRange, answers.FinancialGoals), nil
	}

	p, err := g.aiGenerate(ctx, answers)
	if err != nil {
		return Fallback(answers.Language, answers.IncomeRange, answers.FinancialGoals),
			fmt.Errorf("ai plan generation: %w", err)
	}
	return p, nil
}

func (g *Generator) aiGenerate(ctx context.Context, answers AnswerSet) (*LearningPlan, error) {
	ctx = llm.WithPurpose(ctx, "plan-gen")
	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	req := llm.Request{
		System: planSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPlanUserMessage(answers, g.cfg.LessonCount)},
		},
		Schema:      PlanSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	return ParsePlan(resp.Content)
}

// ParsePlan decodes untrusted completion output into a validated plan.
// Cleaning runs first (fence stripping, string-encoding unwrap), then a
// structural parse, then the invariants the schema cannot express.
func ParsePlan(raw json.RawMessage) (*LearningPlan, error) {
	cleaned := CleanResponse(string(raw))

	var p LearningPlan
	if err := json.Unmarshal([]byte(cleaned), &p); err != nil {
		return nil, fmt.Errorf("parse plan response: %w", err)
	}

	if len(p.Lessons) == 0 {
		return nil, fmt.Errorf("invalid plan: missing lessons array")
	}

	for i := range p.Lessons {
		lesson := &p.Lessons[i]
		if len(lesson.Quiz) == 0 {
			lesson.Quiz = PlaceholderQuiz(lesson.ID)
			continue
		}
		for _, q := range lesson.Quiz {
			if !answerInOptions(q) {
				return nil, fmt.Errorf("invalid plan: lesson %s question %s: correctAnswer not among options",
					lesson.ID, q.ID)
			}
		}
	}

	return &p, nil
}

func answerInOptions(q QuizQuestion) bool {
	for _, opt := range q.Options {
		if q.CorrectAnswer == opt {
			return true
		}
	}
	return false
}

// PlaceholderQuiz returns the generic three-question quiz patched onto
// lessons the model produced without one, so downstream code can rely on
// every AI lesson carrying a quiz.
func PlaceholderQuiz(lessonID string) []QuizQuestion {
	return []QuizQuestion{
		{
			ID:            lessonID + "-1",
			Question:      "What is the main concept of this lesson?",
			Options:       []string{"Option A", "Option B", "Option C", "Option D"},
			CorrectAnswer: "Option A",
			Explanation:   "This covers the key concept discussed in the lesson.",
		},
		{
			ID:            lessonID + "-2",
			Question:      "How can you apply this lesson?",
			Options:       []string{"Apply method 1", "Apply method 2", "Apply method 3", "Apply method 4"},
			CorrectAnswer: "Apply method 1",
			Explanation:   "This is the most practical way to use what you learned.",
		},
		{
			ID:            lessonID + "-3",
			Question:      "Why is this lesson important?",
			Options:       []string{"Reason 1", "Reason 2", "Reason 3", "Reason 4"},
			CorrectAnswer: "Reason 1",
			Explanation:   "This lesson helps you build stronger financial habits.",
		},
	}
}
