package plan

import "github.com/barkoapp/barko/internal/llm"

// PlanSchema defines the JSON schema for learning plan generation.
//
// OpenAI's strict structured-output mode rejects schemas whose property
// keys are not all listed in required, and supports only a narrow keyword
// set, so every property here is required (quiz included, as an
// always-present array) and cardinality rules live elsewhere: option
// counts and the correctAnswer-must-match-an-option invariant are
// enforced post-parse by the generator.
var PlanSchema = &llm.Schema{
	Name:        "learning-plan",
	Description: "A personalized financial literacy learning plan",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"lessons": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":          map[string]any{"type": "string"},
						"title":       map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"category": map[string]any{
							"type": "string",
							"enum": []any{
								"Income Management", "Savings", "Budgeting", "Credit",
								"Debt", "Investing", "Retirement", "Taxes", "Real Estate",
							},
						},
						"difficulty":       map[string]any{"type": "integer", "description": "1 (easiest) to 5 (hardest)"},
						"estimatedMinutes": map[string]any{"type": "integer"},
						"content":          map[string]any{"type": "string"},
						"why":              map[string]any{"type": "string"},
						"quiz": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"id":       map[string]any{"type": "string"},
									"question": map[string]any{"type": "string"},
									"options": map[string]any{
										"type":        "array",
										"items":       map[string]any{"type": "string"},
										"description": "Exactly 4 answer options",
									},
									"correctAnswer": map[string]any{"type": "string"},
									"explanation":   map[string]any{"type": "string"},
								},
								"required":             []any{"id", "question", "options", "correctAnswer", "explanation"},
								"additionalProperties": false,
							},
						},
					},
					"required":             []any{"id", "title", "description", "category", "difficulty", "estimatedMinutes", "content", "why", "quiz"},
					"additionalProperties": false,
				},
			},
			"personalizedMessage":      map[string]any{"type": "string"},
			"estimatedCompletionWeeks": map[string]any{"type": "integer"},
		},
		"required":             []any{"lessons", "personalizedMessage", "estimatedCompletionWeeks"},
		"additionalProperties": false,
	},
}
