package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func lessonSchema() *Schema {
	return &Schema{
		Name:        "test-lesson",
		Description: "A single lesson",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title":      map[string]any{"type": "string"},
				"difficulty": map[string]any{"type": "integer", "minimum": 1},
				"category":   map[string]any{"type": "string", "enum": []any{"Saving", "Budgeting", "Investing"}},
			},
			"required": []any{"title", "difficulty"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid with all fields", `{"title":"Emergency Funds","difficulty":2,"category":"Saving"}`, false},
		{"valid without optional field", `{"title":"Budgeting Basics","difficulty":1}`, false},
		{"missing required field", `{"title":"Budgeting Basics"}`, true},
		{"wrong type", `{"title":"Budgeting Basics","difficulty":"easy"}`, true},
		{"enum violation", `{"title":"Crypto Day Trading","difficulty":5,"category":"Gambling"}`, true},
		{"malformed JSON", `{not json}`, true},
		{"empty body", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(lessonSchema(), json.RawMessage(tt.raw))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				var invErr *ErrInvalidResponse
				if !errors.As(err, &invErr) {
					t.Fatalf("expected ErrInvalidResponse, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("nil schema should accept everything, got: %v", err)
	}
}

func TestValidateResponseNested(t *testing.T) {
	schema := &Schema{
		Name:        "test-nested",
		Description: "Nested structures",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"lesson": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{"type": "string"},
					},
					"required": []any{"title"},
				},
				"scores": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "integer"},
				},
			},
			"required": []any{"lesson", "scores"},
		},
	}

	valid := json.RawMessage(`{"lesson":{"title":"Debt Management"},"scores":[70,85,100]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("valid nested doc rejected: %v", err)
	}

	invalid := json.RawMessage(`{"lesson":{"title":"Debt Management"},"scores":["not","ints"]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
