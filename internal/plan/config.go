package plan

import "time"

// Config holds plan generation settings.
type Config struct {
	// LessonCount is the number of lessons requested from the AI path.
	// The deterministic fallback always produces ten.
	LessonCount int
	MaxTokens   int
	Temperature float64

	// Timeout bounds a single AI generation attempt end to end.
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults for plan generation.
func DefaultConfig() Config {
	return Config{
		LessonCount: 5,
		MaxTokens:   4000,
		Temperature: 0.5,
		Timeout:     30 * time.Second,
	}
}
