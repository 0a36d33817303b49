package llm

import "context"

type purposeKeyType struct{}

var purposeKey purposeKeyType

// WithPurpose tags the context with a label ("plan-gen", ...) that the
// logging decorator records against each request event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey).(string); ok {
		return p
	}
	return "unknown"
}
