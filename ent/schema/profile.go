package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/barkoapp/barko/internal/plan"
)

// Profile holds a learner's identity, onboarding answers, and their
// generated learning plan.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Unique().
			Immutable().
			Comment("External identity from the auth token subject"),
		field.String("email").
			Default(""),
		field.String("full_name").
			Default(""),
		field.String("country").
			Default(""),
		field.String("language").
			Default("en").
			Comment("Locale for plan generation: en, fr, es, de"),
		field.String("age_group").
			Default(""),
		field.String("income_range").
			Default(""),
		field.String("cultural_value").
			Default(""),
		field.String("financial_goals").
			Default(""),
		field.JSON("learning_plan", &plan.LearningPlan{}).
			Optional().
			Comment("Current plan, AI-generated or deterministic fallback"),
		field.Bool("onboarding_completed").
			Default(false),
		field.Bool("simple_mode").
			Default(false).
			Comment("Simplified lesson content for low-literacy readers"),
		field.Int("points").
			Default(0).
			NonNegative(),
		field.Int("streak_days").
			Default(0).
			NonNegative(),
		field.Time("last_active").
			Optional().
			Nillable().
			Comment("Date of the learner's last progress action"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
