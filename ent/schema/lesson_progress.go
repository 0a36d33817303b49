package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonProgress records one learner's state for one lesson.
// One row per (user, lesson) pair, written via upsert.
type LessonProgress struct {
	ent.Schema
}

func (LessonProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Immutable(),
		field.String("lesson_id").
			Immutable(),
		field.Bool("completed").
			Default(false),
		field.Int("score").
			Optional().
			Nillable().
			Comment("Latest quiz score 0-100, nil until the first submission"),
		field.Int("attempts").
			Default(0).
			NonNegative().
			Comment("Number of quiz submissions"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (LessonProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "lesson_id").Unique(),
		index.Fields("user_id"),
	}
}
