package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GradeEvent records every scored answer, one row per question submission.
type GradeEvent struct {
	ent.Schema
}

func (GradeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (GradeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("UUID of the assessment session"),
		field.String("instrument").
			Comment("Scale administered: MMSE, MoCA, ADL"),
		field.String("question_id").
			Comment("Catalog question ID"),
		field.String("category").
			Default("").
			Comment("Question category within the scale"),
		field.Text("answer").
			Default("").
			Comment("Verbatim text of the submitted answer"),
		field.Int("score").
			Comment("Points awarded"),
		field.Int("max_score").
			Comment("Points available"),
		field.Text("feedback").
			Default("").
			Comment("Scoring feedback shown to the operator"),
		field.String("source").
			Comment("How the score was produced: serial_step, serial_chain, choice, external, grading_failed"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time to score the answer"),
	}
}

func (GradeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("instrument"),
		index.Fields("source"),
	}
}
