package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentRecord is the persisted summary of one completed assessment.
// Unlike the event tables it stores the final aggregate, so past results
// can be listed without replaying grade events.
type AssessmentRecord struct {
	ent.Schema
}

func (AssessmentRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			Immutable().
			Comment("UUID of the assessment session"),
		field.String("instrument").
			Comment("Scale administered: MMSE, MoCA, ADL"),
		field.String("patient_name"),
		field.Int("patient_age"),
		field.String("patient_gender").
			Default(""),
		field.Int("education_years").
			Default(0),
		field.String("patient_id").
			Default("").
			Comment("Optional external patient identifier"),
		field.Int("raw_score"),
		field.Int("final_score").
			Comment("Raw score plus any education correction"),
		field.Int("max_score"),
		field.Bool("education_adjusted").
			Default(false),
		field.Int("impaired_items").
			Default(0).
			Comment("ADL items rated 3 or 4"),
		field.String("interpretation"),
		field.Time("started_at"),
		field.Time("completed_at"),
		field.Text("answers").
			Default("").
			Comment("Per-question answers as a JSON object"),
		field.Text("scores").
			Default("").
			Comment("Per-question scores as a JSON object"),
		field.Text("feedback").
			Default("").
			Comment("Per-question feedback as a JSON object"),
	}
}

func (AssessmentRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("instrument"),
		index.Fields("completed_at"),
	}
}
