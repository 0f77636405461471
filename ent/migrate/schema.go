// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssessmentRecordsColumns holds the columns for the "assessment_records" table.
	AssessmentRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "instrument", Type: field.TypeString},
		{Name: "patient_name", Type: field.TypeString},
		{Name: "patient_age", Type: field.TypeInt},
		{Name: "patient_gender", Type: field.TypeString, Default: ""},
		{Name: "education_years", Type: field.TypeInt, Default: 0},
		{Name: "patient_id", Type: field.TypeString, Default: ""},
		{Name: "raw_score", Type: field.TypeInt},
		{Name: "final_score", Type: field.TypeInt},
		{Name: "max_score", Type: field.TypeInt},
		{Name: "education_adjusted", Type: field.TypeBool, Default: false},
		{Name: "impaired_items", Type: field.TypeInt, Default: 0},
		{Name: "interpretation", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime},
		{Name: "answers", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "scores", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "feedback", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// AssessmentRecordsTable holds the schema information for the "assessment_records" table.
	AssessmentRecordsTable = &schema.Table{
		Name:       "assessment_records",
		Columns:    AssessmentRecordsColumns,
		PrimaryKey: []*schema.Column{AssessmentRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentrecord_instrument",
				Unique:  false,
				Columns: []*schema.Column{AssessmentRecordsColumns[2]},
			},
			{
				Name:    "assessmentrecord_completed_at",
				Unique:  false,
				Columns: []*schema.Column{AssessmentRecordsColumns[15]},
			},
		},
	}
	// GradeEventsColumns holds the columns for the "grade_events" table.
	GradeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "instrument", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Default: ""},
		{Name: "answer", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "score", Type: field.TypeInt},
		{Name: "max_score", Type: field.TypeInt},
		{Name: "feedback", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "source", Type: field.TypeString},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
	}
	// GradeEventsTable holds the schema information for the "grade_events" table.
	GradeEventsTable = &schema.Table{
		Name:       "grade_events",
		Columns:    GradeEventsColumns,
		PrimaryKey: []*schema.Column{GradeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gradeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{GradeEventsColumns[1]},
			},
			{
				Name:    "gradeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{GradeEventsColumns[2]},
			},
			{
				Name:    "gradeevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{GradeEventsColumns[3]},
			},
			{
				Name:    "gradeevent_instrument",
				Unique:  false,
				Columns: []*schema.Column{GradeEventsColumns[4]},
			},
			{
				Name:    "gradeevent_source",
				Unique:  false,
				Columns: []*schema.Column{GradeEventsColumns[11]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentRecordsTable,
		GradeEventsTable,
		LlmRequestEventsTable,
	}
)

func init() {
}
