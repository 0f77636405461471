// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AssessmentRecord is the predicate function for assessmentrecord builders.
type AssessmentRecord func(*sql.Selector)

// GradeEvent is the predicate function for gradeevent builders.
type GradeEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)
