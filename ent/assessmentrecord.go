// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hwei-lab/cogscreen/ent/assessmentrecord"
)

// AssessmentRecord is the model entity for the AssessmentRecord schema.
type AssessmentRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID of the assessment session
	SessionID string `json:"session_id,omitempty"`
	// Scale administered: MMSE, MoCA, ADL
	Instrument string `json:"instrument,omitempty"`
	// PatientName holds the value of the "patient_name" field.
	PatientName string `json:"patient_name,omitempty"`
	// PatientAge holds the value of the "patient_age" field.
	PatientAge int `json:"patient_age,omitempty"`
	// PatientGender holds the value of the "patient_gender" field.
	PatientGender string `json:"patient_gender,omitempty"`
	// EducationYears holds the value of the "education_years" field.
	EducationYears int `json:"education_years,omitempty"`
	// Optional external patient identifier
	PatientID string `json:"patient_id,omitempty"`
	// RawScore holds the value of the "raw_score" field.
	RawScore int `json:"raw_score,omitempty"`
	// Raw score plus any education correction
	FinalScore int `json:"final_score,omitempty"`
	// MaxScore holds the value of the "max_score" field.
	MaxScore int `json:"max_score,omitempty"`
	// EducationAdjusted holds the value of the "education_adjusted" field.
	EducationAdjusted bool `json:"education_adjusted,omitempty"`
	// ADL items rated 3 or 4
	ImpairedItems int `json:"impaired_items,omitempty"`
	// Interpretation holds the value of the "interpretation" field.
	Interpretation string `json:"interpretation,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt time.Time `json:"completed_at,omitempty"`
	// Per-question answers as a JSON object
	Answers string `json:"answers,omitempty"`
	// Per-question scores as a JSON object
	Scores string `json:"scores,omitempty"`
	// Per-question feedback as a JSON object
	Feedback     string `json:"feedback,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AssessmentRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assessmentrecord.FieldEducationAdjusted:
			values[i] = new(sql.NullBool)
		case assessmentrecord.FieldID, assessmentrecord.FieldPatientAge, assessmentrecord.FieldEducationYears, assessmentrecord.FieldRawScore, assessmentrecord.FieldFinalScore, assessmentrecord.FieldMaxScore, assessmentrecord.FieldImpairedItems:
			values[i] = new(sql.NullInt64)
		case assessmentrecord.FieldSessionID, assessmentrecord.FieldInstrument, assessmentrecord.FieldPatientName, assessmentrecord.FieldPatientGender, assessmentrecord.FieldPatientID, assessmentrecord.FieldInterpretation, assessmentrecord.FieldAnswers, assessmentrecord.FieldScores, assessmentrecord.FieldFeedback:
			values[i] = new(sql.NullString)
		case assessmentrecord.FieldStartedAt, assessmentrecord.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AssessmentRecord fields.
func (_m *AssessmentRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assessmentrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case assessmentrecord.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case assessmentrecord.FieldInstrument:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instrument", values[i])
			} else if value.Valid {
				_m.Instrument = value.String
			}
		case assessmentrecord.FieldPatientName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_name", values[i])
			} else if value.Valid {
				_m.PatientName = value.String
			}
		case assessmentrecord.FieldPatientAge:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field patient_age", values[i])
			} else if value.Valid {
				_m.PatientAge = int(value.Int64)
			}
		case assessmentrecord.FieldPatientGender:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_gender", values[i])
			} else if value.Valid {
				_m.PatientGender = value.String
			}
		case assessmentrecord.FieldEducationYears:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field education_years", values[i])
			} else if value.Valid {
				_m.EducationYears = int(value.Int64)
			}
		case assessmentrecord.FieldPatientID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value.Valid {
				_m.PatientID = value.String
			}
		case assessmentrecord.FieldRawScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field raw_score", values[i])
			} else if value.Valid {
				_m.RawScore = int(value.Int64)
			}
		case assessmentrecord.FieldFinalScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field final_score", values[i])
			} else if value.Valid {
				_m.FinalScore = int(value.Int64)
			}
		case assessmentrecord.FieldMaxScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_score", values[i])
			} else if value.Valid {
				_m.MaxScore = int(value.Int64)
			}
		case assessmentrecord.FieldEducationAdjusted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field education_adjusted", values[i])
			} else if value.Valid {
				_m.EducationAdjusted = value.Bool
			}
		case assessmentrecord.FieldImpairedItems:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field impaired_items", values[i])
			} else if value.Valid {
				_m.ImpairedItems = int(value.Int64)
			}
		case assessmentrecord.FieldInterpretation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field interpretation", values[i])
			} else if value.Valid {
				_m.Interpretation = value.String
			}
		case assessmentrecord.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case assessmentrecord.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = value.Time
			}
		case assessmentrecord.FieldAnswers:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answers", values[i])
			} else if value.Valid {
				_m.Answers = value.String
			}
		case assessmentrecord.FieldScores:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scores", values[i])
			} else if value.Valid {
				_m.Scores = value.String
			}
		case assessmentrecord.FieldFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback", values[i])
			} else if value.Valid {
				_m.Feedback = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AssessmentRecord.
// This includes values selected through modifiers, order, etc.
func (_m *AssessmentRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AssessmentRecord.
// Note that you need to call AssessmentRecord.Unwrap() before calling this method if this AssessmentRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AssessmentRecord) Update() *AssessmentRecordUpdateOne {
	return NewAssessmentRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AssessmentRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AssessmentRecord) Unwrap() *AssessmentRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AssessmentRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AssessmentRecord) String() string {
	var builder strings.Builder
	builder.WriteString("AssessmentRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("instrument=")
	builder.WriteString(_m.Instrument)
	builder.WriteString(", ")
	builder.WriteString("patient_name=")
	builder.WriteString(_m.PatientName)
	builder.WriteString(", ")
	builder.WriteString("patient_age=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientAge))
	builder.WriteString(", ")
	builder.WriteString("patient_gender=")
	builder.WriteString(_m.PatientGender)
	builder.WriteString(", ")
	builder.WriteString("education_years=")
	builder.WriteString(fmt.Sprintf("%v", _m.EducationYears))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(_m.PatientID)
	builder.WriteString(", ")
	builder.WriteString("raw_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawScore))
	builder.WriteString(", ")
	builder.WriteString("final_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinalScore))
	builder.WriteString(", ")
	builder.WriteString("max_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxScore))
	builder.WriteString(", ")
	builder.WriteString("education_adjusted=")
	builder.WriteString(fmt.Sprintf("%v", _m.EducationAdjusted))
	builder.WriteString(", ")
	builder.WriteString("impaired_items=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImpairedItems))
	builder.WriteString(", ")
	builder.WriteString("interpretation=")
	builder.WriteString(_m.Interpretation)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("completed_at=")
	builder.WriteString(_m.CompletedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("answers=")
	builder.WriteString(_m.Answers)
	builder.WriteString(", ")
	builder.WriteString("scores=")
	builder.WriteString(_m.Scores)
	builder.WriteString(", ")
	builder.WriteString("feedback=")
	builder.WriteString(_m.Feedback)
	builder.WriteByte(')')
	return builder.String()
}

// AssessmentRecords is a parsable slice of AssessmentRecord.
type AssessmentRecords []*AssessmentRecord
