// Code generated by ent, DO NOT EDIT.

package assessmentrecord

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the assessmentrecord type in the database.
	Label = "assessment_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldInstrument holds the string denoting the instrument field in the database.
	FieldInstrument = "instrument"
	// FieldPatientName holds the string denoting the patient_name field in the database.
	FieldPatientName = "patient_name"
	// FieldPatientAge holds the string denoting the patient_age field in the database.
	FieldPatientAge = "patient_age"
	// FieldPatientGender holds the string denoting the patient_gender field in the database.
	FieldPatientGender = "patient_gender"
	// FieldEducationYears holds the string denoting the education_years field in the database.
	FieldEducationYears = "education_years"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldRawScore holds the string denoting the raw_score field in the database.
	FieldRawScore = "raw_score"
	// FieldFinalScore holds the string denoting the final_score field in the database.
	FieldFinalScore = "final_score"
	// FieldMaxScore holds the string denoting the max_score field in the database.
	FieldMaxScore = "max_score"
	// FieldEducationAdjusted holds the string denoting the education_adjusted field in the database.
	FieldEducationAdjusted = "education_adjusted"
	// FieldImpairedItems holds the string denoting the impaired_items field in the database.
	FieldImpairedItems = "impaired_items"
	// FieldInterpretation holds the string denoting the interpretation field in the database.
	FieldInterpretation = "interpretation"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldAnswers holds the string denoting the answers field in the database.
	FieldAnswers = "answers"
	// FieldScores holds the string denoting the scores field in the database.
	FieldScores = "scores"
	// FieldFeedback holds the string denoting the feedback field in the database.
	FieldFeedback = "feedback"
	// Table holds the table name of the assessmentrecord in the database.
	Table = "assessment_records"
)

// Columns holds all SQL columns for assessmentrecord fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldInstrument,
	FieldPatientName,
	FieldPatientAge,
	FieldPatientGender,
	FieldEducationYears,
	FieldPatientID,
	FieldRawScore,
	FieldFinalScore,
	FieldMaxScore,
	FieldEducationAdjusted,
	FieldImpairedItems,
	FieldInterpretation,
	FieldStartedAt,
	FieldCompletedAt,
	FieldAnswers,
	FieldScores,
	FieldFeedback,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPatientGender holds the default value on creation for the "patient_gender" field.
	DefaultPatientGender string
	// DefaultEducationYears holds the default value on creation for the "education_years" field.
	DefaultEducationYears int
	// DefaultPatientID holds the default value on creation for the "patient_id" field.
	DefaultPatientID string
	// DefaultEducationAdjusted holds the default value on creation for the "education_adjusted" field.
	DefaultEducationAdjusted bool
	// DefaultImpairedItems holds the default value on creation for the "impaired_items" field.
	DefaultImpairedItems int
	// DefaultAnswers holds the default value on creation for the "answers" field.
	DefaultAnswers string
	// DefaultScores holds the default value on creation for the "scores" field.
	DefaultScores string
	// DefaultFeedback holds the default value on creation for the "feedback" field.
	DefaultFeedback string
)

// OrderOption defines the ordering options for the AssessmentRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByInstrument orders the results by the instrument field.
func ByInstrument(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstrument, opts...).ToFunc()
}

// ByPatientName orders the results by the patient_name field.
func ByPatientName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientName, opts...).ToFunc()
}

// ByPatientAge orders the results by the patient_age field.
func ByPatientAge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientAge, opts...).ToFunc()
}

// ByPatientGender orders the results by the patient_gender field.
func ByPatientGender(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientGender, opts...).ToFunc()
}

// ByEducationYears orders the results by the education_years field.
func ByEducationYears(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEducationYears, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByRawScore orders the results by the raw_score field.
func ByRawScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawScore, opts...).ToFunc()
}

// ByFinalScore orders the results by the final_score field.
func ByFinalScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalScore, opts...).ToFunc()
}

// ByMaxScore orders the results by the max_score field.
func ByMaxScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxScore, opts...).ToFunc()
}

// ByEducationAdjusted orders the results by the education_adjusted field.
func ByEducationAdjusted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEducationAdjusted, opts...).ToFunc()
}

// ByImpairedItems orders the results by the impaired_items field.
func ByImpairedItems(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImpairedItems, opts...).ToFunc()
}

// ByInterpretation orders the results by the interpretation field.
func ByInterpretation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInterpretation, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByAnswers orders the results by the answers field.
func ByAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswers, opts...).ToFunc()
}

// ByScores orders the results by the scores field.
func ByScores(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScores, opts...).ToFunc()
}

// ByFeedback orders the results by the feedback field.
func ByFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeedback, opts...).ToFunc()
}
