// Code generated by ent, DO NOT EDIT.

package assessmentrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hwei-lab/cogscreen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldSessionID, v))
}

// Instrument applies equality check predicate on the "instrument" field. It's identical to InstrumentEQ.
func Instrument(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldInstrument, v))
}

// PatientName applies equality check predicate on the "patient_name" field. It's identical to PatientNameEQ.
func PatientName(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldPatientName, v))
}

// PatientAge applies equality check predicate on the "patient_age" field. It's identical to PatientAgeEQ.
func PatientAge(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldPatientAge, v))
}

// PatientGender applies equality check predicate on the "patient_gender" field. It's identical to PatientGenderEQ.
func PatientGender(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldPatientGender, v))
}

// EducationYears applies equality check predicate on the "education_years" field. It's identical to EducationYearsEQ.
func EducationYears(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldEducationYears, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldPatientID, v))
}

// RawScore applies equality check predicate on the "raw_score" field. It's identical to RawScoreEQ.
func RawScore(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldRawScore, v))
}

// FinalScore applies equality check predicate on the "final_score" field. It's identical to FinalScoreEQ.
func FinalScore(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldFinalScore, v))
}

// MaxScore applies equality check predicate on the "max_score" field. It's identical to MaxScoreEQ.
func MaxScore(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldMaxScore, v))
}

// EducationAdjusted applies equality check predicate on the "education_adjusted" field. It's identical to EducationAdjustedEQ.
func EducationAdjusted(v bool) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldEducationAdjusted, v))
}

// ImpairedItems applies equality check predicate on the "impaired_items" field. It's identical to ImpairedItemsEQ.
func ImpairedItems(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldImpairedItems, v))
}

// Interpretation applies equality check predicate on the "interpretation" field. It's identical to InterpretationEQ.
func Interpretation(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldInterpretation, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldCompletedAt, v))
}

// Answers applies equality check predicate on the "answers" field. It's identical to AnswersEQ.
func Answers(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldAnswers, v))
}

// Scores applies equality check predicate on the "scores" field. It's identical to ScoresEQ.
func Scores(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldScores, v))
}

// Feedback applies equality check predicate on the "feedback" field. It's identical to FeedbackEQ.
func Feedback(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldFeedback, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldContainsFold(FieldSessionID, v))
}

// InstrumentEQ applies the EQ predicate on the "instrument" field.
func InstrumentEQ(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldInstrument, v))
}

// InstrumentNEQ applies the NEQ predicate on the "instrument" field.
func InstrumentNEQ(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNEQ(FieldInstrument, v))
}

// InstrumentIn applies the In predicate on the "instrument" field.
func InstrumentIn(vs ...string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldIn(FieldInstrument, vs...))
}

// InstrumentNotIn applies the NotIn predicate on the "instrument" field.
func InstrumentNotIn(vs ...string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNotIn(FieldInstrument, vs...))
}

// InstrumentGT applies the GT predicate on the "instrument" field.
func InstrumentGT(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGT(FieldInstrument, v))
}

// InstrumentGTE applies the GTE predicate on the "instrument" field.
func InstrumentGTE(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGTE(FieldInstrument, v))
}

// InstrumentLT applies the LT predicate on the "instrument" field.
func InstrumentLT(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLT(FieldInstrument, v))
}

// InstrumentLTE applies the LTE predicate on the "instrument" field.
func InstrumentLTE(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLTE(FieldInstrument, v))
}

// InstrumentContains applies the Contains predicate on the "instrument" field.
func InstrumentContains(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldContains(FieldInstrument, v))
}

// InstrumentHasPrefix applies the HasPrefix predicate on the "instrument" field.
func InstrumentHasPrefix(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldHasPrefix(FieldInstrument, v))
}

// InstrumentHasSuffix applies the HasSuffix predicate on the "instrument" field.
func InstrumentHasSuffix(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldHasSuffix(FieldInstrument, v))
}

// InstrumentEqualFold applies the EqualFold predicate on the "instrument" field.
func InstrumentEqualFold(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEqualFold(FieldInstrument, v))
}

// InstrumentContainsFold applies the ContainsFold predicate on the "instrument" field.
func InstrumentContainsFold(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldContainsFold(FieldInstrument, v))
}

// PatientNameEQ applies the EQ predicate on the "patient_name" field.
func PatientNameEQ(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldPatientName, v))
}

// PatientNameNEQ applies the NEQ predicate on the "patient_name" field.
func PatientNameNEQ(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNEQ(FieldPatientName, v))
}

// PatientNameIn applies the In predicate on the "patient_name" field.
func PatientNameIn(vs ...string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldIn(FieldPatientName, vs...))
}

// PatientNameNotIn applies the NotIn predicate on the "patient_name" field.
func PatientNameNotIn(vs ...string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNotIn(FieldPatientName, vs...))
}

// PatientNameGT applies the GT predicate on the "patient_name" field.
func PatientNameGT(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGT(FieldPatientName, v))
}

// PatientNameGTE applies the GTE predicate on the "patient_name" field.
func PatientNameGTE(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGTE(FieldPatientName, v))
}

// PatientNameLT applies the LT predicate on the "patient_name" field.
func PatientNameLT(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLT(FieldPatientName, v))
}

// PatientNameLTE applies the LTE predicate on the "patient_name" field.
func PatientNameLTE(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLTE(FieldPatientName, v))
}

// PatientNameContains applies the Contains predicate on the "patient_name" field.
func PatientNameContains(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldContains(FieldPatientName, v))
}

// PatientNameHasPrefix applies the HasPrefix predicate on the "patient_name" field.
func PatientNameHasPrefix(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldHasPrefix(FieldPatientName, v))
}

// PatientNameHasSuffix applies the HasSuffix predicate on the "patient_name" field.
func PatientNameHasSuffix(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldHasSuffix(FieldPatientName, v))
}

// PatientNameEqualFold applies the EqualFold predicate on the "patient_name" field.
func PatientNameEqualFold(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEqualFold(FieldPatientName, v))
}

// PatientNameContainsFold applies the ContainsFold predicate on the "patient_name" field.
func PatientNameContainsFold(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldContainsFold(FieldPatientName, v))
}

// PatientAgeEQ applies the EQ predicate on the "patient_age" field.
func PatientAgeEQ(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldPatientAge, v))
}

// PatientAgeNEQ applies the NEQ predicate on the "patient_age" field.
func PatientAgeNEQ(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNEQ(FieldPatientAge, v))
}

// PatientAgeIn applies the In predicate on the "patient_age" field.
func PatientAgeIn(vs ...int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldIn(FieldPatientAge, vs...))
}

// PatientAgeNotIn applies the NotIn predicate on the "patient_age" field.
func PatientAgeNotIn(vs ...int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNotIn(FieldPatientAge, vs...))
}

// PatientAgeGT applies the GT predicate on the "patient_age" field.
func PatientAgeGT(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGT(FieldPatientAge, v))
}

// PatientAgeGTE applies the GTE predicate on the "patient_age" field.
func PatientAgeGTE(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGTE(FieldPatientAge, v))
}

// PatientAgeLT applies the LT predicate on the "patient_age" field.
func PatientAgeLT(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLT(FieldPatientAge, v))
}

// PatientAgeLTE applies the LTE predicate on the "patient_age" field.
func PatientAgeLTE(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLTE(FieldPatientAge, v))
}

// PatientGenderEQ applies the EQ predicate on the "patient_gender" field.
func PatientGenderEQ(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldPatientGender, v))
}

// PatientGenderNEQ applies the NEQ predicate on the "patient_gender" field.
func PatientGenderNEQ(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNEQ(FieldPatientGender, v))
}

// PatientGenderIn applies the In predicate on the "patient_gender" field.
func PatientGenderIn(vs ...string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldIn(FieldPatientGender, vs...))
}

// PatientGenderNotIn applies the NotIn predicate on the "patient_gender" field.
func PatientGenderNotIn(vs ...string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNotIn(FieldPatientGender, vs...))
}

// PatientGenderGT applies the GT predicate on the "patient_gender" field.
func PatientGenderGT(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGT(FieldPatientGender, v))
}

// PatientGenderGTE applies the GTE predicate on the "patient_gender" field.
func PatientGenderGTE(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGTE(FieldPatientGender, v))
}

// PatientGenderLT applies the LT predicate on the "patient_gender" field.
func PatientGenderLT(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLT(FieldPatientGender, v))
}

// PatientGenderLTE applies the LTE predicate on the "patient_gender" field.
func PatientGenderLTE(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLTE(FieldPatientGender, v))
}

// PatientGenderContains applies the Contains predicate on the "patient_gender" field.
func PatientGenderContains(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldContains(FieldPatientGender, v))
}

// PatientGenderHasPrefix applies the HasPrefix predicate on the "patient_gender" field.
func PatientGenderHasPrefix(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldHasPrefix(FieldPatientGender, v))
}

// PatientGenderHasSuffix applies the HasSuffix predicate on the "patient_gender" field.
func PatientGenderHasSuffix(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldHasSuffix(FieldPatientGender, v))
}

// PatientGenderEqualFold applies the EqualFold predicate on the "patient_gender" field.
func PatientGenderEqualFold(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEqualFold(FieldPatientGender, v))
}

// PatientGenderContainsFold applies the ContainsFold predicate on the "patient_gender" field.
func PatientGenderContainsFold(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldContainsFold(FieldPatientGender, v))
}

// EducationYearsEQ applies the EQ predicate on the "education_years" field.
func EducationYearsEQ(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldEducationYears, v))
}

// EducationYearsNEQ applies the NEQ predicate on the "education_years" field.
func EducationYearsNEQ(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNEQ(FieldEducationYears, v))
}

// EducationYearsIn applies the In predicate on the "education_years" field.
func EducationYearsIn(vs ...int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldIn(FieldEducationYears, vs...))
}

// EducationYearsNotIn applies the NotIn predicate on the "education_years" field.
func EducationYearsNotIn(vs ...int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNotIn(FieldEducationYears, vs...))
}

// EducationYearsGT applies the GT predicate on the "education_years" field.
func EducationYearsGT(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGT(FieldEducationYears, v))
}

// EducationYearsGTE applies the GTE predicate on the "education_years" field.
func EducationYearsGTE(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGTE(FieldEducationYears, v))
}

// EducationYearsLT applies the LT predicate on the "education_years" field.
func EducationYearsLT(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLT(FieldEducationYears, v))
}

// EducationYearsLTE applies the LTE predicate on the "education_years" field.
func EducationYearsLTE(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLTE(FieldEducationYears, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLTE(FieldPatientID, v))
}

// PatientIDContains applies the Contains predicate on the "patient_id" field.
func PatientIDContains(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldContains(FieldPatientID, v))
}

// PatientIDHasPrefix applies the HasPrefix predicate on the "patient_id" field.
func PatientIDHasPrefix(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldHasPrefix(FieldPatientID, v))
}

// PatientIDHasSuffix applies the HasSuffix predicate on the "patient_id" field.
func PatientIDHasSuffix(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldHasSuffix(FieldPatientID, v))
}

// PatientIDEqualFold applies the EqualFold predicate on the "patient_id" field.
func PatientIDEqualFold(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEqualFold(FieldPatientID, v))
}

// PatientIDContainsFold applies the ContainsFold predicate on the "patient_id" field.
func PatientIDContainsFold(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldContainsFold(FieldPatientID, v))
}

// RawScoreEQ applies the EQ predicate on the "raw_score" field.
func RawScoreEQ(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldRawScore, v))
}

// RawScoreNEQ applies the NEQ predicate on the "raw_score" field.
func RawScoreNEQ(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNEQ(FieldRawScore, v))
}

// RawScoreIn applies the In predicate on the "raw_score" field.
func RawScoreIn(vs ...int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldIn(FieldRawScore, vs...))
}

// RawScoreNotIn applies the NotIn predicate on the "raw_score" field.
func RawScoreNotIn(vs ...int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNotIn(FieldRawScore, vs...))
}

// RawScoreGT applies the GT predicate on the "raw_score" field.
func RawScoreGT(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGT(FieldRawScore, v))
}

// RawScoreGTE applies the GTE predicate on the "raw_score" field.
func RawScoreGTE(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGTE(FieldRawScore, v))
}

// RawScoreLT applies the LT predicate on the "raw_score" field.
func RawScoreLT(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLT(FieldRawScore, v))
}

// RawScoreLTE applies the LTE predicate on the "raw_score" field.
func RawScoreLTE(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLTE(FieldRawScore, v))
}

// FinalScoreEQ applies the EQ predicate on the "final_score" field.
func FinalScoreEQ(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldFinalScore, v))
}

// FinalScoreNEQ applies the NEQ predicate on the "final_score" field.
func FinalScoreNEQ(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNEQ(FieldFinalScore, v))
}

// FinalScoreIn applies the In predicate on the "final_score" field.
func FinalScoreIn(vs ...int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldIn(FieldFinalScore, vs...))
}

// FinalScoreNotIn applies the NotIn predicate on the "final_score" field.
func FinalScoreNotIn(vs ...int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNotIn(FieldFinalScore, vs...))
}

// FinalScoreGT applies the GT predicate on the "final_score" field.
func FinalScoreGT(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGT(FieldFinalScore, v))
}

// FinalScoreGTE applies the GTE predicate on the "final_score" field.
func FinalScoreGTE(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGTE(FieldFinalScore, v))
}

// FinalScoreLT applies the LT predicate on the "final_score" field.
func FinalScoreLT(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLT(FieldFinalScore, v))
}

// FinalScoreLTE applies the LTE predicate on the "final_score" field.
func FinalScoreLTE(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLTE(FieldFinalScore, v))
}

// MaxScoreEQ applies the EQ predicate on the "max_score" field.
func MaxScoreEQ(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldMaxScore, v))
}

// MaxScoreNEQ applies the NEQ predicate on the "max_score" field.
func MaxScoreNEQ(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNEQ(FieldMaxScore, v))
}

// MaxScoreIn applies the In predicate on the "max_score" field.
func MaxScoreIn(vs ...int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldIn(FieldMaxScore, vs...))
}

// MaxScoreNotIn applies the NotIn predicate on the "max_score" field.
func MaxScoreNotIn(vs ...int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNotIn(FieldMaxScore, vs...))
}

// MaxScoreGT applies the GT predicate on the "max_score" field.
func MaxScoreGT(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGT(FieldMaxScore, v))
}

// MaxScoreGTE applies the GTE predicate on the "max_score" field.
func MaxScoreGTE(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGTE(FieldMaxScore, v))
}

// MaxScoreLT applies the LT predicate on the "max_score" field.
func MaxScoreLT(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLT(FieldMaxScore, v))
}

// MaxScoreLTE applies the LTE predicate on the "max_score" field.
func MaxScoreLTE(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLTE(FieldMaxScore, v))
}

// EducationAdjustedEQ applies the EQ predicate on the "education_adjusted" field.
func EducationAdjustedEQ(v bool) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldEducationAdjusted, v))
}

// EducationAdjustedNEQ applies the NEQ predicate on the "education_adjusted" field.
func EducationAdjustedNEQ(v bool) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNEQ(FieldEducationAdjusted, v))
}

// ImpairedItemsEQ applies the EQ predicate on the "impaired_items" field.
func ImpairedItemsEQ(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldImpairedItems, v))
}

// ImpairedItemsNEQ applies the NEQ predicate on the "impaired_items" field.
func ImpairedItemsNEQ(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNEQ(FieldImpairedItems, v))
}

// ImpairedItemsIn applies the In predicate on the "impaired_items" field.
func ImpairedItemsIn(vs ...int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldIn(FieldImpairedItems, vs...))
}

// ImpairedItemsNotIn applies the NotIn predicate on the "impaired_items" field.
func ImpairedItemsNotIn(vs ...int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNotIn(FieldImpairedItems, vs...))
}

// ImpairedItemsGT applies the GT predicate on the "impaired_items" field.
func ImpairedItemsGT(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGT(FieldImpairedItems, v))
}

// ImpairedItemsGTE applies the GTE predicate on the "impaired_items" field.
func ImpairedItemsGTE(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGTE(FieldImpairedItems, v))
}

// ImpairedItemsLT applies the LT predicate on the "impaired_items" field.
func ImpairedItemsLT(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLT(FieldImpairedItems, v))
}

// ImpairedItemsLTE applies the LTE predicate on the "impaired_items" field.
func ImpairedItemsLTE(v int) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLTE(FieldImpairedItems, v))
}

// InterpretationEQ applies the EQ predicate on the "interpretation" field.
func InterpretationEQ(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldInterpretation, v))
}

// InterpretationNEQ applies the NEQ predicate on the "interpretation" field.
func InterpretationNEQ(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNEQ(FieldInterpretation, v))
}

// InterpretationIn applies the In predicate on the "interpretation" field.
func InterpretationIn(vs ...string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldIn(FieldInterpretation, vs...))
}

// InterpretationNotIn applies the NotIn predicate on the "interpretation" field.
func InterpretationNotIn(vs ...string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNotIn(FieldInterpretation, vs...))
}

// InterpretationGT applies the GT predicate on the "interpretation" field.
func InterpretationGT(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGT(FieldInterpretation, v))
}

// InterpretationGTE applies the GTE predicate on the "interpretation" field.
func InterpretationGTE(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGTE(FieldInterpretation, v))
}

// InterpretationLT applies the LT predicate on the "interpretation" field.
func InterpretationLT(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLT(FieldInterpretation, v))
}

// InterpretationLTE applies the LTE predicate on the "interpretation" field.
func InterpretationLTE(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLTE(FieldInterpretation, v))
}

// InterpretationContains applies the Contains predicate on the "interpretation" field.
func InterpretationContains(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldContains(FieldInterpretation, v))
}

// InterpretationHasPrefix applies the HasPrefix predicate on the "interpretation" field.
func InterpretationHasPrefix(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldHasPrefix(FieldInterpretation, v))
}

// InterpretationHasSuffix applies the HasSuffix predicate on the "interpretation" field.
func InterpretationHasSuffix(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldHasSuffix(FieldInterpretation, v))
}

// InterpretationEqualFold applies the EqualFold predicate on the "interpretation" field.
func InterpretationEqualFold(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEqualFold(FieldInterpretation, v))
}

// InterpretationContainsFold applies the ContainsFold predicate on the "interpretation" field.
func InterpretationContainsFold(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldContainsFold(FieldInterpretation, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLTE(FieldCompletedAt, v))
}

// AnswersEQ applies the EQ predicate on the "answers" field.
func AnswersEQ(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldAnswers, v))
}

// AnswersNEQ applies the NEQ predicate on the "answers" field.
func AnswersNEQ(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNEQ(FieldAnswers, v))
}

// AnswersIn applies the In predicate on the "answers" field.
func AnswersIn(vs ...string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldIn(FieldAnswers, vs...))
}

// AnswersNotIn applies the NotIn predicate on the "answers" field.
func AnswersNotIn(vs ...string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNotIn(FieldAnswers, vs...))
}

// AnswersGT applies the GT predicate on the "answers" field.
func AnswersGT(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGT(FieldAnswers, v))
}

// AnswersGTE applies the GTE predicate on the "answers" field.
func AnswersGTE(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGTE(FieldAnswers, v))
}

// AnswersLT applies the LT predicate on the "answers" field.
func AnswersLT(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLT(FieldAnswers, v))
}

// AnswersLTE applies the LTE predicate on the "answers" field.
func AnswersLTE(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLTE(FieldAnswers, v))
}

// AnswersContains applies the Contains predicate on the "answers" field.
func AnswersContains(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldContains(FieldAnswers, v))
}

// AnswersHasPrefix applies the HasPrefix predicate on the "answers" field.
func AnswersHasPrefix(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldHasPrefix(FieldAnswers, v))
}

// AnswersHasSuffix applies the HasSuffix predicate on the "answers" field.
func AnswersHasSuffix(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldHasSuffix(FieldAnswers, v))
}

// AnswersEqualFold applies the EqualFold predicate on the "answers" field.
func AnswersEqualFold(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEqualFold(FieldAnswers, v))
}

// AnswersContainsFold applies the ContainsFold predicate on the "answers" field.
func AnswersContainsFold(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldContainsFold(FieldAnswers, v))
}

// ScoresEQ applies the EQ predicate on the "scores" field.
func ScoresEQ(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldScores, v))
}

// ScoresNEQ applies the NEQ predicate on the "scores" field.
func ScoresNEQ(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNEQ(FieldScores, v))
}

// ScoresIn applies the In predicate on the "scores" field.
func ScoresIn(vs ...string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldIn(FieldScores, vs...))
}

// ScoresNotIn applies the NotIn predicate on the "scores" field.
func ScoresNotIn(vs ...string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNotIn(FieldScores, vs...))
}

// ScoresGT applies the GT predicate on the "scores" field.
func ScoresGT(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGT(FieldScores, v))
}

// ScoresGTE applies the GTE predicate on the "scores" field.
func ScoresGTE(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGTE(FieldScores, v))
}

// ScoresLT applies the LT predicate on the "scores" field.
func ScoresLT(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLT(FieldScores, v))
}

// ScoresLTE applies the LTE predicate on the "scores" field.
func ScoresLTE(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLTE(FieldScores, v))
}

// ScoresContains applies the Contains predicate on the "scores" field.
func ScoresContains(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldContains(FieldScores, v))
}

// ScoresHasPrefix applies the HasPrefix predicate on the "scores" field.
func ScoresHasPrefix(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldHasPrefix(FieldScores, v))
}

// ScoresHasSuffix applies the HasSuffix predicate on the "scores" field.
func ScoresHasSuffix(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldHasSuffix(FieldScores, v))
}

// ScoresEqualFold applies the EqualFold predicate on the "scores" field.
func ScoresEqualFold(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEqualFold(FieldScores, v))
}

// ScoresContainsFold applies the ContainsFold predicate on the "scores" field.
func ScoresContainsFold(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldContainsFold(FieldScores, v))
}

// FeedbackEQ applies the EQ predicate on the "feedback" field.
func FeedbackEQ(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEQ(FieldFeedback, v))
}

// FeedbackNEQ applies the NEQ predicate on the "feedback" field.
func FeedbackNEQ(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNEQ(FieldFeedback, v))
}

// FeedbackIn applies the In predicate on the "feedback" field.
func FeedbackIn(vs ...string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldIn(FieldFeedback, vs...))
}

// FeedbackNotIn applies the NotIn predicate on the "feedback" field.
func FeedbackNotIn(vs ...string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldNotIn(FieldFeedback, vs...))
}

// FeedbackGT applies the GT predicate on the "feedback" field.
func FeedbackGT(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGT(FieldFeedback, v))
}

// FeedbackGTE applies the GTE predicate on the "feedback" field.
func FeedbackGTE(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldGTE(FieldFeedback, v))
}

// FeedbackLT applies the LT predicate on the "feedback" field.
func FeedbackLT(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLT(FieldFeedback, v))
}

// FeedbackLTE applies the LTE predicate on the "feedback" field.
func FeedbackLTE(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldLTE(FieldFeedback, v))
}

// FeedbackContains applies the Contains predicate on the "feedback" field.
func FeedbackContains(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldContains(FieldFeedback, v))
}

// FeedbackHasPrefix applies the HasPrefix predicate on the "feedback" field.
func FeedbackHasPrefix(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldHasPrefix(FieldFeedback, v))
}

// FeedbackHasSuffix applies the HasSuffix predicate on the "feedback" field.
func FeedbackHasSuffix(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldHasSuffix(FieldFeedback, v))
}

// FeedbackEqualFold applies the EqualFold predicate on the "feedback" field.
func FeedbackEqualFold(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldEqualFold(FieldFeedback, v))
}

// FeedbackContainsFold applies the ContainsFold predicate on the "feedback" field.
func FeedbackContainsFold(v string) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.FieldContainsFold(FieldFeedback, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssessmentRecord) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssessmentRecord) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssessmentRecord) predicate.AssessmentRecord {
	return predicate.AssessmentRecord(sql.NotPredicates(p))
}
