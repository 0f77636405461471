// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hwei-lab/cogscreen/ent/assessmentrecord"
	"github.com/hwei-lab/cogscreen/ent/predicate"
)

// AssessmentRecordUpdate is the builder for updating AssessmentRecord entities.
type AssessmentRecordUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentRecordMutation
}

// Where appends a list predicates to the AssessmentRecordUpdate builder.
func (_u *AssessmentRecordUpdate) Where(ps ...predicate.AssessmentRecord) *AssessmentRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInstrument sets the "instrument" field.
func (_u *AssessmentRecordUpdate) SetInstrument(v string) *AssessmentRecordUpdate {
	_u.mutation.SetInstrument(v)
	return _u
}

// SetNillableInstrument sets the "instrument" field if the given value is not nil.
func (_u *AssessmentRecordUpdate) SetNillableInstrument(v *string) *AssessmentRecordUpdate {
	if v != nil {
		_u.SetInstrument(*v)
	}
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *AssessmentRecordUpdate) SetPatientName(v string) *AssessmentRecordUpdate {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *AssessmentRecordUpdate) SetNillablePatientName(v *string) *AssessmentRecordUpdate {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetPatientAge sets the "patient_age" field.
func (_u *AssessmentRecordUpdate) SetPatientAge(v int) *AssessmentRecordUpdate {
	_u.mutation.ResetPatientAge()
	_u.mutation.SetPatientAge(v)
	return _u
}

// SetNillablePatientAge sets the "patient_age" field if the given value is not nil.
func (_u *AssessmentRecordUpdate) SetNillablePatientAge(v *int) *AssessmentRecordUpdate {
	if v != nil {
		_u.SetPatientAge(*v)
	}
	return _u
}

// AddPatientAge adds value to the "patient_age" field.
func (_u *AssessmentRecordUpdate) AddPatientAge(v int) *AssessmentRecordUpdate {
	_u.mutation.AddPatientAge(v)
	return _u
}

// SetPatientGender sets the "patient_gender" field.
func (_u *AssessmentRecordUpdate) SetPatientGender(v string) *AssessmentRecordUpdate {
	_u.mutation.SetPatientGender(v)
	return _u
}

// SetNillablePatientGender sets the "patient_gender" field if the given value is not nil.
func (_u *AssessmentRecordUpdate) SetNillablePatientGender(v *string) *AssessmentRecordUpdate {
	if v != nil {
		_u.SetPatientGender(*v)
	}
	return _u
}

// SetEducationYears sets the "education_years" field.
func (_u *AssessmentRecordUpdate) SetEducationYears(v int) *AssessmentRecordUpdate {
	_u.mutation.ResetEducationYears()
	_u.mutation.SetEducationYears(v)
	return _u
}

// SetNillableEducationYears sets the "education_years" field if the given value is not nil.
func (_u *AssessmentRecordUpdate) SetNillableEducationYears(v *int) *AssessmentRecordUpdate {
	if v != nil {
		_u.SetEducationYears(*v)
	}
	return _u
}

// AddEducationYears adds value to the "education_years" field.
func (_u *AssessmentRecordUpdate) AddEducationYears(v int) *AssessmentRecordUpdate {
	_u.mutation.AddEducationYears(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *AssessmentRecordUpdate) SetPatientID(v string) *AssessmentRecordUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *AssessmentRecordUpdate) SetNillablePatientID(v *string) *AssessmentRecordUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetRawScore sets the "raw_score" field.
func (_u *AssessmentRecordUpdate) SetRawScore(v int) *AssessmentRecordUpdate {
	_u.mutation.ResetRawScore()
	_u.mutation.SetRawScore(v)
	return _u
}

// SetNillableRawScore sets the "raw_score" field if the given value is not nil.
func (_u *AssessmentRecordUpdate) SetNillableRawScore(v *int) *AssessmentRecordUpdate {
	if v != nil {
		_u.SetRawScore(*v)
	}
	return _u
}

// AddRawScore adds value to the "raw_score" field.
func (_u *AssessmentRecordUpdate) AddRawScore(v int) *AssessmentRecordUpdate {
	_u.mutation.AddRawScore(v)
	return _u
}

// SetFinalScore sets the "final_score" field.
func (_u *AssessmentRecordUpdate) SetFinalScore(v int) *AssessmentRecordUpdate {
	_u.mutation.ResetFinalScore()
	_u.mutation.SetFinalScore(v)
	return _u
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_u *AssessmentRecordUpdate) SetNillableFinalScore(v *int) *AssessmentRecordUpdate {
	if v != nil {
		_u.SetFinalScore(*v)
	}
	return _u
}

// AddFinalScore adds value to the "final_score" field.
func (_u *AssessmentRecordUpdate) AddFinalScore(v int) *AssessmentRecordUpdate {
	_u.mutation.AddFinalScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *AssessmentRecordUpdate) SetMaxScore(v int) *AssessmentRecordUpdate {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *AssessmentRecordUpdate) SetNillableMaxScore(v *int) *AssessmentRecordUpdate {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *AssessmentRecordUpdate) AddMaxScore(v int) *AssessmentRecordUpdate {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetEducationAdjusted sets the "education_adjusted" field.
func (_u *AssessmentRecordUpdate) SetEducationAdjusted(v bool) *AssessmentRecordUpdate {
	_u.mutation.SetEducationAdjusted(v)
	return _u
}

// SetNillableEducationAdjusted sets the "education_adjusted" field if the given value is not nil.
func (_u *AssessmentRecordUpdate) SetNillableEducationAdjusted(v *bool) *AssessmentRecordUpdate {
	if v != nil {
		_u.SetEducationAdjusted(*v)
	}
	return _u
}

// SetImpairedItems sets the "impaired_items" field.
func (_u *AssessmentRecordUpdate) SetImpairedItems(v int) *AssessmentRecordUpdate {
	_u.mutation.ResetImpairedItems()
	_u.mutation.SetImpairedItems(v)
	return _u
}

// SetNillableImpairedItems sets the "impaired_items" field if the given value is not nil.
func (_u *AssessmentRecordUpdate) SetNillableImpairedItems(v *int) *AssessmentRecordUpdate {
	if v != nil {
		_u.SetImpairedItems(*v)
	}
	return _u
}

// AddImpairedItems adds value to the "impaired_items" field.
func (_u *AssessmentRecordUpdate) AddImpairedItems(v int) *AssessmentRecordUpdate {
	_u.mutation.AddImpairedItems(v)
	return _u
}

// SetInterpretation sets the "interpretation" field.
func (_u *AssessmentRecordUpdate) SetInterpretation(v string) *AssessmentRecordUpdate {
	_u.mutation.SetInterpretation(v)
	return _u
}

// SetNillableInterpretation sets the "interpretation" field if the given value is not nil.
func (_u *AssessmentRecordUpdate) SetNillableInterpretation(v *string) *AssessmentRecordUpdate {
	if v != nil {
		_u.SetInterpretation(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AssessmentRecordUpdate) SetStartedAt(v time.Time) *AssessmentRecordUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AssessmentRecordUpdate) SetNillableStartedAt(v *time.Time) *AssessmentRecordUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AssessmentRecordUpdate) SetCompletedAt(v time.Time) *AssessmentRecordUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AssessmentRecordUpdate) SetNillableCompletedAt(v *time.Time) *AssessmentRecordUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *AssessmentRecordUpdate) SetAnswers(v string) *AssessmentRecordUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// SetNillableAnswers sets the "answers" field if the given value is not nil.
func (_u *AssessmentRecordUpdate) SetNillableAnswers(v *string) *AssessmentRecordUpdate {
	if v != nil {
		_u.SetAnswers(*v)
	}
	return _u
}

// SetScores sets the "scores" field.
func (_u *AssessmentRecordUpdate) SetScores(v string) *AssessmentRecordUpdate {
	_u.mutation.SetScores(v)
	return _u
}

// SetNillableScores sets the "scores" field if the given value is not nil.
func (_u *AssessmentRecordUpdate) SetNillableScores(v *string) *AssessmentRecordUpdate {
	if v != nil {
		_u.SetScores(*v)
	}
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *AssessmentRecordUpdate) SetFeedback(v string) *AssessmentRecordUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *AssessmentRecordUpdate) SetNillableFeedback(v *string) *AssessmentRecordUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// Mutation returns the AssessmentRecordMutation object of the builder.
func (_u *AssessmentRecordUpdate) Mutation() *AssessmentRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AssessmentRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(assessmentrecord.Table, assessmentrecord.Columns, sqlgraph.NewFieldSpec(assessmentrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Instrument(); ok {
		_spec.SetField(assessmentrecord.FieldInstrument, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(assessmentrecord.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientAge(); ok {
		_spec.SetField(assessmentrecord.FieldPatientAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPatientAge(); ok {
		_spec.AddField(assessmentrecord.FieldPatientAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PatientGender(); ok {
		_spec.SetField(assessmentrecord.FieldPatientGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.EducationYears(); ok {
		_spec.SetField(assessmentrecord.FieldEducationYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEducationYears(); ok {
		_spec.AddField(assessmentrecord.FieldEducationYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(assessmentrecord.FieldPatientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawScore(); ok {
		_spec.SetField(assessmentrecord.FieldRawScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRawScore(); ok {
		_spec.AddField(assessmentrecord.FieldRawScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalScore(); ok {
		_spec.SetField(assessmentrecord.FieldFinalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFinalScore(); ok {
		_spec.AddField(assessmentrecord.FieldFinalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(assessmentrecord.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(assessmentrecord.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EducationAdjusted(); ok {
		_spec.SetField(assessmentrecord.FieldEducationAdjusted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ImpairedItems(); ok {
		_spec.SetField(assessmentrecord.FieldImpairedItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImpairedItems(); ok {
		_spec.AddField(assessmentrecord.FieldImpairedItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Interpretation(); ok {
		_spec.SetField(assessmentrecord.FieldInterpretation, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(assessmentrecord.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(assessmentrecord.FieldCompletedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(assessmentrecord.FieldAnswers, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(assessmentrecord.FieldScores, field.TypeString, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(assessmentrecord.FieldFeedback, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentRecordUpdateOne is the builder for updating a single AssessmentRecord entity.
type AssessmentRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentRecordMutation
}

// SetInstrument sets the "instrument" field.
func (_u *AssessmentRecordUpdateOne) SetInstrument(v string) *AssessmentRecordUpdateOne {
	_u.mutation.SetInstrument(v)
	return _u
}

// SetNillableInstrument sets the "instrument" field if the given value is not nil.
func (_u *AssessmentRecordUpdateOne) SetNillableInstrument(v *string) *AssessmentRecordUpdateOne {
	if v != nil {
		_u.SetInstrument(*v)
	}
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *AssessmentRecordUpdateOne) SetPatientName(v string) *AssessmentRecordUpdateOne {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *AssessmentRecordUpdateOne) SetNillablePatientName(v *string) *AssessmentRecordUpdateOne {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetPatientAge sets the "patient_age" field.
func (_u *AssessmentRecordUpdateOne) SetPatientAge(v int) *AssessmentRecordUpdateOne {
	_u.mutation.ResetPatientAge()
	_u.mutation.SetPatientAge(v)
	return _u
}

// SetNillablePatientAge sets the "patient_age" field if the given value is not nil.
func (_u *AssessmentRecordUpdateOne) SetNillablePatientAge(v *int) *AssessmentRecordUpdateOne {
	if v != nil {
		_u.SetPatientAge(*v)
	}
	return _u
}

// AddPatientAge adds value to the "patient_age" field.
func (_u *AssessmentRecordUpdateOne) AddPatientAge(v int) *AssessmentRecordUpdateOne {
	_u.mutation.AddPatientAge(v)
	return _u
}

// SetPatientGender sets the "patient_gender" field.
func (_u *AssessmentRecordUpdateOne) SetPatientGender(v string) *AssessmentRecordUpdateOne {
	_u.mutation.SetPatientGender(v)
	return _u
}

// SetNillablePatientGender sets the "patient_gender" field if the given value is not nil.
func (_u *AssessmentRecordUpdateOne) SetNillablePatientGender(v *string) *AssessmentRecordUpdateOne {
	if v != nil {
		_u.SetPatientGender(*v)
	}
	return _u
}

// SetEducationYears sets the "education_years" field.
func (_u *AssessmentRecordUpdateOne) SetEducationYears(v int) *AssessmentRecordUpdateOne {
	_u.mutation.ResetEducationYears()
	_u.mutation.SetEducationYears(v)
	return _u
}

// SetNillableEducationYears sets the "education_years" field if the given value is not nil.
func (_u *AssessmentRecordUpdateOne) SetNillableEducationYears(v *int) *AssessmentRecordUpdateOne {
	if v != nil {
		_u.SetEducationYears(*v)
	}
	return _u
}

// AddEducationYears adds value to the "education_years" field.
func (_u *AssessmentRecordUpdateOne) AddEducationYears(v int) *AssessmentRecordUpdateOne {
	_u.mutation.AddEducationYears(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *AssessmentRecordUpdateOne) SetPatientID(v string) *AssessmentRecordUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *AssessmentRecordUpdateOne) SetNillablePatientID(v *string) *AssessmentRecordUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetRawScore sets the "raw_score" field.
func (_u *AssessmentRecordUpdateOne) SetRawScore(v int) *AssessmentRecordUpdateOne {
	_u.mutation.ResetRawScore()
	_u.mutation.SetRawScore(v)
	return _u
}

// SetNillableRawScore sets the "raw_score" field if the given value is not nil.
func (_u *AssessmentRecordUpdateOne) SetNillableRawScore(v *int) *AssessmentRecordUpdateOne {
	if v != nil {
		_u.SetRawScore(*v)
	}
	return _u
}

// AddRawScore adds value to the "raw_score" field.
func (_u *AssessmentRecordUpdateOne) AddRawScore(v int) *AssessmentRecordUpdateOne {
	_u.mutation.AddRawScore(v)
	return _u
}

// SetFinalScore sets the "final_score" field.
func (_u *AssessmentRecordUpdateOne) SetFinalScore(v int) *AssessmentRecordUpdateOne {
	_u.mutation.ResetFinalScore()
	_u.mutation.SetFinalScore(v)
	return _u
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_u *AssessmentRecordUpdateOne) SetNillableFinalScore(v *int) *AssessmentRecordUpdateOne {
	if v != nil {
		_u.SetFinalScore(*v)
	}
	return _u
}

// AddFinalScore adds value to the "final_score" field.
func (_u *AssessmentRecordUpdateOne) AddFinalScore(v int) *AssessmentRecordUpdateOne {
	_u.mutation.AddFinalScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *AssessmentRecordUpdateOne) SetMaxScore(v int) *AssessmentRecordUpdateOne {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *AssessmentRecordUpdateOne) SetNillableMaxScore(v *int) *AssessmentRecordUpdateOne {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *AssessmentRecordUpdateOne) AddMaxScore(v int) *AssessmentRecordUpdateOne {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetEducationAdjusted sets the "education_adjusted" field.
func (_u *AssessmentRecordUpdateOne) SetEducationAdjusted(v bool) *AssessmentRecordUpdateOne {
	_u.mutation.SetEducationAdjusted(v)
	return _u
}

// SetNillableEducationAdjusted sets the "education_adjusted" field if the given value is not nil.
func (_u *AssessmentRecordUpdateOne) SetNillableEducationAdjusted(v *bool) *AssessmentRecordUpdateOne {
	if v != nil {
		_u.SetEducationAdjusted(*v)
	}
	return _u
}

// SetImpairedItems sets the "impaired_items" field.
func (_u *AssessmentRecordUpdateOne) SetImpairedItems(v int) *AssessmentRecordUpdateOne {
	_u.mutation.ResetImpairedItems()
	_u.mutation.SetImpairedItems(v)
	return _u
}

// SetNillableImpairedItems sets the "impaired_items" field if the given value is not nil.
func (_u *AssessmentRecordUpdateOne) SetNillableImpairedItems(v *int) *AssessmentRecordUpdateOne {
	if v != nil {
		_u.SetImpairedItems(*v)
	}
	return _u
}

// AddImpairedItems adds value to the "impaired_items" field.
func (_u *AssessmentRecordUpdateOne) AddImpairedItems(v int) *AssessmentRecordUpdateOne {
	_u.mutation.AddImpairedItems(v)
	return _u
}

// SetInterpretation sets the "interpretation" field.
func (_u *AssessmentRecordUpdateOne) SetInterpretation(v string) *AssessmentRecordUpdateOne {
	_u.mutation.SetInterpretation(v)
	return _u
}

// SetNillableInterpretation sets the "interpretation" field if the given value is not nil.
func (_u *AssessmentRecordUpdateOne) SetNillableInterpretation(v *string) *AssessmentRecordUpdateOne {
	if v != nil {
		_u.SetInterpretation(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AssessmentRecordUpdateOne) SetStartedAt(v time.Time) *AssessmentRecordUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AssessmentRecordUpdateOne) SetNillableStartedAt(v *time.Time) *AssessmentRecordUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AssessmentRecordUpdateOne) SetCompletedAt(v time.Time) *AssessmentRecordUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AssessmentRecordUpdateOne) SetNillableCompletedAt(v *time.Time) *AssessmentRecordUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *AssessmentRecordUpdateOne) SetAnswers(v string) *AssessmentRecordUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// SetNillableAnswers sets the "answers" field if the given value is not nil.
func (_u *AssessmentRecordUpdateOne) SetNillableAnswers(v *string) *AssessmentRecordUpdateOne {
	if v != nil {
		_u.SetAnswers(*v)
	}
	return _u
}

// SetScores sets the "scores" field.
func (_u *AssessmentRecordUpdateOne) SetScores(v string) *AssessmentRecordUpdateOne {
	_u.mutation.SetScores(v)
	return _u
}

// SetNillableScores sets the "scores" field if the given value is not nil.
func (_u *AssessmentRecordUpdateOne) SetNillableScores(v *string) *AssessmentRecordUpdateOne {
	if v != nil {
		_u.SetScores(*v)
	}
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *AssessmentRecordUpdateOne) SetFeedback(v string) *AssessmentRecordUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *AssessmentRecordUpdateOne) SetNillableFeedback(v *string) *AssessmentRecordUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// Mutation returns the AssessmentRecordMutation object of the builder.
func (_u *AssessmentRecordUpdateOne) Mutation() *AssessmentRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentRecordUpdate builder.
func (_u *AssessmentRecordUpdateOne) Where(ps ...predicate.AssessmentRecord) *AssessmentRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentRecordUpdateOne) Select(field string, fields ...string) *AssessmentRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentRecord entity.
func (_u *AssessmentRecordUpdateOne) Save(ctx context.Context) (*AssessmentRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentRecordUpdateOne) SaveX(ctx context.Context) *AssessmentRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AssessmentRecordUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(assessmentrecord.Table, assessmentrecord.Columns, sqlgraph.NewFieldSpec(assessmentrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentrecord.FieldID)
		for _, f := range fields {
			if !assessmentrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Instrument(); ok {
		_spec.SetField(assessmentrecord.FieldInstrument, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(assessmentrecord.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientAge(); ok {
		_spec.SetField(assessmentrecord.FieldPatientAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPatientAge(); ok {
		_spec.AddField(assessmentrecord.FieldPatientAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PatientGender(); ok {
		_spec.SetField(assessmentrecord.FieldPatientGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.EducationYears(); ok {
		_spec.SetField(assessmentrecord.FieldEducationYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEducationYears(); ok {
		_spec.AddField(assessmentrecord.FieldEducationYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(assessmentrecord.FieldPatientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawScore(); ok {
		_spec.SetField(assessmentrecord.FieldRawScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRawScore(); ok {
		_spec.AddField(assessmentrecord.FieldRawScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalScore(); ok {
		_spec.SetField(assessmentrecord.FieldFinalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFinalScore(); ok {
		_spec.AddField(assessmentrecord.FieldFinalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(assessmentrecord.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(assessmentrecord.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EducationAdjusted(); ok {
		_spec.SetField(assessmentrecord.FieldEducationAdjusted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ImpairedItems(); ok {
		_spec.SetField(assessmentrecord.FieldImpairedItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImpairedItems(); ok {
		_spec.AddField(assessmentrecord.FieldImpairedItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Interpretation(); ok {
		_spec.SetField(assessmentrecord.FieldInterpretation, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(assessmentrecord.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(assessmentrecord.FieldCompletedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(assessmentrecord.FieldAnswers, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(assessmentrecord.FieldScores, field.TypeString, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(assessmentrecord.FieldFeedback, field.TypeString, value)
	}
	_node = &AssessmentRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
