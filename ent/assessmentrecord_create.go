// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hwei-lab/cogscreen/ent/assessmentrecord"
)

// AssessmentRecordCreate is the builder for creating a AssessmentRecord entity.
type AssessmentRecordCreate struct {
	config
	mutation *AssessmentRecordMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *AssessmentRecordCreate) SetSessionID(v string) *AssessmentRecordCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetInstrument sets the "instrument" field.
func (_c *AssessmentRecordCreate) SetInstrument(v string) *AssessmentRecordCreate {
	_c.mutation.SetInstrument(v)
	return _c
}

// SetPatientName sets the "patient_name" field.
func (_c *AssessmentRecordCreate) SetPatientName(v string) *AssessmentRecordCreate {
	_c.mutation.SetPatientName(v)
	return _c
}

// SetPatientAge sets the "patient_age" field.
func (_c *AssessmentRecordCreate) SetPatientAge(v int) *AssessmentRecordCreate {
	_c.mutation.SetPatientAge(v)
	return _c
}

// SetPatientGender sets the "patient_gender" field.
func (_c *AssessmentRecordCreate) SetPatientGender(v string) *AssessmentRecordCreate {
	_c.mutation.SetPatientGender(v)
	return _c
}

// SetNillablePatientGender sets the "patient_gender" field if the given value is not nil.
func (_c *AssessmentRecordCreate) SetNillablePatientGender(v *string) *AssessmentRecordCreate {
	if v != nil {
		_c.SetPatientGender(*v)
	}
	return _c
}

// SetEducationYears sets the "education_years" field.
func (_c *AssessmentRecordCreate) SetEducationYears(v int) *AssessmentRecordCreate {
	_c.mutation.SetEducationYears(v)
	return _c
}

// SetNillableEducationYears sets the "education_years" field if the given value is not nil.
func (_c *AssessmentRecordCreate) SetNillableEducationYears(v *int) *AssessmentRecordCreate {
	if v != nil {
		_c.SetEducationYears(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *AssessmentRecordCreate) SetPatientID(v string) *AssessmentRecordCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_c *AssessmentRecordCreate) SetNillablePatientID(v *string) *AssessmentRecordCreate {
	if v != nil {
		_c.SetPatientID(*v)
	}
	return _c
}

// SetRawScore sets the "raw_score" field.
func (_c *AssessmentRecordCreate) SetRawScore(v int) *AssessmentRecordCreate {
	_c.mutation.SetRawScore(v)
	return _c
}

// SetFinalScore sets the "final_score" field.
func (_c *AssessmentRecordCreate) SetFinalScore(v int) *AssessmentRecordCreate {
	_c.mutation.SetFinalScore(v)
	return _c
}

// SetMaxScore sets the "max_score" field.
func (_c *AssessmentRecordCreate) SetMaxScore(v int) *AssessmentRecordCreate {
	_c.mutation.SetMaxScore(v)
	return _c
}

// SetEducationAdjusted sets the "education_adjusted" field.
func (_c *AssessmentRecordCreate) SetEducationAdjusted(v bool) *AssessmentRecordCreate {
	_c.mutation.SetEducationAdjusted(v)
	return _c
}

// SetNillableEducationAdjusted sets the "education_adjusted" field if the given value is not nil.
func (_c *AssessmentRecordCreate) SetNillableEducationAdjusted(v *bool) *AssessmentRecordCreate {
	if v != nil {
		_c.SetEducationAdjusted(*v)
	}
	return _c
}

// SetImpairedItems sets the "impaired_items" field.
func (_c *AssessmentRecordCreate) SetImpairedItems(v int) *AssessmentRecordCreate {
	_c.mutation.SetImpairedItems(v)
	return _c
}

// SetNillableImpairedItems sets the "impaired_items" field if the given value is not nil.
func (_c *AssessmentRecordCreate) SetNillableImpairedItems(v *int) *AssessmentRecordCreate {
	if v != nil {
		_c.SetImpairedItems(*v)
	}
	return _c
}

// SetInterpretation sets the "interpretation" field.
func (_c *AssessmentRecordCreate) SetInterpretation(v string) *AssessmentRecordCreate {
	_c.mutation.SetInterpretation(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AssessmentRecordCreate) SetStartedAt(v time.Time) *AssessmentRecordCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AssessmentRecordCreate) SetCompletedAt(v time.Time) *AssessmentRecordCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *AssessmentRecordCreate) SetAnswers(v string) *AssessmentRecordCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetNillableAnswers sets the "answers" field if the given value is not nil.
func (_c *AssessmentRecordCreate) SetNillableAnswers(v *string) *AssessmentRecordCreate {
	if v != nil {
		_c.SetAnswers(*v)
	}
	return _c
}

// SetScores sets the "scores" field.
func (_c *AssessmentRecordCreate) SetScores(v string) *AssessmentRecordCreate {
	_c.mutation.SetScores(v)
	return _c
}

// SetNillableScores sets the "scores" field if the given value is not nil.
func (_c *AssessmentRecordCreate) SetNillableScores(v *string) *AssessmentRecordCreate {
	if v != nil {
		_c.SetScores(*v)
	}
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *AssessmentRecordCreate) SetFeedback(v string) *AssessmentRecordCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_c *AssessmentRecordCreate) SetNillableFeedback(v *string) *AssessmentRecordCreate {
	if v != nil {
		_c.SetFeedback(*v)
	}
	return _c
}

// Mutation returns the AssessmentRecordMutation object of the builder.
func (_c *AssessmentRecordCreate) Mutation() *AssessmentRecordMutation {
	return _c.mutation
}

// Save creates the AssessmentRecord in the database.
func (_c *AssessmentRecordCreate) Save(ctx context.Context) (*AssessmentRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentRecordCreate) SaveX(ctx context.Context) *AssessmentRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentRecordCreate) defaults() {
	if _, ok := _c.mutation.PatientGender(); !ok {
		v := assessmentrecord.DefaultPatientGender
		_c.mutation.SetPatientGender(v)
	}
	if _, ok := _c.mutation.EducationYears(); !ok {
		v := assessmentrecord.DefaultEducationYears
		_c.mutation.SetEducationYears(v)
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		v := assessmentrecord.DefaultPatientID
		_c.mutation.SetPatientID(v)
	}
	if _, ok := _c.mutation.EducationAdjusted(); !ok {
		v := assessmentrecord.DefaultEducationAdjusted
		_c.mutation.SetEducationAdjusted(v)
	}
	if _, ok := _c.mutation.ImpairedItems(); !ok {
		v := assessmentrecord.DefaultImpairedItems
		_c.mutation.SetImpairedItems(v)
	}
	if _, ok := _c.mutation.Answers(); !ok {
		v := assessmentrecord.DefaultAnswers
		_c.mutation.SetAnswers(v)
	}
	if _, ok := _c.mutation.Scores(); !ok {
		v := assessmentrecord.DefaultScores
		_c.mutation.SetScores(v)
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		v := assessmentrecord.DefaultFeedback
		_c.mutation.SetFeedback(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentRecordCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AssessmentRecord.session_id"`)}
	}
	if _, ok := _c.mutation.Instrument(); !ok {
		return &ValidationError{Name: "instrument", err: errors.New(`ent: missing required field "AssessmentRecord.instrument"`)}
	}
	if _, ok := _c.mutation.PatientName(); !ok {
		return &ValidationError{Name: "patient_name", err: errors.New(`ent: missing required field "AssessmentRecord.patient_name"`)}
	}
	if _, ok := _c.mutation.PatientAge(); !ok {
		return &ValidationError{Name: "patient_age", err: errors.New(`ent: missing required field "AssessmentRecord.patient_age"`)}
	}
	if _, ok := _c.mutation.PatientGender(); !ok {
		return &ValidationError{Name: "patient_gender", err: errors.New(`ent: missing required field "AssessmentRecord.patient_gender"`)}
	}
	if _, ok := _c.mutation.EducationYears(); !ok {
		return &ValidationError{Name: "education_years", err: errors.New(`ent: missing required field "AssessmentRecord.education_years"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`ent: missing required field "AssessmentRecord.patient_id"`)}
	}
	if _, ok := _c.mutation.RawScore(); !ok {
		return &ValidationError{Name: "raw_score", err: errors.New(`ent: missing required field "AssessmentRecord.raw_score"`)}
	}
	if _, ok := _c.mutation.FinalScore(); !ok {
		return &ValidationError{Name: "final_score", err: errors.New(`ent: missing required field "AssessmentRecord.final_score"`)}
	}
	if _, ok := _c.mutation.MaxScore(); !ok {
		return &ValidationError{Name: "max_score", err: errors.New(`ent: missing required field "AssessmentRecord.max_score"`)}
	}
	if _, ok := _c.mutation.EducationAdjusted(); !ok {
		return &ValidationError{Name: "education_adjusted", err: errors.New(`ent: missing required field "AssessmentRecord.education_adjusted"`)}
	}
	if _, ok := _c.mutation.ImpairedItems(); !ok {
		return &ValidationError{Name: "impaired_items", err: errors.New(`ent: missing required field "AssessmentRecord.impaired_items"`)}
	}
	if _, ok := _c.mutation.Interpretation(); !ok {
		return &ValidationError{Name: "interpretation", err: errors.New(`ent: missing required field "AssessmentRecord.interpretation"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "AssessmentRecord.started_at"`)}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "AssessmentRecord.completed_at"`)}
	}
	if _, ok := _c.mutation.Answers(); !ok {
		return &ValidationError{Name: "answers", err: errors.New(`ent: missing required field "AssessmentRecord.answers"`)}
	}
	if _, ok := _c.mutation.Scores(); !ok {
		return &ValidationError{Name: "scores", err: errors.New(`ent: missing required field "AssessmentRecord.scores"`)}
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		return &ValidationError{Name: "feedback", err: errors.New(`ent: missing required field "AssessmentRecord.feedback"`)}
	}
	return nil
}

func (_c *AssessmentRecordCreate) sqlSave(ctx context.Context) (*AssessmentRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AssessmentRecordCreate) createSpec() (*AssessmentRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &AssessmentRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessmentrecord.Table, sqlgraph.NewFieldSpec(assessmentrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(assessmentrecord.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Instrument(); ok {
		_spec.SetField(assessmentrecord.FieldInstrument, field.TypeString, value)
		_node.Instrument = value
	}
	if value, ok := _c.mutation.PatientName(); ok {
		_spec.SetField(assessmentrecord.FieldPatientName, field.TypeString, value)
		_node.PatientName = value
	}
	if value, ok := _c.mutation.PatientAge(); ok {
		_spec.SetField(assessmentrecord.FieldPatientAge, field.TypeInt, value)
		_node.PatientAge = value
	}
	if value, ok := _c.mutation.PatientGender(); ok {
		_spec.SetField(assessmentrecord.FieldPatientGender, field.TypeString, value)
		_node.PatientGender = value
	}
	if value, ok := _c.mutation.EducationYears(); ok {
		_spec.SetField(assessmentrecord.FieldEducationYears, field.TypeInt, value)
		_node.EducationYears = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(assessmentrecord.FieldPatientID, field.TypeString, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.RawScore(); ok {
		_spec.SetField(assessmentrecord.FieldRawScore, field.TypeInt, value)
		_node.RawScore = value
	}
	if value, ok := _c.mutation.FinalScore(); ok {
		_spec.SetField(assessmentrecord.FieldFinalScore, field.TypeInt, value)
		_node.FinalScore = value
	}
	if value, ok := _c.mutation.MaxScore(); ok {
		_spec.SetField(assessmentrecord.FieldMaxScore, field.TypeInt, value)
		_node.MaxScore = value
	}
	if value, ok := _c.mutation.EducationAdjusted(); ok {
		_spec.SetField(assessmentrecord.FieldEducationAdjusted, field.TypeBool, value)
		_node.EducationAdjusted = value
	}
	if value, ok := _c.mutation.ImpairedItems(); ok {
		_spec.SetField(assessmentrecord.FieldImpairedItems, field.TypeInt, value)
		_node.ImpairedItems = value
	}
	if value, ok := _c.mutation.Interpretation(); ok {
		_spec.SetField(assessmentrecord.FieldInterpretation, field.TypeString, value)
		_node.Interpretation = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(assessmentrecord.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(assessmentrecord.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(assessmentrecord.FieldAnswers, field.TypeString, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.Scores(); ok {
		_spec.SetField(assessmentrecord.FieldScores, field.TypeString, value)
		_node.Scores = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(assessmentrecord.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	return _node, _spec
}

// AssessmentRecordCreateBulk is the builder for creating many AssessmentRecord entities in bulk.
type AssessmentRecordCreateBulk struct {
	config
	err      error
	builders []*AssessmentRecordCreate
}

// Save creates the AssessmentRecord entities in the database.
func (_c *AssessmentRecordCreateBulk) Save(ctx context.Context) ([]*AssessmentRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssessmentRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AssessmentRecordCreateBulk) SaveX(ctx context.Context) []*AssessmentRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
