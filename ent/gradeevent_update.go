// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hwei-lab/cogscreen/ent/gradeevent"
	"github.com/hwei-lab/cogscreen/ent/predicate"
)

// GradeEventUpdate is the builder for updating GradeEvent entities.
type GradeEventUpdate struct {
	config
	hooks    []Hook
	mutation *GradeEventMutation
}

// Where appends a list predicates to the GradeEventUpdate builder.
func (_u *GradeEventUpdate) Where(ps ...predicate.GradeEvent) *GradeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *GradeEventUpdate) SetSessionID(v string) *GradeEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableSessionID(v *string) *GradeEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetInstrument sets the "instrument" field.
func (_u *GradeEventUpdate) SetInstrument(v string) *GradeEventUpdate {
	_u.mutation.SetInstrument(v)
	return _u
}

// SetNillableInstrument sets the "instrument" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableInstrument(v *string) *GradeEventUpdate {
	if v != nil {
		_u.SetInstrument(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *GradeEventUpdate) SetQuestionID(v string) *GradeEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableQuestionID(v *string) *GradeEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *GradeEventUpdate) SetCategory(v string) *GradeEventUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableCategory(v *string) *GradeEventUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *GradeEventUpdate) SetAnswer(v string) *GradeEventUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableAnswer(v *string) *GradeEventUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *GradeEventUpdate) SetScore(v int) *GradeEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableScore(v *int) *GradeEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *GradeEventUpdate) AddScore(v int) *GradeEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *GradeEventUpdate) SetMaxScore(v int) *GradeEventUpdate {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableMaxScore(v *int) *GradeEventUpdate {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *GradeEventUpdate) AddMaxScore(v int) *GradeEventUpdate {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *GradeEventUpdate) SetFeedback(v string) *GradeEventUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableFeedback(v *string) *GradeEventUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *GradeEventUpdate) SetSource(v string) *GradeEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableSource(v *string) *GradeEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *GradeEventUpdate) SetLatencyMs(v int64) *GradeEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableLatencyMs(v *int64) *GradeEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *GradeEventUpdate) AddLatencyMs(v int64) *GradeEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// Mutation returns the GradeEventMutation object of the builder.
func (_u *GradeEventUpdate) Mutation() *GradeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GradeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GradeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GradeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(gradeevent.Table, gradeevent.Columns, sqlgraph.NewFieldSpec(gradeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(gradeevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Instrument(); ok {
		_spec.SetField(gradeevent.FieldInstrument, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(gradeevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(gradeevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(gradeevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(gradeevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(gradeevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(gradeevent.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(gradeevent.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(gradeevent.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(gradeevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(gradeevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(gradeevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gradeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GradeEventUpdateOne is the builder for updating a single GradeEvent entity.
type GradeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GradeEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *GradeEventUpdateOne) SetSessionID(v string) *GradeEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableSessionID(v *string) *GradeEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetInstrument sets the "instrument" field.
func (_u *GradeEventUpdateOne) SetInstrument(v string) *GradeEventUpdateOne {
	_u.mutation.SetInstrument(v)
	return _u
}

// SetNillableInstrument sets the "instrument" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableInstrument(v *string) *GradeEventUpdateOne {
	if v != nil {
		_u.SetInstrument(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *GradeEventUpdateOne) SetQuestionID(v string) *GradeEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableQuestionID(v *string) *GradeEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *GradeEventUpdateOne) SetCategory(v string) *GradeEventUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableCategory(v *string) *GradeEventUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *GradeEventUpdateOne) SetAnswer(v string) *GradeEventUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableAnswer(v *string) *GradeEventUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *GradeEventUpdateOne) SetScore(v int) *GradeEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableScore(v *int) *GradeEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *GradeEventUpdateOne) AddScore(v int) *GradeEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *GradeEventUpdateOne) SetMaxScore(v int) *GradeEventUpdateOne {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableMaxScore(v *int) *GradeEventUpdateOne {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *GradeEventUpdateOne) AddMaxScore(v int) *GradeEventUpdateOne {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *GradeEventUpdateOne) SetFeedback(v string) *GradeEventUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableFeedback(v *string) *GradeEventUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *GradeEventUpdateOne) SetSource(v string) *GradeEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableSource(v *string) *GradeEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *GradeEventUpdateOne) SetLatencyMs(v int64) *GradeEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableLatencyMs(v *int64) *GradeEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *GradeEventUpdateOne) AddLatencyMs(v int64) *GradeEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// Mutation returns the GradeEventMutation object of the builder.
func (_u *GradeEventUpdateOne) Mutation() *GradeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the GradeEventUpdate builder.
func (_u *GradeEventUpdateOne) Where(ps ...predicate.GradeEvent) *GradeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GradeEventUpdateOne) Select(field string, fields ...string) *GradeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GradeEvent entity.
func (_u *GradeEventUpdateOne) Save(ctx context.Context) (*GradeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradeEventUpdateOne) SaveX(ctx context.Context) *GradeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GradeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GradeEventUpdateOne) sqlSave(ctx context.Context) (_node *GradeEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(gradeevent.Table, gradeevent.Columns, sqlgraph.NewFieldSpec(gradeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GradeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gradeevent.FieldID)
		for _, f := range fields {
			if !gradeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gradeevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(gradeevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Instrument(); ok {
		_spec.SetField(gradeevent.FieldInstrument, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(gradeevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(gradeevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(gradeevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(gradeevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(gradeevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(gradeevent.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(gradeevent.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(gradeevent.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(gradeevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(gradeevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(gradeevent.FieldLatencyMs, field.TypeInt64, value)
	}
	_node = &GradeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gradeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
