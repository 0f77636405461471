// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hwei-lab/cogscreen/ent/gradeevent"
)

// GradeEventCreate is the builder for creating a GradeEvent entity.
type GradeEventCreate struct {
	config
	mutation *GradeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *GradeEventCreate) SetSequence(v int64) *GradeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *GradeEventCreate) SetTimestamp(v time.Time) *GradeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *GradeEventCreate) SetNillableTimestamp(v *time.Time) *GradeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *GradeEventCreate) SetSessionID(v string) *GradeEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetInstrument sets the "instrument" field.
func (_c *GradeEventCreate) SetInstrument(v string) *GradeEventCreate {
	_c.mutation.SetInstrument(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *GradeEventCreate) SetQuestionID(v string) *GradeEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *GradeEventCreate) SetCategory(v string) *GradeEventCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *GradeEventCreate) SetNillableCategory(v *string) *GradeEventCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *GradeEventCreate) SetAnswer(v string) *GradeEventCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_c *GradeEventCreate) SetNillableAnswer(v *string) *GradeEventCreate {
	if v != nil {
		_c.SetAnswer(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *GradeEventCreate) SetScore(v int) *GradeEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetMaxScore sets the "max_score" field.
func (_c *GradeEventCreate) SetMaxScore(v int) *GradeEventCreate {
	_c.mutation.SetMaxScore(v)
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *GradeEventCreate) SetFeedback(v string) *GradeEventCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_c *GradeEventCreate) SetNillableFeedback(v *string) *GradeEventCreate {
	if v != nil {
		_c.SetFeedback(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *GradeEventCreate) SetSource(v string) *GradeEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *GradeEventCreate) SetLatencyMs(v int64) *GradeEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *GradeEventCreate) SetNillableLatencyMs(v *int64) *GradeEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// Mutation returns the GradeEventMutation object of the builder.
func (_c *GradeEventCreate) Mutation() *GradeEventMutation {
	return _c.mutation
}

// Save creates the GradeEvent in the database.
func (_c *GradeEventCreate) Save(ctx context.Context) (*GradeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GradeEventCreate) SaveX(ctx context.Context) *GradeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GradeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := gradeevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Category(); !ok {
		v := gradeevent.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.Answer(); !ok {
		v := gradeevent.DefaultAnswer
		_c.mutation.SetAnswer(v)
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		v := gradeevent.DefaultFeedback
		_c.mutation.SetFeedback(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := gradeevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GradeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "GradeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "GradeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "GradeEvent.session_id"`)}
	}
	if _, ok := _c.mutation.Instrument(); !ok {
		return &ValidationError{Name: "instrument", err: errors.New(`ent: missing required field "GradeEvent.instrument"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "GradeEvent.question_id"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "GradeEvent.category"`)}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "GradeEvent.answer"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "GradeEvent.score"`)}
	}
	if _, ok := _c.mutation.MaxScore(); !ok {
		return &ValidationError{Name: "max_score", err: errors.New(`ent: missing required field "GradeEvent.max_score"`)}
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		return &ValidationError{Name: "feedback", err: errors.New(`ent: missing required field "GradeEvent.feedback"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "GradeEvent.source"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "GradeEvent.latency_ms"`)}
	}
	return nil
}

func (_c *GradeEventCreate) sqlSave(ctx context.Context) (*GradeEvent, error) {
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

func (_c *GradeEventCreate) createSpec() (*GradeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &GradeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gradeevent.Table, sqlgraph.NewFieldSpec(gradeevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(gradeevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(gradeevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(gradeevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Instrument(); ok {
		_spec.SetField(gradeevent.FieldInstrument, field.TypeString, value)
		_node.Instrument = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(gradeevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(gradeevent.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(gradeevent.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(gradeevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.MaxScore(); ok {
		_spec.SetField(gradeevent.FieldMaxScore, field.TypeInt, value)
		_node.MaxScore = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(gradeevent.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(gradeevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(gradeevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	return _node, _spec
}

// GradeEventCreateBulk is the builder for creating many GradeEvent entities in bulk.
type GradeEventCreateBulk struct {
	config
	err      error
	builders []*GradeEventCreate
}

// Save creates the GradeEvent entities in the database.
func (_c *GradeEventCreateBulk) Save(ctx context.Context) ([]*GradeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GradeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GradeEventMutation)
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
func (_c *GradeEventCreateBulk) SaveX(ctx context.Context) []*GradeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
