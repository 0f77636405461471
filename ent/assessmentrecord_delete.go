// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hwei-lab/cogscreen/ent/assessmentrecord"
	"github.com/hwei-lab/cogscreen/ent/predicate"
)

// AssessmentRecordDelete is the builder for deleting a AssessmentRecord entity.
type AssessmentRecordDelete struct {
	config
	hooks    []Hook
	mutation *AssessmentRecordMutation
}

// Where appends a list predicates to the AssessmentRecordDelete builder.
func (_d *AssessmentRecordDelete) Where(ps ...predicate.AssessmentRecord) *AssessmentRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AssessmentRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AssessmentRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AssessmentRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(assessmentrecord.Table, sqlgraph.NewFieldSpec(assessmentrecord.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AssessmentRecordDeleteOne is the builder for deleting a single AssessmentRecord entity.
type AssessmentRecordDeleteOne struct {
	_d *AssessmentRecordDelete
}

// Where appends a list predicates to the AssessmentRecordDelete builder.
func (_d *AssessmentRecordDeleteOne) Where(ps ...predicate.AssessmentRecord) *AssessmentRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AssessmentRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{assessmentrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AssessmentRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
