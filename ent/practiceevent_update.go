// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"revtrain/ent/practiceevent"
	"revtrain/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// PracticeEventUpdate is the builder for updating PracticeEvent entities.
type PracticeEventUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeEventMutation
}

// Where appends a list predicates to the PracticeEventUpdate builder.
func (_u *PracticeEventUpdate) Where(ps ...predicate.PracticeEvent) *PracticeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PracticeEventUpdate) SetSessionID(v string) *PracticeEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableSessionID(v *string) *PracticeEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PracticeEventUpdate) SetUserID(v string) *PracticeEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableUserID(v *string) *PracticeEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *PracticeEventUpdate) SetDifficulty(v string) *PracticeEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableDifficulty(v *string) *PracticeEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *PracticeEventUpdate) SetErrorCount(v int) *PracticeEventUpdate {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableErrorCount(v *int) *PracticeEventUpdate {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *PracticeEventUpdate) AddErrorCount(v int) *PracticeEventUpdate {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetIdentifiedCount sets the "identified_count" field.
func (_u *PracticeEventUpdate) SetIdentifiedCount(v int) *PracticeEventUpdate {
	_u.mutation.ResetIdentifiedCount()
	_u.mutation.SetIdentifiedCount(v)
	return _u
}

// SetNillableIdentifiedCount sets the "identified_count" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableIdentifiedCount(v *int) *PracticeEventUpdate {
	if v != nil {
		_u.SetIdentifiedCount(*v)
	}
	return _u
}

// AddIdentifiedCount adds value to the "identified_count" field.
func (_u *PracticeEventUpdate) AddIdentifiedCount(v int) *PracticeEventUpdate {
	_u.mutation.AddIdentifiedCount(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *PracticeEventUpdate) SetAccuracy(v float64) *PracticeEventUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableAccuracy(v *float64) *PracticeEventUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *PracticeEventUpdate) AddAccuracy(v float64) *PracticeEventUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetIterationsUsed sets the "iterations_used" field.
func (_u *PracticeEventUpdate) SetIterationsUsed(v int) *PracticeEventUpdate {
	_u.mutation.ResetIterationsUsed()
	_u.mutation.SetIterationsUsed(v)
	return _u
}

// SetNillableIterationsUsed sets the "iterations_used" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableIterationsUsed(v *int) *PracticeEventUpdate {
	if v != nil {
		_u.SetIterationsUsed(*v)
	}
	return _u
}

// AddIterationsUsed adds value to the "iterations_used" field.
func (_u *PracticeEventUpdate) AddIterationsUsed(v int) *PracticeEventUpdate {
	_u.mutation.AddIterationsUsed(v)
	return _u
}

// SetSufficient sets the "sufficient" field.
func (_u *PracticeEventUpdate) SetSufficient(v bool) *PracticeEventUpdate {
	_u.mutation.SetSufficient(v)
	return _u
}

// SetNillableSufficient sets the "sufficient" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableSufficient(v *bool) *PracticeEventUpdate {
	if v != nil {
		_u.SetSufficient(*v)
	}
	return _u
}

// Mutation returns the PracticeEventMutation object of the builder.
func (_u *PracticeEventUpdate) Mutation() *PracticeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PracticeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(practiceevent.Table, practiceevent.Columns, sqlgraph.NewFieldSpec(practiceevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(practiceevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(practiceevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(practiceevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(practiceevent.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(practiceevent.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IdentifiedCount(); ok {
		_spec.SetField(practiceevent.FieldIdentifiedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIdentifiedCount(); ok {
		_spec.AddField(practiceevent.FieldIdentifiedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(practiceevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(practiceevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IterationsUsed(); ok {
		_spec.SetField(practiceevent.FieldIterationsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIterationsUsed(); ok {
		_spec.AddField(practiceevent.FieldIterationsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Sufficient(); ok {
		_spec.SetField(practiceevent.FieldSufficient, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practiceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeEventUpdateOne is the builder for updating a single PracticeEvent entity.
type PracticeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *PracticeEventUpdateOne) SetSessionID(v string) *PracticeEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableSessionID(v *string) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PracticeEventUpdateOne) SetUserID(v string) *PracticeEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableUserID(v *string) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *PracticeEventUpdateOne) SetDifficulty(v string) *PracticeEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableDifficulty(v *string) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *PracticeEventUpdateOne) SetErrorCount(v int) *PracticeEventUpdateOne {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableErrorCount(v *int) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *PracticeEventUpdateOne) AddErrorCount(v int) *PracticeEventUpdateOne {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetIdentifiedCount sets the "identified_count" field.
func (_u *PracticeEventUpdateOne) SetIdentifiedCount(v int) *PracticeEventUpdateOne {
	_u.mutation.ResetIdentifiedCount()
	_u.mutation.SetIdentifiedCount(v)
	return _u
}

// SetNillableIdentifiedCount sets the "identified_count" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableIdentifiedCount(v *int) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetIdentifiedCount(*v)
	}
	return _u
}

// AddIdentifiedCount adds value to the "identified_count" field.
func (_u *PracticeEventUpdateOne) AddIdentifiedCount(v int) *PracticeEventUpdateOne {
	_u.mutation.AddIdentifiedCount(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *PracticeEventUpdateOne) SetAccuracy(v float64) *PracticeEventUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableAccuracy(v *float64) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *PracticeEventUpdateOne) AddAccuracy(v float64) *PracticeEventUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetIterationsUsed sets the "iterations_used" field.
func (_u *PracticeEventUpdateOne) SetIterationsUsed(v int) *PracticeEventUpdateOne {
	_u.mutation.ResetIterationsUsed()
	_u.mutation.SetIterationsUsed(v)
	return _u
}

// SetNillableIterationsUsed sets the "iterations_used" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableIterationsUsed(v *int) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetIterationsUsed(*v)
	}
	return _u
}

// AddIterationsUsed adds value to the "iterations_used" field.
func (_u *PracticeEventUpdateOne) AddIterationsUsed(v int) *PracticeEventUpdateOne {
	_u.mutation.AddIterationsUsed(v)
	return _u
}

// SetSufficient sets the "sufficient" field.
func (_u *PracticeEventUpdateOne) SetSufficient(v bool) *PracticeEventUpdateOne {
	_u.mutation.SetSufficient(v)
	return _u
}

// SetNillableSufficient sets the "sufficient" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableSufficient(v *bool) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetSufficient(*v)
	}
	return _u
}

// Mutation returns the PracticeEventMutation object of the builder.
func (_u *PracticeEventUpdateOne) Mutation() *PracticeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PracticeEventUpdate builder.
func (_u *PracticeEventUpdateOne) Where(ps ...predicate.PracticeEvent) *PracticeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeEventUpdateOne) Select(field string, fields ...string) *PracticeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeEvent entity.
func (_u *PracticeEventUpdateOne) Save(ctx context.Context) (*PracticeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeEventUpdateOne) SaveX(ctx context.Context) *PracticeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PracticeEventUpdateOne) sqlSave(ctx context.Context) (_node *PracticeEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(practiceevent.Table, practiceevent.Columns, sqlgraph.NewFieldSpec(practiceevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practiceevent.FieldID)
		for _, f := range fields {
			if !practiceevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practiceevent.FieldID {
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
		_spec.SetField(practiceevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(practiceevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(practiceevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(practiceevent.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(practiceevent.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IdentifiedCount(); ok {
		_spec.SetField(practiceevent.FieldIdentifiedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIdentifiedCount(); ok {
		_spec.AddField(practiceevent.FieldIdentifiedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(practiceevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(practiceevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IterationsUsed(); ok {
		_spec.SetField(practiceevent.FieldIterationsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIterationsUsed(); ok {
		_spec.AddField(practiceevent.FieldIterationsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Sufficient(); ok {
		_spec.SetField(practiceevent.FieldSufficient, field.TypeBool, value)
	}
	_node = &PracticeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practiceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
