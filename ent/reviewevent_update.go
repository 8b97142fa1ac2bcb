// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"revtrain/ent/predicate"
	"revtrain/ent/reviewevent"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ReviewEventUpdate is the builder for updating ReviewEvent entities.
type ReviewEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewEventMutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdate) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ReviewEventUpdate) SetSessionID(v string) *ReviewEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableSessionID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReviewEventUpdate) SetUserID(v string) *ReviewEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableUserID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetIteration sets the "iteration" field.
func (_u *ReviewEventUpdate) SetIteration(v int) *ReviewEventUpdate {
	_u.mutation.ResetIteration()
	_u.mutation.SetIteration(v)
	return _u
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableIteration(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetIteration(*v)
	}
	return _u
}

// AddIteration adds value to the "iteration" field.
func (_u *ReviewEventUpdate) AddIteration(v int) *ReviewEventUpdate {
	_u.mutation.AddIteration(v)
	return _u
}

// SetIdentifiedCount sets the "identified_count" field.
func (_u *ReviewEventUpdate) SetIdentifiedCount(v int) *ReviewEventUpdate {
	_u.mutation.ResetIdentifiedCount()
	_u.mutation.SetIdentifiedCount(v)
	return _u
}

// SetNillableIdentifiedCount sets the "identified_count" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableIdentifiedCount(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetIdentifiedCount(*v)
	}
	return _u
}

// AddIdentifiedCount adds value to the "identified_count" field.
func (_u *ReviewEventUpdate) AddIdentifiedCount(v int) *ReviewEventUpdate {
	_u.mutation.AddIdentifiedCount(v)
	return _u
}

// SetTotalProblems sets the "total_problems" field.
func (_u *ReviewEventUpdate) SetTotalProblems(v int) *ReviewEventUpdate {
	_u.mutation.ResetTotalProblems()
	_u.mutation.SetTotalProblems(v)
	return _u
}

// SetNillableTotalProblems sets the "total_problems" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableTotalProblems(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetTotalProblems(*v)
	}
	return _u
}

// AddTotalProblems adds value to the "total_problems" field.
func (_u *ReviewEventUpdate) AddTotalProblems(v int) *ReviewEventUpdate {
	_u.mutation.AddTotalProblems(v)
	return _u
}

// SetIdentifiedPercentage sets the "identified_percentage" field.
func (_u *ReviewEventUpdate) SetIdentifiedPercentage(v float64) *ReviewEventUpdate {
	_u.mutation.ResetIdentifiedPercentage()
	_u.mutation.SetIdentifiedPercentage(v)
	return _u
}

// SetNillableIdentifiedPercentage sets the "identified_percentage" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableIdentifiedPercentage(v *float64) *ReviewEventUpdate {
	if v != nil {
		_u.SetIdentifiedPercentage(*v)
	}
	return _u
}

// AddIdentifiedPercentage adds value to the "identified_percentage" field.
func (_u *ReviewEventUpdate) AddIdentifiedPercentage(v float64) *ReviewEventUpdate {
	_u.mutation.AddIdentifiedPercentage(v)
	return _u
}

// SetSufficient sets the "sufficient" field.
func (_u *ReviewEventUpdate) SetSufficient(v bool) *ReviewEventUpdate {
	_u.mutation.SetSufficient(v)
	return _u
}

// SetNillableSufficient sets the "sufficient" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableSufficient(v *bool) *ReviewEventUpdate {
	if v != nil {
		_u.SetSufficient(*v)
	}
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdate) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ReviewEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(reviewevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(reviewevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Iteration(); ok {
		_spec.SetField(reviewevent.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIteration(); ok {
		_spec.AddField(reviewevent.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IdentifiedCount(); ok {
		_spec.SetField(reviewevent.FieldIdentifiedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIdentifiedCount(); ok {
		_spec.AddField(reviewevent.FieldIdentifiedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalProblems(); ok {
		_spec.SetField(reviewevent.FieldTotalProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalProblems(); ok {
		_spec.AddField(reviewevent.FieldTotalProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IdentifiedPercentage(); ok {
		_spec.SetField(reviewevent.FieldIdentifiedPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIdentifiedPercentage(); ok {
		_spec.AddField(reviewevent.FieldIdentifiedPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Sufficient(); ok {
		_spec.SetField(reviewevent.FieldSufficient, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewEventUpdateOne is the builder for updating a single ReviewEvent entity.
type ReviewEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ReviewEventUpdateOne) SetSessionID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableSessionID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReviewEventUpdateOne) SetUserID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableUserID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetIteration sets the "iteration" field.
func (_u *ReviewEventUpdateOne) SetIteration(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetIteration()
	_u.mutation.SetIteration(v)
	return _u
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableIteration(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetIteration(*v)
	}
	return _u
}

// AddIteration adds value to the "iteration" field.
func (_u *ReviewEventUpdateOne) AddIteration(v int) *ReviewEventUpdateOne {
	_u.mutation.AddIteration(v)
	return _u
}

// SetIdentifiedCount sets the "identified_count" field.
func (_u *ReviewEventUpdateOne) SetIdentifiedCount(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetIdentifiedCount()
	_u.mutation.SetIdentifiedCount(v)
	return _u
}

// SetNillableIdentifiedCount sets the "identified_count" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableIdentifiedCount(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetIdentifiedCount(*v)
	}
	return _u
}

// AddIdentifiedCount adds value to the "identified_count" field.
func (_u *ReviewEventUpdateOne) AddIdentifiedCount(v int) *ReviewEventUpdateOne {
	_u.mutation.AddIdentifiedCount(v)
	return _u
}

// SetTotalProblems sets the "total_problems" field.
func (_u *ReviewEventUpdateOne) SetTotalProblems(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetTotalProblems()
	_u.mutation.SetTotalProblems(v)
	return _u
}

// SetNillableTotalProblems sets the "total_problems" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableTotalProblems(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetTotalProblems(*v)
	}
	return _u
}

// AddTotalProblems adds value to the "total_problems" field.
func (_u *ReviewEventUpdateOne) AddTotalProblems(v int) *ReviewEventUpdateOne {
	_u.mutation.AddTotalProblems(v)
	return _u
}

// SetIdentifiedPercentage sets the "identified_percentage" field.
func (_u *ReviewEventUpdateOne) SetIdentifiedPercentage(v float64) *ReviewEventUpdateOne {
	_u.mutation.ResetIdentifiedPercentage()
	_u.mutation.SetIdentifiedPercentage(v)
	return _u
}

// SetNillableIdentifiedPercentage sets the "identified_percentage" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableIdentifiedPercentage(v *float64) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetIdentifiedPercentage(*v)
	}
	return _u
}

// AddIdentifiedPercentage adds value to the "identified_percentage" field.
func (_u *ReviewEventUpdateOne) AddIdentifiedPercentage(v float64) *ReviewEventUpdateOne {
	_u.mutation.AddIdentifiedPercentage(v)
	return _u
}

// SetSufficient sets the "sufficient" field.
func (_u *ReviewEventUpdateOne) SetSufficient(v bool) *ReviewEventUpdateOne {
	_u.mutation.SetSufficient(v)
	return _u
}

// SetNillableSufficient sets the "sufficient" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableSufficient(v *bool) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetSufficient(*v)
	}
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdateOne) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdateOne) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewEventUpdateOne) Select(field string, fields ...string) *ReviewEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewEvent entity.
func (_u *ReviewEventUpdateOne) Save(ctx context.Context) (*ReviewEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) SaveX(ctx context.Context) *ReviewEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ReviewEventUpdateOne) sqlSave(ctx context.Context) (_node *ReviewEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewevent.FieldID)
		for _, f := range fields {
			if !reviewevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewevent.FieldID {
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
		_spec.SetField(reviewevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(reviewevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Iteration(); ok {
		_spec.SetField(reviewevent.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIteration(); ok {
		_spec.AddField(reviewevent.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IdentifiedCount(); ok {
		_spec.SetField(reviewevent.FieldIdentifiedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIdentifiedCount(); ok {
		_spec.AddField(reviewevent.FieldIdentifiedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalProblems(); ok {
		_spec.SetField(reviewevent.FieldTotalProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalProblems(); ok {
		_spec.AddField(reviewevent.FieldTotalProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IdentifiedPercentage(); ok {
		_spec.SetField(reviewevent.FieldIdentifiedPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIdentifiedPercentage(); ok {
		_spec.AddField(reviewevent.FieldIdentifiedPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Sufficient(); ok {
		_spec.SetField(reviewevent.FieldSufficient, field.TypeBool, value)
	}
	_node = &ReviewEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
