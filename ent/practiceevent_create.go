// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"revtrain/ent/practiceevent"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// PracticeEventCreate is the builder for creating a PracticeEvent entity.
type PracticeEventCreate struct {
	config
	mutation *PracticeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PracticeEventCreate) SetSequence(v int64) *PracticeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PracticeEventCreate) SetTimestamp(v time.Time) *PracticeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PracticeEventCreate) SetNillableTimestamp(v *time.Time) *PracticeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *PracticeEventCreate) SetSessionID(v string) *PracticeEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PracticeEventCreate) SetUserID(v string) *PracticeEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *PracticeEventCreate) SetDifficulty(v string) *PracticeEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetErrorCount sets the "error_count" field.
func (_c *PracticeEventCreate) SetErrorCount(v int) *PracticeEventCreate {
	_c.mutation.SetErrorCount(v)
	return _c
}

// SetIdentifiedCount sets the "identified_count" field.
func (_c *PracticeEventCreate) SetIdentifiedCount(v int) *PracticeEventCreate {
	_c.mutation.SetIdentifiedCount(v)
	return _c
}

// SetNillableIdentifiedCount sets the "identified_count" field if the given value is not nil.
func (_c *PracticeEventCreate) SetNillableIdentifiedCount(v *int) *PracticeEventCreate {
	if v != nil {
		_c.SetIdentifiedCount(*v)
	}
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *PracticeEventCreate) SetAccuracy(v float64) *PracticeEventCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_c *PracticeEventCreate) SetNillableAccuracy(v *float64) *PracticeEventCreate {
	if v != nil {
		_c.SetAccuracy(*v)
	}
	return _c
}

// SetIterationsUsed sets the "iterations_used" field.
func (_c *PracticeEventCreate) SetIterationsUsed(v int) *PracticeEventCreate {
	_c.mutation.SetIterationsUsed(v)
	return _c
}

// SetNillableIterationsUsed sets the "iterations_used" field if the given value is not nil.
func (_c *PracticeEventCreate) SetNillableIterationsUsed(v *int) *PracticeEventCreate {
	if v != nil {
		_c.SetIterationsUsed(*v)
	}
	return _c
}

// SetSufficient sets the "sufficient" field.
func (_c *PracticeEventCreate) SetSufficient(v bool) *PracticeEventCreate {
	_c.mutation.SetSufficient(v)
	return _c
}

// SetNillableSufficient sets the "sufficient" field if the given value is not nil.
func (_c *PracticeEventCreate) SetNillableSufficient(v *bool) *PracticeEventCreate {
	if v != nil {
		_c.SetSufficient(*v)
	}
	return _c
}

// Mutation returns the PracticeEventMutation object of the builder.
func (_c *PracticeEventCreate) Mutation() *PracticeEventMutation {
	return _c.mutation
}

// Save creates the PracticeEvent in the database.
func (_c *PracticeEventCreate) Save(ctx context.Context) (*PracticeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PracticeEventCreate) SaveX(ctx context.Context) *PracticeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PracticeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := practiceevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.IdentifiedCount(); !ok {
		v := practiceevent.DefaultIdentifiedCount
		_c.mutation.SetIdentifiedCount(v)
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		v := practiceevent.DefaultAccuracy
		_c.mutation.SetAccuracy(v)
	}
	if _, ok := _c.mutation.IterationsUsed(); !ok {
		v := practiceevent.DefaultIterationsUsed
		_c.mutation.SetIterationsUsed(v)
	}
	if _, ok := _c.mutation.Sufficient(); !ok {
		v := practiceevent.DefaultSufficient
		_c.mutation.SetSufficient(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PracticeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PracticeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PracticeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PracticeEvent.session_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PracticeEvent.user_id"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "PracticeEvent.difficulty"`)}
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		return &ValidationError{Name: "error_count", err: errors.New(`ent: missing required field "PracticeEvent.error_count"`)}
	}
	if _, ok := _c.mutation.IdentifiedCount(); !ok {
		return &ValidationError{Name: "identified_count", err: errors.New(`ent: missing required field "PracticeEvent.identified_count"`)}
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		return &ValidationError{Name: "accuracy", err: errors.New(`ent: missing required field "PracticeEvent.accuracy"`)}
	}
	if _, ok := _c.mutation.IterationsUsed(); !ok {
		return &ValidationError{Name: "iterations_used", err: errors.New(`ent: missing required field "PracticeEvent.iterations_used"`)}
	}
	if _, ok := _c.mutation.Sufficient(); !ok {
		return &ValidationError{Name: "sufficient", err: errors.New(`ent: missing required field "PracticeEvent.sufficient"`)}
	}
	return nil
}

func (_c *PracticeEventCreate) sqlSave(ctx context.Context) (*PracticeEvent, error) {
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

func (_c *PracticeEventCreate) createSpec() (*PracticeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PracticeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(practiceevent.Table, sqlgraph.NewFieldSpec(practiceevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(practiceevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(practiceevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(practiceevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(practiceevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(practiceevent.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.ErrorCount(); ok {
		_spec.SetField(practiceevent.FieldErrorCount, field.TypeInt, value)
		_node.ErrorCount = value
	}
	if value, ok := _c.mutation.IdentifiedCount(); ok {
		_spec.SetField(practiceevent.FieldIdentifiedCount, field.TypeInt, value)
		_node.IdentifiedCount = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(practiceevent.FieldAccuracy, field.TypeFloat64, value)
		_node.Accuracy = value
	}
	if value, ok := _c.mutation.IterationsUsed(); ok {
		_spec.SetField(practiceevent.FieldIterationsUsed, field.TypeInt, value)
		_node.IterationsUsed = value
	}
	if value, ok := _c.mutation.Sufficient(); ok {
		_spec.SetField(practiceevent.FieldSufficient, field.TypeBool, value)
		_node.Sufficient = value
	}
	return _node, _spec
}

// PracticeEventCreateBulk is the builder for creating many PracticeEvent entities in bulk.
type PracticeEventCreateBulk struct {
	config
	err      error
	builders []*PracticeEventCreate
}

// Save creates the PracticeEvent entities in the database.
func (_c *PracticeEventCreateBulk) Save(ctx context.Context) ([]*PracticeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PracticeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeEventMutation)
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
func (_c *PracticeEventCreateBulk) SaveX(ctx context.Context) []*PracticeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
