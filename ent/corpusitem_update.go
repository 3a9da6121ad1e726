// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quizforge/quizforge/ent/corpusitem"
	"github.com/quizforge/quizforge/ent/predicate"
)

// CorpusItemUpdate is the builder for updating CorpusItem entities.
type CorpusItemUpdate struct {
	config
	hooks    []Hook
	mutation *CorpusItemMutation
}

// Where appends a list predicates to the CorpusItemUpdate builder.
func (_u *CorpusItemUpdate) Where(ps ...predicate.CorpusItem) *CorpusItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPhase sets the "phase" field.
func (_u *CorpusItemUpdate) SetPhase(v string) *CorpusItemUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *CorpusItemUpdate) SetNillablePhase(v *string) *CorpusItemUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *CorpusItemUpdate) SetLanguage(v string) *CorpusItemUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *CorpusItemUpdate) SetNillableLanguage(v *string) *CorpusItemUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *CorpusItemUpdate) SetText(v string) *CorpusItemUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *CorpusItemUpdate) SetNillableText(v *string) *CorpusItemUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *CorpusItemUpdate) SetEmbedding(v []byte) *CorpusItemUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// SetEmbeddingDims sets the "embedding_dims" field.
func (_u *CorpusItemUpdate) SetEmbeddingDims(v int) *CorpusItemUpdate {
	_u.mutation.ResetEmbeddingDims()
	_u.mutation.SetEmbeddingDims(v)
	return _u
}

// SetNillableEmbeddingDims sets the "embedding_dims" field if the given value is not nil.
func (_u *CorpusItemUpdate) SetNillableEmbeddingDims(v *int) *CorpusItemUpdate {
	if v != nil {
		_u.SetEmbeddingDims(*v)
	}
	return _u
}

// AddEmbeddingDims adds value to the "embedding_dims" field.
func (_u *CorpusItemUpdate) AddEmbeddingDims(v int) *CorpusItemUpdate {
	_u.mutation.AddEmbeddingDims(v)
	return _u
}

// Mutation returns the CorpusItemMutation object of the builder.
func (_u *CorpusItemUpdate) Mutation() *CorpusItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CorpusItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CorpusItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CorpusItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CorpusItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CorpusItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(corpusitem.Table, corpusitem.Columns, sqlgraph.NewFieldSpec(corpusitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(corpusitem.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(corpusitem.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(corpusitem.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(corpusitem.FieldEmbedding, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.EmbeddingDims(); ok {
		_spec.SetField(corpusitem.FieldEmbeddingDims, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEmbeddingDims(); ok {
		_spec.AddField(corpusitem.FieldEmbeddingDims, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{corpusitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CorpusItemUpdateOne is the builder for updating a single CorpusItem entity.
type CorpusItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CorpusItemMutation
}

// SetPhase sets the "phase" field.
func (_u *CorpusItemUpdateOne) SetPhase(v string) *CorpusItemUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *CorpusItemUpdateOne) SetNillablePhase(v *string) *CorpusItemUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *CorpusItemUpdateOne) SetLanguage(v string) *CorpusItemUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *CorpusItemUpdateOne) SetNillableLanguage(v *string) *CorpusItemUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *CorpusItemUpdateOne) SetText(v string) *CorpusItemUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *CorpusItemUpdateOne) SetNillableText(v *string) *CorpusItemUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *CorpusItemUpdateOne) SetEmbedding(v []byte) *CorpusItemUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// SetEmbeddingDims sets the "embedding_dims" field.
func (_u *CorpusItemUpdateOne) SetEmbeddingDims(v int) *CorpusItemUpdateOne {
	_u.mutation.ResetEmbeddingDims()
	_u.mutation.SetEmbeddingDims(v)
	return _u
}

// SetNillableEmbeddingDims sets the "embedding_dims" field if the given value is not nil.
func (_u *CorpusItemUpdateOne) SetNillableEmbeddingDims(v *int) *CorpusItemUpdateOne {
	if v != nil {
		_u.SetEmbeddingDims(*v)
	}
	return _u
}

// AddEmbeddingDims adds value to the "embedding_dims" field.
func (_u *CorpusItemUpdateOne) AddEmbeddingDims(v int) *CorpusItemUpdateOne {
	_u.mutation.AddEmbeddingDims(v)
	return _u
}

// Mutation returns the CorpusItemMutation object of the builder.
func (_u *CorpusItemUpdateOne) Mutation() *CorpusItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the CorpusItemUpdate builder.
func (_u *CorpusItemUpdateOne) Where(ps ...predicate.CorpusItem) *CorpusItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CorpusItemUpdateOne) Select(field string, fields ...string) *CorpusItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CorpusItem entity.
func (_u *CorpusItemUpdateOne) Save(ctx context.Context) (*CorpusItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CorpusItemUpdateOne) SaveX(ctx context.Context) *CorpusItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CorpusItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CorpusItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CorpusItemUpdateOne) sqlSave(ctx context.Context) (_node *CorpusItem, err error) {
	_spec := sqlgraph.NewUpdateSpec(corpusitem.Table, corpusitem.Columns, sqlgraph.NewFieldSpec(corpusitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CorpusItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, corpusitem.FieldID)
		for _, f := range fields {
			if !corpusitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != corpusitem.FieldID {
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
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(corpusitem.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(corpusitem.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(corpusitem.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(corpusitem.FieldEmbedding, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.EmbeddingDims(); ok {
		_spec.SetField(corpusitem.FieldEmbeddingDims, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEmbeddingDims(); ok {
		_spec.AddField(corpusitem.FieldEmbeddingDims, field.TypeInt, value)
	}
	_node = &CorpusItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{corpusitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
