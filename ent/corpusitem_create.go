// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quizforge/quizforge/ent/corpusitem"
)

// CorpusItemCreate is the builder for creating a CorpusItem entity.
type CorpusItemCreate struct {
	config
	mutation *CorpusItemMutation
	hooks    []Hook
}

// SetPhase sets the "phase" field.
func (_c *CorpusItemCreate) SetPhase(v string) *CorpusItemCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *CorpusItemCreate) SetLanguage(v string) *CorpusItemCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *CorpusItemCreate) SetNillableLanguage(v *string) *CorpusItemCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetText sets the "text" field.
func (_c *CorpusItemCreate) SetText(v string) *CorpusItemCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *CorpusItemCreate) SetEmbedding(v []byte) *CorpusItemCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetEmbeddingDims sets the "embedding_dims" field.
func (_c *CorpusItemCreate) SetEmbeddingDims(v int) *CorpusItemCreate {
	_c.mutation.SetEmbeddingDims(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CorpusItemCreate) SetCreatedAt(v time.Time) *CorpusItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CorpusItemCreate) SetNillableCreatedAt(v *time.Time) *CorpusItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the CorpusItemMutation object of the builder.
func (_c *CorpusItemCreate) Mutation() *CorpusItemMutation {
	return _c.mutation
}

// Save creates the CorpusItem in the database.
func (_c *CorpusItemCreate) Save(ctx context.Context) (*CorpusItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CorpusItemCreate) SaveX(ctx context.Context) *CorpusItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CorpusItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CorpusItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CorpusItemCreate) defaults() {
	if _, ok := _c.mutation.Language(); !ok {
		v := corpusitem.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := corpusitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CorpusItemCreate) check() error {
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "CorpusItem.phase"`)}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "CorpusItem.language"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "CorpusItem.text"`)}
	}
	if _, ok := _c.mutation.Embedding(); !ok {
		return &ValidationError{Name: "embedding", err: errors.New(`ent: missing required field "CorpusItem.embedding"`)}
	}
	if _, ok := _c.mutation.EmbeddingDims(); !ok {
		return &ValidationError{Name: "embedding_dims", err: errors.New(`ent: missing required field "CorpusItem.embedding_dims"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CorpusItem.created_at"`)}
	}
	return nil
}

func (_c *CorpusItemCreate) sqlSave(ctx context.Context) (*CorpusItem, error) {
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

func (_c *CorpusItemCreate) createSpec() (*CorpusItem, *sqlgraph.CreateSpec) {
	var (
		_node = &CorpusItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(corpusitem.Table, sqlgraph.NewFieldSpec(corpusitem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(corpusitem.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(corpusitem.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(corpusitem.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(corpusitem.FieldEmbedding, field.TypeBytes, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.EmbeddingDims(); ok {
		_spec.SetField(corpusitem.FieldEmbeddingDims, field.TypeInt, value)
		_node.EmbeddingDims = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(corpusitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// CorpusItemCreateBulk is the builder for creating many CorpusItem entities in bulk.
type CorpusItemCreateBulk struct {
	config
	err      error
	builders []*CorpusItemCreate
}

// Save creates the CorpusItem entities in the database.
func (_c *CorpusItemCreateBulk) Save(ctx context.Context) ([]*CorpusItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CorpusItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CorpusItemMutation)
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
func (_c *CorpusItemCreateBulk) SaveX(ctx context.Context) []*CorpusItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CorpusItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CorpusItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
