// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quizforge/quizforge/ent/corpusitem"
)

// CorpusItem is the model entity for the CorpusItem schema.
type CorpusItem struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Game phase the item was accepted for
	Phase string `json:"phase,omitempty"`
	// Content language
	Language string `json:"language,omitempty"`
	// Normalized item text, as embedded
	Text string `json:"text,omitempty"`
	// Packed float32 embedding vector
	Embedding []byte `json:"embedding,omitempty"`
	// Vector dimensionality, guards against model changes
	EmbeddingDims int `json:"embedding_dims,omitempty"`
	// When the item was accepted
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CorpusItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case corpusitem.FieldEmbedding:
			values[i] = new([]byte)
		case corpusitem.FieldID, corpusitem.FieldEmbeddingDims:
			values[i] = new(sql.NullInt64)
		case corpusitem.FieldPhase, corpusitem.FieldLanguage, corpusitem.FieldText:
			values[i] = new(sql.NullString)
		case corpusitem.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CorpusItem fields.
func (_m *CorpusItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case corpusitem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case corpusitem.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = value.String
			}
		case corpusitem.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case corpusitem.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case corpusitem.FieldEmbedding:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value != nil {
				_m.Embedding = *value
			}
		case corpusitem.FieldEmbeddingDims:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field embedding_dims", values[i])
			} else if value.Valid {
				_m.EmbeddingDims = int(value.Int64)
			}
		case corpusitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CorpusItem.
// This includes values selected through modifiers, order, etc.
func (_m *CorpusItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CorpusItem.
// Note that you need to call CorpusItem.Unwrap() before calling this method if this CorpusItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CorpusItem) Update() *CorpusItemUpdateOne {
	return NewCorpusItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CorpusItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CorpusItem) Unwrap() *CorpusItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CorpusItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CorpusItem) String() string {
	var builder strings.Builder
	builder.WriteString("CorpusItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("phase=")
	builder.WriteString(_m.Phase)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.Embedding))
	builder.WriteString(", ")
	builder.WriteString("embedding_dims=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmbeddingDims))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CorpusItems is a parsable slice of CorpusItem.
type CorpusItems []*CorpusItem
