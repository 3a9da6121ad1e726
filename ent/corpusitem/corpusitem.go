// Code generated by ent, DO NOT EDIT.

package corpusitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the corpusitem type in the database.
	Label = "corpus_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldEmbedding holds the string denoting the embedding field in the database.
	FieldEmbedding = "embedding"
	// FieldEmbeddingDims holds the string denoting the embedding_dims field in the database.
	FieldEmbeddingDims = "embedding_dims"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the corpusitem in the database.
	Table = "corpus_items"
)

// Columns holds all SQL columns for corpusitem fields.
var Columns = []string{
	FieldID,
	FieldPhase,
	FieldLanguage,
	FieldText,
	FieldEmbedding,
	FieldEmbeddingDims,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultLanguage holds the default value on creation for the "language" field.
	DefaultLanguage string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the CorpusItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByEmbeddingDims orders the results by the embedding_dims field.
func ByEmbeddingDims(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmbeddingDims, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
