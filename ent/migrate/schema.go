// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CorpusItemsColumns holds the columns for the "corpus_items" table.
	CorpusItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "phase", Type: field.TypeString},
		{Name: "language", Type: field.TypeString, Default: "en"},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "embedding", Type: field.TypeBytes},
		{Name: "embedding_dims", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CorpusItemsTable holds the schema information for the "corpus_items" table.
	CorpusItemsTable = &schema.Table{
		Name:       "corpus_items",
		Columns:    CorpusItemsColumns,
		PrimaryKey: []*schema.Column{CorpusItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "corpusitem_phase",
				Unique:  false,
				Columns: []*schema.Column{CorpusItemsColumns[1]},
			},
			{
				Name:    "corpusitem_phase_language",
				Unique:  false,
				Columns: []*schema.Column{CorpusItemsColumns[1], CorpusItemsColumns[2]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "agent", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_agent",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CorpusItemsTable,
		LlmRequestEventsTable,
	}
)

func init() {
}
