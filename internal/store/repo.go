package store

import (
	"context"
	"time"
)

// LLMRequestEventData carries the fields of one model call event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Agent        string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMStats aggregates model usage across all recorded events.
type LLMStats struct {
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// EventRepo appends and queries persisted pipeline events.
type EventRepo interface {
	// AppendLLMRequest records one model call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// LLMStatsByAgent aggregates token usage per pipeline agent.
	LLMStatsByAgent(ctx context.Context) (map[string]LLMStats, error)

	// LLMStatsByModel aggregates token usage per model, for cost
	// estimation.
	LLMStatsByModel(ctx context.Context) (map[string]LLMStats, error)
}

// CorpusItemData is one persisted corpus entry.
type CorpusItemData struct {
	ID            int
	Phase         string
	Language      string
	Text          string
	Embedding     []byte
	EmbeddingDims int
	CreatedAt     time.Time
}

// CorpusQuery selects a page of corpus items. The scan is cursor-based so a
// large corpus is streamed rather than loaded whole.
type CorpusQuery struct {
	// Phase filters items to one phase. Ignored when AllPhases is set.
	Phase string

	// AllPhases scans the entire corpus to catch cross-phase repeats.
	AllPhases bool

	// Cursor is the exclusive lower bound on item ID; zero starts the scan.
	Cursor int

	// Limit is the page size. Zero means the implementation default.
	Limit int
}

// CorpusPage is one page of a corpus scan.
type CorpusPage struct {
	Items []CorpusItemData

	// NextCursor continues the scan; valid only when More is true.
	NextCursor int
	More       bool
}

// CorpusRepo is the persisted deduplication corpus. Reads are concurrent-safe
// during generation; appends happen only after a phase's batch is fully
// accepted.
type CorpusRepo interface {
	// Append persists one accepted item with its embedding.
	Append(ctx context.Context, item CorpusItemData) error

	// Page returns one page of the corpus scan.
	Page(ctx context.Context, q CorpusQuery) (*CorpusPage, error)

	// Count returns the number of items for a phase, or all items when
	// phase is empty.
	Count(ctx context.Context, phase string) (int, error)
}
