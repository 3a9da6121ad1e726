package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// journal_mode reports "memory" for in-memory databases, so WAL is
		// only checked against file-backed stores.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestCorpusAppendAndPage(t *testing.T) {
	s := openTestStore(t)
	repo := s.CorpusRepo()
	ctx := context.Background()

	emb := []byte{0, 0, 128, 63} // packed [1.0]
	for _, phase := range []string{"mcq", "mcq", "buzzer"} {
		err := repo.Append(ctx, CorpusItemData{
			Phase:         phase,
			Text:          "what is the speed of light?",
			Embedding:     emb,
			EmbeddingDims: 1,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	page, err := repo.Page(ctx, CorpusQuery{Phase: "mcq"})
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if len(page.Items) != 2 {
		t.Errorf("expected 2 mcq items, got %d", len(page.Items))
	}
	if page.More {
		t.Error("expected single page")
	}

	all, err := repo.Page(ctx, CorpusQuery{AllPhases: true})
	if err != nil {
		t.Fatalf("page all: %v", err)
	}
	if len(all.Items) != 3 {
		t.Errorf("expected 3 items across phases, got %d", len(all.Items))
	}
}

func TestCorpusPageCursor(t *testing.T) {
	s := openTestStore(t)
	repo := s.CorpusRepo()
	ctx := context.Background()

	for range 5 {
		err := repo.Append(ctx, CorpusItemData{
			Phase:         "mcq",
			Text:          "q",
			Embedding:     []byte{1, 2, 3, 4},
			EmbeddingDims: 1,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	var seen int
	q := CorpusQuery{Phase: "mcq", Limit: 2}
	for {
		page, err := repo.Page(ctx, q)
		if err != nil {
			t.Fatalf("page: %v", err)
		}
		seen += len(page.Items)
		if !page.More {
			break
		}
		q.Cursor = page.NextCursor
	}
	if seen != 5 {
		t.Errorf("cursor scan saw %d items, want 5", seen)
	}
}

func TestCorpusAppendValidation(t *testing.T) {
	s := openTestStore(t)
	repo := s.CorpusRepo()
	ctx := context.Background()

	if err := repo.Append(ctx, CorpusItemData{Text: "x", Embedding: []byte{1}}); err == nil {
		t.Error("expected error for missing phase")
	}
	if err := repo.Append(ctx, CorpusItemData{Phase: "mcq", Text: "x"}); err == nil {
		t.Error("expected error for missing embedding")
	}
}

func TestEventRepoStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "mock", Model: "mock", Agent: "generator", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "mock", Model: "mock", Agent: "generator", InputTokens: 80, OutputTokens: 40, Success: false, ErrorMessage: "boom"},
		{Provider: "mock", Model: "mock", Agent: "reviewer", InputTokens: 10, OutputTokens: 5, Success: true},
	}
	for _, ev := range events {
		if err := repo.AppendLLMRequest(ctx, ev); err != nil {
			t.Fatalf("append event: %v", err)
		}
	}

	stats, err := repo.LLMStatsByAgent(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	gen := stats["generator"]
	if gen.Requests != 2 || gen.Failures != 1 || gen.InputTokens != 180 {
		t.Errorf("unexpected generator stats: %+v", gen)
	}
	if stats["reviewer"].Requests != 1 {
		t.Errorf("unexpected reviewer stats: %+v", stats["reviewer"])
	}
}
