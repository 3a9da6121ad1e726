package dedup

import (
	"context"
	"testing"

	"github.com/quizforge/quizforge/internal/embed"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/store"
)

// fakeCorpus is an in-memory CorpusRepo for tests.
type fakeCorpus struct {
	items     []store.CorpusItemData
	pageCalls int
}

func (f *fakeCorpus) Append(_ context.Context, item store.CorpusItemData) error {
	item.ID = len(f.items) + 1
	f.items = append(f.items, item)
	return nil
}

func (f *fakeCorpus) Page(_ context.Context, q store.CorpusQuery) (*store.CorpusPage, error) {
	f.pageCalls++
	limit := q.Limit
	if limit <= 0 {
		limit = 200
	}

	page := &store.CorpusPage{}
	for _, it := range f.items {
		if it.ID <= q.Cursor {
			continue
		}
		if !q.AllPhases && q.Phase != "" && it.Phase != q.Phase {
			continue
		}
		if len(page.Items) == limit {
			page.More = true
			break
		}
		page.Items = append(page.Items, it)
		page.NextCursor = it.ID
	}
	return page, nil
}

func (f *fakeCorpus) Count(_ context.Context, phase string) (int, error) {
	n := 0
	for _, it := range f.items {
		if phase == "" || it.Phase == phase {
			n++
		}
	}
	return n, nil
}

func seqItems(texts ...string) []quiz.Item {
	out := make([]quiz.Item, len(texts))
	for i, t := range texts {
		out[i] = quiz.SequenceItem{Question: t, Answer: "x"}
	}
	return out
}

func newTestIndex(corpus *fakeCorpus, emb *embed.MockEmbedder) *Index {
	return New(emb, corpus, Config{SimilarityThreshold: 0.85})
}

func TestFindDuplicates_CleanBatch(t *testing.T) {
	ix := newTestIndex(&fakeCorpus{}, embed.NewMockEmbedder())

	items := seqItems("what is the speed of light?", "who painted the Mona Lisa?")
	res, err := ix.FindDuplicates(context.Background(), quiz.PhaseMCQ, items)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Duplicates) != 0 {
		t.Errorf("expected no duplicates, got %+v", res.Duplicates)
	}
	if len(res.Embeddings) != 2 {
		t.Errorf("expected embeddings for every item")
	}
}

func TestFindDuplicates_InternalFlagsLaterIndex(t *testing.T) {
	emb := embed.NewMockEmbedder()
	// Same normal form, so the hash embedder maps both to the same vector.
	items := seqItems("What is the SPEED of light?", "what is the speed   of light?")
	ix := newTestIndex(&fakeCorpus{}, emb)

	res, err := ix.FindDuplicates(context.Background(), quiz.PhaseMCQ, items)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Duplicates) != 1 {
		t.Fatalf("expected 1 duplicate, got %+v", res.Duplicates)
	}
	d := res.Duplicates[0]
	if d.Index != 1 || !d.Internal {
		t.Errorf("later index must be flagged as internal: %+v", d)
	}
}

func TestFindDuplicates_CorpusMatch(t *testing.T) {
	emb := embed.NewMockEmbedder()
	corpus := &fakeCorpus{}

	// Seed the corpus with the same vector the candidate will embed to.
	vec, _ := emb.Embed(context.Background(), quiz.Normalize("What is the speed of light?"))
	corpus.Append(context.Background(), store.CorpusItemData{
		Phase:         "mcq",
		Text:          "what is the speed of light?",
		Embedding:     embed.Pack(vec),
		EmbeddingDims: len(vec),
	})

	ix := newTestIndex(corpus, emb)
	items := seqItems("What is the speed of light?", "who painted the Mona Lisa?")

	res, err := ix.FindDuplicates(context.Background(), quiz.PhaseMCQ, items)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Duplicates) != 1 {
		t.Fatalf("expected 1 corpus duplicate, got %+v", res.Duplicates)
	}
	d := res.Duplicates[0]
	if d.Index != 0 || d.Internal {
		t.Errorf("expected corpus match on index 0: %+v", d)
	}
	if d.Score < 0.999 {
		t.Errorf("identical text should score ~1.0, got %f", d.Score)
	}
}

func TestFindDuplicates_PhaseScoping(t *testing.T) {
	emb := embed.NewMockEmbedder()
	corpus := &fakeCorpus{}

	vec, _ := emb.Embed(context.Background(), quiz.Normalize("what is the speed of light?"))
	corpus.Append(context.Background(), store.CorpusItemData{
		Phase:     "buzzer",
		Text:      "what is the speed of light?",
		Embedding: embed.Pack(vec),
	})

	items := seqItems("what is the speed of light?")

	// Phase-scoped: the buzzer entry is invisible to an mcq check.
	ix := newTestIndex(corpus, emb)
	res, err := ix.FindDuplicates(context.Background(), quiz.PhaseMCQ, items)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Duplicates) != 0 {
		t.Errorf("phase-scoped check should miss other phases: %+v", res.Duplicates)
	}

	// All-phases: the same entry is caught.
	ixAll := New(emb, corpus, Config{SimilarityThreshold: 0.85, AllPhases: true})
	res, err = ixAll.FindDuplicates(context.Background(), quiz.PhaseMCQ, items)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Duplicates) != 1 {
		t.Errorf("all-phases check should catch cross-phase repeat: %+v", res.Duplicates)
	}
}

func TestFindDuplicates_EarlyExitWhenAllFlagged(t *testing.T) {
	emb := embed.NewMockEmbedder()
	corpus := &fakeCorpus{}
	ctx := context.Background()

	vec, _ := emb.Embed(ctx, quiz.Normalize("q1"))
	corpus.Append(ctx, store.CorpusItemData{Phase: "mcq", Text: "q1", Embedding: embed.Pack(vec)})
	// Pad the corpus so the scan would need several pages.
	for i := 0; i < 10; i++ {
		corpus.Append(ctx, store.CorpusItemData{Phase: "mcq", Text: "other", Embedding: embed.Pack([]float32{0, 1})})
	}

	ix := New(emb, corpus, Config{SimilarityThreshold: 0.85, PageSize: 1})
	res, err := ix.FindDuplicates(ctx, quiz.PhaseMCQ, seqItems("q1"))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Duplicates) != 1 {
		t.Fatalf("expected duplicate: %+v", res.Duplicates)
	}
	if corpus.pageCalls > 2 {
		t.Errorf("scan should exit early once all items are flagged, made %d page calls", corpus.pageCalls)
	}
}

func TestFindDuplicates_EmbedsOncePerBatch(t *testing.T) {
	emb := embed.NewMockEmbedder()
	ix := newTestIndex(&fakeCorpus{}, emb)

	_, err := ix.FindDuplicates(context.Background(), quiz.PhaseMCQ, seqItems("a", "b", "c"))
	if err != nil {
		t.Fatal(err)
	}
	if emb.Calls != 1 {
		t.Errorf("expected a single embedding call per batch, got %d", emb.Calls)
	}
}

func TestPersist_ReusesEmbeddings(t *testing.T) {
	emb := embed.NewMockEmbedder()
	corpus := &fakeCorpus{}
	ix := newTestIndex(corpus, emb)
	ctx := context.Background()

	items := seqItems("q1", "q2")
	res, err := ix.FindDuplicates(ctx, quiz.PhaseMCQ, items)
	if err != nil {
		t.Fatal(err)
	}

	batch := quiz.Batch{Phase: quiz.PhaseMCQ, Language: "en", TargetCount: 2, Items: items}
	if err := ix.Persist(ctx, batch, res.Embeddings); err != nil {
		t.Fatal(err)
	}

	if n, _ := corpus.Count(ctx, "mcq"); n != 2 {
		t.Errorf("expected 2 persisted items, got %d", n)
	}
	if emb.Calls != 1 {
		t.Errorf("persist must not re-embed, got %d calls", emb.Calls)
	}
}
