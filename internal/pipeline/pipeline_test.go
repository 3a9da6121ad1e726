package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/dedup"
	"github.com/quizforge/quizforge/internal/embed"
	"github.com/quizforge/quizforge/internal/factcheck"
	"github.com/quizforge/quizforge/internal/llm"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/quizgen"
	"github.com/quizforge/quizforge/internal/review"
	"github.com/quizforge/quizforge/internal/store"
)

// memCorpus is a concurrency-safe in-memory CorpusRepo.
type memCorpus struct {
	mu    sync.Mutex
	items []store.CorpusItemData
}

func (f *memCorpus) Append(_ context.Context, item store.CorpusItemData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item.ID = len(f.items) + 1
	f.items = append(f.items, item)
	return nil
}

func (f *memCorpus) Page(_ context.Context, q store.CorpusQuery) (*store.CorpusPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

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

func (f *memCorpus) Count(_ context.Context, phase string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, it := range f.items {
		if phase == "" || it.Phase == phase {
			n++
		}
	}
	return n, nil
}

type harness struct {
	gen     *llm.MockProvider
	rev     *llm.MockProvider
	chk     *llm.MockProvider
	corpus  *memCorpus
	embeds  *embed.MockEmbedder
	orch    *Orchestrator
	pipeCfg config.Pipeline
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		gen:    llm.NewMockProvider(),
		rev:    llm.NewMockProvider(),
		chk:    llm.NewMockProvider(),
		corpus: &memCorpus{},
		embeds: embed.NewMockEmbedder(),
	}

	cfg := config.Default().Pipeline
	h.pipeCfg = cfg

	checkCfg := factcheck.DefaultConfig()
	checkCfg.BaseBackoff = time.Millisecond

	h.orch = New(
		quizgen.New(h.gen, quizgen.DefaultConfig()),
		review.New(h.rev, review.DefaultConfig()),
		factcheck.New(h.chk, checkCfg),
		dedup.New(h.embeds, h.corpus, dedup.Config{
			SimilarityThreshold: cfg.SimilarityThreshold,
		}),
		cfg,
		nil,
	)
	return h
}

// mcqBatchJSON builds a generator response of n distinct MCQ items.
func mcqBatchJSON(n int, tag string) llm.MockResponse {
	var b strings.Builder
	b.WriteString(`{"items":[`)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b,
			`{"text":"Question %s-%d about a distinct fact?","options":["Right %s-%d","Wrong1","Wrong2","Wrong3"],"correct_index":0,"anecdote":"Fact."}`,
			tag, i, tag, i)
	}
	b.WriteString(`]}`)
	return llm.MockResponse{Content: json.RawMessage(b.String()), Usage: llm.Usage{TotalTokens: 10}}
}

// reviewJSON builds a reviewer verdict. flagged maps index to note.
func reviewJSON(score float64, n int, flagged map[int]string) llm.MockResponse {
	var fb []string
	for i := 0; i < n; i++ {
		if note, bad := flagged[i]; bad {
			fb = append(fb, fmt.Sprintf(`{"index":%d,"ok":false,"issue_type":"other","note":%q}`, i, note))
		} else {
			fb = append(fb, fmt.Sprintf(`{"index":%d,"ok":true,"issue_type":"","note":""}`, i))
		}
	}
	body := fmt.Sprintf(`{"overall_score":%g,
		"criterion_scores":{"factual_accuracy":9,"option_plausibility":8,"clarity":8,"thematic_variety":8},
		"per_item_feedback":[%s],"suggestions":""}`, score, strings.Join(fb, ","))
	return llm.MockResponse{Content: json.RawMessage(body)}
}

// factJSON builds an all-pass (or selectively failing) verification response.
func factJSON(n int, failing map[int]bool) llm.MockResponse {
	var vs []string
	for i := 0; i < n; i++ {
		if failing[i] {
			vs = append(vs, fmt.Sprintf(
				`{"index":%d,"is_correct":false,"confidence":90,"reasoning":"wrong","correction":"Other","synonym_issue":false}`, i))
		} else {
			vs = append(vs, fmt.Sprintf(
				`{"index":%d,"is_correct":true,"confidence":95,"reasoning":"ok","correction":"","synonym_issue":false}`, i))
		}
	}
	body := fmt.Sprintf(`{"verdicts":[%s]}`, strings.Join(vs, ","))
	return llm.MockResponse{Content: json.RawMessage(body)}
}

func mcqRequest(n int) Request {
	return Request{
		Phase:       quiz.PhaseMCQ,
		Topic:       "space facts",
		Difficulty:  quiz.DifficultyNormal,
		Language:    "en",
		TargetCount: n,
	}
}

func TestRunPhaseHappyPath(t *testing.T) {
	h := newHarness(t)
	h.gen.AddResponse(mcqBatchJSON(10, "a"))
	h.rev.AddResponse(reviewJSON(8.5, 10, nil))
	h.chk.AddResponse(factJSON(10, nil))

	res, err := h.orch.RunPhase(context.Background(), mcqRequest(10))
	if err != nil {
		t.Fatalf("RunPhase: %v", err)
	}
	if len(res.Batch.Items) != 10 {
		t.Fatalf("got %d items, want 10", len(res.Batch.Items))
	}
	if !res.Batch.Complete() {
		t.Error("accepted batch must be complete")
	}
	if res.Warning != "" {
		t.Errorf("unexpected warning: %q", res.Warning)
	}
	if len(res.Embeddings) != 10 {
		t.Errorf("got %d embeddings, want 10", len(res.Embeddings))
	}

	// Accepted items and their embeddings land in the corpus.
	n, _ := h.corpus.Count(context.Background(), string(quiz.PhaseMCQ))
	if n != 10 {
		t.Errorf("corpus holds %d items, want 10", n)
	}
	if res.Usage.TotalTokens == 0 {
		t.Error("usage should accumulate across calls")
	}
}

func TestRunPhaseTargetedRegenOnLowScore(t *testing.T) {
	h := newHarness(t)

	// Iteration 1: score 5 with 2/10 flagged. 2 <= 60% ceiling, so only
	// the two defective slots are regenerated.
	h.gen.AddResponse(mcqBatchJSON(10, "a"))
	h.rev.AddResponse(reviewJSON(5, 10, map[int]string{1: "vague", 2: "vague"}))
	h.gen.AddResponse(mcqBatchJSON(2, "b"))

	// Iteration 2 reviews the merged batch, not a fresh generation.
	h.rev.AddResponse(reviewJSON(8, 10, nil))
	h.chk.AddResponse(factJSON(10, nil))

	res, err := h.orch.RunPhase(context.Background(), mcqRequest(10))
	if err != nil {
		t.Fatalf("RunPhase: %v", err)
	}
	if len(res.Batch.Items) != 10 {
		t.Fatalf("got %d items, want 10", len(res.Batch.Items))
	}

	if got := h.gen.CallCount(); got != 2 {
		t.Fatalf("generator called %d times, want 2", got)
	}
	full := h.gen.Calls[0].Messages[0].Content
	partial := h.gen.Calls[1].Messages[0].Content
	if !strings.Contains(full, "exactly 10") {
		t.Errorf("first call should request the full batch:\n%s", full)
	}
	if !strings.Contains(partial, "exactly 2") {
		t.Errorf("replacement call should request only the deficit:\n%s", partial)
	}
	if !strings.Contains(partial, "vague") {
		t.Error("replacement call should carry the reviewer's notes")
	}
}

func TestRunPhaseFeedbackClearedAfterReviewPasses(t *testing.T) {
	h := newHarness(t)

	// Iteration 1: review rejects with 7/10 flagged, above the targeted
	// ceiling, so the batch is discarded and the notes accumulate.
	flagged := map[int]string{}
	for i := 0; i < 7; i++ {
		flagged[i] = "recycled anecdote"
	}
	h.gen.AddResponse(mcqBatchJSON(10, "a"))
	h.rev.AddResponse(reviewJSON(4, 10, flagged))

	// Iteration 2: the fresh batch passes review, then fact-check rejects
	// 7 items, again forcing a full regeneration.
	h.gen.AddResponse(mcqBatchJSON(10, "b"))
	h.rev.AddResponse(reviewJSON(8, 10, nil))
	h.chk.AddResponse(factJSON(10, map[int]bool{0: true, 1: true, 2: true, 3: true, 4: true, 5: true, 6: true}))

	// Iteration 3: accepted.
	h.gen.AddResponse(mcqBatchJSON(10, "c"))
	h.rev.AddResponse(reviewJSON(8, 10, nil))
	h.chk.AddResponse(factJSON(10, nil))

	if _, err := h.orch.RunPhase(context.Background(), mcqRequest(10)); err != nil {
		t.Fatalf("RunPhase: %v", err)
	}
	if got := h.gen.CallCount(); got != 3 {
		t.Fatalf("generator called %d times, want 3", got)
	}

	// The second attempt sees the reviewer's notes; once that batch clears
	// review, the stale notes must not survive into the third attempt.
	second := h.gen.Calls[1].Messages[0].Content
	if !strings.Contains(second, "recycled anecdote") {
		t.Errorf("second attempt should carry the review notes:\n%s", second)
	}
	third := h.gen.Calls[2].Messages[0].Content
	if strings.Contains(third, "recycled anecdote") {
		t.Errorf("stale review notes leaked into the third attempt:\n%s", third)
	}
	if !strings.Contains(third, "actual answer: Other") {
		t.Errorf("third attempt should carry the fact-check reasons:\n%s", third)
	}
}

func TestRunPhaseFactCheckFailClosed(t *testing.T) {
	h := newHarness(t)

	// Every iteration generates and reviews fine, but verification never
	// answers. No item from any of those batches may ever be returned.
	budget := h.pipeCfg.IterationBudget(quiz.PhaseMCQ)
	for i := 0; i < budget; i++ {
		h.gen.AddResponse(mcqBatchJSON(10, fmt.Sprintf("gen%d", i)))
		h.rev.AddResponse(reviewJSON(8, 10, nil))
	}

	res, err := h.orch.RunPhase(context.Background(), mcqRequest(10))
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("err = %v, want ErrExhausted", err)
	}
	if res != nil {
		t.Fatal("fail-closed violated: got a result from unverified batches")
	}

	// Each iteration discarded its batch and re-entered generation.
	if got := h.gen.CallCount(); got != budget {
		t.Errorf("generator called %d times, want %d", got, budget)
	}
	n, _ := h.corpus.Count(context.Background(), "")
	if n != 0 {
		t.Errorf("corpus gained %d items from rejected batches", n)
	}
}

func TestRunPhaseFactCheckFailuresTargetedRegen(t *testing.T) {
	h := newHarness(t)

	h.gen.AddResponse(mcqBatchJSON(10, "a"))
	h.rev.AddResponse(reviewJSON(8, 10, nil))
	h.chk.AddResponse(factJSON(10, map[int]bool{4: true}))
	h.gen.AddResponse(mcqBatchJSON(1, "b"))

	h.rev.AddResponse(reviewJSON(8, 10, nil))
	h.chk.AddResponse(factJSON(10, nil))

	res, err := h.orch.RunPhase(context.Background(), mcqRequest(10))
	if err != nil {
		t.Fatalf("RunPhase: %v", err)
	}
	if len(res.Batch.Items) != 10 {
		t.Fatalf("got %d items, want 10", len(res.Batch.Items))
	}

	// The replacement prompt names the failed item's correction.
	partial := h.gen.Calls[1].Messages[0].Content
	if !strings.Contains(partial, "actual answer: Other") {
		t.Errorf("replacement call should explain the verification failure:\n%s", partial)
	}
	// The failed item's option set is gone from the accepted batch.
	for _, it := range res.Batch.Items {
		if it.Solution() == "Right a-4" {
			t.Error("fact-check-failed item survived into the accepted batch")
		}
	}
}

func TestRunPhaseCorpusDuplicateRefilled(t *testing.T) {
	h := newHarness(t)

	// Seed the corpus with an item about the speed of light, embedded the
	// same way the index will embed the candidate.
	seed := "Question a-0 about a distinct fact?"
	vec, err := h.embeds.Embed(context.Background(), quiz.Normalize(seed))
	if err != nil {
		t.Fatal(err)
	}
	if err := h.corpus.Append(context.Background(), store.CorpusItemData{
		Phase:         string(quiz.PhaseMCQ),
		Text:          quiz.Normalize(seed),
		Embedding:     embed.Pack(vec),
		EmbeddingDims: len(vec),
	}); err != nil {
		t.Fatal(err)
	}

	// Iteration 1: item 0 collides with the seeded corpus entry; the
	// other nine survive and only one replacement is requested.
	h.gen.AddResponse(mcqBatchJSON(10, "a"))
	h.rev.AddResponse(reviewJSON(8, 10, nil))
	h.chk.AddResponse(factJSON(10, nil))
	h.gen.AddResponse(mcqBatchJSON(1, "fresh"))

	h.rev.AddResponse(reviewJSON(8, 10, nil))
	h.chk.AddResponse(factJSON(10, nil))

	res, err := h.orch.RunPhase(context.Background(), mcqRequest(10))
	if err != nil {
		t.Fatalf("RunPhase: %v", err)
	}
	if len(res.Batch.Items) != 10 {
		t.Fatalf("got %d items, want 10", len(res.Batch.Items))
	}
	for _, it := range res.Batch.Items {
		if it.Prompt() == seed {
			t.Error("corpus duplicate survived into the accepted batch")
		}
	}
	if !strings.Contains(h.gen.Calls[1].Messages[0].Content, "too similar") {
		t.Error("refill prompt should name the duplication reason")
	}
}

func TestRunPhaseBestEffortOnExhaustion(t *testing.T) {
	h := newHarness(t)

	// A verified batch exists, but duplicate filtering keeps gutting it
	// below the minimum viable size, forcing regeneration until the
	// budget runs out. The run degrades to the best verified batch.
	budget := h.pipeCfg.IterationBudget(quiz.PhaseMCQ)

	// All items in every generation collide with seeded corpus entries.
	for i := 0; i < 10; i++ {
		text := quiz.Normalize(fmt.Sprintf("Question a-%d about a distinct fact?", i))
		vec, _ := h.embeds.Embed(context.Background(), text)
		h.corpus.Append(context.Background(), store.CorpusItemData{
			Phase: string(quiz.PhaseMCQ), Text: text,
			Embedding: embed.Pack(vec), EmbeddingDims: len(vec),
		})
	}
	for i := 0; i < budget; i++ {
		h.gen.AddResponse(mcqBatchJSON(10, "a")) // same texts every time
		h.rev.AddResponse(reviewJSON(8, 10, nil))
		h.chk.AddResponse(factJSON(10, nil))
	}

	res, err := h.orch.RunPhase(context.Background(), mcqRequest(10))
	if err != nil {
		t.Fatalf("RunPhase: %v", err)
	}
	if res.Warning == "" {
		t.Error("best-effort result must carry a warning")
	}
	if len(res.Batch.Items) != 10 {
		t.Fatalf("got %d items, want 10", len(res.Batch.Items))
	}
}

func TestRunPhaseExhaustedNoValidBatch(t *testing.T) {
	h := newHarness(t)
	// The generator keeps answering with the wrong item count.
	budget := h.pipeCfg.IterationBudget(quiz.PhaseMCQ)
	for i := 0; i < budget; i++ {
		h.gen.AddResponse(mcqBatchJSON(3, "short"))
	}

	_, err := h.orch.RunPhase(context.Background(), mcqRequest(10))
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("err = %v, want ErrExhausted", err)
	}

	// The defect description feeds back into the next attempt.
	if h.gen.CallCount() < 2 {
		t.Fatal("expected repeated generation attempts")
	}
	second := h.gen.Calls[1].Messages[0].Content
	if !strings.Contains(second, "rejected") {
		t.Errorf("second attempt should carry the defect feedback:\n%s", second)
	}
}

func TestRunPhaseTimeout(t *testing.T) {
	h := newHarness(t)
	h.orch.cfg.PhaseTimeout = time.Nanosecond

	start := time.Now()
	_, err := h.orch.RunPhase(context.Background(), mcqRequest(10))
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("err = %v, want ErrExhausted", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Error("timed-out run should exit promptly")
	}
}

func TestRunPhaseRejectsBadRequest(t *testing.T) {
	h := newHarness(t)
	if _, err := h.orch.RunPhase(context.Background(), Request{Phase: "karaoke", TargetCount: 5}); err == nil {
		t.Error("unknown phase should be rejected")
	}
	if _, err := h.orch.RunPhase(context.Background(), Request{Phase: quiz.PhaseMCQ}); err == nil {
		t.Error("zero target count should be rejected")
	}
}

func TestCategoryDeficit(t *testing.T) {
	required := map[quiz.Category]int{
		quiz.CategoryA:    5,
		quiz.CategoryB:    5,
		quiz.CategoryBoth: 2,
	}
	good := []quiz.Item{
		quiz.CategorizeItem{Text: "1", Answer: quiz.CategoryA},
		quiz.CategorizeItem{Text: "2", Answer: quiz.CategoryA},
		quiz.CategorizeItem{Text: "3", Answer: quiz.CategoryA},
		quiz.CategorizeItem{Text: "4", Answer: quiz.CategoryA},
		quiz.CategorizeItem{Text: "5", Answer: quiz.CategoryB},
		quiz.CategorizeItem{Text: "6", Answer: quiz.CategoryB},
		quiz.CategorizeItem{Text: "7", Answer: quiz.CategoryB},
		quiz.CategorizeItem{Text: "8", Answer: quiz.CategoryB},
		quiz.CategorizeItem{Text: "9", Answer: quiz.CategoryBoth},
	}
	bad := []quiz.Item{
		quiz.CategorizeItem{Text: "x", Answer: quiz.CategoryA},
		quiz.CategorizeItem{Text: "y", Answer: quiz.CategoryB},
		quiz.CategorizeItem{Text: "z", Answer: quiz.CategoryBoth},
	}

	got := categoryDeficit(required, good, bad)
	want := map[quiz.Category]int{quiz.CategoryA: 1, quiz.CategoryB: 1, quiz.CategoryBoth: 1}
	for cat, n := range want {
		if got[cat] != n {
			t.Errorf("deficit[%s] = %d, want %d", cat, got[cat], n)
		}
	}

	// Without a pinned distribution, flagged items are replaced like for
	// like.
	got = categoryDeficit(nil, good, bad)
	if got[quiz.CategoryBoth] != 1 || got[quiz.CategoryA] != 1 {
		t.Errorf("like-for-like deficit = %v", got)
	}
}

func TestDefaultCategorySplit(t *testing.T) {
	split := DefaultCategorySplit(12)
	total := 0
	for _, n := range split {
		total += n
	}
	if total != 12 {
		t.Errorf("split sums to %d, want 12", total)
	}
	if split[quiz.CategoryBoth] == 0 {
		t.Error("split should include some Both items")
	}
}

func TestRunPhasesIsolation(t *testing.T) {
	h := newHarness(t)

	// MCQ succeeds; sequence has a generator that keeps failing. The
	// failing phase must not take the healthy one down with it.
	h.gen.AddResponse(mcqBatchJSON(2, "a"))
	h.rev.AddResponse(reviewJSON(8, 2, nil))
	h.chk.AddResponse(factJSON(2, nil))

	outcomes := h.orch.RunPhases(context.Background(), []Request{
		{Phase: quiz.PhaseMCQ, Topic: "space", Difficulty: quiz.DifficultyNormal, TargetCount: 2},
		{Phase: "karaoke", Topic: "space", TargetCount: 2},
	})

	if len(outcomes) != 2 {
		t.Fatalf("got %d outcomes, want 2", len(outcomes))
	}
	if outcomes["karaoke"].Err == nil {
		t.Error("invalid phase should fail")
	}
	mcq := outcomes[quiz.PhaseMCQ]
	if mcq.Err != nil {
		t.Fatalf("healthy phase failed: %v", mcq.Err)
	}
	if len(mcq.Result.Batch.Items) != 2 {
		t.Errorf("got %d items, want 2", len(mcq.Result.Batch.Items))
	}
}
