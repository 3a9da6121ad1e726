// Package dedup flags candidate items that are semantically too close to
// previously issued content or to each other. Two items are "the same
// question" when their embedding cosine similarity crosses a fixed threshold,
// regardless of surface wording.
package dedup

import (
	"context"
	"fmt"

	"github.com/quizforge/quizforge/internal/embed"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/store"
)

// Config tunes the duplicate checks.
type Config struct {
	// SimilarityThreshold is the cosine similarity at or above which two
	// texts count as duplicates. Empirically tuned; see config package.
	SimilarityThreshold float64

	// AllPhases widens the corpus check beyond the current phase to catch
	// cross-phase repeats.
	AllPhases bool

	// PageSize is the corpus scan page size. Zero uses the store default.
	PageSize int
}

// Duplicate marks one candidate item as a duplicate.
type Duplicate struct {
	// Index is the item's position in the candidate batch.
	Index int

	// SimilarTo is the text the item duplicates.
	SimilarTo string

	// Score is the cosine similarity of the pair.
	Score float64

	// Internal is true when the match is another item of the same batch
	// rather than a corpus entry.
	Internal bool
}

// Result is the outcome of one duplicate check. Embeddings are computed
// exactly once per batch and handed back so the caller can persist them
// without re-embedding.
type Result struct {
	Duplicates []Duplicate
	Embeddings [][]float32
}

// DuplicateIndexes returns the set of flagged item indexes.
func (r *Result) DuplicateIndexes() map[int]bool {
	out := make(map[int]bool, len(r.Duplicates))
	for _, d := range r.Duplicates {
		out[d.Index] = true
	}
	return out
}

// Index runs the duplicate checks against a persisted corpus.
type Index struct {
	embedder embed.Embedder
	corpus   store.CorpusRepo
	cfg      Config
}

// New creates an Index.
func New(embedder embed.Embedder, corpus store.CorpusRepo, cfg Config) *Index {
	return &Index{embedder: embedder, corpus: corpus, cfg: cfg}
}

// FindDuplicates embeds the batch once, then runs the internal pairwise
// check and the paginated corpus check. In an internal duplicate pair the
// later-indexed item is flagged; the earlier one is presumed canonical.
func (ix *Index) FindDuplicates(ctx context.Context, phase quiz.Phase, items []quiz.Item) (*Result, error) {
	if len(items) == 0 {
		return &Result{}, nil
	}

	texts := make([]string, len(items))
	for i, it := range items {
		texts[i] = quiz.Normalize(it.DedupText())
	}

	embeddings, err := ix.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed batch: %w", err)
	}
	if len(embeddings) != len(items) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d items", len(embeddings), len(items))
	}

	res := &Result{Embeddings: embeddings}
	flagged := make(map[int]bool)

	// Internal check: every pair within the batch.
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if flagged[j] {
				continue
			}
			score := embed.CosineSimilarity(embeddings[i], embeddings[j])
			if score >= ix.cfg.SimilarityThreshold {
				flagged[j] = true
				res.Duplicates = append(res.Duplicates, Duplicate{
					Index:     j,
					SimilarTo: texts[i],
					Score:     score,
					Internal:  true,
				})
			}
		}
	}

	// Corpus check: streaming cursor scan, exiting early once every
	// candidate already has a confirmed duplicate.
	q := store.CorpusQuery{
		Phase:     string(phase),
		AllPhases: ix.cfg.AllPhases,
		Limit:     ix.cfg.PageSize,
	}
	for {
		if len(flagged) == len(items) {
			break
		}

		page, err := ix.corpus.Page(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("scan corpus: %w", err)
		}

		for _, entry := range page.Items {
			stored := embed.Unpack(entry.Embedding)
			for i := range items {
				if flagged[i] {
					continue
				}
				score := embed.CosineSimilarity(embeddings[i], stored)
				if score >= ix.cfg.SimilarityThreshold {
					flagged[i] = true
					res.Duplicates = append(res.Duplicates, Duplicate{
						Index:     i,
						SimilarTo: entry.Text,
						Score:     score,
					})
				}
			}
		}

		if !page.More {
			break
		}
		q.Cursor = page.NextCursor
	}

	return res, nil
}

// Persist appends the accepted items with their already-computed embeddings
// to the corpus. Called only after a batch is fully accepted.
func (ix *Index) Persist(ctx context.Context, batch quiz.Batch, embeddings [][]float32) error {
	if len(batch.Items) != len(embeddings) {
		return fmt.Errorf("persist: %d items but %d embeddings", len(batch.Items), len(embeddings))
	}

	for i, it := range batch.Items {
		err := ix.corpus.Append(ctx, store.CorpusItemData{
			Phase:         string(batch.Phase),
			Language:      batch.Language,
			Text:          quiz.Normalize(it.DedupText()),
			Embedding:     embed.Pack(embeddings[i]),
			EmbeddingDims: len(embeddings[i]),
		})
		if err != nil {
			return fmt.Errorf("append item %d: %w", i, err)
		}
	}
	return nil
}
