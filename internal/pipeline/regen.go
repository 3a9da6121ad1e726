package pipeline

import (
	"context"
	"fmt"
	"sort"

	"github.com/quizforge/quizforge/internal/llm"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/quizgen"
)

// TargetedRegenerator replaces only the defective subset of a batch instead
// of regenerating all items. Patching a mostly-broken batch is not worth the
// extra calls, so it refuses batches whose defect fraction exceeds the
// configured ceiling.
type TargetedRegenerator struct {
	generator *quizgen.Generator
	ceiling   float64
}

// NewTargetedRegenerator creates a TargetedRegenerator with the given
// defect-fraction ceiling.
func NewTargetedRegenerator(g *quizgen.Generator, ceiling float64) *TargetedRegenerator {
	return &TargetedRegenerator{generator: g, ceiling: ceiling}
}

// Eligible reports whether a batch with the given defect count qualifies for
// targeted regeneration.
func (r *TargetedRegenerator) Eligible(defects, total int) bool {
	if defects == 0 || total == 0 {
		return false
	}
	return float64(defects)/float64(total) <= r.ceiling
}

// Replace regenerates only the flagged items and merges the replacements
// with the retained good items. Retained items keep their relative order;
// replacements are appended. The merged batch must re-enter review before it
// can be accepted.
//
// For the categorize phase the replacement request pins the per-category
// deficit so the batch-level distribution survives the swap.
func (r *TargetedRegenerator) Replace(ctx context.Context, req Request, batch quiz.Batch, flagged map[int]bool, reasons string) (quiz.Batch, llm.Usage, error) {
	if len(flagged) == 0 {
		return batch, llm.Usage{}, nil
	}

	good := make([]quiz.Item, 0, len(batch.Items)-len(flagged))
	bad := make([]quiz.Item, 0, len(flagged))
	for i, it := range batch.Items {
		if flagged[i] {
			bad = append(bad, it)
		} else {
			good = append(good, it)
		}
	}

	deficit := batch.TargetCount - len(good)
	genReq := quizgen.Request{
		Phase:          batch.Phase,
		Topic:          batch.Topic,
		Difficulty:     batch.Difficulty,
		Language:       batch.Language,
		TargetCount:    deficit,
		Feedback:       reasons,
		Existing:       append(append([]quiz.Item{}, req.Existing...), good...),
		CategoryCounts: categoryDeficit(req.CategoryCounts, good, bad),
	}

	replacement, usage, err := r.generator.Generate(ctx, genReq)
	if err != nil {
		return quiz.Batch{}, usage, fmt.Errorf("targeted regeneration: %w", err)
	}

	merged := batch.Clone()
	merged.Items = append(good, replacement.Items...)
	return merged, usage, nil
}

// categoryDeficit computes how many items of each category the replacement
// request must produce. When the original request pinned a distribution, the
// deficit is that distribution minus what the retained items already cover;
// otherwise the flagged items are replaced like for like.
func categoryDeficit(required map[quiz.Category]int, good, bad []quiz.Item) map[quiz.Category]int {
	if required == nil && len(bad) == 0 {
		return nil
	}

	counts := func(items []quiz.Item) map[quiz.Category]int {
		out := map[quiz.Category]int{}
		for _, it := range items {
			if c, ok := it.(quiz.CategorizeItem); ok {
				out[c.Answer]++
			}
		}
		return out
	}

	var deficit map[quiz.Category]int
	if required != nil {
		have := counts(good)
		deficit = map[quiz.Category]int{}
		for cat, want := range required {
			if n := want - have[cat]; n > 0 {
				deficit[cat] = n
			}
		}
	} else {
		deficit = counts(bad)
	}

	if len(deficit) == 0 {
		return nil
	}
	return deficit
}

// sortedIndexes returns the flagged indexes in ascending order, for logs.
func sortedIndexes(flagged map[int]bool) []int {
	out := make([]int, 0, len(flagged))
	for i := range flagged {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
