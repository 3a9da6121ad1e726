package store

import (
	"context"
	"fmt"

	"github.com/quizforge/quizforge/ent"
	"github.com/quizforge/quizforge/ent/corpusitem"
)

// defaultCorpusPageSize is the scan page size when CorpusQuery.Limit is zero.
const defaultCorpusPageSize = 200

// corpusRepo implements CorpusRepo backed by ent.
type corpusRepo struct {
	client *ent.Client
}

func (r *corpusRepo) Append(ctx context.Context, item CorpusItemData) error {
	if item.Phase == "" {
		return fmt.Errorf("corpus append: phase is required")
	}
	if len(item.Embedding) == 0 {
		return fmt.Errorf("corpus append: embedding is required")
	}

	create := r.client.CorpusItem.Create().
		SetPhase(item.Phase).
		SetText(item.Text).
		SetEmbedding(item.Embedding).
		SetEmbeddingDims(item.EmbeddingDims)
	if item.Language != "" {
		create.SetLanguage(item.Language)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("save corpus item: %w", err)
	}
	return nil
}

func (r *corpusRepo) Page(ctx context.Context, q CorpusQuery) (*CorpusPage, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultCorpusPageSize
	}

	query := r.client.CorpusItem.Query().
		Where(corpusitem.IDGT(q.Cursor)).
		Order(ent.Asc(corpusitem.FieldID)).
		Limit(limit + 1) // one extra row to detect whether more pages exist
	if !q.AllPhases && q.Phase != "" {
		query = query.Where(corpusitem.PhaseEQ(q.Phase))
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query corpus page: %w", err)
	}

	page := &CorpusPage{}
	if len(rows) > limit {
		page.More = true
		rows = rows[:limit]
	}

	page.Items = make([]CorpusItemData, len(rows))
	for i, row := range rows {
		page.Items[i] = CorpusItemData{
			ID:            row.ID,
			Phase:         row.Phase,
			Language:      row.Language,
			Text:          row.Text,
			Embedding:     row.Embedding,
			EmbeddingDims: row.EmbeddingDims,
			CreatedAt:     row.CreatedAt,
		}
	}
	if len(rows) > 0 {
		page.NextCursor = rows[len(rows)-1].ID
	}

	return page, nil
}

func (r *corpusRepo) Count(ctx context.Context, phase string) (int, error) {
	query := r.client.CorpusItem.Query()
	if phase != "" {
		query = query.Where(corpusitem.PhaseEQ(phase))
	}
	n, err := query.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count corpus items: %w", err)
	}
	return n, nil
}
