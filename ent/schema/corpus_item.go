package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CorpusItem is one accepted content item persisted for cross-run semantic
// deduplication. The embedding is stored packed (float32 little-endian) so
// the similarity scan never re-embeds historical items.
type CorpusItem struct {
	ent.Schema
}

func (CorpusItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("phase").
			Comment("Game phase the item was accepted for"),
		field.String("language").
			Default("en").
			Comment("Content language"),
		field.Text("text").
			Comment("Normalized item text, as embedded"),
		field.Bytes("embedding").
			Comment("Packed float32 embedding vector"),
		field.Int("embedding_dims").
			Comment("Vector dimensionality, guards against model changes"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the item was accepted"),
	}
}

func (CorpusItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("phase"),
		index.Fields("phase", "language"),
	}
}
