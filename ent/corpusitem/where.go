// Code generated by ent, DO NOT EDIT.

package corpusitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quizforge/quizforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldLTE(FieldID, id))
}

// Phase applies equality check predicate on the "phase" field. It's identical to PhaseEQ.
func Phase(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldEQ(FieldPhase, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldEQ(FieldLanguage, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldEQ(FieldText, v))
}

// Embedding applies equality check predicate on the "embedding" field. It's identical to EmbeddingEQ.
func Embedding(v []byte) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldEQ(FieldEmbedding, v))
}

// EmbeddingDims applies equality check predicate on the "embedding_dims" field. It's identical to EmbeddingDimsEQ.
func EmbeddingDims(v int) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldEQ(FieldEmbeddingDims, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldEQ(FieldCreatedAt, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldNotIn(FieldPhase, vs...))
}

// PhaseGT applies the GT predicate on the "phase" field.
func PhaseGT(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldGT(FieldPhase, v))
}

// PhaseGTE applies the GTE predicate on the "phase" field.
func PhaseGTE(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldGTE(FieldPhase, v))
}

// PhaseLT applies the LT predicate on the "phase" field.
func PhaseLT(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldLT(FieldPhase, v))
}

// PhaseLTE applies the LTE predicate on the "phase" field.
func PhaseLTE(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldLTE(FieldPhase, v))
}

// PhaseContains applies the Contains predicate on the "phase" field.
func PhaseContains(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldContains(FieldPhase, v))
}

// PhaseHasPrefix applies the HasPrefix predicate on the "phase" field.
func PhaseHasPrefix(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldHasPrefix(FieldPhase, v))
}

// PhaseHasSuffix applies the HasSuffix predicate on the "phase" field.
func PhaseHasSuffix(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldHasSuffix(FieldPhase, v))
}

// PhaseEqualFold applies the EqualFold predicate on the "phase" field.
func PhaseEqualFold(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldEqualFold(FieldPhase, v))
}

// PhaseContainsFold applies the ContainsFold predicate on the "phase" field.
func PhaseContainsFold(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldContainsFold(FieldPhase, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldContainsFold(FieldLanguage, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldContainsFold(FieldText, v))
}

// EmbeddingEQ applies the EQ predicate on the "embedding" field.
func EmbeddingEQ(v []byte) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldEQ(FieldEmbedding, v))
}

// EmbeddingNEQ applies the NEQ predicate on the "embedding" field.
func EmbeddingNEQ(v []byte) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldNEQ(FieldEmbedding, v))
}

// EmbeddingIn applies the In predicate on the "embedding" field.
func EmbeddingIn(vs ...[]byte) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldIn(FieldEmbedding, vs...))
}

// EmbeddingNotIn applies the NotIn predicate on the "embedding" field.
func EmbeddingNotIn(vs ...[]byte) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldNotIn(FieldEmbedding, vs...))
}

// EmbeddingGT applies the GT predicate on the "embedding" field.
func EmbeddingGT(v []byte) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldGT(FieldEmbedding, v))
}

// EmbeddingGTE applies the GTE predicate on the "embedding" field.
func EmbeddingGTE(v []byte) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldGTE(FieldEmbedding, v))
}

// EmbeddingLT applies the LT predicate on the "embedding" field.
func EmbeddingLT(v []byte) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldLT(FieldEmbedding, v))
}

// EmbeddingLTE applies the LTE predicate on the "embedding" field.
func EmbeddingLTE(v []byte) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldLTE(FieldEmbedding, v))
}

// EmbeddingDimsEQ applies the EQ predicate on the "embedding_dims" field.
func EmbeddingDimsEQ(v int) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldEQ(FieldEmbeddingDims, v))
}

// EmbeddingDimsNEQ applies the NEQ predicate on the "embedding_dims" field.
func EmbeddingDimsNEQ(v int) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldNEQ(FieldEmbeddingDims, v))
}

// EmbeddingDimsIn applies the In predicate on the "embedding_dims" field.
func EmbeddingDimsIn(vs ...int) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldIn(FieldEmbeddingDims, vs...))
}

// EmbeddingDimsNotIn applies the NotIn predicate on the "embedding_dims" field.
func EmbeddingDimsNotIn(vs ...int) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldNotIn(FieldEmbeddingDims, vs...))
}

// EmbeddingDimsGT applies the GT predicate on the "embedding_dims" field.
func EmbeddingDimsGT(v int) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldGT(FieldEmbeddingDims, v))
}

// EmbeddingDimsGTE applies the GTE predicate on the "embedding_dims" field.
func EmbeddingDimsGTE(v int) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldGTE(FieldEmbeddingDims, v))
}

// EmbeddingDimsLT applies the LT predicate on the "embedding_dims" field.
func EmbeddingDimsLT(v int) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldLT(FieldEmbeddingDims, v))
}

// EmbeddingDimsLTE applies the LTE predicate on the "embedding_dims" field.
func EmbeddingDimsLTE(v int) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldLTE(FieldEmbeddingDims, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CorpusItem {
	return predicate.CorpusItem(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CorpusItem) predicate.CorpusItem {
	return predicate.CorpusItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CorpusItem) predicate.CorpusItem {
	return predicate.CorpusItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CorpusItem) predicate.CorpusItem {
	return predicate.CorpusItem(sql.NotPredicates(p))
}
