package review

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/quizforge/quizforge/internal/jsonx"
	"github.com/quizforge/quizforge/internal/llm"
	"github.com/quizforge/quizforge/internal/quiz"
)

// ItemFeedback is the reviewer's per-item pass/fail judgment.
type ItemFeedback struct {
	Index     int    `json:"index"`
	OK        bool   `json:"ok"`
	IssueType string `json:"issue_type"`
	Note      string `json:"note"`
}

// Verdict is one review pass over a batch. A verdict is produced fresh each
// iteration and never mutated, only superseded by the next one.
type Verdict struct {
	OverallScore    float64            `json:"overall_score"`
	CriterionScores map[string]float64 `json:"criterion_scores"`
	PerItemFeedback []ItemFeedback     `json:"per_item_feedback"`
	Suggestions     string             `json:"suggestions"`
}

// FlaggedIndexes returns the indexes of items the reviewer marked not OK,
// in ascending order.
func (v Verdict) FlaggedIndexes() []int {
	var out []int
	for _, fb := range v.PerItemFeedback {
		if !fb.OK {
			out = append(out, fb.Index)
		}
	}
	return out
}

// CriticalFailures returns the critical criteria of the rubric whose score
// fell below the hard floor. An empty result means the batch is eligible for
// acceptance on overall score alone.
func (v Verdict) CriticalFailures(r Rubric) []Criterion {
	var out []Criterion
	for _, c := range r.Critical() {
		if v.CriterionScores[c.Name] < c.Floor {
			out = append(out, c)
		}
	}
	return out
}

// Narrative renders the verdict as feedback text for the next generation
// attempt.
func (v Verdict) Narrative() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Previous attempt scored %.1f/10.\n", v.OverallScore)
	for _, fb := range v.PerItemFeedback {
		if fb.OK {
			continue
		}
		fmt.Fprintf(&b, "- item %d (%s): %s\n", fb.Index, fb.IssueType, fb.Note)
	}
	if v.Suggestions != "" {
		fmt.Fprintf(&b, "Reviewer suggestions: %s\n", v.Suggestions)
	}
	return b.String()
}

// Config controls the Reviewer.
type Config struct {
	// MaxTokens is the token budget for one review response.
	MaxTokens int

	// Temperature is the sampling temperature. The pipeline resolves it
	// from the factual profile.
	Temperature float64
}

// DefaultConfig returns the recommended reviewer settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.1,
	}
}

// Reviewer scores proposed batches against per-phase rubrics. It runs at the
// factual temperature profile so repeated reviews of the same batch stay
// consistent.
type Reviewer struct {
	provider llm.Provider
	config   Config
}

// New creates a Reviewer.
func New(provider llm.Provider, cfg Config) *Reviewer {
	return &Reviewer{provider: provider, config: cfg}
}

// Review scores the batch. A low score is a routine outcome, not an error;
// the error return covers only transport and parse failures.
func (r *Reviewer) Review(ctx context.Context, batch quiz.Batch) (Verdict, llm.Usage, error) {
	rubric, ok := RubricFor(batch.Phase)
	if !ok {
		return Verdict{}, llm.Usage{}, fmt.Errorf("unknown phase: %q", batch.Phase)
	}

	ctx = llm.WithAgent(ctx, "reviewer")

	resp, err := r.provider.Generate(ctx, llm.Request{
		System: buildSystem(rubric),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: renderBatch(batch)},
		},
		Schema:      verdictSchema(rubric),
		MaxTokens:   r.config.MaxTokens,
		Temperature: r.config.Temperature,
	})
	if err != nil {
		return Verdict{}, llm.Usage{}, fmt.Errorf("review failed: %w", err)
	}

	raw, err := jsonx.Extract(string(resp.Content))
	if err != nil {
		return Verdict{}, resp.Usage, fmt.Errorf("recover JSON from review: %w", err)
	}

	var v Verdict
	if err := json.Unmarshal(raw, &v); err != nil {
		return Verdict{}, resp.Usage, fmt.Errorf("parse review verdict: %w", err)
	}
	if v.CriterionScores == nil {
		v.CriterionScores = map[string]float64{}
	}

	for _, fb := range v.PerItemFeedback {
		if fb.Index < 0 || fb.Index >= len(batch.Items) {
			return Verdict{}, resp.Usage, fmt.Errorf(
				"review verdict references item %d in a %d-item batch", fb.Index, len(batch.Items))
		}
	}

	return v, resp.Usage, nil
}

func buildSystem(r Rubric) string {
	var b strings.Builder
	b.WriteString(`You are a strict quiz editor reviewing a proposed batch before it goes live.

Score the batch 0-10 on each criterion below, judge every item individually, and give concrete rewriting suggestions. Be harsh: a score of 7 means publishable, 10 means flawless.

Criteria:
`)
	for _, c := range r.Criteria {
		fmt.Fprintf(&b, "- %s: %s\n", c.Name, c.Description)
	}
	b.WriteString("\nFor each item, set ok=false with an issue_type (factual, ambiguous, duplicate, off_topic, poor_options, other) and a one-sentence note when it has any defect.\nRespond with JSON only.")
	return b.String()
}

func renderBatch(batch quiz.Batch) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Phase: %s\nTopic: %s\nDifficulty: %s\n\nItems:\n", batch.Phase, batch.Topic, batch.Difficulty)
	for i, it := range batch.Items {
		fmt.Fprintf(&b, "%d. %s\n   Answer: %s\n", i, it.Prompt(), it.Solution())
	}
	return b.String()
}

func verdictSchema(r Rubric) *llm.Schema {
	criteria := map[string]any{}
	required := make([]any, 0, len(r.Criteria))
	for _, c := range r.Criteria {
		criteria[c.Name] = map[string]any{
			"type":    "number",
			"minimum": 0,
			"maximum": 10,
		}
		required = append(required, c.Name)
	}

	return &llm.Schema{
		Name:        "review-verdict",
		Description: "Editorial scoring of a proposed quiz batch",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"overall_score": map[string]any{
					"type":    "number",
					"minimum": 0,
					"maximum": 10,
				},
				"criterion_scores": map[string]any{
					"type":                 "object",
					"properties":           criteria,
					"required":             required,
					"additionalProperties": false,
				},
				"per_item_feedback": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"index": map[string]any{"type": "integer", "minimum": 0},
							"ok":    map[string]any{"type": "boolean"},
							"issue_type": map[string]any{
								"type": "string",
								"enum": []any{"factual", "ambiguous", "duplicate", "off_topic", "poor_options", "other", ""},
							},
							"note": map[string]any{"type": "string"},
						},
						"required":             []any{"index", "ok", "issue_type", "note"},
						"additionalProperties": false,
					},
				},
				"suggestions": map[string]any{"type": "string"},
			},
			"required":             []any{"overall_score", "criterion_scores", "per_item_feedback", "suggestions"},
			"additionalProperties": false,
		},
	}
}
