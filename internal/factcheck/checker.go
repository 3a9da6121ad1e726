package factcheck

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/quizforge/quizforge/internal/jsonx"
	"github.com/quizforge/quizforge/internal/llm"
	"github.com/quizforge/quizforge/internal/quiz"
)

// Verdict is the verification result for one item.
type Verdict struct {
	Index      int     `json:"index"`
	IsCorrect  bool    `json:"is_correct"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`

	// Correction holds the actual correct answer when IsCorrect is false
	// and the checker knows it.
	Correction string `json:"correction"`

	// SynonymIssue is set when a wrong option is a synonym or alias of the
	// correct answer, which would give the item two valid answers. It
	// forces rejection regardless of confidence.
	SynonymIssue bool `json:"synonym_issue"`
}

// Passes reports whether the item clears the confidence threshold.
func (v Verdict) Passes(threshold float64) bool {
	return v.IsCorrect && v.Confidence >= threshold && !v.SynonymIssue
}

// Config controls the Checker.
type Config struct {
	// ConfidenceThreshold is the minimum 0-100 confidence an item needs
	// to pass verification.
	ConfidenceThreshold float64

	// MaxRetries is how many times a failed verification call is retried
	// before the whole batch is rejected.
	MaxRetries int

	// BaseBackoff is the delay before the first retry; it doubles on each
	// subsequent retry.
	BaseBackoff time.Duration

	// MaxTokens is the token budget for one verification response.
	MaxTokens int

	// Temperature is the sampling temperature. The pipeline resolves it
	// from the factual profile.
	Temperature float64
}

// DefaultConfig returns the recommended verification settings.
func DefaultConfig() Config {
	return Config{
		ConfidenceThreshold: 85,
		MaxRetries:          3,
		BaseBackoff:         2 * time.Second,
		MaxTokens:           2048,
		Temperature:         0.1,
	}
}

// Checker independently re-verifies the claimed answers of a batch in one
// batched call. Verification never fails open: when all retries are spent,
// Check returns an error and the caller must reject the entire batch.
type Checker struct {
	provider llm.Provider
	config   Config
}

// New creates a Checker.
func New(provider llm.Provider, cfg Config) *Checker {
	return &Checker{provider: provider, config: cfg}
}

// Check verifies every item of the batch in a single call. The returned
// slice holds exactly one verdict per item, in item order. Transport and
// parse failures are retried with exponential backoff; when retries are
// exhausted the error return stands for whole-batch rejection.
func (c *Checker) Check(ctx context.Context, batch quiz.Batch) ([]Verdict, llm.Usage, error) {
	if len(batch.Items) == 0 {
		return nil, llm.Usage{}, nil
	}

	ctx = llm.WithAgent(ctx, "factchecker")

	var usage llm.Usage
	var lastErr error
	backoff := c.config.BaseBackoff

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, usage, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		verdicts, u, err := c.checkOnce(ctx, batch)
		usage.Add(u)
		if err == nil {
			return verdicts, usage, nil
		}
		if ctx.Err() != nil {
			return nil, usage, ctx.Err()
		}
		lastErr = err
	}

	return nil, usage, fmt.Errorf("fact-check exhausted %d retries: %w", c.config.MaxRetries, lastErr)
}

// Threshold returns the configured confidence threshold.
func (c *Checker) Threshold() float64 {
	return c.config.ConfidenceThreshold
}

func (c *Checker) checkOnce(ctx context.Context, batch quiz.Batch) ([]Verdict, llm.Usage, error) {
	resp, err := c.provider.Generate(ctx, llm.Request{
		System: checkerSystem,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: renderItems(batch)},
		},
		Schema:      verdictSchema,
		MaxTokens:   c.config.MaxTokens,
		Temperature: c.config.Temperature,
	})
	if err != nil {
		return nil, llm.Usage{}, err
	}

	raw, err := jsonx.Extract(string(resp.Content))
	if err != nil {
		return nil, resp.Usage, fmt.Errorf("recover JSON from verification: %w", err)
	}

	var out struct {
		Verdicts []Verdict `json:"verdicts"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, resp.Usage, fmt.Errorf("parse verification verdicts: %w", err)
	}

	if len(out.Verdicts) != len(batch.Items) {
		return nil, resp.Usage, fmt.Errorf(
			"verification returned %d verdicts for %d items", len(out.Verdicts), len(batch.Items))
	}
	for i, v := range out.Verdicts {
		if v.Index != i {
			return nil, resp.Usage, fmt.Errorf("verdict %d reports index %d", i, v.Index)
		}
	}

	return out.Verdicts, resp.Usage, nil
}

const checkerSystem = `You are an independent fact checker for a trivia game. For each numbered item, verify that the claimed answer is actually correct.

Rules:
- Judge only factual correctness, not style.
- confidence is 0-100: how certain you are that the claimed answer is right.
- When the claimed answer is wrong and you know the right one, put it in "correction".
- For items listing wrong options, set synonym_issue=true if ANY wrong option is a synonym, alias, abbreviation, or alternative spelling of the correct answer.
- Return exactly one verdict per item, in item order, with matching index.
- Respond with JSON only.`

func renderItems(batch quiz.Batch) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n\nItems to verify:\n", batch.Topic)
	for i, it := range batch.Items {
		fmt.Fprintf(&b, "%d. %s\n   Claimed answer: %s\n", i, it.Prompt(), it.Solution())
		for _, opt := range wrongOptions(it) {
			fmt.Fprintf(&b, "   Wrong option: %s\n", opt)
		}
	}
	return b.String()
}

// wrongOptions lists the distractors of multiple-choice shapes so the
// checker can look for disguised synonyms of the correct answer.
func wrongOptions(item quiz.Item) []string {
	var options []string
	var correct int
	switch it := item.(type) {
	case quiz.MCQItem:
		options, correct = it.Options, it.CorrectIndex
	case quiz.BuzzerItem:
		options, correct = it.Options, it.CorrectIndex
	default:
		return nil
	}

	out := make([]string, 0, len(options)-1)
	for i, opt := range options {
		if i != correct {
			out = append(out, opt)
		}
	}
	return out
}

var verdictSchema = &llm.Schema{
	Name:        "factcheck-verdicts",
	Description: "Per-item verification of claimed quiz answers",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"verdicts": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"index":      map[string]any{"type": "integer", "minimum": 0},
						"is_correct": map[string]any{"type": "boolean"},
						"confidence": map[string]any{
							"type":    "number",
							"minimum": 0,
							"maximum": 100,
						},
						"reasoning":     map[string]any{"type": "string"},
						"correction":    map[string]any{"type": "string"},
						"synonym_issue": map[string]any{"type": "boolean"},
					},
					"required":             []any{"index", "is_correct", "confidence", "reasoning", "correction", "synonym_issue"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"verdicts"},
		"additionalProperties": false,
	},
}
