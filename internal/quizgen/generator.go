package quizgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/quizforge/quizforge/internal/jsonx"
	"github.com/quizforge/quizforge/internal/llm"
	"github.com/quizforge/quizforge/internal/quiz"
)

// Generator proposes batches of phase content using the model's creative
// profile. It is a pure call-out: a failed attempt leaves no state behind.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// Generate requests exactly req.TargetCount items and validates their shape.
// The returned batch is structurally sound but not yet reviewed, fact-checked,
// or deduplicated.
func (g *Generator) Generate(ctx context.Context, req Request) (quiz.Batch, llm.Usage, error) {
	def, ok := phaseDefs[req.Phase]
	if !ok {
		return quiz.Batch{}, llm.Usage{}, fmt.Errorf("unknown phase: %q", req.Phase)
	}

	ctx = llm.WithAgent(ctx, "generator")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: def.system(req),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req, g.config)},
		},
		Schema:      def.schema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return quiz.Batch{}, llm.Usage{}, fmt.Errorf("generation failed: %w", err)
	}

	raw, err := jsonx.Extract(string(resp.Content))
	if err != nil {
		return quiz.Batch{}, resp.Usage, fmt.Errorf("recover JSON from generation: %w", err)
	}

	items, err := def.parse(raw)
	if err != nil {
		return quiz.Batch{}, resp.Usage, err
	}

	if len(items) != req.TargetCount {
		return quiz.Batch{}, resp.Usage, validationErrorf("count",
			"requested %d items but got %d", req.TargetCount, len(items))
	}

	for i, it := range items {
		if err := def.validate(it); err != nil {
			err.Message = fmt.Sprintf("item %d: %s", i, err.Message)
			return quiz.Batch{}, resp.Usage, err
		}
	}

	return quiz.Batch{
		Phase:       req.Phase,
		Topic:       req.Topic,
		Difficulty:  req.Difficulty,
		Language:    req.Language,
		TargetCount: req.TargetCount,
		Items:       items,
	}, resp.Usage, nil
}

// buildUserMessage assembles the request context: topic, difficulty, count,
// accumulated feedback, and (in completion mode) the items to avoid.
func buildUserMessage(req Request, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "Difficulty: %s\n", req.Difficulty)
	fmt.Fprintf(&b, "Language: %s\n", languageName(req.Language))
	fmt.Fprintf(&b, "Number of items to produce: exactly %d\n", req.TargetCount)

	if len(req.CategoryCounts) > 0 {
		b.WriteString("Required category distribution:\n")
		for _, cat := range []quiz.Category{quiz.CategoryA, quiz.CategoryB, quiz.CategoryBoth} {
			if n := req.CategoryCounts[cat]; n > 0 {
				fmt.Fprintf(&b, "- exactly %d items with answer %q\n", n, cat)
			}
		}
	}

	if req.Feedback != "" {
		b.WriteString("\nFeedback from previous rejected attempts — fix all of it:\n")
		b.WriteString(req.Feedback)
		b.WriteString("\n")
	}

	if req.Completion() {
		b.WriteString("\nAlready accepted items — produce only NEW items, never repeat or rephrase these:\n")
		b.WriteString(formatExisting(req.Existing, cfg.MaxExistingInPrompt))
		b.WriteString("\n")
	}

	return b.String()
}

// formatExisting lists kept items for the prompt, respecting the cap.
func formatExisting(items []quiz.Item, max int) string {
	if max > 0 && len(items) > max {
		items = items[len(items)-max:]
	}

	var b strings.Builder
	for i, it := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, it.Prompt())
	}
	return strings.TrimRight(b.String(), "\n")
}

// languageName expands a locale code for the prompt; unknown codes pass
// through untouched.
func languageName(code string) string {
	switch code {
	case "", "en":
		return "English"
	case "fr":
		return "French"
	case "es":
		return "Spanish"
	case "de":
		return "German"
	default:
		return code
	}
}
