package quizgen

import (
	"encoding/json"
	"fmt"

	"github.com/quizforge/quizforge/internal/llm"
	"github.com/quizforge/quizforge/internal/quiz"
)

const mcqOptionCount = 4

var mcqDef = phaseDef{
	schema:   mcqSchema,
	system:   mcqSystem,
	parse:    parseMCQ,
	validate: validateMCQ,
}

func mcqSystem(req Request) string {
	return `You are a quiz author writing multiple-choice questions for a fast, funny trivia game.

Rules:
- Every question has exactly 4 options and exactly one unambiguously correct answer.
- Wrong options must be plausible but strictly incorrect. Never use a synonym, alias, or alternative spelling of the correct answer as a wrong option.
- Questions must be self-contained: no "see above", no dependence on other questions.
- Vary angle and sub-topic across the batch; do not write four variations of the same fact.
- Include a surprising one-sentence anecdote revealed after the answer.
- Write all content in the requested language.
- Respond with JSON only.`
}

var mcqSchema = &llm.Schema{
	Name:        "mcq-batch",
	Description: "A batch of single-answer multiple-choice quiz questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The question shown to players",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 answer options",
						},
						"correct_index": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "Zero-based index of the single correct option",
						},
						"anecdote": map[string]any{
							"type":        "string",
							"description": "One-sentence fun fact revealed after the answer",
						},
					},
					"required":             []any{"text", "options", "correct_index", "anecdote"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"items"},
		"additionalProperties": false,
	},
}

type mcqItemOutput struct {
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Anecdote     string   `json:"anecdote"`
}

func parseMCQ(raw json.RawMessage) ([]quiz.Item, error) {
	var out struct {
		Items []mcqItemOutput `json:"items"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse mcq batch: %w", err)
	}

	items := make([]quiz.Item, len(out.Items))
	for i, it := range out.Items {
		items[i] = quiz.MCQItem{
			Text:         it.Text,
			Options:      it.Options,
			CorrectIndex: it.CorrectIndex,
			Anecdote:     it.Anecdote,
		}
	}
	return items, nil
}

func validateMCQ(item quiz.Item) *ValidationError {
	it, ok := item.(quiz.MCQItem)
	if !ok {
		return validationErrorf("shape", "expected an MCQ item, got %T", item)
	}
	if it.Text == "" {
		return validationErrorf("structural", "question text is empty")
	}
	if len(it.Options) != mcqOptionCount {
		return validationErrorf("structural", "expected %d options, got %d", mcqOptionCount, len(it.Options))
	}
	if it.CorrectIndex < 0 || it.CorrectIndex >= len(it.Options) {
		return validationErrorf("structural", "correct_index %d out of range", it.CorrectIndex)
	}

	seen := make(map[string]int, len(it.Options))
	for i, opt := range it.Options {
		if opt == "" {
			return validationErrorf("structural", "option %d is empty", i)
		}
		norm := quiz.Normalize(opt)
		if prev, dup := seen[norm]; dup {
			return validationErrorf("structural",
				"options %d and %d are identical after normalization (%q)", prev, i, opt)
		}
		seen[norm] = i
	}
	return nil
}
