package quizgen

import (
	"encoding/json"
	"fmt"

	"github.com/quizforge/quizforge/internal/llm"
	"github.com/quizforge/quizforge/internal/quiz"
)

var buzzerDef = phaseDef{
	schema:   buzzerSchema,
	system:   buzzerSystem,
	parse:    parseBuzzer,
	validate: validateBuzzer,
}

func buzzerSystem(req Request) string {
	return `You are a quiz author writing quick-fire questions for a buzzer round.

Players buzz in as soon as they know the answer, so speed matters more than depth.

Rules:
- Every question has exactly 4 options and exactly one unambiguously correct answer.
- Questions must be answerable in a few seconds: one fact, no multi-step reasoning.
- Keep question text short enough to read aloud in one breath.
- Wrong options must be plausible but strictly incorrect; never use a synonym or alias of the correct answer.
- Write all content in the requested language.
- Respond with JSON only.`
}

var buzzerSchema = &llm.Schema{
	Name:        "buzzer-batch",
	Description: "A batch of quick-fire multiple-choice questions for the buzzer round",
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
							"description": "The short question read aloud",
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
					},
					"required":             []any{"text", "options", "correct_index"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"items"},
		"additionalProperties": false,
	},
}

type buzzerItemOutput struct {
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

func parseBuzzer(raw json.RawMessage) ([]quiz.Item, error) {
	var out struct {
		Items []buzzerItemOutput `json:"items"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse buzzer batch: %w", err)
	}

	items := make([]quiz.Item, len(out.Items))
	for i, it := range out.Items {
		items[i] = quiz.BuzzerItem{
			Text:         it.Text,
			Options:      it.Options,
			CorrectIndex: it.CorrectIndex,
		}
	}
	return items, nil
}

func validateBuzzer(item quiz.Item) *ValidationError {
	it, ok := item.(quiz.BuzzerItem)
	if !ok {
		return validationErrorf("shape", "expected a buzzer item, got %T", item)
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
