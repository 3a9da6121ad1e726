package quizgen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/quizforge/quizforge/internal/llm"
	"github.com/quizforge/quizforge/internal/quiz"
)

var categorizeDef = phaseDef{
	schema:   categorizeSchema,
	system:   categorizeSystem,
	parse:    parseCategorize,
	validate: validateCategorize,
}

func categorizeSystem(req Request) string {
	var b strings.Builder
	b.WriteString(`You are a quiz author writing statements for a categorization round.

The host announces two categories, A and B, derived from the topic. Players hear each statement and must say whether it belongs to A, B, or Both.

Rules:
- Open by stating what category A and category B stand for, then write the statements.
- Every statement must unambiguously belong to A, B, or Both. If a knowledgeable player could argue for a different answer, rewrite it.
- Statements that sound like one category but belong to the other make the best rounds. Include several of these traps.
- Statements are read aloud: keep them short and avoid names that are hard to pronounce or hear.
- Include a one-sentence justification for each answer.
- Write all content in the requested language.
- Respond with JSON only.`)

	if len(req.CategoryCounts) > 0 {
		b.WriteString("\n\nProduce exactly this distribution of answers:")
		for _, cat := range []quiz.Category{quiz.CategoryA, quiz.CategoryB, quiz.CategoryBoth} {
			if n, ok := req.CategoryCounts[cat]; ok && n > 0 {
				fmt.Fprintf(&b, "\n- %d statements with answer %q", n, cat)
			}
		}
	}
	return b.String()
}

var categorizeSchema = &llm.Schema{
	Name:        "categorize-batch",
	Description: "A batch of A/B/Both categorization statements",
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
							"description": "The statement read aloud to players",
						},
						"answer": map[string]any{
							"type":        "string",
							"enum":        []any{"A", "B", "Both"},
							"description": "Which category the statement belongs to",
						},
						"justification": map[string]any{
							"type":        "string",
							"description": "One sentence explaining the answer",
						},
					},
					"required":             []any{"text", "answer", "justification"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"items"},
		"additionalProperties": false,
	},
}

type categorizeItemOutput struct {
	Text          string `json:"text"`
	Answer        string `json:"answer"`
	Justification string `json:"justification"`
}

func parseCategorize(raw json.RawMessage) ([]quiz.Item, error) {
	var out struct {
		Items []categorizeItemOutput `json:"items"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse categorize batch: %w", err)
	}

	items := make([]quiz.Item, len(out.Items))
	for i, it := range out.Items {
		items[i] = quiz.CategorizeItem{
			Text:          it.Text,
			Answer:        quiz.Category(it.Answer),
			Justification: it.Justification,
		}
	}
	return items, nil
}

func validateCategorize(item quiz.Item) *ValidationError {
	it, ok := item.(quiz.CategorizeItem)
	if !ok {
		return validationErrorf("shape", "expected a categorize item, got %T", item)
	}
	if it.Text == "" {
		return validationErrorf("structural", "statement text is empty")
	}
	switch it.Answer {
	case quiz.CategoryA, quiz.CategoryB, quiz.CategoryBoth:
	default:
		return validationErrorf("structural", "answer %q is not A, B or Both", it.Answer)
	}
	if it.Justification == "" {
		return validationErrorf("structural", "justification is empty")
	}
	return nil
}
