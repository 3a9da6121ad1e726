package quizgen

import (
	"encoding/json"
	"fmt"

	"github.com/quizforge/quizforge/internal/llm"
	"github.com/quizforge/quizforge/internal/quiz"
)

var sequenceDef = phaseDef{
	schema:   sequenceSchema,
	system:   sequenceSystem,
	parse:    parseSequence,
	validate: validateSequence,
}

func sequenceSystem(req Request) string {
	return `You are a quiz author writing a linked chain of questions for a memory round.

The chain is read once in order, then players must recall the answers. Each question after the first builds on the previous answer, so the chain forms a single connected thread.

Rules:
- Question N+1 must reference or follow naturally from the answer to question N.
- Each answer is a single short word or phrase that is easy to recall.
- The chain must stay on the requested topic from first to last link.
- Items are ordered: keep them in chain order in the output array.
- Write all content in the requested language.
- Respond with JSON only.`
}

var sequenceSchema = &llm.Schema{
	Name:        "sequence-batch",
	Description: "An ordered chain of linked question/answer pairs",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question, building on the previous answer",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "A short, recallable answer",
						},
					},
					"required":             []any{"question", "answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"items"},
		"additionalProperties": false,
	},
}

type sequenceItemOutput struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func parseSequence(raw json.RawMessage) ([]quiz.Item, error) {
	var out struct {
		Items []sequenceItemOutput `json:"items"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse sequence batch: %w", err)
	}

	items := make([]quiz.Item, len(out.Items))
	for i, it := range out.Items {
		items[i] = quiz.SequenceItem{Question: it.Question, Answer: it.Answer}
	}
	return items, nil
}

func validateSequence(item quiz.Item) *ValidationError {
	it, ok := item.(quiz.SequenceItem)
	if !ok {
		return validationErrorf("shape", "expected a sequence item, got %T", item)
	}
	if it.Question == "" {
		return validationErrorf("structural", "question is empty")
	}
	if it.Answer == "" {
		return validationErrorf("structural", "answer is empty")
	}
	return nil
}
