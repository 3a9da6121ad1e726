package quizgen

import (
	"encoding/json"
	"fmt"

	"github.com/quizforge/quizforge/internal/llm"
	"github.com/quizforge/quizforge/internal/quiz"
)

const menuQuestionCount = 3

var menusDef = phaseDef{
	schema:   menusSchema,
	system:   menusSystem,
	parse:    parseMenus,
	validate: validateMenu,
}

func menusSystem(req Request) string {
	return fmt.Sprintf(`You are a quiz author writing themed menus for a pick-your-menu round.

Each menu has a short evocative theme name and %d open questions on that theme. A team picks a menu by its name alone, then answers its questions in order, so the name must hint at the content without giving answers away.

Rules:
- Theme names must be distinct from each other and intriguing.
- Questions inside a menu go from easiest to hardest.
- Questions are open (no options): each has a single short canonical answer.
- Write all content in the requested language.
- Respond with JSON only.`, menuQuestionCount)
}

var menusSchema = &llm.Schema{
	Name:        "menus-batch",
	Description: "A batch of themed menus, each holding ordered open questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"theme": map[string]any{
							"type":        "string",
							"description": "The menu's evocative theme name",
						},
						"questions": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"text": map[string]any{
										"type":        "string",
										"description": "The open question",
									},
									"answer": map[string]any{
										"type":        "string",
										"description": "The short canonical answer",
									},
								},
								"required":             []any{"text", "answer"},
								"additionalProperties": false,
							},
							"description": "Questions ordered easiest to hardest",
						},
					},
					"required":             []any{"theme", "questions"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"items"},
		"additionalProperties": false,
	},
}

type menuOutput struct {
	Theme     string `json:"theme"`
	Questions []struct {
		Text   string `json:"text"`
		Answer string `json:"answer"`
	} `json:"questions"`
}

func parseMenus(raw json.RawMessage) ([]quiz.Item, error) {
	var out struct {
		Items []menuOutput `json:"items"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse menus batch: %w", err)
	}

	items := make([]quiz.Item, len(out.Items))
	for i, m := range out.Items {
		qs := make([]quiz.MenuQuestion, len(m.Questions))
		for j, q := range m.Questions {
			qs[j] = quiz.MenuQuestion{Text: q.Text, Answer: q.Answer}
		}
		items[i] = quiz.MenuItem{Theme: m.Theme, Questions: qs}
	}
	return items, nil
}

func validateMenu(item quiz.Item) *ValidationError {
	it, ok := item.(quiz.MenuItem)
	if !ok {
		return validationErrorf("shape", "expected a menu item, got %T", item)
	}
	if it.Theme == "" {
		return validationErrorf("structural", "menu theme is empty")
	}
	if len(it.Questions) != menuQuestionCount {
		return validationErrorf("structural", "menu %q has %d questions, want %d", it.Theme, len(it.Questions), menuQuestionCount)
	}
	for i, q := range it.Questions {
		if q.Text == "" {
			return validationErrorf("structural", "menu %q question %d is empty", it.Theme, i)
		}
		if q.Answer == "" {
			return validationErrorf("structural", "menu %q question %d has no answer", it.Theme, i)
		}
	}
	return nil
}
