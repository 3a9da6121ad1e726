package quizgen

import (
	"encoding/json"

	"github.com/quizforge/quizforge/internal/llm"
	"github.com/quizforge/quizforge/internal/quiz"
)

// phaseDef binds one phase to its schema, system prompt, parser, and
// structural validator.
type phaseDef struct {
	schema   *llm.Schema
	system   func(req Request) string
	parse    func(raw json.RawMessage) ([]quiz.Item, error)
	validate func(it quiz.Item) *ValidationError
}

var phaseDefs = map[quiz.Phase]phaseDef{
	quiz.PhaseMCQ:        mcqDef,
	quiz.PhaseCategorize: categorizeDef,
	quiz.PhaseMenus:      menusDef,
	quiz.PhaseBuzzer:     buzzerDef,
	quiz.PhaseSequence:   sequenceDef,
}
