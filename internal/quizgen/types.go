package quizgen

import (
	"github.com/quizforge/quizforge/internal/quiz"
)

// Request holds all context needed to generate one batch of phase content.
type Request struct {
	// Phase selects the content shape, schema, and prompt.
	Phase quiz.Phase

	// Topic is the session theme the content is drawn from.
	Topic string

	// Difficulty is the requested difficulty band.
	Difficulty quiz.Difficulty

	// Language is the content language (e.g. "en", "fr").
	Language string

	// TargetCount is the exact number of items to request. In completion
	// mode this is the deficit, not the full phase count.
	TargetCount int

	// Feedback is the accumulated narrative from prior rejected attempts,
	// injected into the prompt so the model stops repeating its mistakes.
	Feedback string

	// Existing lists already-kept items the model must not repeat.
	// Non-empty Existing puts the generator in completion mode.
	Existing []quiz.Item

	// CategoryCounts pins the category distribution for the categorize
	// phase, e.g. {A: 5, B: 5, Both: 2}. Nil for other phases.
	CategoryCounts map[quiz.Category]int
}

// Completion reports whether this is a completion-mode request.
func (r Request) Completion() bool {
	return len(r.Existing) > 0
}

// Config controls the Generator.
type Config struct {
	// MaxTokens is the token budget for one generation response.
	MaxTokens int

	// Temperature is the sampling temperature. The pipeline resolves it
	// from the creative profile.
	Temperature float64

	// MaxExistingInPrompt caps how many already-kept items are echoed into
	// a completion-mode prompt.
	MaxExistingInPrompt int
}

// DefaultConfig returns the recommended generator settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:           4096,
		Temperature:         0.9,
		MaxExistingInPrompt: 24,
	}
}
