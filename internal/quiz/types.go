package quiz

// Phase identifies one of the game's content rounds. Each phase has its own
// item shape, rubric, and generation prompt.
type Phase string

const (
	// PhaseMCQ is the single-answer multiple-choice round.
	PhaseMCQ Phase = "mcq"

	// PhaseCategorize is the binary/ternary categorization round: every
	// statement belongs to category A, category B, or both.
	PhaseCategorize Phase = "categorize"

	// PhaseMenus is the themed-menu round: the team picks a menu and answers
	// its themed questions in order.
	PhaseMenus Phase = "menus"

	// PhaseBuzzer is the quick-fire buzzer multiple-choice round.
	PhaseBuzzer Phase = "buzzer"

	// PhaseSequence is the linked memory round: an ordered chain of
	// question/answer pairs where each question builds on the previous answer.
	PhaseSequence Phase = "sequence"
)

// AllPhases returns every phase in game order.
func AllPhases() []Phase {
	return []Phase{PhaseMCQ, PhaseCategorize, PhaseMenus, PhaseBuzzer, PhaseSequence}
}

// Valid reports whether p is a known phase.
func (p Phase) Valid() bool {
	switch p {
	case PhaseMCQ, PhaseCategorize, PhaseMenus, PhaseBuzzer, PhaseSequence:
		return true
	}
	return false
}

// Difficulty is the requested difficulty band for a batch.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// Item is one piece of phase content. Every shape exposes the player-facing
// prompt, the private answer, and the text used for semantic deduplication.
type Item interface {
	// Prompt is the text shown to players.
	Prompt() string

	// Solution is the canonical correct answer, kept on the private side of
	// the public/answer-key split.
	Solution() string

	// DedupText is the raw text compared against the corpus for semantic
	// duplicates. It is normalized before embedding.
	DedupText() string
}

// Category is the answer of a categorization item.
type Category string

const (
	CategoryA    Category = "A"
	CategoryB    Category = "B"
	CategoryBoth Category = "Both"
)

// MCQItem is a single-answer multiple-choice question with four options.
type MCQItem struct {
	Text         string
	Options      []string
	CorrectIndex int

	// Anecdote is a short fact revealed after the answer.
	Anecdote string
}

func (it MCQItem) Prompt() string    { return it.Text }
func (it MCQItem) Solution() string  { return it.Options[it.CorrectIndex] }
func (it MCQItem) DedupText() string { return it.Text }

// CategorizeItem is a statement the players assign to A, B, or Both.
type CategorizeItem struct {
	Text   string
	Answer Category

	// Justification explains why the statement belongs to its category.
	Justification string
}

func (it CategorizeItem) Prompt() string    { return it.Text }
func (it CategorizeItem) Solution() string  { return string(it.Answer) }
func (it CategorizeItem) DedupText() string { return it.Text }

// MenuQuestion is one question inside a themed menu.
type MenuQuestion struct {
	Text   string
	Answer string
}

// MenuItem is a themed menu of open questions. The batch item count for the
// menus phase counts menus, not individual questions.
type MenuItem struct {
	Theme     string
	Questions []MenuQuestion
}

func (it MenuItem) Prompt() string { return it.Theme }

func (it MenuItem) Solution() string {
	var out string
	for i, q := range it.Questions {
		if i > 0 {
			out += " | "
		}
		out += q.Answer
	}
	return out
}

func (it MenuItem) DedupText() string {
	out := it.Theme
	for _, q := range it.Questions {
		out += " " + q.Text
	}
	return out
}

// BuzzerItem is a quick-fire multiple-choice question for the buzzer round.
type BuzzerItem struct {
	Text         string
	Options      []string
	CorrectIndex int
}

func (it BuzzerItem) Prompt() string    { return it.Text }
func (it BuzzerItem) Solution() string  { return it.Options[it.CorrectIndex] }
func (it BuzzerItem) DedupText() string { return it.Text }

// SequenceItem is one link in the memory-chain round.
type SequenceItem struct {
	Question string
	Answer   string
}

func (it SequenceItem) Prompt() string    { return it.Question }
func (it SequenceItem) Solution() string  { return it.Answer }
func (it SequenceItem) DedupText() string { return it.Question }

// Batch is one generation attempt's full set of items for a phase, plus the
// request metadata it was generated against. Its length may shrink below
// TargetCount while defective or duplicate items are filtered mid-pipeline;
// it must equal TargetCount again at acceptance time.
type Batch struct {
	Phase       Phase
	Topic       string
	Difficulty  Difficulty
	Language    string
	TargetCount int
	Items       []Item
}

// Clone returns a shallow copy of the batch with its own item slice.
func (b Batch) Clone() Batch {
	items := make([]Item, len(b.Items))
	copy(items, b.Items)
	b.Items = items
	return b
}

// Complete reports whether the batch holds exactly the requested item count.
func (b Batch) Complete() bool {
	return len(b.Items) == b.TargetCount
}
