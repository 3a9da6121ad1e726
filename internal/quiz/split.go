package quiz

// The game-state store persists the public view and the answer key as two
// separate records. Nothing in the public view may reveal a solution, so the
// split is done here, in one place, rather than trusting each caller to strip
// fields.

// PublicEntry is the answer-stripped view of one item.
type PublicEntry struct {
	Text      string   `json:"text"`
	Options   []string `json:"options,omitempty"`
	Theme     string   `json:"theme,omitempty"`
	Questions []string `json:"questions,omitempty"`
}

// PublicBatch is the answer-stripped view of a whole batch.
type PublicBatch struct {
	Phase      Phase         `json:"phase"`
	Topic      string        `json:"topic"`
	Difficulty Difficulty    `json:"difficulty"`
	Language   string        `json:"language"`
	Entries    []PublicEntry `json:"entries"`
}

// AnswerEntry is the private answer for one item, index-aligned with the
// public entries.
type AnswerEntry struct {
	Index        int      `json:"index"`
	Answer       string   `json:"answer"`
	CorrectIndex int      `json:"correct_index,omitempty"`
	Answers      []string `json:"answers,omitempty"`
	Note         string   `json:"note,omitempty"`
}

// AnswerKey is the private half of an accepted batch.
type AnswerKey struct {
	Phase   Phase         `json:"phase"`
	Entries []AnswerEntry `json:"entries"`
}

// Split separates a batch into its public view and its answer key.
func (b Batch) Split() (PublicBatch, AnswerKey) {
	pub := PublicBatch{
		Phase:      b.Phase,
		Topic:      b.Topic,
		Difficulty: b.Difficulty,
		Language:   b.Language,
		Entries:    make([]PublicEntry, 0, len(b.Items)),
	}
	key := AnswerKey{
		Phase:   b.Phase,
		Entries: make([]AnswerEntry, 0, len(b.Items)),
	}

	for i, item := range b.Items {
		switch it := item.(type) {
		case MCQItem:
			pub.Entries = append(pub.Entries, PublicEntry{Text: it.Text, Options: it.Options})
			key.Entries = append(key.Entries, AnswerEntry{
				Index:        i,
				Answer:       it.Solution(),
				CorrectIndex: it.CorrectIndex,
				Note:         it.Anecdote,
			})
		case CategorizeItem:
			pub.Entries = append(pub.Entries, PublicEntry{Text: it.Text})
			key.Entries = append(key.Entries, AnswerEntry{
				Index:  i,
				Answer: string(it.Answer),
				Note:   it.Justification,
			})
		case MenuItem:
			texts := make([]string, len(it.Questions))
			answers := make([]string, len(it.Questions))
			for j, q := range it.Questions {
				texts[j] = q.Text
				answers[j] = q.Answer
			}
			pub.Entries = append(pub.Entries, PublicEntry{Theme: it.Theme, Questions: texts})
			key.Entries = append(key.Entries, AnswerEntry{Index: i, Answers: answers})
		case BuzzerItem:
			pub.Entries = append(pub.Entries, PublicEntry{Text: it.Text, Options: it.Options})
			key.Entries = append(key.Entries, AnswerEntry{
				Index:        i,
				Answer:       it.Solution(),
				CorrectIndex: it.CorrectIndex,
			})
		case SequenceItem:
			pub.Entries = append(pub.Entries, PublicEntry{Text: it.Question})
			key.Entries = append(key.Entries, AnswerEntry{Index: i, Answer: it.Answer})
		}
	}

	return pub, key
}
