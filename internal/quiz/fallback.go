package quiz

// Pre-vetted static items used to pad a best-effort batch that ends short of
// its target count after the iteration budget is spent. Deliberately generic
// so they fit any topic without being wrong.

var fallbackMCQ = []Item{
	MCQItem{
		Text:         "Which planet is closest to the Sun?",
		Options:      []string{"Venus", "Mercury", "Mars", "Earth"},
		CorrectIndex: 1,
		Anecdote:     "A year on Mercury lasts only 88 Earth days.",
	},
	MCQItem{
		Text:         "Which ocean is the largest by surface area?",
		Options:      []string{"Atlantic", "Indian", "Pacific", "Arctic"},
		CorrectIndex: 2,
		Anecdote:     "The Pacific covers more area than all land on Earth combined.",
	},
	MCQItem{
		Text:         "How many strings does a standard violin have?",
		Options:      []string{"Three", "Four", "Five", "Six"},
		CorrectIndex: 1,
		Anecdote:     "The strings are tuned in perfect fifths: G, D, A, E.",
	},
}

var fallbackCategorize = []Item{
	CategorizeItem{
		Text:          "It can be found in a kitchen",
		Answer:        CategoryBoth,
		Justification: "Deliberately broad so it holds for almost any pair of categories.",
	},
	CategorizeItem{
		Text:          "It existed before the year 1900",
		Answer:        CategoryBoth,
		Justification: "Holds for most category pairs drawn from everyday life.",
	},
}

var fallbackMenus = []Item{
	MenuItem{
		Theme: "Capitals of the world",
		Questions: []MenuQuestion{
			{Text: "What is the capital of Japan?", Answer: "Tokyo"},
			{Text: "What is the capital of Canada?", Answer: "Ottawa"},
			{Text: "What is the capital of Australia?", Answer: "Canberra"},
		},
	},
	MenuItem{
		Theme: "Famous inventions",
		Questions: []MenuQuestion{
			{Text: "Who invented the telephone?", Answer: "Alexander Graham Bell"},
			{Text: "Who invented the printing press?", Answer: "Johannes Gutenberg"},
			{Text: "Who invented dynamite?", Answer: "Alfred Nobel"},
		},
	},
}

var fallbackBuzzer = []Item{
	BuzzerItem{
		Text:         "How many continents are there?",
		Options:      []string{"Five", "Six", "Seven", "Eight"},
		CorrectIndex: 2,
	},
	BuzzerItem{
		Text:         "What is the chemical symbol for gold?",
		Options:      []string{"Go", "Gd", "Au", "Ag"},
		CorrectIndex: 2,
	},
}

var fallbackSequence = []Item{
	SequenceItem{Question: "Which fruit famously fell on Newton's head?", Answer: "An apple"},
	SequenceItem{Question: "An apple a day keeps which professional away?", Answer: "The doctor"},
	SequenceItem{Question: "Which doctor travels in a blue police box?", Answer: "Doctor Who"},
}

// Fallbacks returns up to n pre-vetted items for the phase. Fewer than n may
// be returned when the static pool is smaller than the deficit.
func Fallbacks(phase Phase, n int) []Item {
	var pool []Item
	switch phase {
	case PhaseMCQ:
		pool = fallbackMCQ
	case PhaseCategorize:
		pool = fallbackCategorize
	case PhaseMenus:
		pool = fallbackMenus
	case PhaseBuzzer:
		pool = fallbackBuzzer
	case PhaseSequence:
		pool = fallbackSequence
	}
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]Item, n)
	copy(out, pool[:n])
	return out
}
