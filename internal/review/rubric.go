package review

import "github.com/quizforge/quizforge/internal/quiz"

// Criterion is one named rubric dimension scored 0-10.
type Criterion struct {
	Name        string
	Description string

	// Floor is the hard minimum below which the batch cannot be accepted
	// regardless of overall score. Zero means the criterion is advisory.
	Floor float64
}

// Rubric is the set of criteria one phase is scored against.
type Rubric struct {
	Phase    quiz.Phase
	Criteria []Criterion
}

// Critical returns the criteria that carry a hard floor.
func (r Rubric) Critical() []Criterion {
	var out []Criterion
	for _, c := range r.Criteria {
		if c.Floor > 0 {
			out = append(out, c)
		}
	}
	return out
}

var (
	factualAccuracy = Criterion{
		Name:        "factual_accuracy",
		Description: "Every stated fact and every correct answer is true",
		Floor:       8,
	}
	clarity = Criterion{
		Name:        "clarity",
		Description: "Questions are unambiguous and readable aloud",
		Floor:       7,
	}
	thematicVariety = Criterion{
		Name:        "thematic_variety",
		Description: "Items cover distinct angles of the topic, no near-repeats",
	}
	optionPlausibility = Criterion{
		Name:        "option_plausibility",
		Description: "Wrong options are tempting but strictly incorrect",
	}
)

var rubrics = map[quiz.Phase]Rubric{
	quiz.PhaseMCQ: {
		Phase:    quiz.PhaseMCQ,
		Criteria: []Criterion{factualAccuracy, optionPlausibility, clarity, thematicVariety},
	},
	quiz.PhaseCategorize: {
		Phase: quiz.PhaseCategorize,
		Criteria: []Criterion{
			factualAccuracy,
			clarity,
			thematicVariety,
			{
				Name:        "phonetic",
				Description: "Any wordplay or sound-alike pairing actually works when read aloud",
			},
			{
				Name:        "trap_quality",
				Description: "Fraction of statements whose correct category is not immediately obvious",
			},
		},
	},
	quiz.PhaseMenus: {
		Phase: quiz.PhaseMenus,
		Criteria: []Criterion{
			factualAccuracy,
			clarity,
			thematicVariety,
			{
				Name:        "theme_coherence",
				Description: "Each menu's questions all belong to its announced theme",
			},
		},
	},
	quiz.PhaseBuzzer: {
		Phase:    quiz.PhaseBuzzer,
		Criteria: []Criterion{factualAccuracy, optionPlausibility, clarity, thematicVariety},
	},
	quiz.PhaseSequence: {
		Phase: quiz.PhaseSequence,
		Criteria: []Criterion{
			factualAccuracy,
			clarity,
			{
				Name:        "linkage",
				Description: "Each question follows naturally from the previous answer",
				Floor:       7,
			},
		},
	},
}

// RubricFor returns the rubric for a phase.
func RubricFor(phase quiz.Phase) (Rubric, bool) {
	r, ok := rubrics[phase]
	return r, ok
}
