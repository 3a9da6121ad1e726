package review

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/quizforge/quizforge/internal/llm"
	"github.com/quizforge/quizforge/internal/quiz"
)

func testBatch(n int) quiz.Batch {
	items := make([]quiz.Item, n)
	for i := range items {
		items[i] = quiz.MCQItem{
			Text:         "Q?",
			Options:      []string{"A", "B", "C", "D"},
			CorrectIndex: 0,
			Anecdote:     "F.",
		}
	}
	return quiz.Batch{Phase: quiz.PhaseMCQ, Topic: "space", Difficulty: quiz.DifficultyNormal, TargetCount: n, Items: items}
}

func TestReviewParsesVerdict(t *testing.T) {
	body := `{"overall_score":8.5,
		"criterion_scores":{"factual_accuracy":9,"option_plausibility":8,"clarity":8,"thematic_variety":9},
		"per_item_feedback":[
			{"index":0,"ok":true,"issue_type":"","note":""},
			{"index":1,"ok":false,"issue_type":"ambiguous","note":"Two options could be argued correct."}],
		"suggestions":"Tighten item 1."}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(body)})
	r := New(mock, DefaultConfig())

	v, _, err := r.Review(context.Background(), testBatch(2))
	if err != nil {
		t.Fatalf("Review: %v", err)
	}
	if v.OverallScore != 8.5 {
		t.Errorf("overall = %v, want 8.5", v.OverallScore)
	}
	if got := v.FlaggedIndexes(); len(got) != 1 || got[0] != 1 {
		t.Errorf("flagged = %v, want [1]", got)
	}

	rubric, _ := RubricFor(quiz.PhaseMCQ)
	if fails := v.CriticalFailures(rubric); len(fails) != 0 {
		t.Errorf("unexpected critical failures: %v", fails)
	}
}

func TestReviewCriticalFloor(t *testing.T) {
	v := Verdict{
		OverallScore: 7.5,
		CriterionScores: map[string]float64{
			"factual_accuracy": 6, // below the 8 floor
			"clarity":          9,
		},
	}
	rubric, _ := RubricFor(quiz.PhaseMCQ)
	fails := v.CriticalFailures(rubric)
	if len(fails) != 1 || fails[0].Name != "factual_accuracy" {
		t.Fatalf("fails = %v, want [factual_accuracy]", fails)
	}
}

func TestReviewRejectsOutOfRangeIndex(t *testing.T) {
	body := `{"overall_score":8,"criterion_scores":{},"per_item_feedback":[{"index":5,"ok":false,"issue_type":"other","note":"?"}],"suggestions":""}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(body)})
	r := New(mock, DefaultConfig())

	_, _, err := r.Review(context.Background(), testBatch(2))
	if err == nil {
		t.Fatal("expected error for out-of-range item index")
	}
}

func TestReviewPromptContainsAnswers(t *testing.T) {
	body := `{"overall_score":8,"criterion_scores":{},"per_item_feedback":[],"suggestions":""}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(body)})
	r := New(mock, DefaultConfig())

	batch := testBatch(1)
	if _, _, err := r.Review(context.Background(), batch); err != nil {
		t.Fatalf("Review: %v", err)
	}

	// The reviewer must see the claimed answers to judge factual accuracy.
	prompt := mock.LastCall().Messages[0].Content
	if !strings.Contains(prompt, "Answer: A") {
		t.Errorf("review prompt missing answers:\n%s", prompt)
	}
}

func TestNarrativeListsFlaggedItems(t *testing.T) {
	v := Verdict{
		OverallScore: 5,
		PerItemFeedback: []ItemFeedback{
			{Index: 0, OK: true},
			{Index: 3, OK: false, IssueType: "factual", Note: "Saturn is not the largest planet."},
		},
		Suggestions: "Double-check sizes.",
	}
	n := v.Narrative()
	if !strings.Contains(n, "item 3") || !strings.Contains(n, "Saturn") {
		t.Errorf("narrative missing flagged item: %q", n)
	}
	if !strings.Contains(n, "Double-check sizes.") {
		t.Errorf("narrative missing suggestions: %q", n)
	}
}

func TestRubricCritical(t *testing.T) {
	for _, phase := range quiz.AllPhases() {
		r, ok := RubricFor(phase)
		if !ok {
			t.Fatalf("no rubric for phase %q", phase)
		}
		names := map[string]bool{}
		for _, c := range r.Critical() {
			names[c.Name] = true
		}
		if !names["factual_accuracy"] || !names["clarity"] {
			t.Errorf("phase %q missing critical floors: %v", phase, names)
		}
	}
}

func TestCategorizeRubricExtras(t *testing.T) {
	r, _ := RubricFor(quiz.PhaseCategorize)
	var hasPhonetic, hasTrap bool
	for _, c := range r.Criteria {
		switch c.Name {
		case "phonetic":
			hasPhonetic = true
		case "trap_quality":
			hasTrap = true
		}
	}
	if !hasPhonetic || !hasTrap {
		t.Errorf("categorize rubric missing phonetic/trap_quality: %+v", r.Criteria)
	}
}
