package factcheck

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/quizforge/quizforge/internal/llm"
	"github.com/quizforge/quizforge/internal/quiz"
)

func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.BaseBackoff = time.Millisecond
	return cfg
}

func mcqBatch() quiz.Batch {
	return quiz.Batch{
		Phase: quiz.PhaseMCQ,
		Topic: "space",
		Items: []quiz.Item{
			quiz.MCQItem{
				Text:         "Which planet is closest to the sun?",
				Options:      []string{"Mercury", "Venus", "Mars", "Jupiter"},
				CorrectIndex: 0,
			},
			quiz.MCQItem{
				Text:         "Which planet is the largest?",
				Options:      []string{"Saturn", "Jupiter", "Neptune", "Earth"},
				CorrectIndex: 1,
			},
		},
		TargetCount: 2,
	}
}

func verdictsJSON(s string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(s)}
}

func TestCheckPassAndFail(t *testing.T) {
	mock := llm.NewMockProvider(verdictsJSON(`{"verdicts":[
		{"index":0,"is_correct":true,"confidence":95,"reasoning":"Mercury orbits closest.","correction":"","synonym_issue":false},
		{"index":1,"is_correct":false,"confidence":90,"reasoning":"Saturn is second.","correction":"Jupiter","synonym_issue":false}]}`))
	c := New(mock, fastConfig())

	verdicts, _, err := c.Check(context.Background(), mcqBatch())
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(verdicts) != 2 {
		t.Fatalf("got %d verdicts, want 2", len(verdicts))
	}
	if !verdicts[0].Passes(c.Threshold()) {
		t.Error("verdict 0 should pass")
	}
	if verdicts[1].Passes(c.Threshold()) {
		t.Error("verdict 1 should fail: is_correct=false")
	}
}

func TestCheckConfidenceThreshold(t *testing.T) {
	v := Verdict{IsCorrect: true, Confidence: 84}
	if v.Passes(85) {
		t.Error("confidence 84 must not clear threshold 85")
	}
	v.Confidence = 85
	if !v.Passes(85) {
		t.Error("confidence 85 must clear threshold 85")
	}
}

func TestSynonymIssueForcesRejection(t *testing.T) {
	v := Verdict{IsCorrect: true, Confidence: 100, SynonymIssue: true}
	if v.Passes(85) {
		t.Error("synonym issue must force rejection regardless of confidence")
	}
}

func TestCheckRetriesThenSucceeds(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		verdictsJSON(`{"verdicts":[
			{"index":0,"is_correct":true,"confidence":95,"reasoning":"","correction":"","synonym_issue":false},
			{"index":1,"is_correct":true,"confidence":95,"reasoning":"","correction":"","synonym_issue":false}]}`),
	)
	c := New(mock, fastConfig())

	verdicts, _, err := c.Check(context.Background(), mcqBatch())
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(verdicts) != 2 {
		t.Fatalf("got %d verdicts, want 2", len(verdicts))
	}
	if mock.CallCount() != 2 {
		t.Errorf("call count = %d, want 2", mock.CallCount())
	}
}

func TestCheckFailClosed(t *testing.T) {
	// Every attempt fails: no verdicts may be returned, so the caller has
	// nothing it could accidentally accept.
	mock := llm.NewMockProvider()
	c := New(mock, fastConfig())

	verdicts, _, err := c.Check(context.Background(), mcqBatch())
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if verdicts != nil {
		t.Fatalf("fail-closed violated: got %d verdicts", len(verdicts))
	}
	if mock.CallCount() != 4 { // initial attempt + 3 retries
		t.Errorf("call count = %d, want 4", mock.CallCount())
	}
}

func TestCheckVerdictCountMismatchRetried(t *testing.T) {
	one := `{"verdicts":[{"index":0,"is_correct":true,"confidence":95,"reasoning":"","correction":"","synonym_issue":false}]}`
	two := `{"verdicts":[
		{"index":0,"is_correct":true,"confidence":95,"reasoning":"","correction":"","synonym_issue":false},
		{"index":1,"is_correct":true,"confidence":95,"reasoning":"","correction":"","synonym_issue":false}]}`
	mock := llm.NewMockProvider(verdictsJSON(one), verdictsJSON(two))
	c := New(mock, fastConfig())

	verdicts, _, err := c.Check(context.Background(), mcqBatch())
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(verdicts) != 2 {
		t.Fatalf("got %d verdicts, want 2", len(verdicts))
	}
}

func TestCheckEmptyBatch(t *testing.T) {
	mock := llm.NewMockProvider()
	c := New(mock, fastConfig())

	verdicts, _, err := c.Check(context.Background(), quiz.Batch{Phase: quiz.PhaseMCQ})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(verdicts) != 0 || mock.CallCount() != 0 {
		t.Error("empty batch should short-circuit without a call")
	}
}

func TestCheckPromptListsWrongOptions(t *testing.T) {
	mock := llm.NewMockProvider(verdictsJSON(`{"verdicts":[
		{"index":0,"is_correct":true,"confidence":95,"reasoning":"","correction":"","synonym_issue":false},
		{"index":1,"is_correct":true,"confidence":95,"reasoning":"","correction":"","synonym_issue":false}]}`))
	c := New(mock, fastConfig())

	if _, _, err := c.Check(context.Background(), mcqBatch()); err != nil {
		t.Fatalf("Check: %v", err)
	}
	prompt := mock.LastCall().Messages[0].Content
	if !strings.Contains(prompt, "Wrong option: Venus") {
		t.Errorf("prompt should list distractors for synonym detection:\n%s", prompt)
	}
	if strings.Contains(prompt, "Wrong option: Mercury") {
		t.Error("the correct answer must not be listed as a wrong option")
	}
}

func TestCheckHonorsContextCancel(t *testing.T) {
	mock := llm.NewMockProvider() // always fails, would retry
	cfg := fastConfig()
	cfg.BaseBackoff = time.Hour
	c := New(mock, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, _, err := c.Check(ctx, mcqBatch())
	if err == nil {
		t.Fatal("expected error")
	}
	if time.Since(start) > time.Second {
		t.Error("Check did not honor context cancellation during backoff")
	}
}
