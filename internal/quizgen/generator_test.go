package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/quizforge/quizforge/internal/llm"
	"github.com/quizforge/quizforge/internal/quiz"
)

func mcqBatchJSON(n int) json.RawMessage {
	var b strings.Builder
	b.WriteString(`{"items":[`)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`{"text":"Which planet is item `)
		b.WriteString(string(rune('A' + i)))
		b.WriteString(`?","options":["Mars","Venus","Jupiter","Saturn"],"correct_index":0,"anecdote":"A fact."}`)
	}
	b.WriteString(`]}`)
	return json.RawMessage(b.String())
}

func TestGenerateMCQ(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: mcqBatchJSON(3),
		Usage:   llm.Usage{InputTokens: 100, OutputTokens: 200},
	})
	g := New(mock, DefaultConfig())

	batch, usage, err := g.Generate(context.Background(), Request{
		Phase:       quiz.PhaseMCQ,
		Topic:       "the solar system",
		Difficulty:  quiz.DifficultyNormal,
		Language:    "en",
		TargetCount: 3,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(batch.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(batch.Items))
	}
	if !batch.Complete() {
		t.Error("batch should be complete")
	}
	if usage.OutputTokens != 200 {
		t.Errorf("usage.OutputTokens = %d, want 200", usage.OutputTokens)
	}

	it, ok := batch.Items[0].(quiz.MCQItem)
	if !ok {
		t.Fatalf("item 0 is %T, want MCQItem", batch.Items[0])
	}
	if it.Solution() != "Mars" {
		t.Errorf("solution = %q, want Mars", it.Solution())
	}
}

func TestGenerateUnknownPhase(t *testing.T) {
	g := New(llm.NewMockProvider(), DefaultConfig())
	_, _, err := g.Generate(context.Background(), Request{Phase: "karaoke", TargetCount: 1})
	if err == nil {
		t.Fatal("expected error for unknown phase")
	}
}

func TestGenerateCountMismatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: mcqBatchJSON(2)})
	g := New(mock, DefaultConfig())

	_, _, err := g.Generate(context.Background(), Request{
		Phase:       quiz.PhaseMCQ,
		Topic:       "space",
		TargetCount: 5,
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Check != "count" {
		t.Errorf("check = %q, want count", verr.Check)
	}
}

func TestGenerateRecoversFencedJSON(t *testing.T) {
	fenced := "Here you go:\n```json\n" + string(mcqBatchJSON(1)) + "\n```"
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(fenced)})
	g := New(mock, DefaultConfig())

	batch, _, err := g.Generate(context.Background(), Request{
		Phase:       quiz.PhaseMCQ,
		Topic:       "space",
		TargetCount: 1,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(batch.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(batch.Items))
	}
}

func TestGenerateStructuralValidation(t *testing.T) {
	// Two options normalize to the same string.
	bad := `{"items":[{"text":"Q?","options":["Mars","  MARS ","Venus","Saturn"],"correct_index":2,"anecdote":"F."}]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(bad)})
	g := New(mock, DefaultConfig())

	_, _, err := g.Generate(context.Background(), Request{
		Phase:       quiz.PhaseMCQ,
		Topic:       "space",
		TargetCount: 1,
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Check != "structural" {
		t.Errorf("check = %q, want structural", verr.Check)
	}
	if !strings.Contains(verr.Message, "item 0") {
		t.Errorf("message should name the item index: %q", verr.Message)
	}
}

func TestGenerateCategorizeAnswerEnum(t *testing.T) {
	bad := `{"items":[{"text":"S.","answer":"C","justification":"J."}]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(bad)})
	g := New(mock, DefaultConfig())

	_, _, err := g.Generate(context.Background(), Request{
		Phase:       quiz.PhaseCategorize,
		Topic:       "cheese or opera",
		TargetCount: 1,
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestGenerateCompletionModePrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: mcqBatchJSON(2)})
	g := New(mock, DefaultConfig())

	existing := []quiz.Item{
		quiz.MCQItem{Text: "What is the largest planet?", Options: []string{"Jupiter", "Mars", "Venus", "Pluto"}, CorrectIndex: 0},
	}
	_, _, err := g.Generate(context.Background(), Request{
		Phase:       quiz.PhaseMCQ,
		Topic:       "space",
		TargetCount: 2,
		Existing:    existing,
		Feedback:    "two questions were about the same moon",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	prompt := mock.LastCall().Messages[0].Content
	if !strings.Contains(prompt, "What is the largest planet?") {
		t.Error("prompt should list existing items")
	}
	if !strings.Contains(prompt, "two questions were about the same moon") {
		t.Error("prompt should carry accumulated feedback")
	}
	if !strings.Contains(prompt, "exactly 2") {
		t.Error("prompt should ask for the deficit, not the full count")
	}
}

func TestGenerateCategoryDistributionPrompt(t *testing.T) {
	body := `{"items":[` +
		`{"text":"S1.","answer":"A","justification":"J."},` +
		`{"text":"S2.","answer":"B","justification":"J."},` +
		`{"text":"S3.","answer":"Both","justification":"J."}]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(body)})
	g := New(mock, DefaultConfig())

	_, _, err := g.Generate(context.Background(), Request{
		Phase:       quiz.PhaseCategorize,
		Topic:       "rivers or mountains",
		TargetCount: 3,
		CategoryCounts: map[quiz.Category]int{
			quiz.CategoryA:    1,
			quiz.CategoryB:    1,
			quiz.CategoryBoth: 1,
		},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	prompt := mock.LastCall().Messages[0].Content
	if !strings.Contains(prompt, `1 items with answer "Both"`) {
		t.Errorf("prompt should pin the Both count:\n%s", prompt)
	}
}

func TestGenerateMenusShape(t *testing.T) {
	body := `{"items":[{"theme":"Frozen Worlds","questions":[` +
		`{"text":"Q1?","answer":"A1"},{"text":"Q2?","answer":"A2"},{"text":"Q3?","answer":"A3"}]}]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(body)})
	g := New(mock, DefaultConfig())

	batch, _, err := g.Generate(context.Background(), Request{
		Phase:       quiz.PhaseMenus,
		Topic:       "space",
		TargetCount: 1,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	menu, ok := batch.Items[0].(quiz.MenuItem)
	if !ok {
		t.Fatalf("item 0 is %T, want MenuItem", batch.Items[0])
	}
	if menu.Theme != "Frozen Worlds" || len(menu.Questions) != 3 {
		t.Errorf("unexpected menu: %+v", menu)
	}
}

func TestGenerateMenuRejectsWrongQuestionCount(t *testing.T) {
	body := `{"items":[{"theme":"Frozen Worlds","questions":[` +
		`{"text":"Q1?","answer":"A1"},{"text":"Q2?","answer":"A2"}]}]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(body)})
	g := New(mock, DefaultConfig())

	_, _, err := g.Generate(context.Background(), Request{
		Phase:       quiz.PhaseMenus,
		Topic:       "space",
		TargetCount: 1,
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !strings.Contains(verr.Message, "2 questions") {
		t.Errorf("message should name the bad count: %s", verr.Message)
	}
}

func TestGenerateSequenceRejectsEmptyAnswer(t *testing.T) {
	body := `{"items":[{"question":"Q1?","answer":""}]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(body)})
	g := New(mock, DefaultConfig())

	_, _, err := g.Generate(context.Background(), Request{
		Phase:       quiz.PhaseSequence,
		Topic:       "space",
		TargetCount: 1,
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestFormatExistingCap(t *testing.T) {
	items := make([]quiz.Item, 30)
	for i := range items {
		items[i] = quiz.SequenceItem{Question: "Q", Answer: "A"}
	}
	out := formatExisting(items, 10)
	if got := strings.Count(out, "\n") + 1; got != 10 {
		t.Errorf("formatExisting kept %d lines, want 10", got)
	}
}
