package quiz

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim and lowercase", "  What Is The Speed Of Light?  ", "what is the speed of light?"},
		{"collapse whitespace", "what\tis \n the   speed", "what is the speed"},
		{"already normal", "plain text", "plain text"},
		{"nfc composition", "café", "café"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_EquivalentStringsCollapse(t *testing.T) {
	a := Normalize("  The SPEED of light? ")
	b := Normalize("the speed\nof light?")
	if a != b {
		t.Errorf("expected equal normal forms, got %q vs %q", a, b)
	}
}

func TestSplit_MCQ(t *testing.T) {
	b := Batch{
		Phase:       PhaseMCQ,
		Topic:       "space",
		TargetCount: 1,
		Items: []Item{
			MCQItem{
				Text:         "What is the speed of light?",
				Options:      []string{"300 km/s", "300,000 km/s", "3,000 km/s", "30,000 km/s"},
				CorrectIndex: 1,
				Anecdote:     "Defined exactly since 1983.",
			},
		},
	}

	pub, key := b.Split()

	if len(pub.Entries) != 1 || len(key.Entries) != 1 {
		t.Fatalf("expected 1 entry on each side, got %d/%d", len(pub.Entries), len(key.Entries))
	}
	if key.Entries[0].Answer != "300,000 km/s" {
		t.Errorf("unexpected answer: %q", key.Entries[0].Answer)
	}

	// The public side must never leak the answer index or anecdote.
	raw, err := json.Marshal(pub)
	if err != nil {
		t.Fatal(err)
	}
	for _, leak := range []string{"correct", "anecdote", "1983"} {
		if strings.Contains(strings.ToLower(string(raw)), leak) {
			t.Errorf("public batch leaks %q: %s", leak, raw)
		}
	}
}

func TestSplit_Menus(t *testing.T) {
	b := Batch{
		Phase:       PhaseMenus,
		TargetCount: 1,
		Items: []Item{
			MenuItem{
				Theme: "Rivers",
				Questions: []MenuQuestion{
					{Text: "Longest river in Africa?", Answer: "The Nile"},
					{Text: "River through Paris?", Answer: "The Seine"},
				},
			},
		},
	}

	pub, key := b.Split()

	if got := pub.Entries[0].Theme; got != "Rivers" {
		t.Errorf("theme = %q", got)
	}
	if len(pub.Entries[0].Questions) != 2 {
		t.Fatalf("expected 2 public questions")
	}
	if len(key.Entries[0].Answers) != 2 || key.Entries[0].Answers[0] != "The Nile" {
		t.Errorf("unexpected answer key: %+v", key.Entries[0])
	}

	raw, _ := json.Marshal(pub)
	if strings.Contains(string(raw), "Nile") {
		t.Errorf("public batch leaks menu answers: %s", raw)
	}
}

func TestFallbacks_BoundedByPool(t *testing.T) {
	items := Fallbacks(PhaseMCQ, 100)
	if len(items) == 0 {
		t.Fatal("expected some fallback items")
	}
	if len(items) > 100 {
		t.Errorf("more items than requested")
	}
	for _, it := range items {
		mcq, ok := it.(MCQItem)
		if !ok {
			t.Fatalf("expected MCQItem, got %T", it)
		}
		if mcq.CorrectIndex < 0 || mcq.CorrectIndex >= len(mcq.Options) {
			t.Errorf("fallback item has out-of-range correct index")
		}
	}
}

func TestPhaseValid(t *testing.T) {
	for _, p := range AllPhases() {
		if !p.Valid() {
			t.Errorf("phase %q should be valid", p)
		}
	}
	if Phase("karaoke").Valid() {
		t.Error("unknown phase should be invalid")
	}
}
