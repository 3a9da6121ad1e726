package jsonx

import (
	"encoding/json"
	"testing"
)

func TestExtract_PlainJSON(t *testing.T) {
	raw, err := Extract(`{"a": 1, "b": [2, 3]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"a": 1, "b": [2, 3]}` {
		t.Errorf("unexpected output: %s", raw)
	}
}

func TestExtract_MarkdownFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"json tag", "```json\n{\"a\": 1}\n```"},
		{"no tag", "```\n{\"a\": 1}\n```"},
		{"upper tag", "```JSON\n{\"a\": 1}\n```"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := Extract(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(raw) != `{"a": 1}` {
				t.Errorf("got %s", raw)
			}
		})
	}
}

func TestExtract_Idempotent(t *testing.T) {
	valid := `{"items": [{"text": "q1"}, {"text": "q2"}]}`
	fenced := "Here is the content you asked for:\n```json\n" + valid + "\n```\nLet me know if you need more."

	a, err := Extract(valid)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Extract(fenced)
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Errorf("fenced extraction differs: %s vs %s", a, b)
	}

	again, err := Extract(string(a))
	if err != nil {
		t.Fatal(err)
	}
	if string(again) != string(a) {
		t.Errorf("extraction is not idempotent: %s vs %s", again, a)
	}
}

func TestExtract_LeadingProse(t *testing.T) {
	raw, err := Extract(`Sure! The answer is: {"ok": true}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"ok": true}` {
		t.Errorf("got %s", raw)
	}
}

func TestExtract_TrailingComma(t *testing.T) {
	raw, err := Extract(`{"a": 1, "list": [1, 2, 3,],}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out struct {
		A    int   `json:"a"`
		List []int `json:"list"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("output not parseable: %v", err)
	}
	if out.A != 1 || len(out.List) != 3 {
		t.Errorf("unexpected value: %+v", out)
	}
}

func TestExtract_TruncatedBrackets(t *testing.T) {
	raw, err := Extract(`{"items": [{"text": "what is 2+2?", "answer": "4"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out struct {
		Items []map[string]string `json:"items"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("balanced output not parseable: %v\n%s", err, raw)
	}
	if len(out.Items) != 1 || out.Items[0]["answer"] != "4" {
		t.Errorf("unexpected value: %+v", out)
	}
}

func TestExtract_BracesInsideStrings(t *testing.T) {
	in := `{"text": "use {braces} and ]brackets[ freely", "n": 1}`
	raw, err := Extract(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != in {
		t.Errorf("string-aware scan mangled payload: %s", raw)
	}
}

func TestExtract_FenceInsideStringValue(t *testing.T) {
	in := "{\n  \"text\": \"Write a ``` fenced block\",\n  \"n\": 1\n}"
	raw, err := Extract(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != in {
		t.Errorf("fence inside a string value mangled payload: %s", raw)
	}
	var out struct {
		Text string `json:"text"`
		N    int    `json:"n"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("output not parseable: %v", err)
	}
	if out.Text != "Write a ``` fenced block" || out.N != 1 {
		t.Errorf("unexpected value: %+v", out)
	}
}

func TestExtract_TrailingProseAfterValue(t *testing.T) {
	raw, err := Extract(`{"a": 1} Hope this helps!`)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `{"a": 1}` {
		t.Errorf("got %s", raw)
	}
}

func TestExtract_NoJSON(t *testing.T) {
	if _, err := Extract("I could not produce the content."); err == nil {
		t.Fatal("expected error for prose-only input")
	}
}

func TestExtract_Array(t *testing.T) {
	raw, err := Extract("```json\n[1, 2, 3]\n```")
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "[1, 2, 3]" {
		t.Errorf("got %s", raw)
	}
}
