package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func batchSchema() *Schema {
	return &Schema{
		Name:        "test-batch",
		Description: "A list of items",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"items": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"text": map[string]any{"type": "string"},
						},
						"required": []any{"text"},
					},
				},
			},
			"required":             []any{"items"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"items": [{"text": "hello"}]}`)
	if err := validateResponse(batchSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"other": 1}`)
	err := validateResponse(batchSchema(), raw)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"items": [`)
	if err := validateResponse(batchSchema(), raw); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestValidateResponse_NilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should skip validation: %v", err)
	}
}

func TestValidateResponse_SchemaCacheReuse(t *testing.T) {
	s := batchSchema()
	raw := json.RawMessage(`{"items": []}`)
	for range 3 {
		if err := validateResponse(s, raw); err != nil {
			t.Fatalf("unexpected error on cached validation: %v", err)
		}
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("gemini-flash", geminiModels); got != "gemini-2.0-flash" {
		t.Errorf("alias not resolved: %q", got)
	}
	if got := resolveModel("gemini-9.9-custom", geminiModels); got != "gemini-9.9-custom" {
		t.Errorf("unknown names must pass through: %q", got)
	}
}

func TestConfigTemperatureProfiles(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Temperature(ProfileCreative) <= cfg.Temperature(ProfileFactual) {
		t.Error("creative profile must run hotter than factual")
	}
}
