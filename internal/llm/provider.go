package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over the external text-generation capability.
// All pipeline agents (generator, reviewer, fact-checker) speak to the model
// through this interface, which makes every one of them testable against
// the mock provider.
type Provider interface {
	// Generate sends a prompt and returns the model's structured response.
	// When the request carries a Schema, the provider uses its native
	// structured-output mechanism and the response Content is the validated
	// JSON value.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Profile selects a sampling regime for a request. The generator runs
// creative, the reviewer and fact-checker run factual.
type Profile string

const (
	// ProfileCreative uses a high temperature for varied content proposals.
	ProfileCreative Profile = "creative"

	// ProfileFactual uses a near-deterministic temperature for scoring and
	// verification passes.
	ProfileFactual Profile = "factual"
)

// Request describes one call to the model.
type Request struct {
	// System sets the agent's role and constraints.
	System string

	// Messages is the conversation. Pipeline calls are single-turn, so this
	// usually holds exactly one user message.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must conform to.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature controls sampling randomness (0.0 - 1.0). Callers resolve
	// it from a Profile via Config.Temperature.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name for
	// OpenAI-style APIs). Kebab-case, e.g. "mcq-batch".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the generated value. With a Schema set on the request this
	// is validated JSON; otherwise it is the raw text.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Add accumulates another usage record, for per-pipeline-run totals.
func (u *Usage) Add(other Usage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.TotalTokens += other.TotalTokens
}

// resolveModel maps a friendly model name through the provider's alias table,
// passing through unknown names untouched so exact model IDs keep working.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
