package llm

import "context"

type contextKey string

const agentKey contextKey = "llm_agent"

// WithAgent labels the context with the pipeline agent making the call
// (generator, reviewer, factcheck) for event logging.
func WithAgent(ctx context.Context, agent string) context.Context {
	return context.WithValue(ctx, agentKey, agent)
}

// AgentFrom extracts the agent label from the context.
func AgentFrom(ctx context.Context) string {
	if v, ok := ctx.Value(agentKey).(string); ok {
		return v
	}
	return "unknown"
}
