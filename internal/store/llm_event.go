package store

import (
	"context"
	"fmt"

	"github.com/quizforge/quizforge/ent"
	"github.com/quizforge/quizforge/ent/llmrequestevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence
// counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

// maxBodyLen bounds stored prompt/response bodies so a runaway generation
// cannot bloat the event log.
const maxBodyLen = 16 * 1024

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetAgent(data.Agent).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(truncate(data.RequestBody, maxBodyLen)).
		SetResponseBody(truncate(data.ResponseBody, maxBodyLen)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) LLMStatsByAgent(ctx context.Context) (map[string]LLMStats, error) {
	events, err := r.client.LLMRequestEvent.Query().
		Order(ent.Asc(llmrequestevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	stats := make(map[string]LLMStats)
	for _, ev := range events {
		s := stats[ev.Agent]
		s.Requests++
		if !ev.Success {
			s.Failures++
		}
		s.InputTokens += ev.InputTokens
		s.OutputTokens += ev.OutputTokens
		stats[ev.Agent] = s
	}
	return stats, nil
}

func (r *eventRepo) LLMStatsByModel(ctx context.Context) (map[string]LLMStats, error) {
	events, err := r.client.LLMRequestEvent.Query().
		Order(ent.Asc(llmrequestevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	stats := make(map[string]LLMStats)
	for _, ev := range events {
		s := stats[ev.Model]
		s.Requests++
		if !ev.Success {
			s.Failures++
		}
		s.InputTokens += ev.InputTokens
		s.OutputTokens += ev.OutputTokens
		stats[ev.Model] = s
	}
	return stats, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
