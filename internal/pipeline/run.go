package pipeline

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/quizforge/quizforge/internal/quiz"
)

// PhaseOutcome is one phase's result or error from a concurrent run.
type PhaseOutcome struct {
	Phase  quiz.Phase
	Result *Result
	Err    error
}

// RunPhases generates several independent phases concurrently, one
// orchestrator loop each. Every phase finishes on its own: a failed or
// exhausted phase never cancels its siblings, so the outcome map always
// holds an entry per requested phase.
func (o *Orchestrator) RunPhases(ctx context.Context, reqs []Request) map[quiz.Phase]PhaseOutcome {
	var (
		mu       sync.Mutex
		outcomes = make(map[quiz.Phase]PhaseOutcome, len(reqs))
	)

	// The group context is deliberately not used for the workers: phase
	// isolation requires that one phase's error leaves the parent ctx
	// intact for the others.
	g := new(errgroup.Group)
	g.SetLimit(len(reqs))

	for _, req := range reqs {
		req := req
		g.Go(func() error {
			res, err := o.RunPhase(ctx, req)

			mu.Lock()
			outcomes[req.Phase] = PhaseOutcome{Phase: req.Phase, Result: res, Err: err}
			mu.Unlock()
			return nil
		})
	}

	g.Wait()
	return outcomes
}
