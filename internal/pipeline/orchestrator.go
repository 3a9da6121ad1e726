// Package pipeline drives the iterate-until-accepted loop that turns a topic
// into a verified, de-duplicated batch of phase content. One orchestrator run
// covers one phase; independent phases run concurrently via RunPhases.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/dedup"
	"github.com/quizforge/quizforge/internal/factcheck"
	"github.com/quizforge/quizforge/internal/llm"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/quizgen"
	"github.com/quizforge/quizforge/internal/review"
)

// State names one stage of the per-phase loop, for logging.
type State string

const (
	StateGenerating    State = "generating"
	StateReviewing     State = "reviewing"
	StateTargetedRegen State = "targeted_regen"
	StateFullRegen     State = "full_regen"
	StateFactChecking  State = "fact_checking"
	StateDeduplicating State = "deduplicating"
	StateAccepted      State = "accepted"
	StateBestEffort    State = "best_effort"
)

// ErrExhausted is returned when the iteration budget is spent without a
// single batch ever clearing the critical review floors.
var ErrExhausted = errors.New("iteration budget exhausted with no valid batch")

// Request asks for one phase's content.
type Request struct {
	Phase       quiz.Phase
	Topic       string
	Difficulty  quiz.Difficulty
	Language    string
	TargetCount int

	// Existing lists already-issued items new content must not repeat.
	Existing []quiz.Item

	// CategoryCounts pins the category distribution for the categorize
	// phase. Nil means the orchestrator derives a default split.
	CategoryCounts map[quiz.Category]int
}

// Result is the outcome of one phase run. The batch always holds exactly
// TargetCount items; Warning is set when fallback padding or a best-effort
// batch degraded the content.
type Result struct {
	Batch      quiz.Batch
	Embeddings [][]float32
	Usage      llm.Usage
	Warning    string
}

// Orchestrator wires the generator, reviewer, fact checker, and duplicate
// index into the per-phase state machine.
type Orchestrator struct {
	generator *quizgen.Generator
	reviewer  *review.Reviewer
	checker   *factcheck.Checker
	index     *dedup.Index
	regen     *TargetedRegenerator
	cfg       config.Pipeline
	logger    *slog.Logger
}

// New creates an Orchestrator.
func New(g *quizgen.Generator, r *review.Reviewer, c *factcheck.Checker, ix *dedup.Index, cfg config.Pipeline, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		generator: g,
		reviewer:  r,
		checker:   c,
		index:     ix,
		regen:     NewTargetedRegenerator(g, cfg.TargetedRegenCeiling),
		cfg:       cfg,
		logger:    logger,
	}
}

// run-loop working state, reset per RunPhase call.
type phaseRun struct {
	req      Request
	usage    llm.Usage
	feedback strings.Builder

	// current is a batch carried into the next iteration after targeted
	// regeneration; nil forces a fresh generation.
	current *quiz.Batch

	// best is the highest-scoring batch that cleared both the critical
	// review floors and fact-checking, kept independently of the last
	// attempt because the final iteration is not guaranteed to be the
	// best one.
	best      *quiz.Batch
	bestScore float64
}

func (pr *phaseRun) addFeedback(s string) {
	if s == "" {
		return
	}
	if pr.feedback.Len() > 0 {
		pr.feedback.WriteString("\n")
	}
	pr.feedback.WriteString(s)
}

// RunPhase executes the loop for one phase until a batch is accepted, the
// iteration budget is spent, or the wall-clock budget expires. On exhaustion
// it degrades to the best-seen batch padded with static fallbacks rather
// than failing; only a run that never saw a valid batch returns an error.
func (o *Orchestrator) RunPhase(ctx context.Context, req Request) (*Result, error) {
	if !req.Phase.Valid() {
		return nil, fmt.Errorf("unknown phase: %q", req.Phase)
	}
	if req.TargetCount <= 0 {
		return nil, fmt.Errorf("target count must be positive, got %d", req.TargetCount)
	}
	if req.Phase == quiz.PhaseCategorize && req.CategoryCounts == nil {
		req.CategoryCounts = DefaultCategorySplit(req.TargetCount)
	}

	if o.cfg.PhaseTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.cfg.PhaseTimeout)
		defer cancel()
	}

	// Concurrent phase runs interleave in the log; the run ID keeps one
	// loop's transitions traceable.
	log := o.logger.With("run_id", uuid.NewString(), "phase", req.Phase, "topic", req.Topic)
	pr := &phaseRun{req: req}
	budget := o.cfg.IterationBudget(req.Phase)

	for iter := 1; iter <= budget; iter++ {
		if ctx.Err() != nil {
			log.Warn("phase timed out", "iteration", iter)
			break
		}

		result, done := o.iterate(ctx, log.With("iteration", iter), pr)
		if done {
			return result, nil
		}
	}

	return o.bestEffort(log, pr)
}

// iterate runs one pass of the state machine. It returns (result, true) on
// acceptance; otherwise it updates pr for the next pass.
func (o *Orchestrator) iterate(ctx context.Context, log *slog.Logger, pr *phaseRun) (*Result, bool) {
	req := pr.req

	// Generating. A batch left over from targeted regeneration skips
	// straight to review.
	if pr.current == nil {
		log.Info("state", "state", StateGenerating)
		batch, usage, err := o.generator.Generate(ctx, quizgen.Request{
			Phase:          req.Phase,
			Topic:          req.Topic,
			Difficulty:     req.Difficulty,
			Language:       req.Language,
			TargetCount:    req.TargetCount,
			Feedback:       pr.feedback.String(),
			Existing:       req.Existing,
			CategoryCounts: req.CategoryCounts,
		})
		pr.usage.Add(usage)
		if err != nil {
			var verr *quizgen.ValidationError
			if errors.As(err, &verr) {
				// Malformed output is never retried blindly; the
				// defect description goes back into the prompt.
				pr.addFeedback("Your previous output was rejected: " + verr.Message)
			}
			log.Warn("generation failed", "err", err)
			return nil, false
		}
		pr.current = &batch
	}

	// Reviewing.
	log.Info("state", "state", StateReviewing)
	verdict, usage, err := o.reviewer.Review(ctx, *pr.current)
	pr.usage.Add(usage)
	if err != nil {
		log.Warn("review failed", "err", err)
		return nil, false
	}

	rubric, _ := review.RubricFor(req.Phase)
	critical := verdict.CriticalFailures(rubric)

	if len(critical) > 0 || verdict.OverallScore < o.cfg.AcceptanceScore {
		flagged := toSet(verdict.FlaggedIndexes())
		if o.regen.Eligible(len(flagged), len(pr.current.Items)) {
			log.Info("state", "state", StateTargetedRegen, "flagged", sortedIndexes(flagged))
			merged, usage, err := o.regen.Replace(ctx, req, *pr.current, flagged, verdict.Narrative())
			pr.usage.Add(usage)
			if err == nil {
				pr.current = &merged
				return nil, false
			}
			log.Warn("targeted regeneration failed, falling back to full", "err", err)
		}
		log.Info("state", "state", StateFullRegen, "score", verdict.OverallScore, "critical", len(critical))
		pr.addFeedback(verdict.Narrative())
		pr.current = nil
		return nil, false
	}

	// Review cleared: the accumulated complaints have been addressed and
	// must not ride along into later regenerations.
	pr.feedback.Reset()

	// FactChecking. Verification never fails open: an exhausted checker
	// discards the whole batch.
	log.Info("state", "state", StateFactChecking)
	verdicts, usage, err := o.checker.Check(ctx, *pr.current)
	pr.usage.Add(usage)
	if err != nil {
		log.Warn("fact-check unavailable, discarding batch", "err", err)
		pr.current = nil
		return nil, false
	}

	failed := map[int]bool{}
	var factNotes []string
	for _, v := range verdicts {
		if !v.Passes(o.checker.Threshold()) {
			failed[v.Index] = true
			factNotes = append(factNotes, fmt.Sprintf("- item %d: %s", v.Index, factReason(v)))
		}
	}
	if len(failed) > 0 {
		reasons := "Fact-check rejected these items:\n" + strings.Join(factNotes, "\n")
		if o.regen.Eligible(len(failed), len(pr.current.Items)) {
			log.Info("state", "state", StateTargetedRegen, "flagged", sortedIndexes(failed))
			merged, usage, err := o.regen.Replace(ctx, req, *pr.current, failed, reasons)
			pr.usage.Add(usage)
			if err == nil {
				pr.current = &merged
				return nil, false
			}
			log.Warn("targeted regeneration failed, falling back to full", "err", err)
		}
		log.Info("state", "state", StateFullRegen, "failed_verification", len(failed))
		pr.addFeedback(reasons)
		pr.current = nil
		return nil, false
	}

	// Only a fully verified batch may become the best-effort fallback.
	// A batch whose verification failed or never completed must not be
	// returned through any path.
	if verdict.OverallScore > pr.bestScore {
		b := pr.current.Clone()
		pr.best = &b
		pr.bestScore = verdict.OverallScore
	}

	// Deduplicating.
	log.Info("state", "state", StateDeduplicating)
	dres, err := o.index.FindDuplicates(ctx, req.Phase, pr.current.Items)
	if err != nil {
		// Transient embedding/storage failure: keep the batch and retry
		// the whole step next iteration.
		log.Warn("duplicate check failed", "err", err)
		return nil, false
	}

	dups := dres.DuplicateIndexes()
	if len(dups) == 0 {
		return o.accept(ctx, log, pr, dres.Embeddings)
	}

	remaining := len(pr.current.Items) - len(dups)
	minViable := int(float64(req.TargetCount) * o.cfg.MinViableFraction)
	if remaining < minViable {
		log.Info("state", "state", StateFullRegen, "duplicates", len(dups))
		pr.addFeedback("Most of your items duplicated existing content. Produce entirely different questions on the same topic.")
		pr.current = nil
		return nil, false
	}

	// The survivors stay; the duplicate slots are refilled and the merged
	// batch re-enters review.
	log.Info("state", "state", StateTargetedRegen, "duplicates", sortedIndexes(dups))
	reasons := duplicateReasons(dres.Duplicates)
	merged, usage, err := o.regen.Replace(ctx, req, *pr.current, dups, reasons)
	pr.usage.Add(usage)
	if err != nil {
		log.Warn("duplicate refill failed", "err", err)
		pr.addFeedback(reasons)
		pr.current = nil
		return nil, false
	}
	pr.current = &merged
	return nil, false
}

// accept persists the batch and its embeddings to the corpus and finishes
// the run.
func (o *Orchestrator) accept(ctx context.Context, log *slog.Logger, pr *phaseRun, embeddings [][]float32) (*Result, bool) {
	batch := *pr.current
	log.Info("state", "state", StateAccepted, "items", len(batch.Items), "tokens", pr.usage.TotalTokens)

	if err := o.index.Persist(ctx, batch, embeddings); err != nil {
		// The content is good; losing corpus bookkeeping must not fail
		// the phase.
		log.Warn("corpus persist failed", "err", err)
	}

	return &Result{
		Batch:      batch,
		Embeddings: embeddings,
		Usage:      pr.usage,
	}, true
}

// bestEffort degrades to the best-seen batch, padded with static fallback
// items up to the target count. The game always gets a playable batch;
// a warning travels with it instead of an error.
func (o *Orchestrator) bestEffort(log *slog.Logger, pr *phaseRun) (*Result, error) {
	if pr.best == nil {
		return nil, fmt.Errorf("phase %s: %w", pr.req.Phase, ErrExhausted)
	}

	batch := pr.best.Clone()
	padded := 0
	if deficit := batch.TargetCount - len(batch.Items); deficit > 0 {
		pads := quiz.Fallbacks(batch.Phase, deficit)
		batch.Items = append(batch.Items, pads...)
		padded = len(pads)
	}

	log.Warn("state", "state", StateBestEffort, "score", pr.bestScore, "padded", padded)
	return &Result{
		Batch: batch,
		Usage: pr.usage,
		Warning: fmt.Sprintf("iteration budget exhausted; returning best-seen batch (score %.1f, %d fallback items)",
			pr.bestScore, padded),
	}, nil
}

// DefaultCategorySplit derives a category distribution of roughly 40% A,
// 40% B, and the remainder Both.
func DefaultCategorySplit(total int) map[quiz.Category]int {
	a := total * 2 / 5
	b := total * 2 / 5
	both := total - a - b
	out := map[quiz.Category]int{}
	if a > 0 {
		out[quiz.CategoryA] = a
	}
	if b > 0 {
		out[quiz.CategoryB] = b
	}
	if both > 0 {
		out[quiz.CategoryBoth] = both
	}
	return out
}

func factReason(v factcheck.Verdict) string {
	switch {
	case v.SynonymIssue:
		return "a wrong option is a synonym of the correct answer"
	case !v.IsCorrect && v.Correction != "":
		return fmt.Sprintf("the claimed answer is wrong; actual answer: %s", v.Correction)
	case !v.IsCorrect:
		return "the claimed answer is wrong: " + v.Reasoning
	default:
		return fmt.Sprintf("verification confidence too low (%.0f)", v.Confidence)
	}
}

func duplicateReasons(dups []dedup.Duplicate) string {
	var b strings.Builder
	b.WriteString("These items were too similar to existing content:\n")
	for _, d := range dups {
		fmt.Fprintf(&b, "- item %d duplicates %q\n", d.Index, d.SimilarTo)
	}
	return b.String()
}

func toSet(idx []int) map[int]bool {
	out := make(map[int]bool, len(idx))
	for _, i := range idx {
		out[i] = true
	}
	return out
}
