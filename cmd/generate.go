package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/dedup"
	"github.com/quizforge/quizforge/internal/embed"
	"github.com/quizforge/quizforge/internal/factcheck"
	"github.com/quizforge/quizforge/internal/llm"
	"github.com/quizforge/quizforge/internal/pipeline"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/quizgen"
	"github.com/quizforge/quizforge/internal/review"
	"github.com/quizforge/quizforge/internal/store"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate verified quiz content for a topic",
	Long: `Run the full generation pipeline for one or more phases.

Each phase iterates generation, review, fact-checking, and deduplication
until a batch is accepted. Accepted content is written as two files: a
public batch with answers stripped, and a separate answer key.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("topic", "", "Session topic (required)")
	generateCmd.Flags().String("difficulty", "normal", "Difficulty: easy, normal, or hard")
	generateCmd.Flags().StringSlice("phases", nil, "Phases to generate (default: all)")
	generateCmd.Flags().Int("count", 0, "Items per phase (overrides per-phase defaults)")
	generateCmd.Flags().String("language", "", "Content language code (default from config)")
	generateCmd.Flags().String("out", ".", "Output directory")
	_ = generateCmd.MarkFlagRequired("topic")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	difficultyVal, _ := cmd.Flags().GetString("difficulty")
	phaseVals, _ := cmd.Flags().GetStringSlice("phases")
	count, _ := cmd.Flags().GetInt("count")
	language, _ := cmd.Flags().GetString("language")
	outDir, _ := cmd.Flags().GetString("out")

	difficulty, err := parseDifficulty(difficultyVal)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if language == "" {
		language = cfg.Language
	}

	phases := quiz.AllPhases()
	if len(phaseVals) > 0 {
		phases = phases[:0]
		for _, v := range phaseVals {
			p := quiz.Phase(strings.ToLower(v))
			if !p.Valid() {
				return fmt.Errorf("unknown phase %q", v)
			}
			phases = append(phases, p)
		}
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	ctx := cmd.Context()
	orch, err := buildOrchestrator(ctx, s, cfg)
	if err != nil {
		return err
	}

	reqs := make([]pipeline.Request, 0, len(phases))
	for _, p := range phases {
		n := count
		if n <= 0 {
			n = cfg.Counts[p]
		}
		reqs = append(reqs, pipeline.Request{
			Phase:       p,
			Topic:       topic,
			Difficulty:  difficulty,
			Language:    language,
			TargetCount: n,
		})
	}

	fmt.Printf("Generating %d phase(s) for %q...\n\n", len(reqs), topic)
	outcomes := orch.RunPhases(ctx, reqs)

	var failed int
	for _, p := range phases {
		oc := outcomes[p]
		if oc.Err != nil {
			failed++
			fmt.Println(renderPhaseFailure(p, oc.Err))
			continue
		}
		fmt.Println(renderPhaseSummary(p, oc.Result))

		if err := writeSplit(outDir, topic, oc.Result.Batch); err != nil {
			return err
		}
	}

	if failed == len(phases) {
		return fmt.Errorf("all phases failed")
	}
	fmt.Printf("\nOutput written to %s\n", outDir)
	return nil
}

// writeSplit persists the public batch and the answer key as separate files.
// The two sides never share a structure.
func writeSplit(dir, topic string, batch quiz.Batch) error {
	public, answers := batch.Split()

	slug := topicSlug(topic)
	if err := writeJSON(filepath.Join(dir, fmt.Sprintf("%s_%s_public.json", slug, batch.Phase)), public); err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, fmt.Sprintf("%s_%s_answers.json", slug, batch.Phase)), answers)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func topicSlug(topic string) string {
	slug := strings.ToLower(strings.TrimSpace(topic))
	slug = strings.Join(strings.Fields(slug), "-")
	if len(slug) > 40 {
		slug = slug[:40]
	}
	return slug
}

func parseDifficulty(v string) (quiz.Difficulty, error) {
	switch strings.ToLower(v) {
	case "easy":
		return quiz.DifficultyEasy, nil
	case "normal":
		return quiz.DifficultyNormal, nil
	case "hard":
		return quiz.DifficultyHard, nil
	default:
		return "", fmt.Errorf("invalid difficulty %q: must be easy, normal, or hard", v)
	}
}

// buildOrchestrator wires the pipeline against the store-backed corpus and
// the configured model providers.
func buildOrchestrator(ctx context.Context, s *store.Store, cfg config.Config) (*pipeline.Orchestrator, error) {
	provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
	if err != nil {
		return nil, fmt.Errorf("LLM provider: %w", err)
	}

	embedder, err := embed.New(ctx, embed.ConfigFromEnv())
	if err != nil {
		return nil, fmt.Errorf("embedding provider: %w", err)
	}

	llmCfg := llm.ConfigFromEnv()

	genCfg := quizgen.DefaultConfig()
	genCfg.Temperature = llmCfg.Temperature(llm.ProfileCreative)

	revCfg := review.DefaultConfig()
	revCfg.Temperature = llmCfg.Temperature(llm.ProfileFactual)

	chkCfg := factcheck.DefaultConfig()
	chkCfg.Temperature = llmCfg.Temperature(llm.ProfileFactual)
	chkCfg.ConfidenceThreshold = cfg.Pipeline.FactCheckConfidence

	index := dedup.New(embedder, s.CorpusRepo(), dedup.Config{
		SimilarityThreshold: cfg.Pipeline.SimilarityThreshold,
		AllPhases:           cfg.Pipeline.CrossPhaseDedup,
	})

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	return pipeline.New(
		quizgen.New(provider, genCfg),
		review.New(provider, revCfg),
		factcheck.New(provider, chkCfg),
		index,
		cfg.Pipeline,
		logger,
	), nil
}
