package cmd

import (
	"fmt"
	"strings"

	"github.com/quizforge/quizforge/internal/llm"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/quizgen"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Generate raw items for a phase without the validation loop (no database)",
	Long: `Generate one unreviewed batch and print it with answers.

This is a stateless developer tool — no review, no fact-checking, no
deduplication, no events. Useful for judging prompt quality per phase.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("topic", "", "Session topic (required)")
	previewCmd.Flags().String("phase", "mcq", "Phase to preview")
	previewCmd.Flags().String("difficulty", "normal", "Difficulty: easy, normal, or hard")
	previewCmd.Flags().Int("count", 5, "Number of items to generate")
	previewCmd.Flags().String("language", "en", "Content language code")
	_ = previewCmd.MarkFlagRequired("topic")
}

func runPreview(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	phaseVal, _ := cmd.Flags().GetString("phase")
	difficultyVal, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")
	language, _ := cmd.Flags().GetString("language")

	phase := quiz.Phase(strings.ToLower(phaseVal))
	if !phase.Valid() {
		return fmt.Errorf("unknown phase %q", phaseVal)
	}
	difficulty, err := parseDifficulty(difficultyVal)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	// No EventRepo — logging skipped.
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := quizgen.New(provider, quizgen.DefaultConfig())

	fmt.Printf("Generating %d %s item(s) for %q...\n\n", count, phase, topic)
	batch, usage, err := gen.Generate(ctx, quizgen.Request{
		Phase:       phase,
		Topic:       topic,
		Difficulty:  difficulty,
		Language:    language,
		TargetCount: count,
	})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	for i, item := range batch.Items {
		fmt.Println(renderItem(i, item))
	}
	fmt.Println(dimStyle.Render(fmt.Sprintf("\n%d tokens (unreviewed output)", usage.TotalTokens)))
	return nil
}
