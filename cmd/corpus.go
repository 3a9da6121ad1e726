package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/quizforge/quizforge/internal/embed"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/store"
	"github.com/spf13/cobra"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Inspect and seed the deduplication corpus",
}

var corpusStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus item counts per phase",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		repo := s.CorpusRepo()

		fmt.Printf("%-12s  %8s\n", "Phase", "Items")
		fmt.Println(strings.Repeat("─", 22))

		total := 0
		for _, p := range quiz.AllPhases() {
			n, err := repo.Count(ctx, string(p))
			if err != nil {
				return fmt.Errorf("count %s: %w", p, err)
			}
			fmt.Printf("%-12s  %8d\n", p, n)
			total += n
		}
		fmt.Println(strings.Repeat("─", 22))
		fmt.Printf("%-12s  %8d\n", "TOTAL", total)
		return nil
	},
}

// seedEntry is one line of a seed file.
type seedEntry struct {
	Phase string `json:"phase"`
	Text  string `json:"text"`
}

var corpusSeedCmd = &cobra.Command{
	Use:   "seed <file>",
	Short: "Embed and append items from a JSON file to the corpus",
	Long: `Seed the deduplication corpus from a JSON array of {"phase", "text"} objects.

Seeded items count as already-issued content: future generations that come
too close to them are rejected as duplicates.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read seed file: %w", err)
		}
		var entries []seedEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("parse seed file: %w", err)
		}
		for i, e := range entries {
			if !quiz.Phase(e.Phase).Valid() {
				return fmt.Errorf("entry %d: unknown phase %q", i, e.Phase)
			}
			if strings.TrimSpace(e.Text) == "" {
				return fmt.Errorf("entry %d: empty text", i)
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
		embedder, err := embed.New(ctx, embed.ConfigFromEnv())
		if err != nil {
			return fmt.Errorf("embedding provider: %w", err)
		}

		texts := make([]string, len(entries))
		for i, e := range entries {
			texts[i] = quiz.Normalize(e.Text)
		}
		vectors, err := embedder.EmbedBatch(ctx, texts)
		if err != nil {
			return fmt.Errorf("embed seed items: %w", err)
		}

		repo := s.CorpusRepo()
		for i, e := range entries {
			err := repo.Append(ctx, store.CorpusItemData{
				Phase:         e.Phase,
				Text:          texts[i],
				Embedding:     embed.Pack(vectors[i]),
				EmbeddingDims: len(vectors[i]),
			})
			if err != nil {
				return fmt.Errorf("append entry %d: %w", i, err)
			}
		}

		fmt.Printf("Seeded %d item(s).\n", len(entries))
		return nil
	},
}

func init() {
	corpusCmd.AddCommand(corpusStatsCmd)
	corpusCmd.AddCommand(corpusSeedCmd)
}
