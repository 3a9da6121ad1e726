package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/quizforge/quizforge/internal/llm"
	"github.com/quizforge/quizforge/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded LLM usage",
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated token usage per pipeline agent and estimated cost",
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
		byAgent, err := s.EventRepo().LLMStatsByAgent(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(byAgent) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		fmt.Println("Usage by Agent")
		fmt.Println(strings.Repeat("─", 70))
		fmt.Printf("%-14s  %8s  %8s  %10s  %10s\n",
			"Agent", "Calls", "Failed", "Input", "Output")
		fmt.Println(strings.Repeat("─", 70))

		var totalCalls, totalIn, totalOut int
		for _, agent := range sortedKeys(byAgent) {
			st := byAgent[agent]
			fmt.Printf("%-14s  %8d  %8d  %10d  %10d\n",
				agent, st.Requests, st.Failures, st.InputTokens, st.OutputTokens)
			totalCalls += st.Requests
			totalIn += st.InputTokens
			totalOut += st.OutputTokens
		}
		fmt.Println(strings.Repeat("─", 70))
		fmt.Printf("%-14s  %8d  %8s  %10d  %10d\n", "TOTAL", totalCalls, "", totalIn, totalOut)

		byModel, err := s.EventRepo().LLMStatsByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}
		if len(byModel) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Println("Estimated Cost (USD)")
		fmt.Println(strings.Repeat("─", 70))
		fmt.Printf("%-32s  %8s  %10s  %10s\n", "Model", "Calls", "Tokens", "Cost")
		fmt.Println(strings.Repeat("─", 70))

		var totalCost float64
		var unknown []string
		for _, model := range sortedKeys(byModel) {
			st := byModel[model]
			tokens := st.InputTokens + st.OutputTokens
			cost := llm.LookupCost(model)
			if cost == nil {
				unknown = append(unknown, model)
				fmt.Printf("%-32s  %8d  %10d  %10s\n", clip(model, 32), st.Requests, tokens, "?")
				continue
			}
			c := cost.Cost(st.InputTokens, st.OutputTokens)
			totalCost += c
			fmt.Printf("%-32s  %8d  %10d  %10s\n", clip(model, 32), st.Requests, tokens, formatCost(c))
		}

		fmt.Println(strings.Repeat("─", 70))
		label := "TOTAL"
		if len(unknown) > 0 {
			label = "TOTAL (partial)"
		}
		fmt.Printf("%-32s  %8s  %10s  %10s\n", label, "", "", formatCost(totalCost))
		if len(unknown) > 0 {
			fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unknown, ", "))
		}
		return nil
	},
}

func sortedKeys(m map[string]store.LLMStats) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmCmd.AddCommand(llmStatsCmd)
}
