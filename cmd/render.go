package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/quizforge/quizforge/internal/pipeline"
	"github.com/quizforge/quizforge/internal/quiz"
)

var (
	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#22C55E"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F97316"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F43F5E"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#334155")).
			Padding(0, 1)
)

func renderPhaseSummary(phase quiz.Phase, res *pipeline.Result) string {
	status := okStyle.Render("accepted")
	if res.Warning != "" {
		status = warnStyle.Render("degraded: " + res.Warning)
	}
	return fmt.Sprintf("%s  %d items  %s  %s",
		phaseStyle.Render(string(phase)),
		len(res.Batch.Items),
		dimStyle.Render(fmt.Sprintf("%d tokens", res.Usage.TotalTokens)),
		status,
	)
}

func renderPhaseFailure(phase quiz.Phase, err error) string {
	return fmt.Sprintf("%s  %s", phaseStyle.Render(string(phase)), errStyle.Render(err.Error()))
}

// renderItem pretty-prints one item with its answer, for the preview command.
func renderItem(i int, item quiz.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d. %s\n", i+1, item.Prompt())

	switch it := item.(type) {
	case quiz.MCQItem:
		for j, opt := range it.Options {
			marker := "  "
			if j == it.CorrectIndex {
				marker = okStyle.Render("✓ ")
			}
			fmt.Fprintf(&b, "   %s%s\n", marker, opt)
		}
		if it.Anecdote != "" {
			b.WriteString(dimStyle.Render("   "+it.Anecdote) + "\n")
		}
	case quiz.BuzzerItem:
		for j, opt := range it.Options {
			marker := "  "
			if j == it.CorrectIndex {
				marker = okStyle.Render("✓ ")
			}
			fmt.Fprintf(&b, "   %s%s\n", marker, opt)
		}
	case quiz.CategorizeItem:
		fmt.Fprintf(&b, "   %s  %s\n", okStyle.Render(string(it.Answer)), dimStyle.Render(it.Justification))
	case quiz.MenuItem:
		for _, q := range it.Questions {
			fmt.Fprintf(&b, "   - %s  %s\n", q.Text, okStyle.Render(q.Answer))
		}
	default:
		fmt.Fprintf(&b, "   %s\n", okStyle.Render(item.Solution()))
	}

	return cardStyle.Render(strings.TrimRight(b.String(), "\n"))
}
