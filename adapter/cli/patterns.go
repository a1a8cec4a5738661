package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Show learned completion patterns",
	Long: `Summarize your completion history: most productive day and time of
day, plus the category breakdown.

Patterns need at least two weeks of logged completions before they
influence priority scores; until then this command shows progress
toward that threshold.`,
	Aliases: []string{"insights"},
	RunE: func(cmd *cobra.Command, args []string) error {
		c := GetContainer()
		if c == nil {
			fmt.Println("Patterns command requires initialized storage.")
			return nil
		}

		summary, err := c.Analyzer.IdentifyPatterns(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to analyze patterns: %w", err)
		}

		if jsonOutput {
			return printJSON(struct {
				HasSufficientData bool     `json:"has_sufficient_data"`
				TotalCompletions  int      `json:"total_completions"`
				DistinctDays      int      `json:"distinct_days"`
				Insights          []string `json:"insights"`
			}{summary.HasSufficientData, summary.TotalCompletions, summary.DistinctDays, summary.Insights})
		}

		fmt.Println()
		fmt.Println("  COMPLETION PATTERNS")
		fmt.Println(strings.Repeat("=", 60))
		fmt.Printf("  Completions: %d across %d days\n", summary.TotalCompletions, summary.DistinctDays)
		fmt.Println()
		for _, insight := range summary.Insights {
			fmt.Printf("  - %s\n", insight)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(patternsCmd)
}
