package cli

import (
	"fmt"
	"strings"

	"github.com/daybrief/daybrief/internal/briefing/application/queries"
	"github.com/spf13/cobra"
)

var (
	modeInput string
	modeDate  string
)

var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Show the briefing mode that would be selected",
	Long: `Inspect the adaptive mode decision without generating a briefing.

Shows the selected mode alongside the signals that drove it: days
since last activity, recent briefing count, and overdue tasks from
the context file (when provided).

Examples:
  daybrief mode                      # Mode from activity history alone
  daybrief mode --input today.json   # Include overdue counts`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := GetContainer()
		if c == nil {
			fmt.Println("Mode command requires initialized storage.")
			return nil
		}

		today, err := resolveDate(modeDate)
		if err != nil {
			return err
		}
		bctx, err := loadBriefingContext(modeInput, today)
		if err != nil {
			return err
		}

		result, err := c.GetBriefingModeHandler.Handle(cmd.Context(), queries.BriefingModeQuery{Context: bctx})
		if err != nil {
			return fmt.Errorf("failed to select briefing mode: %w", err)
		}

		if jsonOutput {
			return printJSON(result)
		}

		fmt.Println()
		fmt.Printf("  Mode: %s\n", strings.ToUpper(result.Mode))
		fmt.Printf("  %s\n", result.Reasoning)
		fmt.Println()
		fmt.Printf("  Days inactive:     %d\n", result.DaysInactive)
		fmt.Printf("  Recent activities: %d\n", result.RecentActivities)
		fmt.Printf("  Overdue tasks:     %d\n", result.OverdueTasks)
		if len(result.Recommendations) > 0 {
			fmt.Println()
			for _, rec := range result.Recommendations {
				fmt.Printf("  - %s\n", rec)
			}
		}
		fmt.Println()
		return nil
	},
}

func init() {
	modeCmd.Flags().StringVarP(&modeInput, "input", "i", "", "context JSON file ('-' for stdin)")
	modeCmd.Flags().StringVarP(&modeDate, "date", "d", "", "date to evaluate (YYYY-MM-DD, defaults to today)")
	rootCmd.AddCommand(modeCmd)
}
