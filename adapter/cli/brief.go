package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/daybrief/daybrief/internal/briefing/application/commands"
	"github.com/daybrief/daybrief/internal/briefing/application/queries"
	"github.com/spf13/cobra"
)

var (
	briefInput  string
	briefDate   string
	briefTop    int
	briefEnergy int
)

var briefCmd = &cobra.Command{
	Use:   "brief",
	Short: "Generate the daily briefing",
	Long: `Rank the day's outstanding items by priority and show the briefing
mode that fits your recent activity.

The items come from a JSON context file produced by your state-file
parser. Use '-' to read it from stdin.

Examples:
  daybrief brief --input today.json            # Full briefing
  daybrief brief --input today.json --top 3    # Only the top 3 items
  daybrief brief --input - --energy 8 < today.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := GetContainer()
		if c == nil {
			fmt.Println("Brief command requires initialized storage.")
			fmt.Println("Check DAYBRIEF_STORAGE / DATABASE_URL and try again.")
			return nil
		}

		today, err := resolveDate(briefDate)
		if err != nil {
			return err
		}
		bctx, err := loadBriefingContext(briefInput, today)
		if err != nil {
			return err
		}

		energy, err := energyFlag(cmd.Flags().Changed("energy"), briefEnergy)
		if err != nil {
			return err
		}

		mode, err := c.GetBriefingModeHandler.Handle(cmd.Context(), queries.BriefingModeQuery{Context: bctx})
		if err != nil {
			return fmt.Errorf("failed to select briefing mode: %w", err)
		}

		ranked, err := c.RankPrioritiesHandler.Handle(cmd.Context(), queries.RankPrioritiesQuery{
			Context:     bctx,
			EnergyLevel: energy,
			Limit:       briefTop,
		})
		if err != nil {
			return fmt.Errorf("failed to rank priorities: %w", err)
		}

		// Viewing the briefing counts as activity for future mode decisions.
		if err := c.TrackActivityHandler.Handle(cmd.Context(), commands.TrackActivityCommand{Type: "briefing"}); err != nil {
			logger.Warn("failed to track briefing activity", "error", err)
		}

		if jsonOutput {
			return printJSON(struct {
				Date       string                  `json:"date"`
				Mode       queries.ModeResultDTO   `json:"mode"`
				Priorities []queries.ScoredItemDTO `json:"priorities"`
			}{bctx.Today.Format("2006-01-02"), mode, ranked})
		}

		printBriefing(bctx.Today, mode, ranked)
		return nil
	},
}

func printBriefing(today time.Time, mode queries.ModeResultDTO, ranked []queries.ScoredItemDTO) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("  DAILY BRIEFING - %s\n", today.Format("Mon, Jan 2, 2006"))
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("  Mode: %s\n", strings.ToUpper(mode.Mode))
	fmt.Printf("  %s\n", mode.Reasoning)
	fmt.Println()

	if len(ranked) == 0 {
		fmt.Println("  Nothing outstanding. Enjoy the quiet.")
	} else {
		fmt.Println("  PRIORITIES")
		fmt.Println(strings.Repeat("-", 60))
		for i, item := range ranked {
			fmt.Printf("  %d. %s %s (%.0f)\n", i+1, urgencyMarker(item.Urgency), item.Title, item.Score)
			fmt.Printf("     %s\n", item.Reason)
		}
	}

	if len(mode.Recommendations) > 0 {
		fmt.Println()
		fmt.Println("  RECOMMENDATIONS")
		fmt.Println(strings.Repeat("-", 60))
		for _, rec := range mode.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
	}
	fmt.Println()
}

// energyFlag converts the --energy flag into the scorer's optional reading.
// The value rides through unmapped; the scorer works on the same 1-10 scale a
// wearable or manual prompt would supply.
func energyFlag(changed bool, value int) (*int, error) {
	if !changed {
		return nil, nil
	}
	if value < 1 || value > 10 {
		return nil, fmt.Errorf("invalid energy level %d (use 1-10)", value)
	}
	return &value, nil
}

func urgencyMarker(urgency string) string {
	switch urgency {
	case "critical":
		return "[!!]"
	case "high":
		return "[! ]"
	case "medium":
		return "[~ ]"
	default:
		return "[  ]"
	}
}

func resolveDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format (use YYYY-MM-DD): %w", err)
	}
	return parsed, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	briefCmd.Flags().StringVarP(&briefInput, "input", "i", "", "context JSON file ('-' for stdin)")
	briefCmd.Flags().StringVarP(&briefDate, "date", "d", "", "briefing date (YYYY-MM-DD, defaults to today)")
	briefCmd.Flags().IntVarP(&briefTop, "top", "t", 0, "limit output to the top N items")
	briefCmd.Flags().IntVarP(&briefEnergy, "energy", "e", 0, "current energy level (1-10)")
	rootCmd.AddCommand(briefCmd)
}
