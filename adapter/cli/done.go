package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/daybrief/daybrief/internal/briefing/application/commands"
	"github.com/spf13/cobra"
)

var (
	doneCategory string
	doneDate     string
	doneTime     string
)

var doneCmd = &cobra.Command{
	Use:   "done <title>",
	Short: "Record a completed task",
	Long: `Record a task completion in the pattern store.

Every completion feeds the pattern learner; once enough days are
logged, the briefing starts boosting tasks you tend to finish at
this time.

Examples:
  daybrief done "Submit expense report"
  daybrief done "Review design doc" --category work
  daybrief done "Call dentist" --date 2026-08-28 --time 09:30`,
	Aliases: []string{"complete", "finish", "x"},
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := GetContainer()
		if c == nil {
			fmt.Println("Done command requires initialized storage.")
			return nil
		}

		title := strings.Join(args, " ")

		var completedAt *time.Time
		if doneDate != "" {
			parsed, err := time.Parse("2006-01-02", doneDate)
			if err != nil {
				return fmt.Errorf("invalid date format (use YYYY-MM-DD): %w", err)
			}
			completedAt = &parsed
		}

		record := commands.RecordCompletionCommand{
			Title:       title,
			Category:    doneCategory,
			CompletedAt: completedAt,
			ClockTime:   doneTime,
		}
		if err := c.RecordCompletionHandler.Handle(cmd.Context(), record); err != nil {
			return fmt.Errorf("failed to record completion: %w", err)
		}

		fmt.Printf("Completed: %s\n", title)
		return nil
	},
}

func init() {
	doneCmd.Flags().StringVarP(&doneCategory, "category", "c", "", "task category (inferred from the title when empty)")
	doneCmd.Flags().StringVarP(&doneDate, "date", "d", "", "completion date (YYYY-MM-DD, defaults to today)")
	doneCmd.Flags().StringVar(&doneTime, "time", "", "completion time (HH:MM, defaults to now)")
	rootCmd.AddCommand(doneCmd)
}
