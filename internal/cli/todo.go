package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stewardhq/steward/internal/assist"
	"github.com/stewardhq/steward/internal/observability"
)

var (
	todoDateFlag       string
	todoDirectiveFlags []string
)

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Generate the prioritized to-do list for a date",
	Long: `Generate the day's prioritized task list from the donor and schedule
files. Free-text directives steer the prioritization, e.g.:

  steward todo --directive "I am in LA right now"
  steward todo --date 2024-03-25 --directive "find someone I haven't talked to in a while"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDateFlag(todoDateFlag)
		if err != nil {
			return err
		}
		session, err := newSession()
		if err != nil {
			return err
		}
		client, err := newClient()
		if err != nil {
			return err
		}

		tasks, err := assist.GenerateDailyTodo(cmd.Context(), client, session.Donors, session.Schedule, day, todoDirectiveFlags)
		if err != nil {
			return fmt.Errorf("generating to-do list: %w", err)
		}

		record(observability.EventTodoGenerated, "to-do list generated", map[string]any{
			"date":       day.String(),
			"tasks":      len(tasks),
			"directives": len(todoDirectiveFlags),
		})
		return printJSON(tasks)
	},
}

func init() {
	todoCmd.Flags().StringVar(&todoDateFlag, "date", "", "target date (YYYY-MM-DD, default today)")
	todoCmd.Flags().StringArrayVar(&todoDirectiveFlags, "directive", nil, "free-text prioritization directive (repeatable)")
	rootCmd.AddCommand(todoCmd)
}
