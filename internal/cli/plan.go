package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stewardhq/steward/internal/assist"
	"github.com/stewardhq/steward/internal/observability"
)

var (
	planDateFlag       string
	planObjectiveFlags []string
	planEventFlag      string
)

var planCmd = &cobra.Command{
	Use:   "plan <name>",
	Short: "Create a meeting plan for a donor",
	Long: `Create a meeting strategy for the named donor: format, discussion
topics, gift ideas, preparation steps, and a follow-up plan.

  steward plan "Alicia Gomez" --objective "Confirm mentorship deliverables are ready"
  steward plan "Alicia Gomez" --event "Meet Alicia at Gala 2025"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDateFlag(planDateFlag)
		if err != nil {
			return err
		}
		session, err := newSession()
		if err != nil {
			return err
		}
		donor, err := session.Donor(args[0])
		if err != nil {
			return err
		}
		client, err := newClient()
		if err != nil {
			return err
		}

		plan, err := assist.PlanMeeting(cmd.Context(), client, donor, day, planObjectiveFlags, planEventFlag)
		if err != nil {
			return fmt.Errorf("planning meeting: %w", err)
		}

		record(observability.EventPlanGenerated, "meeting plan generated", map[string]any{
			"donor": donor.Name,
			"date":  day.String(),
		})
		return printJSON(plan)
	},
}

func init() {
	planCmd.Flags().StringVar(&planDateFlag, "date", "", "meeting date (YYYY-MM-DD, default today)")
	planCmd.Flags().StringArrayVar(&planObjectiveFlags, "objective", nil, "fundraiser objective to fold into the topics (repeatable)")
	planCmd.Flags().StringVar(&planEventFlag, "event", "", "event description, e.g. 'Gala 2025'")
	rootCmd.AddCommand(planCmd)
}
