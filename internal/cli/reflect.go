package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stewardhq/steward/internal/assist"
	"github.com/stewardhq/steward/internal/observability"
)

var (
	reflectNotesFlag   string
	reflectMissedFlags []string
	reflectHorizonFlag int
)

var reflectCmd = &cobra.Command{
	Use:   "reflect <name>",
	Short: "Review meeting notes and produce follow-up guidance",
	Long: `Review a meeting recap against the tracked deliverables and the
donor's open questions, producing missed opportunities, follow-up
actions, and suggested questions.

  steward reflect "Alicia Gomez" --notes "Great lunch, discussed the roster" --horizon 5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if reflectNotesFlag == "" {
			return fmt.Errorf("--notes is required")
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

		reflection, err := assist.ReflectOnMeeting(cmd.Context(), client, donor, reflectNotesFlag, reflectMissedFlags, reflectHorizonFlag)
		if err != nil {
			return fmt.Errorf("reflecting on meeting: %w", err)
		}

		record(observability.EventReflectionGenerated, "reflection generated", map[string]any{
			"donor":   donor.Name,
			"horizon": reflectHorizonFlag,
		})
		return printJSON(reflection)
	},
}

func init() {
	reflectCmd.Flags().StringVar(&reflectNotesFlag, "notes", "", "meeting recap text (required)")
	reflectCmd.Flags().StringArrayVar(&reflectMissedFlags, "missed-question", nil, "question already known to be missed (repeatable)")
	reflectCmd.Flags().IntVar(&reflectHorizonFlag, "horizon", 0, "follow-up window in days (default 7)")
	_ = reflectCmd.MarkFlagRequired("notes")
	rootCmd.AddCommand(reflectCmd)
}
