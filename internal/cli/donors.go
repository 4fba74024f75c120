package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stewardhq/steward/pkg/models"
)

var donorsCmd = &cobra.Command{
	Use:   "donors",
	Short: "List donor snapshots",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newSession()
		if err != nil {
			return err
		}
		for _, donor := range session.Donors {
			fmt.Print(donorSnapshot(donor))
		}
		return nil
	},
}

// donorSnapshot renders the short listing used by both the donors command
// and the demo shell.
func donorSnapshot(donor *models.Donor) string {
	city := donor.PrimaryCity
	if city == "" {
		city = "Unknown city"
	}
	last := "No interactions yet"
	if d, ok := lastInteractionDate(donor); ok {
		last = d
	}
	return fmt.Sprintf("- %s (%s)\n  Last interaction: %s\n  Notes: %s\n\n",
		donor.Name, city, last, donor.Notes)
}

func lastInteractionDate(donor *models.Donor) (string, bool) {
	var latest models.Date
	for _, in := range donor.Interactions {
		if in.Date.IsZero() {
			continue
		}
		if latest.IsZero() || in.Date.After(latest.Time) {
			latest = in.Date
		}
	}
	if latest.IsZero() {
		return "", false
	}
	return latest.String(), true
}

func init() {
	rootCmd.AddCommand(donorsCmd)
}
