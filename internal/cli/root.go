// Package cli implements the steward command surface: to-do generation,
// meeting plans, reflections, donor listings, the interactive demo shell,
// and the MCP server.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

// dataFlag is the persistent --data override for the data root.
var dataFlag string

// offlineFlag forces the deterministic stub instead of the hosted model.
var offlineFlag bool

var rootCmd = &cobra.Command{
	Use:   "steward",
	Short: "Donor-relationship assistant for nonprofit fundraisers",
	Long: `Steward turns donor and schedule records into prioritized task lists,
meeting plans, and post-meeting follow-up summaries.

It reads donors.json and schedule.json from the data root and answers
either through a hosted language model or through deterministic
heuristics when running offline.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("steward %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFlag, "data", "", "directory containing donors.json and schedule.json")
	rootCmd.PersistentFlags().BoolVar(&offlineFlag, "offline", false, "answer from the deterministic heuristics instead of the hosted model")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
