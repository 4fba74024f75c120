package cli

import (
	"github.com/spf13/cobra"

	"github.com/stewardhq/steward/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server over stdio",
	Long: `Run a Model Context Protocol server exposing the assistant's
deterministic engine as tools: generate_daily_todo, plan_meeting,
reflect_on_meeting, list_donors, get_donor.

Configure in an MCP client as a stdio server, e.g.:

  { "command": "steward", "args": ["mcp", "--data", "/path/to/data"] }`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newSession()
		if err != nil {
			return err
		}
		server := mcp.NewServer(session, Commitments, appVersion)
		return server.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
