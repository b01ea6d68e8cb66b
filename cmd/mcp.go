package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ticketdash/ticketdash/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the ticketdash MCP server",
	Long:  `Launch an MCP server that lets AI agents query project statistics, comparisons and dashboards via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Keep stdout clean for the protocol; setup logs go to stderr.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		defer func() { _ = appStore.Close() }()
		return mcp.StartMCPServer(rootCtx, cfg, appStore)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
