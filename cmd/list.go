package cmd

import "github.com/spf13/cobra"

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available players",
	Args:  cobra.NoArgs,
	RunE:  listRun,
}

// listRun relays the backend's own listing rather than the parsed one, so
// the output matches what the backend would print on its own.
func listRun(cmd *cobra.Command, args []string) error {
	return gw.RunList()
}
