// Package cli holds the shopctl commands.
package cli

import (
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "shopctl",
		Short: "Operator tooling for the carrozzeria labor service",
		Long: `shopctl prepares storage for the labor API. Against a running
instance it registers employees and shows the live workshop board.`,
		SilenceUsage: true,
	}
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newDashboardCmd())
	root.AddCommand(newEmployeeCmd())
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
