package commands

import (
	"os"

	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-reconcile whenever the resolver snapshot changes",
		Long: "Watches the resolver's installed-packages export and re-runs reconciliation\n" +
			"and the rebuilds on every change. Manifest injection never runs in watch mode.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			return c.app.Watch(cmd.Context(), cwd)
		},
	}
}
