package commands

import (
	"os"

	"github.com/spf13/cobra"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Reconcile managed packages after install or update",
		Long: "Runs the post-install/update lifecycle hook: reconciles the managed-package\n" +
			"registry against the resolver's current package set, then triggers the\n" +
			"repository and discovery rebuilds. Safe to invoke twice per build; the\n" +
			"second invocation is a no-op.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			return c.app.RunInstall(cmd.Context(), cwd)
		},
	}
}
