package commands

import (
	"os"

	"github.com/spf13/cobra"
)

func (c *CLI) newAutoloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "autoload",
		Short: "Inject generated declarations into the autoload manifests",
		Long: "Runs the post-autoload-generation lifecycle hook: inserts the factory-class\n" +
			"constant into the bootstrap manifest and the factory entry into the class-map\n" +
			"manifest. Safe to invoke twice per build; the second invocation is a no-op.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			return c.app.RunAutoload(cmd.Context(), cwd)
		},
	}
}
