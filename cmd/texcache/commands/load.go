package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/texcache/internal/app"
)

func (c *CLI) newLoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load [manifests...]",
		Short: "Load avatar manifests into a shared texture cache and report reuse",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			keep, _ := cmd.Flags().GetBool("keep")

			ctx, a, err := c.application(cmd)
			if err != nil {
				return err
			}

			result, err := a.LoadAll(ctx, args, app.LoadOptions{Keep: keep})
			if err != nil {
				return err
			}
			return renderReport(cmd.OutOrStdout(), result, keep)
		},
	}
	cmd.Flags().BoolP("keep", "k", false, "Keep avatars loaded instead of unloading and sweeping at the end")
	return cmd
}
