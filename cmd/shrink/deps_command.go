package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shrink/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Show external dependency availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			statuses := deps.CheckBinaries(deps.Requirements(cfg.Encoder.Binary))
			missing := false
			for _, status := range statuses {
				kind := statusOK
				message := status.Command
				if !status.Available {
					kind = statusError
					message = status.Detail
					if !status.Optional {
						missing = true
					}
				}
				fmt.Fprintln(out, renderStatusLine(status.Name, kind, message, colorize))
			}
			if missing {
				return fmt.Errorf("required dependencies are missing")
			}
			return nil
		},
	}
}
