package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/timebar/internal/app"
)

func (c *CLI) newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Advance the selection until it reaches the end of the series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := source(cmd)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")

			_, err = c.app.Play(cmd.Context(), app.PlayOptions{
				Source:  src,
				OutPath: out,
				From:    rangeFlags(cmd, "start", "end"),
			})
			return err
		},
	}
	cmd.Flags().StringP("out", "o", "", "Snapshot left by the last tick (default: stdout)")
	addRangeFlags(cmd, "start", "end", "Starting selection")
	return cmd
}
