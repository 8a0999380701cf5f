package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/timebar/internal/app"
)

func (c *CLI) newTUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Drag the selection in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := source(cmd)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")

			_, err = c.app.Interactive(cmd.Context(), app.InteractiveOptions{
				Source:  src,
				OutPath: out,
			})
			return err
		},
	}
	cmd.Flags().StringP("out", "o", "", "Write the snapshot left on quit")
	return cmd
}
