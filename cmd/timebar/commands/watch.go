package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/timebar/internal/adapters/watcher"
	"go.trai.ch/timebar/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Filter again whenever the configuration or graph changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := source(cmd)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")
			render, _ := cmd.Flags().GetString("render")
			window, _ := cmd.Flags().GetDuration("debounce")

			return c.app.Watch(cmd.Context(), app.WatchOptions{
				FilterOptions: app.FilterOptions{
					Source:     src,
					OutPath:    out,
					RenderPath: render,
					Range:      rangeFlags(cmd, "start", "end"),
				},
				Window: window,
			})
		},
	}
	cmd.Flags().StringP("out", "o", "", "Output snapshot")
	cmd.Flags().StringP("render", "r", "", "Draw the time bar to an .svg or .png file")
	cmd.Flags().Duration("debounce", watcher.DefaultDebounceWindow, "Quiet period before filtering again")
	addRangeFlags(cmd, "start", "end", "Selection")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
