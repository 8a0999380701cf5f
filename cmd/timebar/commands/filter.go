package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/timebar/internal/app"
	"go.trai.ch/timebar/internal/core/domain"
)

func (c *CLI) newFilterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Write the subgraph inside the selected range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := source(cmd)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")
			render, _ := cmd.Flags().GetString("render")

			_, err = c.app.Filter(cmd.Context(), app.FilterOptions{
				Source:     src,
				OutPath:    out,
				RenderPath: render,
				Range:      rangeFlags(cmd, "start", "end"),
			})
			return err
		},
	}
	cmd.Flags().StringP("out", "o", "", "Output snapshot (default: stdout)")
	cmd.Flags().StringP("render", "r", "", "Draw the time bar to an .svg or .png file")
	addRangeFlags(cmd, "start", "end", "Selection")
	return cmd
}

// addRangeFlags registers a pair of normalized bound flags.
func addRangeFlags(cmd *cobra.Command, start, end, what string) {
	cmd.Flags().Float64(start, domain.DefaultStart, what+" start in [0,1]")
	cmd.Flags().Float64(end, domain.DefaultEnd, what+" end in [0,1]")
}

// rangeFlags returns the range given on the command line, or nil when
// neither bound was set so the configured default applies. An unset bound
// takes its flag default.
func rangeFlags(cmd *cobra.Command, start, end string) *domain.NormalizedRange {
	flags := cmd.Flags()
	if !flags.Changed(start) && !flags.Changed(end) {
		return nil
	}
	s, _ := flags.GetFloat64(start)
	e, _ := flags.GetFloat64(end)
	return &domain.NormalizedRange{Start: s, End: e}
}
