// Package commands implements the CLI commands for timebar.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/timebar/internal/app"
	"go.trai.ch/timebar/internal/build"
	"go.trai.ch/timebar/internal/engine/timebar"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for timebar.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	tracing func() func(context.Context) error
	flush   func(context.Context) error
}

// Application represents the application logic interface.
type Application interface {
	Filter(ctx context.Context, opts app.FilterOptions) (timebar.Outcome, error)
	Play(ctx context.Context, opts app.PlayOptions) (timebar.Outcome, error)
	Interactive(ctx context.Context, opts app.InteractiveOptions) (timebar.Outcome, error)
	Watch(ctx context.Context, opts app.WatchOptions) error
}

// Option configures a CLI.
type Option func(*CLI)

// WithTracing enables the --trace flag. enable installs the tracer provider
// and returns its shutdown func.
func WithTracing(enable func() func(context.Context) error) Option {
	return func(c *CLI) {
		c.tracing = enable
	}
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "timebar",
		Short:         "Filter graph snapshots by a time range",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Time bar configuration (default: nearest timebar.yaml)")
	rootCmd.PersistentFlags().StringP("graph", "g", "", "Graph snapshot to filter")
	rootCmd.PersistentFlags().Bool("trace", false, "Log a line for every finished filter span")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		trace, _ := cmd.Flags().GetBool("trace")
		if trace && c.tracing != nil {
			c.flush = c.tracing()
		}
	}
	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, _ []string) error {
		if c.flush == nil {
			return nil
		}
		return c.flush(cmd.Context())
	}

	rootCmd.AddCommand(c.newFilterCmd())
	rootCmd.AddCommand(c.newPlayCmd())
	rootCmd.AddCommand(c.newTUICmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func source(cmd *cobra.Command) (app.Source, error) {
	configPath, _ := cmd.Flags().GetString("config")
	graphPath, _ := cmd.Flags().GetString("graph")
	if graphPath == "" {
		return app.Source{}, zerr.New(`required flag "graph" not set`)
	}
	return app.Source{ConfigPath: configPath, GraphPath: graphPath}, nil
}
