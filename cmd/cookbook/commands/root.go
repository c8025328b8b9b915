// Package commands implements the CLI commands for the cookbook.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/cookbook/internal/app"
	"go.trai.ch/cookbook/internal/build"
	"go.trai.ch/cookbook/internal/core/domain"
)

// CLI represents the command line interface for the cookbook.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cookbook",
		Short:         "A registry of ingredients and recipes",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.String(),
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", domain.DefaultConfigFile, "Path to configuration file")
	rootCmd.PersistentFlags().String("log-format", "", `Log format, "pretty" or "json" (overrides the configuration)`)
	rootCmd.PersistentFlags().StringSliceP("seed", "s", nil, "Seed file to load on start (repeatable)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newServeCmd())
	rootCmd.AddCommand(c.newMCPCmd())
	rootCmd.AddCommand(c.newSummaryCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newParseCmd())
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

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

// options collects the persistent flags shared by every command that loads the cookbook.
func options(cmd *cobra.Command) app.Options {
	configPath, _ := cmd.Flags().GetString("config")
	logFormat, _ := cmd.Flags().GetString("log-format")
	seeds, _ := cmd.Flags().GetStringSlice("seed")
	return app.Options{
		ConfigPath:     configPath,
		ConfigRequired: cmd.Flags().Changed("config"),
		LogFormat:      logFormat,
		Seeds:          seeds,
	}
}
