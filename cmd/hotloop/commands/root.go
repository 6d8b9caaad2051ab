// Package commands implements the CLI commands for hotloop.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/hotloop/internal/app"
	"go.trai.ch/hotloop/internal/build"
	"go.trai.ch/hotloop/internal/core/domain"
)

// CLI represents the command line interface for hotloop.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "hotloop",
		Short: "Rebuild a hot-reloadable module whenever its sources change",
		Long: "hotloop builds the reloadable module and the host executable, starts the host once " +
			"and rebuilds the module every time a tracked source file changes.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			notify, _ := cmd.Flags().GetBool("notify")
			opts := c.options(cmd)
			opts.Notify = notify
			return c.app.Watch(cmd.Context(), opts)
		},
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", domain.ConfigFileName, "Path to configuration file")
	rootCmd.PersistentFlags().String("log-format", "auto", "Log format: auto, pretty, text or json")
	rootCmd.Flags().Bool("notify", false, "Also wake on file system notifications instead of only polling")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newStopCmd())
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

// SetOutput redirects command output such as help and version text. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
}

func (c *CLI) options(cmd *cobra.Command) app.Options {
	configPath, _ := cmd.Flags().GetString("config")
	logFormat, _ := cmd.Flags().GetString("log-format")
	return app.Options{ConfigPath: configPath, LogFormat: logFormat}
}
