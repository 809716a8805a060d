// Package commands implements the CLI commands for texcache.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/texcache/internal/adapters/config"
	"go.trai.ch/texcache/internal/app"
	"go.trai.ch/texcache/internal/build"
)

// Application represents the application logic interface.
type Application interface {
	LoadAll(ctx context.Context, paths []string, opts app.LoadOptions) (*app.LoadResult, error)
}

// Provider builds the application once flags are parsed. The context carries the config path.
type Provider func(ctx context.Context) (Application, error)

// CLI represents the command line interface for texcache.
type CLI struct {
	provider Provider
	rootCmd  *cobra.Command
}

// New creates a new CLI instance that obtains its application from provider.
func New(provider Provider) *CLI {
	rootCmd := &cobra.Command{
		Use:           "texcache",
		Short:         "Content-addressed texture cache for avatar loading",
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

	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultFilename, "Path to configuration file")

	c := &CLI{
		provider: provider,
		rootCmd:  rootCmd,
	}

	rootCmd.AddCommand(c.newLoadCmd())
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

func (c *CLI) application(cmd *cobra.Command) (context.Context, Application, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, err
	}
	ctx := config.WithPath(cmd.Context(), configPath)
	a, err := c.provider(ctx)
	if err != nil {
		return nil, nil, err
	}
	return ctx, a, nil
}
