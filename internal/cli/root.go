// Package cli implements the dompetku command line interface.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// NewRootCommand returns the dompetku command with all subcommands.
func NewRootCommand() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "dompetku",
		Short: "Pocket based budgeting with prioritized income allocation",
		Long: `dompetku keeps money in pockets and distributes every income over them
according to prioritized allocation rules.

Run "dompetku serve" to start the API server.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml), environment variables take precedence")

	root.AddCommand(serveCmd(&cfgFile))
	root.AddCommand(allocateCmd(&cfgFile))
	root.AddCommand(versionCmd())

	return root
}

// Execute runs the root command and returns the exit code.
//
// The context passed to the commands is cancelled on SIGINT and SIGTERM.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		return 1
	}

	return 0
}
