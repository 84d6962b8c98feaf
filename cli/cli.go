// Package cli implements the wat2 command-line interface.
//
// # Commands
//
//   - serve:     run the HTTP API (and frontend, if built)
//   - project:   print a projection for a plan given by flags, preset or file
//   - regions:   list the state tax table
//   - scenarios: list or export built-in scenarios
//   - tui:       interactive planner that recomputes on every keystroke
//
// # Logging
//
// Every command gets a charmbracelet/log logger through its context.
// --log-level sets the threshold; -v is shorthand for debug.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the wat2 CLI.
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var (
		verbose  bool
		logLevel string
	)

	root := &cobra.Command{
		Use:           "wat2",
		Short:         "Season cash-flow planner for J-1 Work and Travel",
		Long:          `wat2 projects what a J-1 Work and Travel season earns: gross pay, taxes, living costs and what is left after the program fee and one-time costs.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel(logLevel)
			if err != nil {
				return err
			}
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(os.Stderr, level)))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("wat2 %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(newServeCmd())
	root.AddCommand(newProjectCmd())
	root.AddCommand(newRegionsCmd())
	root.AddCommand(newScenariosCmd())
	root.AddCommand(newTUICmd())

	return root
}
