// Package cli wires the gateway operations into the actions-gateway command
// tree. Each subcommand maps to one CI job step: load the store, run one
// operation, write the result back.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
}

// VerboseLog prints a diagnostic line to stderr when --verbose is set.
func (o *RootOptions) VerboseLog(cmd *cobra.Command, format string, args ...interface{}) {
	if o.Verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
	}
}

// NewRootCommand creates the root command for the actions-gateway CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "actions-gateway",
		Short: "Maintain the pinned GitHub Actions allow-list",
		Long: `actions-gateway maintains an allow-list of pinned third-party action
references, expiring and pruning stale entries and regenerating the derived
artifacts: the validation pattern list and the dummy discovery workflow.`,
		SilenceUsage:  true, // Don't print usage on operation errors
		SilenceErrors: true, // Errors are printed once by the caller
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewUpdateCommand(opts))
	cmd.AddCommand(NewCleanCommand(opts))
	cmd.AddCommand(NewPatternsCommand(opts))
	cmd.AddCommand(NewWorkflowCommand(opts))

	return cmd
}
