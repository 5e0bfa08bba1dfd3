package cli

import (
	"github.com/spf13/cobra"

	"github.com/gopidesupavan/infrastructure-actions/internal/gateway"
)

// NewUpdateCommand creates the update command.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "update <dummy-workflow> <actions-file>",
		Short: "Merge references observed in the dummy workflow into the actions file",
		Long: `Merge the step references of the dummy workflow into the actions file.

Newly observed references are pinned with the never-expires sentinel; the
sibling references they supersede move onto the 12-week grace window. The
actions file is rewritten in full.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dummyPath, actionsPath := args[0], args[1]
			rootOpts.VerboseLog(cmd, "updating %s from %s", actionsPath, dummyPath)
			return wrapOpError("update", gateway.New().UpdateActions(dummyPath, actionsPath))
		},
	}
}
