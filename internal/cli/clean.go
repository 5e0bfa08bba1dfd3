package cli

import (
	"github.com/spf13/cobra"

	"github.com/gopidesupavan/infrastructure-actions/internal/gateway"
)

// NewCleanCommand creates the clean command.
func NewCleanCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clean <actions-file>",
		Short: "Prune expired references from the actions file",
		Long: `Remove references whose expiry date has passed and that are not flagged
keep. Action names left without references are removed too. The actions file
is rewritten in full.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actionsPath := args[0]
			rootOpts.VerboseLog(cmd, "cleaning %s", actionsPath)
			return wrapOpError("clean", gateway.New().CleanActions(actionsPath))
		},
	}
}
