package cli

import (
	"github.com/spf13/cobra"

	"github.com/gopidesupavan/infrastructure-actions/internal/gateway"
)

// NewWorkflowCommand creates the workflow command.
func NewWorkflowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "workflow <dummy-workflow> <actions-file>",
		Short: "Regenerate the dummy discovery workflow from the actions file",
		Long: `Write the disabled dummy workflow listing one step per reference that is
not flagged keep and not within the 4-week expiry horizon. The workflow is
generated output; manual edits to it are lost.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dummyPath, actionsPath := args[0], args[1]
			rootOpts.VerboseLog(cmd, "regenerating %s from %s", dummyPath, actionsPath)
			return wrapOpError("workflow", gateway.New().UpdateWorkflow(dummyPath, actionsPath))
		},
	}
}
