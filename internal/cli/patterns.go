package cli

import (
	"github.com/spf13/cobra"

	"github.com/gopidesupavan/infrastructure-actions/internal/gateway"
)

// NewPatternsCommand creates the patterns command.
func NewPatternsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "patterns <pattern-file> <actions-file>",
		Short: "Regenerate the validation pattern list from the actions file",
		Long: `Write the flat name@reference pattern list for every reference that is
still valid today or flagged keep. The pattern file is generated output;
manual edits to it are lost.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			patternPath, actionsPath := args[0], args[1]
			rootOpts.VerboseLog(cmd, "regenerating %s from %s", patternPath, actionsPath)
			return wrapOpError("patterns", gateway.New().UpdatePatterns(patternPath, actionsPath))
		},
	}
}
