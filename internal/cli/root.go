package cli

import (
	"github.com/spf13/cobra"

	"github.com/ekpss/quizapp/internal/version"
)

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "quizapp",
		Short:         "quizapp - quiz content and bookmark server",
		Long:          "quizapp serves quiz subjects, tests and questions, and keeps each user's bookmarked questions.",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}
