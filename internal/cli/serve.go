package cli

import (
	"github.com/spf13/cobra"

	"github.com/ekpss/quizapp/internal/app"
	"github.com/ekpss/quizapp/internal/config"
)

// NewServeCommand creates the serve command. Settings come from QUIZAPP_* environment variables.
func NewServeCommand() *cobra.Command {
	var contentFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if contentFile != "" {
				cfg.ContentFile = contentFile
			}

			a, err := app.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return a.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&contentFile, "content", "", "content file path (overrides QUIZAPP_CONTENT_FILE)")

	return cmd
}
