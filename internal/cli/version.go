package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdslide/internal/logging"
)

func newVersionCommand(state *app) *cobra.Command {
	return withoutConfig(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, and build date of mdslide.`,
		Args:  usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, _ []string) {
			logger := log.NewWithOptions(cmd.OutOrStdout(), log.Options{
				ReportTimestamp: false,
				ReportCaller:    false,
			})
			logger.SetLevel(log.InfoLevel)

			logger.Info("mdslide",
				logging.FieldVersion, state.info.Version,
				logging.FieldCommit, state.info.Commit,
				logging.FieldBuilt, state.info.Date,
			)
		},
	})
}
