package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdslide/internal/logging"
	"github.com/yaklabco/mdslide/pkg/config"
	"github.com/yaklabco/mdslide/pkg/fsutil"
)

// defaultConfigFile is the project config file init creates.
const defaultConfigFile = ".mdslide.yml"

type initFlags struct {
	force  bool
	output string
}

func newInitCommand(_ *app) *cobra.Command {
	flags := &initFlags{}

	cmd := withoutConfig(&cobra.Command{
		Use:   "init",
		Short: "Create a commented .mdslide.yml with the defaults",
		Long: `Create a .mdslide.yml configuration file in the current directory with
every setting documented and set to its default.

Examples:
  mdslide init                       Create .mdslide.yml
  mdslide init --output custom.yml   Write to a custom file path
  mdslide init --force               Overwrite an existing file`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	})

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigFile, "output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return usageErrorf("file %q already exists; use --force to overwrite", flags.output)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	}

	if err := fsutil.WriteAtomic(ctx, absPath, config.GenerateTemplate(), fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	return nil
}
