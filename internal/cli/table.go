package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdslide/pkg/format"
)

func newTableCommand(_ *app) *cobra.Command {
	var rows, cols int

	cmd := withoutConfig(&cobra.Command{
		Use:   "table",
		Short: "Print a GFM table skeleton",
		Long: `Print a table with a header row, a separator row and rows-1 body rows,
ready to paste into a slide.

Examples:
  mdslide table --rows 4 --cols 2`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rows < 1 || cols < 1 {
				return usageErrorf("--rows and --cols must be at least 1")
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), format.Table(rows, cols))
			return err //nolint:wrapcheck // Terminal write.
		},
	})

	cmd.Flags().IntVar(&rows, "rows", 3, "number of rows including the header")
	cmd.Flags().IntVar(&cols, "cols", 3, "number of columns")

	return cmd
}
