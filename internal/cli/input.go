package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/mdslide/internal/logging"
	"github.com/yaklabco/mdslide/pkg/fsutil"
)

// stdinArg names standard input explicitly.
const stdinArg = "-"

// document is a deck read from a file or standard input.
type document struct {
	// Path is empty when the deck came from standard input.
	Path    string
	Content string
	Info    *fsutil.FileInfo
}

// baseDir returns the directory relative image paths resolve against.
func (d *document) baseDir() string {
	if d.Path == "" {
		dir, err := os.Getwd()
		if err != nil {
			return ""
		}
		return dir
	}
	abs, err := filepath.Abs(filepath.Dir(d.Path))
	if err != nil {
		return filepath.Dir(d.Path)
	}
	return abs
}

// readDocument reads the deck named by args, falling back to standard input
// when no file is given and stdin is not a terminal.
func readDocument(cmd *cobra.Command, args []string) (*document, error) {
	ctx := cmd.Context()

	if len(args) > 0 && args[0] != stdinArg {
		content, info, err := fsutil.ReadFile(ctx, args[0])
		if err != nil {
			return nil, fmt.Errorf("read document: %w", err)
		}
		logging.FromContext(ctx).Debug("read document",
			logging.FieldPath, args[0], logging.FieldBytes, len(content))
		return &document{Path: args[0], Content: string(content), Info: info}, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, usageErrorf("no input file given and stdin is a terminal")
	}

	content, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return &document{Content: string(content)}, nil
}

// fileArgs accepts an optional single FILE argument.
//
//nolint:gochecknoglobals // Shared validators.
var (
	fileArgs       = usageArgs(cobra.MaximumNArgs(1))
	requireFileArg = usageArgs(cobra.ExactArgs(1))
)

// usageArgs classifies positional argument errors as invalid usage.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return nil
	}
}

// requireFlags reports the first of names that was not set on the command line.
// Unlike MarkFlagRequired, the error carries ErrUsage so the exit code is ExitInvalidUsage.
func requireFlags(cmd *cobra.Command, names ...string) error {
	for _, name := range names {
		if !cmd.Flags().Changed(name) {
			return usageErrorf("required flag --%s not set", name)
		}
	}
	return nil
}
