package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdslide/internal/logging"
	"github.com/yaklabco/mdslide/pkg/format"
	"github.com/yaklabco/mdslide/pkg/fsutil"
)

type formatFlags struct {
	start   int
	end     int
	marker  string
	prefix  string
	suffix  string
	inPlace bool
	asJSON  bool
}

// formatResult is the JSON shape of a format run.
type formatResult struct {
	Document string `json:"document"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
}

func newFormatCommand(state *app) *cobra.Command {
	flags := &formatFlags{}

	cmd := &cobra.Command{
		Use:   "format [FILE] --start S --end E",
		Short: "Toggle inline markup around a selection",
		Long: `Wrap the byte range [start, end) in a marker, or unwrap it when the marker
already surrounds it. With start == end the marker pair is inserted at the
caret.

The marker is chosen by --prefix (and --suffix), then --marker, then the
configured default. Known markers: bold, italic, strikethrough, code,
highlight.

Examples:
  mdslide format --start 10 --end 15 talk.md
  mdslide format --start 10 --end 15 --marker italic --in-place talk.md
  mdslide format --start 4 --end 4 --prefix '<u>' --suffix '</u>' talk.md`,
		Args: fileArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, state, flags)
		},
	}

	cmd.Flags().IntVar(&flags.start, "start", 0, "selection start (byte offset)")
	cmd.Flags().IntVar(&flags.end, "end", 0, "selection end (byte offset)")
	cmd.Flags().StringVarP(&flags.marker, "marker", "m", "", "marker name (default from config)")
	cmd.Flags().StringVar(&flags.prefix, "prefix", "", "custom opening marker")
	cmd.Flags().StringVar(&flags.suffix, "suffix", "", "custom closing marker (defaults to --prefix)")
	cmd.Flags().BoolVarP(&flags.inPlace, "in-place", "i", false, "rewrite FILE instead of printing")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "print the document and new selection as JSON")

	return cmd
}

func runFormat(cmd *cobra.Command, args []string, state *app, flags *formatFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	if err := requireFlags(cmd, "start", "end"); err != nil {
		return err
	}
	if flags.inPlace && (len(args) == 0 || args[0] == stdinArg) {
		return usageErrorf("--in-place needs a FILE argument")
	}
	if flags.inPlace && flags.asJSON {
		return usageErrorf("--in-place and --json are mutually exclusive")
	}

	marker, err := resolveMarker(cmd, state, flags)
	if err != nil {
		return err
	}

	doc, err := readDocument(cmd, args)
	if err != nil {
		return err
	}

	result := format.Apply(doc.Content, format.Selection{Start: flags.start, End: flags.end}, marker)
	logger.Debug("formatted selection",
		logging.FieldMarker, marker.Prefix,
		"start", result.Start,
		"end", result.End,
	)

	switch {
	case flags.inPlace:
		mode := fsutil.DefaultFileMode
		if doc.Info != nil {
			mode = doc.Info.Mode.Perm()
		}
		if err := fsutil.WriteAtomic(ctx, doc.Path, []byte(result.Document), mode); err != nil {
			return fmt.Errorf("write %s: %w", doc.Path, err)
		}
		logger.Info("updated document", logging.FieldPath, doc.Path)
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", result.Start, result.End)
	case flags.asJSON:
		err = writeJSON(cmd.OutOrStdout(), formatResult{
			Document: result.Document,
			Start:    result.Start,
			End:      result.End,
		})
	default:
		_, err = fmt.Fprint(cmd.OutOrStdout(), result.Document)
	}

	return err //nolint:wrapcheck // Terminal write or already wrapped.
}

func resolveMarker(cmd *cobra.Command, state *app, flags *formatFlags) (format.Marker, error) {
	if cmd.Flags().Changed("prefix") {
		if flags.prefix == "" {
			return format.Marker{}, usageErrorf("--prefix must not be empty")
		}
		if cmd.Flags().Changed("suffix") {
			return format.Marker{Prefix: flags.prefix, Suffix: flags.suffix}, nil
		}
		return format.Symmetric(flags.prefix), nil
	}
	if cmd.Flags().Changed("suffix") {
		return format.Marker{}, usageErrorf("--suffix needs --prefix")
	}

	name := flags.marker
	if name == "" {
		name = state.cfg.Format.DefaultMarker
	}
	marker, err := format.LookupMarker(name)
	if err != nil {
		return format.Marker{}, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return marker, nil
}

