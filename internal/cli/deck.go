package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdslide/internal/logging"
	"github.com/yaklabco/mdslide/pkg/slides"
)

// splitSeparator joins slides when split prints plain text.
const splitSeparator = "\n\n" + slides.Delimiter + "\n\n"

func newSplitCommand(_ *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "split [FILE]",
		Short: "Print the slides of a deck",
		Long: `Split a deck at every "---" line and print the trimmed slides.

Plain output rejoins the slides with normalized separators; --json prints
them as an array of strings.

Examples:
  mdslide split talk.md
  mdslide split --json talk.md
  cat talk.md | mdslide split`,
		Args: fileArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args)
			if err != nil {
				return err
			}

			parts := slides.Split(doc.Content)
			logging.FromContext(cmd.Context()).Debug("split deck", logging.FieldSlides, len(parts))

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), parts)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, splitSeparator))
			return err //nolint:wrapcheck // Terminal write.
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print slides as a JSON array")

	return cmd
}

func newLocateCommand(_ *app) *cobra.Command {
	var cursor int

	cmd := &cobra.Command{
		Use:   "locate [FILE] --cursor N",
		Short: "Print the slide index containing a cursor offset",
		Long: `Print the 0-based index of the slide containing a byte offset.

A cursor sitting exactly at the start of a "---" line belongs to the slide
before it.

Examples:
  mdslide locate --cursor 120 talk.md`,
		Args: fileArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlags(cmd, "cursor"); err != nil {
				return err
			}
			doc, err := readDocument(cmd, args)
			if err != nil {
				return err
			}

			index := slides.IndexAtCursor(doc.Content, cursor)
			logging.FromContext(cmd.Context()).Debug("located cursor",
				logging.FieldCursor, cursor, logging.FieldSlide, index)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), index)
			return err //nolint:wrapcheck // Terminal write.
		},
	}

	cmd.Flags().IntVar(&cursor, "cursor", 0, "byte offset of the cursor")

	return cmd
}

func newStartCommand(_ *app) *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "start [FILE] --slide N",
		Short: "Print the byte offset where a slide's content begins",
		Long: `Print the byte offset of the first non-whitespace character after the
separator that opens slide N. Slide 0 and out-of-range slides start at 0.

Examples:
  mdslide start --slide 2 talk.md`,
		Args: fileArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlags(cmd, "slide"); err != nil {
				return err
			}
			doc, err := readDocument(cmd, args)
			if err != nil {
				return err
			}

			offset := slides.StartPosition(doc.Content, index)
			if index < 0 || index >= slides.Count(doc.Content) {
				logging.FromContext(cmd.Context()).Debug("slide out of range",
					logging.FieldSlide, index, logging.FieldSlides, slides.Count(doc.Content))
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), offset)
			return err //nolint:wrapcheck // Terminal write.
		},
	}

	cmd.Flags().IntVar(&index, "slide", 0, "0-based slide index")

	return cmd
}
