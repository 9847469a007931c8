package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdslide/internal/ui/pretty"
	"github.com/yaklabco/mdslide/pkg/slides"
)

// untitled is shown for slides with no heading and no text.
const untitled = "(empty)"

func newOutlineCommand(state *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "outline [FILE]",
		Short: "List the slides of a deck with titles and code languages",
		Long: `List every slide with its index, title, the byte offset where its content
starts and the languages of its code blocks. Unlabeled code blocks are
classified from their content.

Examples:
  mdslide outline talk.md
  mdslide outline --json talk.md`,
		Args: fileArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args)
			if err != nil {
				return err
			}

			summaries := slides.Outline(doc.Content)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), summaries)
			}

			out := cmd.OutOrStdout()
			styles := pretty.NewStyles(pretty.IsColorEnabled(state.color, out))
			return writeOutline(out, styles, summaries)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the outline as JSON")

	return cmd
}

func writeOutline(w io.Writer, styles *pretty.Styles, summaries []slides.Summary) error {
	width := len(strconv.Itoa(len(summaries) - 1))

	for _, s := range summaries {
		var line strings.Builder

		line.WriteString(styles.SlideIndex.Render(fmt.Sprintf("%*d", width, s.Index)))
		line.WriteString("  ")
		if s.Title == "" {
			line.WriteString(styles.Untitled.Render(untitled))
		} else {
			line.WriteString(styles.Title.Render(s.Title))
		}
		if len(s.Languages) > 0 {
			line.WriteString("  ")
			line.WriteString(styles.Language.Render("[" + strings.Join(s.Languages, ", ") + "]"))
		}
		line.WriteString("  ")
		line.WriteString(styles.Offset.Render(fmt.Sprintf("@%d", s.Start)))

		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return fmt.Errorf("write outline: %w", err)
		}
	}

	return nil
}
