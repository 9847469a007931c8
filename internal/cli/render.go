package cli

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdslide/internal/logging"
	"github.com/yaklabco/mdslide/pkg/config"
	"github.com/yaklabco/mdslide/pkg/fsutil"
	"github.com/yaklabco/mdslide/pkg/render"
)

type renderFlags struct {
	output   string
	title    string
	fragment bool
	gfm      bool
	breaks   bool
	sanitize bool
}

func newRenderCommand(state *app) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [FILE]",
		Short: "Render a deck to HTML",
		Long: `Render every slide of a deck to HTML and write a standalone page with one
<section class="slide"> per slide. Relative image paths are resolved against
the directory of FILE.

Examples:
  mdslide render talk.md > talk.html
  mdslide render --output talk.html talk.md
  mdslide render --sanitize=false --fragment talk.md`,
		Args: fileArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args)
			if err != nil {
				return err
			}

			opts := renderOptions(cmd, state.cfg, flags, doc.baseDir())
			page, err := buildPage(cmd.Context(), doc, opts, flags)
			if err != nil {
				return err
			}

			if flags.output == "" {
				_, err = cmd.OutOrStdout().Write(page)
				return err //nolint:wrapcheck // Terminal write.
			}

			if err := fsutil.WriteAtomic(cmd.Context(), flags.output, page, fsutil.DefaultFileMode); err != nil {
				return fmt.Errorf("write %s: %w", flags.output, err)
			}
			logging.FromContext(cmd.Context()).Info("rendered deck", logging.FieldOutput, flags.output)
			return nil
		},
	}

	addRenderFlags(cmd, flags)

	return cmd
}

func addRenderFlags(cmd *cobra.Command, flags *renderFlags) {
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write HTML to this file instead of stdout")
	cmd.Flags().StringVar(&flags.title, "title", "", "page title (default: file name)")
	cmd.Flags().BoolVar(&flags.fragment, "fragment", false, "write only the slide sections, no page wrapper")
	cmd.Flags().BoolVar(&flags.gfm, "gfm", true, "enable GitHub Flavored Markdown")
	cmd.Flags().BoolVar(&flags.breaks, "breaks", true, "render single newlines as line breaks")
	cmd.Flags().BoolVar(&flags.sanitize, "sanitize", true, "keep raw HTML and sanitize the output")
}

// renderOptions layers explicitly set flags over the configuration.
func renderOptions(cmd *cobra.Command, cfg *config.Config, flags *renderFlags, baseDir string) render.Options {
	opts := render.Options{
		GFM:      cfg.Render.GFMEnabled(),
		Breaks:   cfg.Render.BreaksEnabled(),
		Sanitize: cfg.Render.SanitizeEnabled(),
		BaseDir:  baseDir,
	}
	if cmd.Flags().Changed("gfm") {
		opts.GFM = flags.gfm
	}
	if cmd.Flags().Changed("breaks") {
		opts.Breaks = flags.breaks
	}
	if cmd.Flags().Changed("sanitize") {
		opts.Sanitize = flags.sanitize
	}
	return opts
}

// buildPage renders doc into the bytes render or watch writes out.
func buildPage(ctx context.Context, doc *document, opts render.Options, flags *renderFlags) ([]byte, error) {
	rendered, err := render.Deck(ctx, doc.Content, opts)
	if err != nil {
		return nil, fmt.Errorf("render deck: %w", err)
	}

	logging.FromContext(ctx).Debug("rendered slides", logging.FieldSlides, len(rendered))

	if flags.fragment {
		return []byte(strings.Join(rendered, "\n")), nil
	}

	title := flags.title
	if title == "" {
		title = "slides"
		if doc.Path != "" {
			title = strings.TrimSuffix(filepath.Base(doc.Path), filepath.Ext(doc.Path))
		}
	}

	var buf bytes.Buffer
	if err := render.WritePage(&buf, title, rendered); err != nil {
		return nil, err //nolint:wrapcheck // Already wrapped.
	}
	return buf.Bytes(), nil
}
