package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdslide/internal/logging"
	"github.com/yaklabco/mdslide/pkg/debounce"
	"github.com/yaklabco/mdslide/pkg/fsutil"
	"github.com/yaklabco/mdslide/pkg/render"
)

type watchFlags struct {
	renderFlags

	delay time.Duration
}

func newWatchCommand(state *app) *cobra.Command {
	flags := &watchFlags{}

	cmd := &cobra.Command{
		Use:   "watch FILE --output OUT",
		Short: "Re-render a deck to HTML whenever it changes",
		Long: `Render FILE to OUT, then watch FILE and render again once edits have
settled for the configured delay. Saves that leave the content unchanged
are ignored. Stop with Ctrl-C.

Examples:
  mdslide watch --output talk.html talk.md
  mdslide watch --output talk.html --delay 1s talk.md`,
		Args: requireFileArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlags(cmd, "output"); err != nil {
				return err
			}

			delay := state.cfg.Watch.Delay
			if cmd.Flags().Changed("delay") {
				delay = flags.delay
			}
			if delay < 0 {
				return usageErrorf("--delay must be >= 0")
			}

			source, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve %s: %w", args[0], err)
			}

			logger := logging.NewInteractive()
			logger.SetLevel(logging.FromContext(cmd.Context()).GetLevel())

			w := &deckWatcher{
				source: source,
				flags:  &flags.renderFlags,
				opts:   renderOptions(cmd, state.cfg, &flags.renderFlags, filepath.Dir(source)),
				logger: logger,
			}
			return w.run(cmd.Context(), delay)
		},
	}

	addRenderFlags(cmd, &flags.renderFlags)
	cmd.Flags().DurationVar(&flags.delay, "delay", 0, "quiet period before re-rendering (default from config)")

	return cmd
}

// deckWatcher rebuilds one output file from one source deck.
type deckWatcher struct {
	source string
	flags  *renderFlags
	opts   render.Options
	logger *log.Logger

	mu   sync.Mutex
	last *fsutil.FileInfo
}

func (w *deckWatcher) run(ctx context.Context, delay time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() {
		if cerr := watcher.Close(); cerr != nil {
			w.logger.Warn("close watcher", logging.FieldError, cerr)
		}
	}()

	// Editors often save by replacing the file, so watch its directory.
	if err := watcher.Add(filepath.Dir(w.source)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.source), err)
	}

	if err := w.rebuild(ctx); err != nil {
		return err
	}

	debouncer := debounce.New(delay)
	defer debouncer.Cancel()

	w.logger.Info("watching",
		logging.FieldPath, w.source,
		logging.FieldOutput, w.flags.output,
		logging.FieldDelay, delay,
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("stopped watching", logging.FieldPath, w.source)
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.source {
				continue
			}
			w.logger.Debug("file event", logging.FieldEvent, event.Op.String())
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			debouncer.Trigger(func() {
				if err := w.rebuild(ctx); err != nil {
					w.logger.Error("rebuild failed", logging.FieldError, err)
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", logging.FieldError, err)
		}
	}
}

// rebuild renders the source if its content changed since the last build.
func (w *deckWatcher) rebuild(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	content, info, err := fsutil.ReadFile(ctx, w.source)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}
	if w.last.SameContent(info) {
		w.logger.Debug("content unchanged", logging.FieldPath, w.source)
		return nil
	}

	doc := &document{Path: w.source, Content: string(content), Info: info}
	page, err := buildPage(ctx, doc, w.opts, w.flags)
	if err != nil {
		return err
	}

	written, err := fsutil.WriteAtomicIfChanged(ctx, w.flags.output, page, fsutil.DefaultFileMode)
	if err != nil {
		return fmt.Errorf("write %s: %w", w.flags.output, err)
	}
	w.last = info

	if written {
		w.logger.Info("rendered deck", logging.FieldOutput, w.flags.output, logging.FieldBytes, len(page))
	}
	return nil
}
