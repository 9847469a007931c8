// Package cli provides the Cobra command structure for mdslide.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdslide/internal/configloader"
	"github.com/yaklabco/mdslide/internal/logging"
	"github.com/yaklabco/mdslide/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// skipConfigAnnotation marks commands that run without loading configuration.
const skipConfigAnnotation = "mdslide/skip-config"

// app is the state shared by every command of one root command.
type app struct {
	info       BuildInfo
	debug      bool
	configPath string
	color      string

	cfg *config.Config
}

// NewRootCommand creates the root mdslide command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	state := &app{info: info, cfg: config.NewConfig()}

	rootCmd := &cobra.Command{
		Use:   "mdslide",
		Short: "Split, format and render Markdown slide decks",
		Long: `mdslide works on Markdown slide decks where slides are separated by a
line containing only "---".

It maps cursor positions to slides and back, toggles inline markup around a
selection, prints an outline of the deck and renders it to HTML, once or
continuously while the file is being edited.`,
		PersistentPreRunE: state.prepare,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.PersistentFlags().BoolVar(&state.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&state.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&state.color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	rootCmd.AddCommand(newSplitCommand(state))
	rootCmd.AddCommand(newLocateCommand(state))
	rootCmd.AddCommand(newStartCommand(state))
	rootCmd.AddCommand(newOutlineCommand(state))
	rootCmd.AddCommand(newFormatCommand(state))
	rootCmd.AddCommand(newTableCommand(state))
	rootCmd.AddCommand(newRenderCommand(state))
	rootCmd.AddCommand(newWatchCommand(state))
	rootCmd.AddCommand(newInitCommand(state))
	rootCmd.AddCommand(newVersionCommand(state))

	helpFormatter := NewHelpFormatter(state.color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// prepare loads configuration and attaches a logger to the command context.
// Project configuration is searched for from the document's directory when
// a file argument is given.
func (a *app) prepare(cmd *cobra.Command, args []string) error {
	level := config.LogLevelInfo
	if a.debug {
		level = config.LogLevelDebug
	}
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))

	if cmd.Annotations[skipConfigAnnotation] != "" {
		return nil
	}

	workDir := ""
	if len(args) > 0 && args[0] != stdinArg {
		workDir = filepath.Dir(args[0])
	}

	result, err := configloader.Load(cmd.Context(), configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: a.configPath,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	a.cfg = result.Config
	if !a.debug {
		logger.SetLevel(logging.ParseLevel(a.cfg.LogLevel))
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldPath, result.LoadedFrom)
	}

	return nil
}

// withoutConfig marks cmd as not needing configuration.
func withoutConfig(cmd *cobra.Command) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[skipConfigAnnotation] = "true"
	return cmd
}

// usageErrorf returns an error classified as invalid usage.
func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}
