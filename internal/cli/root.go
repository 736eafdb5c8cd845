// Package cli provides the command-line interface for mdtidy.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mdtidy/mdtidy/internal/cli/commands"
	"github.com/mdtidy/mdtidy/internal/cli/output"
	"github.com/mdtidy/mdtidy/internal/config"

	// Register the built-in rules before settings are loaded.
	_ "github.com/mdtidy/mdtidy/pkg/lint/rules"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mdtidy",
		Short: "mdtidy - markdown note linter",
		Long: `mdtidy lints and auto-fixes markdown notes.

It applies an ordered set of individually-toggleable formatting rules to a
note's YAML front matter and body, then writes the corrected text back.
Rules can be configured in mdtidy.yaml and disabled per note with a
"disabled rules" front-matter directive.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			settings, settingsFile, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			mode, _ := cmd.Root().PersistentFlags().GetString("output")
			renderer := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(mode))
			logger := newLogger(cmd.ErrOrStderr(), settings.LogLevel)

			ctx := commands.WithSettings(cmd.Context(), settings)
			ctx = commands.WithRenderer(ctx, renderer)
			ctx = commands.WithLogger(ctx, logger)
			cmd.SetContext(ctx)

			if settingsFile != "" {
				logger.Debug("settings loaded", "file", settingsFile)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default: ./mdtidy.yaml)")
	rootCmd.PersistentFlags().String("locale", "", "locale for timestamp formatting (e.g. de-DE)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format (auto|text|json)")
	rootCmd.PersistentFlags().StringSlice("ignored-folders", nil, "folder prefixes excluded from batch runs")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version, BuildDate, GitCommit))
	rootCmd.AddCommand(commands.NewLintCommand())
	rootCmd.AddCommand(commands.NewRulesCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newLogger builds the process logger at the configured verbosity.
func newLogger(w io.Writer, level string) *slog.Logger {
	var lv slog.Level
	switch level {
	case "debug":
		lv = slog.LevelDebug
	case "warn":
		lv = slog.LevelWarn
	case "error":
		lv = slog.LevelError
	default:
		lv = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lv}))
}
