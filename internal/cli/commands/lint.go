package commands

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mdtidy/mdtidy/internal/cli/output"
	"github.com/mdtidy/mdtidy/internal/storage"
	"github.com/mdtidy/mdtidy/pkg/buffer"
	"github.com/mdtidy/mdtidy/pkg/editops"
	"github.com/mdtidy/mdtidy/pkg/lint"
)

// LintOptions holds options for the lint command.
type LintOptions struct {
	Path    string   // File or directory path
	Disable []string // Rule aliases to switch off for this invocation
	DryRun  bool     // Report changes without writing
	Folder  string   // Restrict a directory run to one folder and report per-folder counts
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [path]",
		Short: "Lint markdown notes and write fixes back",
		Long: `Apply the configured lint rules to one note or a directory of notes.

A single file is linted interactively: the net change is converted into
positional edit operations, applied to an in-memory buffer, and written
back, with a summary of characters added and removed. A directory is
linted as a batch: every note is processed concurrently and failures are
counted without aborting the rest.`,
		Example: `  # Lint every note under the current directory
  mdtidy lint

  # Lint one note
  mdtidy lint notes/inbox.md

  # Report what would change without writing
  mdtidy lint --dry-run notes/

  # Switch off rules for this run only
  mdtidy lint --disable yaml-key-sort,trailing-spaces

  # Per-folder counts for one subtree
  mdtidy lint notes --folder notes/daily`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = "."
			if len(args) > 0 {
				opts.Path = args[0]
			}
			return runLint(cmd, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule aliases to disable")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Do not write changes")
	cmd.Flags().StringVar(&opts.Folder, "folder", "", "Limit a directory run to this folder")

	return cmd
}

func runLint(cmd *cobra.Command, opts *LintOptions) error {
	ctx := cmd.Context()
	r := rendererFrom(ctx)
	if r == nil {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), "")
	}
	logger := loggerFrom(ctx)

	// Each run gets its own snapshot; CLI-level disables never touch the
	// persisted settings.
	settings := settingsFrom(ctx).Clone()
	for _, alias := range opts.Disable {
		settings.SetRuleOption(strings.TrimSpace(alias), lint.EnabledOptionName, false)
	}

	engine := lint.NewEngine(settings, lint.WithLogger(logger))
	store := lint.DocumentStore(storage.NewFS())
	if opts.DryRun {
		store = dryRunStore{inner: store}
	}

	info, err := os.Stat(opts.Path)
	if err != nil {
		return fmt.Errorf("cannot lint %s: %w", opts.Path, err)
	}
	if info.IsDir() {
		return lintDirectory(cmd, opts, engine, store, r, settings)
	}
	return lintFile(opts.Path, engine, store, r, settings)
}

// lintFile is the interactive single-document path: the corrected text is
// materialized as edit operations against a live buffer.
func lintFile(path string, engine *lint.Engine, store lint.DocumentStore, r *output.Renderer, settings *lint.Settings) error {
	text, err := store.Read(path)
	if err != nil {
		return err
	}
	times, err := store.Stat(path)
	if err != nil {
		return err
	}

	meta := lint.FileMeta{
		Path:       path,
		Name:       strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		CreatedAt:  times.CreatedAt,
		ModifiedAt: times.ModifiedAt,
	}
	result, err := engine.Lint(text, meta)
	if err != nil {
		r.Notify(output.FormatLintError(err))
		return err
	}

	edits, stats := editops.Project(editops.Diff(text, result.Text))
	if len(edits) == 0 || (stats.CharsAdded == 0 && stats.CharsRemoved == 0) {
		r.Success(fmt.Sprintf("%s is already lint-free", path))
		return nil
	}

	buf := buffer.New(text)
	if err := buf.ApplyEditBatch(edits); err != nil {
		return fmt.Errorf("applying edits to %s: %w", path, err)
	}
	if err := store.Write(path, buf.Value()); err != nil {
		return err
	}

	if settings.DisplayChangedMessage {
		r.Success(fmt.Sprintf("%s: %d characters added, %d removed", path, stats.CharsAdded, stats.CharsRemoved))
	}
	return nil
}

func lintDirectory(cmd *cobra.Command, opts *LintOptions, engine *lint.Engine, store lint.DocumentStore, r *output.Renderer, settings *lint.Settings) error {
	paths, err := discoverNotes(opts.Path)
	if err != nil {
		return err
	}

	runner := &lint.BatchRunner{
		Engine:         engine,
		Store:          store,
		Notifier:       r,
		Logger:         loggerFrom(cmd.Context()),
		IgnoredFolders: settings.IgnoredFolders,
	}

	if opts.Folder != "" {
		res := runner.RunFolder(cmd.Context(), paths, opts.Folder)
		return renderFolderResult(r, opts.Folder, res)
	}

	res := runner.RunAll(cmd.Context(), paths)
	return renderBatchResult(r, res)
}

// discoverNotes collects markdown files under root.
func discoverNotes(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	return paths, nil
}

func renderBatchResult(r *output.Renderer, res lint.BatchResult) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(map[string]int{"succeeded": res.Succeeded, "failed": res.Failed})
	}
	if res.Failed == 0 {
		r.Success(fmt.Sprintf("linted %d notes", res.Succeeded))
		return nil
	}
	r.Printf("linted %d notes, %d failed\n", res.Succeeded, res.Failed)
	return fmt.Errorf("%d notes failed to lint", res.Failed)
}

func renderFolderResult(r *output.Renderer, folder string, res lint.FolderResult) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(map[string]any{"folder": folder, "processed": res.Processed, "failed": res.Failed})
	}
	if res.Failed == 0 {
		r.Success(fmt.Sprintf("%s: processed %d notes", folder, res.Processed))
		return nil
	}
	r.Printf("%s: processed %d notes, %d failed\n", folder, res.Processed, res.Failed)
	return fmt.Errorf("%d notes failed to lint", res.Failed)
}

// dryRunStore reads through to the real store but drops writes.
type dryRunStore struct {
	inner lint.DocumentStore
}

func (d dryRunStore) Read(path string) (string, error)       { return d.inner.Read(path) }
func (d dryRunStore) Write(string, string) error             { return nil }
func (d dryRunStore) Stat(path string) (lint.FileTimes, error) { return d.inner.Stat(path) }
