package lint

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DocumentStore is the host storage surface the pipeline reads documents
// from and writes corrected text back to.
type DocumentStore interface {
	Read(path string) (string, error)
	Write(path string, text string) error
	Stat(path string) (FileTimes, error)
}

// Notifier displays a short fire-and-forget message to the user. Messages
// are not awaited and not retried.
type Notifier interface {
	Notify(msg string)
}

// NopNotifier discards all messages.
type NopNotifier struct{}

// Notify implements Notifier.
func (NopNotifier) Notify(string) {}

// BatchResult aggregates a batch run.
type BatchResult struct {
	Succeeded int
	Failed    int
}

// FolderResult aggregates a folder-scoped run.
type FolderResult struct {
	Processed int
	Failed    int
}

// BatchRunner applies the pipeline across many documents concurrently. Each
// document's failure is caught, reported, and counted; one document's
// failure never aborts others. There is no cancellation once a run starts.
type BatchRunner struct {
	Engine         *Engine
	Store          DocumentStore
	Notifier       Notifier
	Logger         *slog.Logger
	IgnoredFolders []string
}

// RunAll lints every candidate document, excluding paths under an ignored
// folder, and writes corrected text back wholesale.
func (b *BatchRunner) RunAll(ctx context.Context, paths []string) BatchResult {
	candidates := b.filterIgnored(paths)
	failures := b.lintAll(ctx, candidates)

	result := BatchResult{Succeeded: len(candidates)}
	for path, err := range failures {
		result.Succeeded--
		result.Failed++
		b.report(path, err)
	}
	return result
}

// RunFolder lints only the documents under folder and reports a per-folder
// count of documents processed versus errored.
func (b *BatchRunner) RunFolder(ctx context.Context, paths []string, folder string) FolderResult {
	var scoped []string
	for _, p := range b.filterIgnored(paths) {
		if underFolder(p, folder) {
			scoped = append(scoped, p)
		}
	}
	failures := b.lintAll(ctx, scoped)

	result := FolderResult{Processed: len(scoped)}
	for path, err := range failures {
		result.Failed++
		b.report(path, err)
	}
	return result
}

// lintAll dispatches one task per document and waits for all of them. Tasks
// share no mutable state; each failure lands in its own result slot, so no
// counters are mutated from parallel callbacks.
func (b *BatchRunner) lintAll(ctx context.Context, paths []string) map[string]error {
	errs := make([]error, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			errs[i] = b.lintOne(ctx, path)
			return nil
		})
	}
	// Tasks never fail the group; per-document errors are collected above.
	_ = g.Wait()

	failures := make(map[string]error)
	for i, err := range errs {
		if err != nil {
			failures[paths[i]] = err
		}
	}
	return failures
}

// lintOne reads, lints, and writes back a single document. If linting fails
// the document is not modified.
func (b *BatchRunner) lintOne(_ context.Context, path string) error {
	text, err := b.Store.Read(path)
	if err != nil {
		return &ContentError{Path: path, Kind: KindGeneric, Err: err}
	}
	times, err := b.Store.Stat(path)
	if err != nil {
		return &ContentError{Path: path, Kind: KindGeneric, Err: err}
	}

	meta := FileMeta{
		Path:       path,
		Name:       strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		CreatedAt:  times.CreatedAt,
		ModifiedAt: times.ModifiedAt,
	}
	result, err := b.Engine.Lint(text, meta)
	if err != nil {
		return err
	}
	if result.Text == text {
		return nil
	}
	if err := b.Store.Write(path, result.Text); err != nil {
		return &ContentError{Path: path, Kind: KindGeneric, Err: err}
	}
	return nil
}

// report converts one document's failure into a user notice and a log entry.
func (b *BatchRunner) report(path string, err error) {
	logger := b.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger.Error("lint failed", "file", path, "error", err)

	if b.Notifier == nil {
		return
	}
	var ce *ContentError
	if errors.As(err, &ce) && ce.Kind == KindMetadata {
		b.Notifier.Notify("failed to parse front matter in " + path + ": " + trailing(ce.Err.Error(), 120))
		return
	}
	b.Notifier.Notify("an error occurred while linting " + path + ", see logs for details")
}

func (b *BatchRunner) filterIgnored(paths []string) []string {
	if len(b.IgnoredFolders) == 0 {
		return paths
	}
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		ignored := false
		for _, folder := range b.IgnoredFolders {
			if underFolder(p, folder) {
				ignored = true
				break
			}
		}
		if !ignored {
			out = append(out, p)
		}
	}
	return out
}

// underFolder reports whether path sits at or below folder.
func underFolder(path, folder string) bool {
	if folder == "" {
		return false
	}
	path = filepath.ToSlash(filepath.Clean(path))
	folder = filepath.ToSlash(filepath.Clean(folder))
	return path == folder || strings.HasPrefix(path, folder+"/")
}

// trailing returns the last n bytes of a message, trimmed at a rune start.
func trailing(msg string, n int) string {
	if len(msg) <= n {
		return msg
	}
	cut := msg[len(msg)-n:]
	for len(cut) > 0 && (cut[0]&0xC0) == 0x80 {
		cut = cut[1:]
	}
	return "..." + cut
}
