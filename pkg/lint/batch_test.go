package lint_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdtidy/mdtidy/internal/testutil"
	"github.com/mdtidy/mdtidy/pkg/lint"
	_ "github.com/mdtidy/mdtidy/pkg/lint/rules"
)

// memStore is an in-memory DocumentStore safe for the runner's concurrency.
type memStore struct {
	mu   sync.Mutex
	docs map[string]string
}

func newMemStore(docs map[string]string) *memStore {
	return &memStore{docs: docs}
}

func (m *memStore) Read(path string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	text, ok := m.docs[path]
	if !ok {
		return "", fmt.Errorf("not found: %s", path)
	}
	return text, nil
}

func (m *memStore) Write(path, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[path] = text
	return nil
}

func (m *memStore) Stat(string) (lint.FileTimes, error) {
	return lint.FileTimes{CreatedAt: createdAt, ModifiedAt: firstNow}, nil
}

func (m *memStore) get(path string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.docs[path]
}

// recordingNotifier collects notices; Notify may be called concurrently.
type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Notify(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, msg)
}

func (n *recordingNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

func newBatchRunner(t *testing.T, store *memStore, notifier lint.Notifier, ignored []string) *lint.BatchRunner {
	t.Helper()
	settings := lint.NewSettings()
	settings.SetRuleOption(lint.AliasTimestamp, lint.EnabledOptionName, false)
	return &lint.BatchRunner{
		Engine:         lint.NewEngine(settings),
		Store:          store,
		Notifier:       notifier,
		Logger:         testutil.NewTestLogger(t),
		IgnoredFolders: ignored,
	}
}

func TestRunAll_CountsAndIsolatesFailures(t *testing.T) {
	store := newMemStore(map[string]string{
		"notes/a.md":   "body with spaces   \n",
		"notes/b.md":   "already clean\n",
		"notes/c.md":   "text\n\n\n\nmore\n",
		"notes/bad.md": "---\nnested:\n\tbad: tab\n---\nbody\n",
	})
	notifier := &recordingNotifier{}
	runner := newBatchRunner(t, store, notifier, nil)

	result := runner.RunAll(context.Background(), []string{
		"notes/a.md", "notes/b.md", "notes/c.md", "notes/bad.md",
	})

	assert.Equal(t, lint.BatchResult{Succeeded: 3, Failed: 1}, result)
	assert.Equal(t, "body with spaces\n", store.get("notes/a.md"))
	assert.Equal(t, "already clean\n", store.get("notes/b.md"))
	assert.Equal(t, "text\n\nmore\n", store.get("notes/c.md"))
	assert.Equal(t, "---\nnested:\n\tbad: tab\n---\nbody\n", store.get("notes/bad.md"),
		"a failing document must not be modified")

	messages := notifier.all()
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "failed to parse front matter in notes/bad.md")
}

func TestRunAll_ReadFailureIsGeneric(t *testing.T) {
	store := newMemStore(map[string]string{})
	notifier := &recordingNotifier{}
	runner := newBatchRunner(t, store, notifier, nil)

	result := runner.RunAll(context.Background(), []string{"missing.md"})

	assert.Equal(t, lint.BatchResult{Succeeded: 0, Failed: 1}, result)
	messages := notifier.all()
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "an error occurred while linting missing.md")
}

func TestRunAll_SkipsIgnoredFolders(t *testing.T) {
	store := newMemStore(map[string]string{
		"notes/a.md":      "spaces   \n",
		"archive/old.md":  "spaces   \n",
		"archive2/new.md": "spaces   \n",
	})
	runner := newBatchRunner(t, store, lint.NopNotifier{}, []string{"archive"})

	result := runner.RunAll(context.Background(), []string{
		"notes/a.md", "archive/old.md", "archive2/new.md",
	})

	assert.Equal(t, lint.BatchResult{Succeeded: 2, Failed: 0}, result)
	assert.Equal(t, "spaces   \n", store.get("archive/old.md"), "ignored folder left alone")
	assert.Equal(t, "spaces\n", store.get("archive2/new.md"), "prefix match is per path segment")
}

func TestRunFolder(t *testing.T) {
	store := newMemStore(map[string]string{
		"notes/daily/a.md": "spaces   \n",
		"notes/daily/b.md": "---\nnested:\n\tbad: tab\n---\nx\n",
		"notes/other.md":   "spaces   \n",
	})
	notifier := &recordingNotifier{}
	runner := newBatchRunner(t, store, notifier, nil)

	result := runner.RunFolder(context.Background(), []string{
		"notes/daily/a.md", "notes/daily/b.md", "notes/other.md",
	}, "notes/daily")

	assert.Equal(t, lint.FolderResult{Processed: 2, Failed: 1}, result)
	assert.Equal(t, "spaces   \n", store.get("notes/other.md"), "out-of-folder document untouched")
	assert.Equal(t, "spaces\n", store.get("notes/daily/a.md"))
}

func TestRunAll_Empty(t *testing.T) {
	runner := newBatchRunner(t, newMemStore(nil), lint.NopNotifier{}, nil)
	result := runner.RunAll(context.Background(), nil)
	assert.Equal(t, lint.BatchResult{}, result)
}
