package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeNote(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestLint_SingleFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeNote(t, dir, "note.md", "---\ntitle: x\n---\nbody   \n")

	out, err := runRoot(t, "lint", path, "--disable", "yaml-timestamp")
	require.NoError(t, err)
	assert.Contains(t, out, "0 characters added, 3 removed")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "---\ntitle: x\n---\nbody\n", string(data))
}

func TestLint_SingleFileClean(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeNote(t, dir, "note.md", "---\ntitle: x\n---\nbody\n")

	out, err := runRoot(t, "lint", path, "--disable", "yaml-timestamp")
	require.NoError(t, err)
	assert.Contains(t, out, "already lint-free")
}

func TestLint_DryRunLeavesFileAlone(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	original := "---\ntitle: x\n---\nbody   \n"
	path := writeNote(t, dir, "note.md", original)

	_, err := runRoot(t, "lint", path, "--dry-run", "--disable", "yaml-timestamp")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
}

func TestLint_Directory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	good := writeNote(t, dir, "a.md", "body   \n")
	writeNote(t, dir, "skip.txt", "not markdown   \n")
	bad := writeNote(t, dir, "bad.md", "---\nnested:\n\tbad: tab\n---\nx\n")

	out, err := runRoot(t, "lint", dir, "--disable", "yaml-timestamp")
	require.Error(t, err, "a failing note fails the run")
	assert.Contains(t, out, "linted 1 notes, 1 failed")
	assert.Contains(t, out, "failed to parse front matter in "+bad)

	data, readErr := os.ReadFile(good)
	require.NoError(t, readErr)
	assert.Equal(t, "body\n", string(data))

	untouched, readErr := os.ReadFile(bad)
	require.NoError(t, readErr)
	assert.Equal(t, "---\nnested:\n\tbad: tab\n---\nx\n", string(untouched))
}

func TestLint_MetadataErrorMessage(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeNote(t, dir, "bad.md", "---\nnested:\n\tbad: tab\n---\nx\n")

	out, err := runRoot(t, "lint", path)
	require.Error(t, err)
	assert.Contains(t, out, "failed to parse front matter in "+path)
}

func TestRulesCommandRegistered(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	out, err := runRoot(t, "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "trailing-spaces")
	assert.Contains(t, out, "yaml-timestamp")
}
