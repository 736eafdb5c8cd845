package yamlrules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdtidy/mdtidy/pkg/lint"
)

func keySortOpts(priority []string, alphabetical bool) map[string]any {
	opts := KeySort.DefaultOptions()
	opts["priorityKeys"] = priority
	opts["sortRemainingAlphabetically"] = alphabetical
	return opts
}

func TestKeySort_PriorityThenAlphabetical(t *testing.T) {
	text := "---\nzeta: 1\ntitle: x\nalpha: 2\n---\nbody\n"

	got, changed, err := applyKeySort(text, keySortOpts([]string{"title"}, true), &lint.Context{})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "---\ntitle: x\nalpha: 2\nzeta: 1\n---\nbody\n", got)
}

func TestKeySort_PreambleStaysFirst(t *testing.T) {
	text := "---\n# comment\nzeta: 1\nalpha: 2\n---\nbody\n"

	got, changed, err := applyKeySort(text, keySortOpts(nil, true), &lint.Context{})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "---\n# comment\nalpha: 2\nzeta: 1\n---\nbody\n", got)
}

func TestKeySort_OriginalOrderWithoutAlphabetical(t *testing.T) {
	text := "---\nzeta: 1\ntitle: x\nalpha: 2\n---\nbody\n"

	got, changed, err := applyKeySort(text, keySortOpts([]string{"alpha"}, false), &lint.Context{})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "---\nalpha: 2\nzeta: 1\ntitle: x\n---\nbody\n", got)
}

func TestKeySort_AlreadySorted(t *testing.T) {
	text := "---\nalpha: 2\nzeta: 1\n---\nbody\n"

	got, changed, err := applyKeySort(text, keySortOpts(nil, true), &lint.Context{})
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, text, got)
}

func TestKeySort_NoFrontMatter(t *testing.T) {
	got, changed, err := applyKeySort("body only\n", keySortOpts(nil, true), &lint.Context{})
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, "body only\n", got)
}

func TestKeySort_NestedEntriesMoveAsBlocks(t *testing.T) {
	text := "---\nzeta: 1\ntags:\n  - b\n  - a\n---\nbody\n"

	got, changed, err := applyKeySort(text, keySortOpts(nil, true), &lint.Context{})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "---\ntags:\n  - b\n  - a\nzeta: 1\n---\nbody\n", got)
}

// When the timestamp rule just rewrote the modification time, sorting
// refreshes that key with the formatted time the orchestrator supplies.
func TestKeySort_RestampsModifiedKey(t *testing.T) {
	text := "---\nzeta: 1\ndate modified: old value\n---\nbody\n"
	ctx := &lint.Context{
		TimestampUpdated:     true,
		DateModifiedKey:      "date modified",
		CurrentTimeFormatted: "fresh value",
	}

	got, changed, err := applyKeySort(text, keySortOpts(nil, true), ctx)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "---\ndate modified: fresh value\nzeta: 1\n---\nbody\n", got)
}

func TestKeySort_NoRestampWithoutTimestampUpdate(t *testing.T) {
	text := "---\nzeta: 1\ndate modified: old value\n---\nbody\n"
	ctx := &lint.Context{
		TimestampUpdated:     false,
		DateModifiedKey:      "date modified",
		CurrentTimeFormatted: "fresh value",
	}

	got, _, err := applyKeySort(text, keySortOpts(nil, true), ctx)
	require.NoError(t, err)
	assert.Contains(t, got, "date modified: old value")
}
