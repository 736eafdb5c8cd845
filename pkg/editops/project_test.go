package editops

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff_EqualInputs(t *testing.T) {
	assert.Nil(t, Diff("", ""))

	ops := Diff("same\ntext\n", "same\ntext\n")
	require.Len(t, ops, 1)
	assert.Equal(t, OpEqual, ops[0].Kind)
	assert.Equal(t, "same\ntext\n", ops[0].Text)
}

func TestDiff_Composition(t *testing.T) {
	tests := []struct {
		name     string
		original string
		final    string
	}{
		{"insert line", "a\nbb\n", "a\nccbb\n"},
		{"delete line", "one\ntwo\nthree\n", "one\nthree\n"},
		{"replace word", "the quick fox\n", "the slow fox\n"},
		{"append", "text", "text and more"},
		{"truncate", "text and more", "text"},
		{"unicode", "héllo wörld\n", "héllo earth\n"},
		{"from empty", "", "new content\n"},
		{"to empty", "old content\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := Diff(tt.original, tt.final)

			var fromEqualDelete, fromEqualInsert strings.Builder
			for _, op := range ops {
				if op.Kind == OpEqual || op.Kind == OpDelete {
					fromEqualDelete.WriteString(op.Text)
				}
				if op.Kind == OpEqual || op.Kind == OpInsert {
					fromEqualInsert.WriteString(op.Text)
				}
			}
			assert.Equal(t, tt.original, fromEqualDelete.String())
			assert.Equal(t, tt.final, fromEqualInsert.String())
		})
	}
}

func TestDiff_Deterministic(t *testing.T) {
	original := "---\ntitle: note\n---\nbody   \n\n\ntext\n"
	final := "---\ntitle: note\n---\nbody\n\ntext\n"

	first := Diff(original, final)
	for range 10 {
		assert.Equal(t, first, Diff(original, final))
	}
}

func TestProject_SingleInsert(t *testing.T) {
	edits, stats := Project(Diff("a\nbb\n", "a\nccbb\n"))

	require.Len(t, edits, 1)
	assert.True(t, edits[0].IsInsert())
	assert.Equal(t, Position{Line: 1, Ch: 0}, edits[0].From)
	assert.Equal(t, "cc", edits[0].Text)
	assert.Equal(t, Stats{CharsAdded: 2}, stats)
}

func TestProject_SingleDelete(t *testing.T) {
	ops := []DiffOp{
		{Kind: OpEqual, Text: "ab\n"},
		{Kind: OpDelete, Text: "cd"},
		{Kind: OpEqual, Text: "\n"},
	}
	edits, stats := Project(ops)

	require.Len(t, edits, 1)
	assert.True(t, edits[0].IsDelete())
	assert.Equal(t, Position{Line: 1, Ch: 0}, edits[0].From)
	require.NotNil(t, edits[0].To)
	assert.Equal(t, Position{Line: 1, Ch: 2}, *edits[0].To)
	assert.Equal(t, Stats{CharsRemoved: 2}, stats)
}

func TestProject_InsertCommitsToCursor(t *testing.T) {
	// "ab" -> "aXbY": the second insert lands after both the kept "b" and
	// the already-inserted "X", so its column reflects the emitted text.
	ops := []DiffOp{
		{Kind: OpEqual, Text: "a"},
		{Kind: OpInsert, Text: "X"},
		{Kind: OpEqual, Text: "b"},
		{Kind: OpInsert, Text: "Y"},
	}
	edits, stats := Project(ops)

	require.Len(t, edits, 2)
	assert.Equal(t, Position{Line: 0, Ch: 1}, edits[0].From)
	assert.Equal(t, "X", edits[0].Text)
	assert.Equal(t, Position{Line: 0, Ch: 3}, edits[1].From)
	assert.Equal(t, "Y", edits[1].Text)
	assert.Equal(t, Stats{CharsAdded: 2}, stats)
}

func TestProject_DeleteDoesNotAdvanceCursor(t *testing.T) {
	// A delete followed by an insert at the same spot: both address the
	// start of the removed range.
	ops := []DiffOp{
		{Kind: OpEqual, Text: "a"},
		{Kind: OpDelete, Text: "b"},
		{Kind: OpInsert, Text: "X"},
	}
	edits, stats := Project(ops)

	require.Len(t, edits, 2)
	assert.Equal(t, Position{Line: 0, Ch: 1}, edits[0].From)
	require.NotNil(t, edits[0].To)
	assert.Equal(t, Position{Line: 0, Ch: 2}, *edits[0].To)
	assert.Equal(t, Position{Line: 0, Ch: 1}, edits[1].From)
	assert.Equal(t, "X", edits[1].Text)
	assert.Equal(t, Stats{CharsAdded: 1, CharsRemoved: 1}, stats)
}

func TestProject_MultilineDelete(t *testing.T) {
	ops := []DiffOp{
		{Kind: OpEqual, Text: "keep\n"},
		{Kind: OpDelete, Text: "gone\nalso gone\n"},
		{Kind: OpEqual, Text: "keep too\n"},
	}
	edits, _ := Project(ops)

	require.Len(t, edits, 1)
	assert.Equal(t, Position{Line: 1, Ch: 0}, edits[0].From)
	require.NotNil(t, edits[0].To)
	assert.Equal(t, Position{Line: 3, Ch: 0}, *edits[0].To)
}

func TestProject_StatsCountRunes(t *testing.T) {
	ops := []DiffOp{
		{Kind: OpInsert, Text: "héllo"},
		{Kind: OpDelete, Text: "wörld"},
	}
	_, stats := Project(ops)

	assert.Equal(t, 5, stats.CharsAdded)
	assert.Equal(t, 5, stats.CharsRemoved)
}

func TestProject_NoChange(t *testing.T) {
	edits, stats := Project(Diff("unchanged\n", "unchanged\n"))
	assert.Empty(t, edits)
	assert.Equal(t, Stats{}, stats)
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "2:7", Position{Line: 2, Ch: 7}.String())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "equal", OpEqual.String())
	assert.Equal(t, "insert", OpInsert.String())
	assert.Equal(t, "delete", OpDelete.String())
}
