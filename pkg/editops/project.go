package editops

import "unicode/utf8"

// Project converts a diff op sequence into an ordered list of edit
// operations addressed in line/column coordinates.
//
// A cursor replays the document from the start: equal and insert ops extend
// the replayed prefix, delete ops advance a scratch copy of the cursor to
// find the end of the doomed range without committing it. Applying the
// returned operations in order to a buffer holding the original text yields
// the final text; each operation's range is valid at the moment it applies
// because every operation rewrites the document strictly left of the next.
func Project(ops []DiffOp) ([]EditOperation, Stats) {
	var (
		edits  []EditOperation
		stats  Stats
		cursor Position
	)

	for _, op := range ops {
		switch op.Kind {
		case OpEqual:
			cursor = advance(cursor, op.Text)
		case OpInsert:
			from := cursor
			edits = append(edits, EditOperation{From: from, Text: op.Text})
			stats.CharsAdded += utf8.RuneCountInString(op.Text)
			cursor = advance(cursor, op.Text)
		case OpDelete:
			from := cursor
			to := advance(cursor, op.Text)
			edits = append(edits, EditOperation{From: from, To: &to})
			stats.CharsRemoved += utf8.RuneCountInString(op.Text)
		}
	}
	return edits, stats
}

// advance moves pos across text, resetting the column after each line break.
func advance(pos Position, text string) Position {
	for _, r := range text {
		if r == '\n' {
			pos.Line++
			pos.Ch = 0
		} else {
			pos.Ch++
		}
	}
	return pos
}
