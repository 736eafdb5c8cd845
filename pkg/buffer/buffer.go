// Package buffer provides an in-memory editable text buffer addressed in
// line/column coordinates, the shape a host editor exposes to the linter.
package buffer

import (
	"fmt"
	"strings"

	"github.com/mdtidy/mdtidy/pkg/editops"
)

// Buffer holds editable text. It is not safe for concurrent use; the linter
// assumes a single writer per document.
type Buffer struct {
	text string
}

// New creates a buffer seeded with text.
func New(text string) *Buffer {
	return &Buffer{text: text}
}

// Value returns the current buffer content.
func (b *Buffer) Value() string {
	return b.text
}

// ApplyEditBatch applies a projected operation sequence as one atomic batch.
// Operations must be ordered as produced by editops.Project: each operation
// finalizes the document prefix to its left, so ranges are resolved against
// the buffer state the projector replayed. If any operation is out of range
// the buffer is left untouched.
func (b *Buffer) ApplyEditBatch(ops []editops.EditOperation) error {
	text := b.text
	for i, op := range ops {
		from, err := offsetOf(text, op.From)
		if err != nil {
			return fmt.Errorf("edit %d: %w", i, err)
		}
		to := from
		if op.To != nil {
			to, err = offsetOf(text, *op.To)
			if err != nil {
				return fmt.Errorf("edit %d: %w", i, err)
			}
			if to < from {
				return fmt.Errorf("edit %d: inverted range %s..%s", i, op.From, *op.To)
			}
		}
		text = text[:from] + op.Text + text[to:]
	}
	b.text = text
	return nil
}

// offsetOf resolves a line/column position to a byte offset. Columns count
// runes. The position one past the last line's end is valid (end of buffer).
func offsetOf(text string, pos editops.Position) (int, error) {
	if pos.Line < 0 || pos.Ch < 0 {
		return 0, fmt.Errorf("negative position %s", pos)
	}

	offset := 0
	rest := text
	for line := 0; line < pos.Line; line++ {
		nl := strings.IndexByte(rest, '\n')
		if nl < 0 {
			return 0, fmt.Errorf("position %s beyond last line", pos)
		}
		offset += nl + 1
		rest = rest[nl+1:]
	}

	lineText := rest
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		lineText = rest[:nl]
	}

	col := 0
	for idx := range lineText {
		if col == pos.Ch {
			return offset + idx, nil
		}
		col++
	}
	if col == pos.Ch {
		return offset + len(lineText), nil
	}
	return 0, fmt.Errorf("position %s beyond end of line", pos)
}
