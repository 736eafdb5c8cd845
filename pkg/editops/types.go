// Package editops converts the textual difference between an original and a
// corrected document into positional edit operations that can be applied to a
// live editor buffer as a single batch.
package editops

import "fmt"

// Kind classifies a diff operation.
type Kind int

const (
	OpEqual Kind = iota
	OpInsert
	OpDelete
)

// String returns a string representation of the op kind.
func (k Kind) String() string {
	switch k {
	case OpEqual:
		return "equal"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// DiffOp is one step of a character-level diff. Concatenating the text of all
// equal+insert ops yields the final document; equal+delete yields the original.
type DiffOp struct {
	Kind Kind
	Text string
}

// Position is a line/column coordinate. Columns count runes, not bytes.
type Position struct {
	Line int
	Ch   int
}

// String returns "line:ch" for diagnostics.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Ch)
}

// EditOperation replaces the half-open range [From, To) with Text.
// A nil To means a pure insertion at From. A non-nil To with empty Text is a
// pure deletion.
type EditOperation struct {
	From Position
	To   *Position
	Text string
}

// IsInsert reports whether the operation inserts text at a point.
func (e EditOperation) IsInsert() bool {
	return e.To == nil
}

// IsDelete reports whether the operation removes a range without replacement.
func (e EditOperation) IsDelete() bool {
	return e.To != nil && e.Text == ""
}

// Stats aggregates the size of a change set for user-facing reporting.
type Stats struct {
	CharsAdded   int
	CharsRemoved int
}
