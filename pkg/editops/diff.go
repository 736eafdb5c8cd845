package editops

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff computes a character-level minimal edit script between original and
// final. The result is stable: equal inputs always produce the same op
// sequence. When original == final the result is a single equal op (or
// nothing for two empty strings).
func Diff(original, final string) []DiffOp {
	if original == final {
		if original == "" {
			return nil
		}
		return []DiffOp{{Kind: OpEqual, Text: original}}
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(original, final, false)

	ops := make([]DiffOp, 0, len(diffs))
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			ops = append(ops, DiffOp{Kind: OpEqual, Text: d.Text})
		case diffmatchpatch.DiffInsert:
			ops = append(ops, DiffOp{Kind: OpInsert, Text: d.Text})
		case diffmatchpatch.DiffDelete:
			ops = append(ops, DiffOp{Kind: OpDelete, Text: d.Text})
		}
	}
	return ops
}
