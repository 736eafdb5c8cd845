// Package body holds shared helpers for rules that edit the markdown body
// and must leave the front-matter block untouched.
package body

import (
	"strings"

	"github.com/mdtidy/mdtidy/pkg/yamlfm"
)

// Transform applies fn to the document body, reattaching the front-matter
// block unchanged.
func Transform(text string, fn func(string) string) string {
	block, rest, found := yamlfm.Split(text)
	if !found {
		return fn(text)
	}
	return yamlfm.Join(block, fn(rest))
}

// IsFence reports whether a line opens or closes a fenced code block.
func IsFence(line string) bool {
	trimmed := strings.TrimLeft(line, " ")
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}

// IsIndentedCode reports whether a line is indented code (four spaces or a
// tab).
func IsIndentedCode(line string) bool {
	return strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t")
}
