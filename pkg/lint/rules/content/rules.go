// Package content contains body text normalization rules.
package content

import "github.com/mdtidy/mdtidy/pkg/lint"

// Rules returns the package's rule definitions in registry order.
func Rules() []lint.RuleDef {
	return []lint.RuleDef{
		RemoveMultipleSpaces,
		TrailingNewline,
	}
}
