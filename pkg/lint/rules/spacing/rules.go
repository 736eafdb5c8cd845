// Package spacing contains whitespace normalization rules for the markdown
// body.
package spacing

import "github.com/mdtidy/mdtidy/pkg/lint"

// Rules returns the package's rule definitions in registry order.
func Rules() []lint.RuleDef {
	return []lint.RuleDef{
		TrailingSpaces,
		ConsecutiveBlankLines,
		HeadingBlankLines,
	}
}
