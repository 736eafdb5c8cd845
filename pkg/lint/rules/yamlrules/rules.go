// Package yamlrules contains the rules that edit the YAML front-matter
// block. All four have special execution order: the tag-formatting and
// escaping rules run before the block is parsed, the timestamp and key-sort
// rules run after every content rule.
package yamlrules

import "github.com/mdtidy/mdtidy/pkg/lint"

// Rules returns the package's rule definitions in pipeline order.
func Rules() []lint.RuleDef {
	return []lint.RuleDef{
		FormatTags,
		EscapeSpecialCharacters,
		Timestamp,
		KeySort,
	}
}
