package content

import (
	"strings"

	"github.com/mdtidy/mdtidy/pkg/lint"
)

// TrailingNewline makes the document end with exactly one newline.
var TrailingNewline = lint.RuleDef{
	Alias:       "trailing-newline",
	Name:        "Trailing Newline",
	Group:       "Content",
	Description: "End the file with a single newline character.",
	Options: []lint.OptionSpec{
		{Name: lint.EnabledOptionName, Type: lint.OptionBool, Default: true, Description: "Apply this rule on lint."},
	},
	Apply: applyTrailingNewline,
}

func applyTrailingNewline(text string, _ map[string]any, _ *lint.Context) (string, error) {
	if text == "" {
		return text, nil
	}
	return strings.TrimRight(text, "\n") + "\n", nil
}
