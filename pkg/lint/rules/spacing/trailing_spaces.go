package spacing

import (
	"strings"

	"github.com/mdtidy/mdtidy/pkg/lint"
	"github.com/mdtidy/mdtidy/pkg/lint/rules/internal/body"
)

// TrailingSpaces strips trailing whitespace from body lines.
var TrailingSpaces = lint.RuleDef{
	Alias:       "trailing-spaces",
	Name:        "Trailing Spaces",
	Group:       "Spacing",
	Description: "Remove extra spaces after the end of each line.",
	Options: []lint.OptionSpec{
		{Name: lint.EnabledOptionName, Type: lint.OptionBool, Default: true, Description: "Apply this rule on lint."},
		{Name: "twoSpaceLineBreak", Type: lint.OptionBool, Default: false, Description: "Keep lines ending in exactly two spaces (markdown line break)."},
	},
	Apply: applyTrailingSpaces,
}

func applyTrailingSpaces(text string, opts map[string]any, _ *lint.Context) (string, error) {
	keepBreaks := lint.GetBoolOption(opts, "twoSpaceLineBreak", false)

	return body.Transform(text, func(b string) string {
		lines := strings.Split(b, "\n")
		for i, line := range lines {
			trimmed := strings.TrimRight(line, " \t")
			if keepBreaks && trimmed != "" && strings.HasSuffix(line, "  ") && !strings.HasSuffix(line, "   ") {
				continue
			}
			lines[i] = trimmed
		}
		return strings.Join(lines, "\n")
	}), nil
}
