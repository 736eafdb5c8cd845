package content

import (
	"regexp"
	"strings"

	"github.com/mdtidy/mdtidy/pkg/lint"
	"github.com/mdtidy/mdtidy/pkg/lint/rules/internal/body"
)

// RemoveMultipleSpaces collapses interior runs of spaces in body text.
// Code blocks and tables keep their alignment.
var RemoveMultipleSpaces = lint.RuleDef{
	Alias:       "remove-multiple-spaces",
	Name:        "Remove Multiple Spaces",
	Group:       "Content",
	Description: "Collapse two or more consecutive spaces in prose to one.",
	Options: []lint.OptionSpec{
		{Name: lint.EnabledOptionName, Type: lint.OptionBool, Default: true, Description: "Apply this rule on lint."},
	},
	Apply: applyRemoveMultipleSpaces,
}

var spaceRun = regexp.MustCompile(` {2,}`)

func applyRemoveMultipleSpaces(text string, _ map[string]any, _ *lint.Context) (string, error) {
	return body.Transform(text, func(b string) string {
		lines := strings.Split(b, "\n")
		inFence := false
		for i, line := range lines {
			if body.IsFence(line) {
				inFence = !inFence
				continue
			}
			if inFence || body.IsIndentedCode(line) || strings.Contains(line, "|") {
				continue
			}

			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			inner := line[len(indent):]
			trail := inner[len(strings.TrimRight(inner, " ")):]
			inner = strings.TrimRight(inner, " ")
			lines[i] = indent + spaceRun.ReplaceAllString(inner, " ") + trail
		}
		return strings.Join(lines, "\n")
	}), nil
}
