package spacing

import (
	"strings"

	"github.com/mdtidy/mdtidy/pkg/lint"
	"github.com/mdtidy/mdtidy/pkg/lint/rules/internal/body"
)

// ConsecutiveBlankLines collapses runs of blank lines in the body to one.
// Fenced code blocks are left alone.
var ConsecutiveBlankLines = lint.RuleDef{
	Alias:       "consecutive-blank-lines",
	Name:        "Consecutive Blank Lines",
	Group:       "Spacing",
	Description: "Collapse two or more consecutive blank lines into one.",
	Options: []lint.OptionSpec{
		{Name: lint.EnabledOptionName, Type: lint.OptionBool, Default: true, Description: "Apply this rule on lint."},
	},
	Apply: applyConsecutiveBlankLines,
}

func applyConsecutiveBlankLines(text string, _ map[string]any, _ *lint.Context) (string, error) {
	return body.Transform(text, func(b string) string {
		lines := strings.Split(b, "\n")
		out := make([]string, 0, len(lines))
		inFence := false
		blanks := 0
		for _, line := range lines {
			if body.IsFence(line) {
				inFence = !inFence
			}
			if !inFence && strings.TrimSpace(line) == "" {
				blanks++
				if blanks > 1 {
					continue
				}
				// A blank run collapses to one genuinely empty line.
				line = ""
			} else {
				blanks = 0
			}
			out = append(out, line)
		}
		return strings.Join(out, "\n")
	}), nil
}
