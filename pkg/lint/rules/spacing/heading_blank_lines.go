package spacing

import (
	"strings"

	"github.com/mdtidy/mdtidy/pkg/lint"
	"github.com/mdtidy/mdtidy/pkg/lint/rules/internal/body"
)

// HeadingBlankLines puts exactly one blank line before each ATX heading and,
// optionally, one after. Headings inside fenced code blocks are ignored.
var HeadingBlankLines = lint.RuleDef{
	Alias:       "heading-blank-lines",
	Name:        "Heading Blank Lines",
	Group:       "Spacing",
	Description: "Surround headings with a single blank line.",
	Options: []lint.OptionSpec{
		{Name: lint.EnabledOptionName, Type: lint.OptionBool, Default: true, Description: "Apply this rule on lint."},
		{Name: "emptyLineAfter", Type: lint.OptionBool, Default: true, Description: "Also require a blank line after each heading."},
	},
	Apply: applyHeadingBlankLines,
}

func applyHeadingBlankLines(text string, opts map[string]any, _ *lint.Context) (string, error) {
	emptyAfter := lint.GetBoolOption(opts, "emptyLineAfter", true)

	return body.Transform(text, func(b string) string {
		lines := strings.Split(b, "\n")
		out := make([]string, 0, len(lines))
		inFence := false
		for i := 0; i < len(lines); i++ {
			line := lines[i]
			if body.IsFence(line) {
				inFence = !inFence
			}
			if inFence || !isHeading(line) {
				out = append(out, line)
				continue
			}

			// One blank line before, unless the heading opens the body.
			for len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "" {
				out = out[:len(out)-1]
			}
			if len(out) > 0 {
				out = append(out, "")
			}
			out = append(out, line)

			if !emptyAfter {
				continue
			}
			// One blank line after, swallowing any existing blank run.
			j := i + 1
			for j < len(lines) && strings.TrimSpace(lines[j]) == "" {
				j++
			}
			if j < len(lines) {
				out = append(out, "")
				i = j - 1
			}
		}
		return strings.Join(out, "\n")
	}), nil
}

// isHeading matches ATX headings: one to six # followed by a space.
func isHeading(line string) bool {
	trimmed := strings.TrimPrefix(line, " ")
	hashes := 0
	for hashes < len(trimmed) && trimmed[hashes] == '#' {
		hashes++
	}
	return hashes >= 1 && hashes <= 6 && hashes < len(trimmed) && trimmed[hashes] == ' '
}
