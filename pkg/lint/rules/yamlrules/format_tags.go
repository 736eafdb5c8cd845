package yamlrules

import (
	"regexp"
	"strings"

	"github.com/mdtidy/mdtidy/pkg/lint"
	"github.com/mdtidy/mdtidy/pkg/yamlfm"
)

// FormatTags normalizes the front-matter tags field before the block is
// parsed: hash prefixes make the entries strings a later consumer does not
// expect, and in flow style an unquoted # starts a comment.
var FormatTags = lint.RuleDef{
	Alias:                 lint.AliasFormatTags,
	Name:                  "Format Tags in YAML",
	Group:                 "YAML",
	Description:           "Remove hashtag prefixes from entries of the front-matter tags field.",
	SpecialExecutionOrder: true,
	Options: []lint.OptionSpec{
		{Name: lint.EnabledOptionName, Type: lint.OptionBool, Default: true, Description: "Apply this rule on lint."},
	},
	Apply: applyFormatTags,
}

const tagsKey = "tags"

// hashPrefix matches a # immediately before a tag character.
var hashPrefix = regexp.MustCompile(`#([\p{L}\p{N}_/-])`)

func applyFormatTags(text string, _ map[string]any, _ *lint.Context) (string, error) {
	block, body, found := yamlfm.Split(text)
	if !found {
		return text, nil
	}

	entries := yamlfm.Entries(block)
	changed := false
	for ei, entry := range entries {
		if entry.Key != tagsKey {
			continue
		}
		for li, line := range entry.Lines {
			stripped := stripTagHashes(line, li == 0)
			if stripped != line {
				entries[ei].Lines[li] = stripped
				changed = true
			}
		}
	}
	if !changed {
		return text, nil
	}
	return yamlfm.Join(yamlfm.Render(entries), body), nil
}

// stripTagHashes removes hash prefixes from the value portion of a tags
// line. The first line is "tags: ...", continuations are list items.
func stripTagHashes(line string, first bool) string {
	if first {
		key, rest, ok := strings.Cut(line, ":")
		if !ok {
			return line
		}
		return key + ":" + hashPrefix.ReplaceAllString(rest, "$1")
	}
	trimmed := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(trimmed, "- ") {
		return line
	}
	indent := line[:len(line)-len(trimmed)]
	return indent + "- " + hashPrefix.ReplaceAllString(strings.TrimPrefix(trimmed, "- "), "$1")
}
