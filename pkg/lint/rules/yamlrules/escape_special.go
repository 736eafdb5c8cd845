package yamlrules

import (
	"strings"

	"github.com/mdtidy/mdtidy/pkg/lint"
	"github.com/mdtidy/mdtidy/pkg/yamlfm"
)

// EscapeSpecialCharacters quotes front-matter scalar values that would
// otherwise make the block unparsable. It must run before any structured
// parse of the block.
var EscapeSpecialCharacters = lint.RuleDef{
	Alias:                 lint.AliasEscapeYAML,
	Name:                  "Escape YAML Special Characters",
	Group:                 "YAML",
	Description:           "Quote front-matter values containing characters that break the YAML parser.",
	SpecialExecutionOrder: true,
	Options: []lint.OptionSpec{
		{Name: lint.EnabledOptionName, Type: lint.OptionBool, Default: true, Description: "Apply this rule on lint."},
		{Name: "defaultEscapeCharacter", Type: lint.OptionString, Default: `"`, Description: "Quote character used when escaping values."},
		{Name: "tryToEscapeSingleLineArrays", Type: lint.OptionBool, Default: false, Description: "Also escape elements of single-line flow arrays."},
	},
	Apply: applyEscapeSpecial,
}

func applyEscapeSpecial(text string, opts map[string]any, _ *lint.Context) (string, error) {
	block, body, found := yamlfm.Split(text)
	if !found {
		return text, nil
	}

	quote := lint.GetStringOption(opts, "defaultEscapeCharacter", `"`)
	if quote != `"` && quote != `'` {
		quote = `"`
	}
	escapeArrays := lint.GetBoolOption(opts, "tryToEscapeSingleLineArrays", false)

	entries := yamlfm.Entries(block)
	changed := false
	for i, entry := range entries {
		// Only single-line scalar entries are candidates; nested structures
		// are already shaped by the user.
		if entry.Key == "" || len(entry.Lines) != 1 {
			continue
		}
		key, rest, ok := strings.Cut(entry.Lines[0], ":")
		if !ok {
			continue
		}
		value := strings.TrimSpace(rest)
		if value == "" || isQuoted(value) || isBlockIndicator(value) {
			continue
		}

		if strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
			if !escapeArrays {
				continue
			}
			escaped := escapeArrayElements(value, quote)
			if escaped != value {
				entries[i].Lines[0] = key + ": " + escaped
				changed = true
			}
			continue
		}

		if needsEscape(value) {
			entries[i].Lines[0] = key + ": " + escape(value, quote)
			changed = true
		}
	}
	if !changed {
		return text, nil
	}
	return yamlfm.Join(yamlfm.Render(entries), body), nil
}

func isQuoted(value string) bool {
	return len(value) >= 2 &&
		(value[0] == '"' || value[0] == '\'') &&
		value[len(value)-1] == value[0]
}

func isBlockIndicator(value string) bool {
	return value == "|" || value == ">" ||
		strings.HasPrefix(value, "|") || strings.HasPrefix(value, ">")
}

// needsEscape reports whether an unquoted scalar would confuse the parser:
// a leading YAML indicator character, a nested "key: value", or an inline
// comment marker.
func needsEscape(value string) bool {
	if strings.ContainsAny(value[:1], "{}[]&*!|>%@`\"'") {
		return true
	}
	if strings.HasPrefix(value, "- ") || value == "-" {
		return true
	}
	return strings.Contains(value, ": ") || strings.HasSuffix(value, ":") || strings.Contains(value, " #")
}

func escape(value, quote string) string {
	if quote == `"` {
		if strings.Contains(value, `"`) && !strings.Contains(value, `'`) {
			return `'` + value + `'`
		}
		return `"` + strings.ReplaceAll(value, `"`, `\"`) + `"`
	}
	if strings.Contains(value, `'`) && !strings.Contains(value, `"`) {
		return `"` + value + `"`
	}
	return `'` + strings.ReplaceAll(value, `'`, `''`) + `'`
}

// escapeArrayElements escapes each element of a single-line flow sequence
// that needs it. Nested flow structures are left alone.
func escapeArrayElements(value, quote string) string {
	inner := strings.TrimSuffix(strings.TrimPrefix(value, "["), "]")
	if strings.ContainsAny(inner, "[]{}") {
		return value
	}
	parts := strings.Split(inner, ",")
	for i, part := range parts {
		elem := strings.TrimSpace(part)
		if elem == "" || isQuoted(elem) {
			continue
		}
		if needsEscape(elem) || strings.Contains(elem, "#") {
			parts[i] = " " + escape(elem, quote)
			continue
		}
		parts[i] = part
	}
	joined := strings.Join(parts, ",")
	return "[" + strings.TrimPrefix(joined, " ") + "]"
}
