package lint

import (
	"strings"

	"github.com/mdtidy/mdtidy/pkg/yamlfm"
)

// disabledRulesKey is the front-matter key holding the in-document disable
// directive.
const disabledRulesKey = "disabled rules"

// disableAll is the directive value that skips every rule for the run.
const disableAll = "all"

// DisabledRules is the set of rule aliases to skip for one run. It is
// derived from the original text only, recomputed every run, and never
// persisted.
type DisabledRules map[string]bool

// Has reports whether a rule alias is disabled for this run.
func (d DisabledRules) Has(alias string) bool {
	return d[alias] || d[disableAll]
}

// ScanDisabledRules reads the disable directive from the untouched original
// text. The scan is a tolerant line scan of the front-matter block, not a
// YAML parse: the directive must be honored even when the block as a whole
// is not yet parseable.
func ScanDisabledRules(original string) DisabledRules {
	set := make(DisabledRules)

	block, _, found := yamlfm.Split(original)
	if !found {
		return set
	}

	lines := strings.Split(block, "\n")
	for i, line := range lines {
		if line == "" || line[0] == ' ' || line[0] == '\t' {
			continue
		}
		key, rest, ok := strings.Cut(line, ":")
		if !ok || strings.TrimSpace(strings.ToLower(key)) != disabledRulesKey {
			continue
		}

		rest = strings.TrimSpace(rest)
		if rest != "" {
			for _, alias := range splitDirectiveValue(rest) {
				set[alias] = true
			}
			return set
		}

		// Dash-list form on the following lines.
		for _, next := range lines[i+1:] {
			trimmed := strings.TrimSpace(next)
			if !strings.HasPrefix(trimmed, "- ") && trimmed != "-" {
				break
			}
			alias := normalizeAlias(strings.TrimPrefix(trimmed, "-"))
			if alias != "" {
				set[alias] = true
			}
		}
		return set
	}
	return set
}

// splitDirectiveValue parses the inline directive value: either a flow
// sequence "[a, b]" or a bare comma-separated list.
func splitDirectiveValue(value string) []string {
	value = strings.TrimPrefix(value, "[")
	value = strings.TrimSuffix(value, "]")

	var aliases []string
	for _, part := range strings.Split(value, ",") {
		if alias := normalizeAlias(part); alias != "" {
			aliases = append(aliases, alias)
		}
	}
	return aliases
}

func normalizeAlias(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return strings.ToLower(strings.TrimSpace(s))
}
