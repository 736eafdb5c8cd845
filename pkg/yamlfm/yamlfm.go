// Package yamlfm provides text-level helpers for the YAML front-matter block
// at the top of a markdown note. Rules edit the block as raw lines so that
// key order, comments, and formatting the user chose survive a lint pass;
// parsing into structured form happens only for validation.
package yamlfm

import (
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
)

const delimiter = "---"

// ParseError wraps a front-matter parse failure so callers can classify it
// separately from other rule errors.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "parse front matter: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Has reports whether text opens with a front-matter block.
func Has(text string) bool {
	_, _, found := Split(text)
	return found
}

// Split separates a document into the front-matter block (without delimiter
// lines) and the body following the closing delimiter. An unterminated block
// is treated as plain body text.
func Split(text string) (block string, body string, found bool) {
	if !strings.HasPrefix(text, delimiter+"\n") {
		return "", text, false
	}

	rest := text[len(delimiter)+1:]
	lines := strings.SplitAfter(rest, "\n")
	var b strings.Builder
	for i, line := range lines {
		if strings.TrimRight(line, "\r\n") == delimiter {
			return b.String(), strings.Join(lines[i+1:], ""), true
		}
		b.WriteString(line)
	}
	return "", text, false
}

// Join reassembles a document from a front-matter block and a body.
func Join(block, body string) string {
	if block != "" && !strings.HasSuffix(block, "\n") {
		block += "\n"
	}
	return delimiter + "\n" + block + delimiter + "\n" + body
}

// Parse validates and decodes the front matter, returning the decoded
// mapping and the body. A decode failure is returned as a *ParseError.
func Parse(text string) (map[string]any, string, error) {
	var meta map[string]any
	body, err := frontmatter.Parse(strings.NewReader(text), &meta)
	if err != nil {
		return nil, "", &ParseError{Err: err}
	}
	return meta, string(body), nil
}

// Entry is one top-level front-matter key together with its continuation
// lines (nested mappings, list items, trailing comments). An empty Key marks
// preamble lines appearing before the first key.
type Entry struct {
	Key   string
	Lines []string
}

// Entries groups the block's lines into top-level entries, preserving order
// and formatting.
func Entries(block string) []Entry {
	if block == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(block, "\n"), "\n")

	var entries []Entry
	cur := -1
	for _, line := range lines {
		if key, ok := topLevelKey(line); ok {
			entries = append(entries, Entry{Key: key, Lines: []string{line}})
			cur = len(entries) - 1
			continue
		}
		if cur < 0 {
			entries = append(entries, Entry{Lines: []string{line}})
			cur = 0
			continue
		}
		entries[cur].Lines = append(entries[cur].Lines, line)
	}
	return entries
}

// Render writes entries back into a block.
func Render(entries []Entry) string {
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	for _, e := range entries {
		for _, line := range e.Lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Value returns the scalar value of a top-level key, trimmed of surrounding
// whitespace. The second result is false when the key is absent.
func Value(block, key string) (string, bool) {
	for _, e := range Entries(block) {
		if e.Key != key {
			continue
		}
		_, rest, _ := strings.Cut(e.Lines[0], ":")
		return strings.TrimSpace(rest), true
	}
	return "", false
}

// SetValue replaces the scalar value of a top-level key, appending the key
// at the end of the block when it is absent. Continuation lines of a
// replaced key are preserved untouched.
func SetValue(block, key, value string) string {
	entries := Entries(block)
	for i, e := range entries {
		if e.Key != key {
			continue
		}
		entries[i].Lines[0] = key + ": " + value
		return Render(entries)
	}
	entries = append(entries, Entry{Key: key, Lines: []string{key + ": " + value}})
	return Render(entries)
}

// SortEntries reorders top-level entries: preamble first, then priority keys
// in the order given, then the rest either in original order or sorted by
// key. The sort is stable.
func SortEntries(entries []Entry, priority []string, alphabetical bool) []Entry {
	var head, picked, rest []Entry

	byKey := make(map[string]int, len(entries))
	used := make(map[int]bool, len(entries))
	for i, e := range entries {
		if e.Key == "" {
			head = append(head, e)
			used[i] = true
			continue
		}
		if _, seen := byKey[e.Key]; !seen {
			byKey[e.Key] = i
		}
	}

	for _, key := range priority {
		if i, ok := byKey[key]; ok && !used[i] {
			picked = append(picked, entries[i])
			used[i] = true
		}
	}
	for i, e := range entries {
		if !used[i] {
			rest = append(rest, e)
		}
	}
	if alphabetical {
		sort.SliceStable(rest, func(i, j int) bool { return rest[i].Key < rest[j].Key })
	}

	out := make([]Entry, 0, len(entries))
	out = append(out, head...)
	out = append(out, picked...)
	out = append(out, rest...)
	return out
}

// topLevelKey extracts the key from a line that starts a top-level mapping
// entry. Indented lines, comments, and list items are continuations.
func topLevelKey(line string) (string, bool) {
	if line == "" {
		return "", false
	}
	if line[0] == ' ' || line[0] == '\t' || line[0] == '#' || line[0] == '-' {
		return "", false
	}
	key, _, ok := strings.Cut(line, ":")
	if !ok {
		return "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false
	}
	return key, true
}
