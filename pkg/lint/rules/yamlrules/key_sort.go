package yamlrules

import (
	"github.com/mdtidy/mdtidy/pkg/lint"
	"github.com/mdtidy/mdtidy/pkg/yamlfm"
)

// KeySort reorders the top-level front-matter keys. It runs last of all: if
// the timestamp rule just rewrote the modification timestamp, sorting
// re-stamps that key with a freshly formatted time so the value stays
// consistent with the rewrite.
var KeySort = lint.RuleDef{
	Alias:                 lint.AliasKeySort,
	Name:                  "YAML Key Sort",
	Group:                 "YAML",
	Description:           "Sort top-level front-matter keys: priority keys first, the rest optionally alphabetical.",
	SpecialExecutionOrder: true,
	Options: []lint.OptionSpec{
		{Name: lint.EnabledOptionName, Type: lint.OptionBool, Default: false, Description: "Apply this rule on lint."},
		{Name: "priorityKeys", Type: lint.OptionStringSlice, Default: []string{}, Description: "Keys placed first, in this order."},
		{Name: "sortRemainingAlphabetically", Type: lint.OptionBool, Default: true, Description: "Sort keys not in the priority list alphabetically."},
	},
	ApplyStamp: applyKeySort,
}

func applyKeySort(text string, opts map[string]any, ctx *lint.Context) (string, bool, error) {
	block, body, found := yamlfm.Split(text)
	if !found || block == "" {
		return text, false, nil
	}

	priority := lint.GetStringSliceOption(opts, "priorityKeys", nil)
	alphabetical := lint.GetBoolOption(opts, "sortRemainingAlphabetically", true)

	sorted := yamlfm.Render(yamlfm.SortEntries(yamlfm.Entries(block), priority, alphabetical))
	if sorted == block {
		return text, false, nil
	}

	// Sorting happens an observable instant after the timestamp rule ran, so
	// the modification timestamp it wrote is refreshed with the current time
	// supplied by the orchestrator.
	if ctx.TimestampUpdated && ctx.DateModifiedKey != "" && ctx.CurrentTimeFormatted != "" {
		if _, ok := yamlfm.Value(sorted, ctx.DateModifiedKey); ok {
			sorted = yamlfm.SetValue(sorted, ctx.DateModifiedKey, ctx.CurrentTimeFormatted)
		}
	}

	return yamlfm.Join(sorted, body), true, nil
}
