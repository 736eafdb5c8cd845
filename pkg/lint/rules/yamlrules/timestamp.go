package yamlrules

import (
	"github.com/goodsign/monday"

	"github.com/mdtidy/mdtidy/pkg/lint"
	"github.com/mdtidy/mdtidy/pkg/yamlfm"
)

// Timestamp keeps the front-matter created/modified timestamps in sync with
// the file's metadata. It runs after every content rule and bases its
// "modified" decision on whether the earlier stages changed the text, never
// on its own output.
var Timestamp = lint.RuleDef{
	Alias:                 lint.AliasTimestamp,
	Name:                  "YAML Timestamp",
	Group:                 "YAML",
	Description:           "Track the date a note was created and last modified in its front matter.",
	SpecialExecutionOrder: true,
	Options: []lint.OptionSpec{
		{Name: lint.EnabledOptionName, Type: lint.OptionBool, Default: true, Description: "Apply this rule on lint."},
		{Name: "dateCreated", Type: lint.OptionBool, Default: true, Description: "Insert the creation timestamp when missing."},
		{Name: "dateModified", Type: lint.OptionBool, Default: true, Description: "Update the modification timestamp when content changed."},
		{Name: "dateCreatedKey", Type: lint.OptionString, Default: "date created", Description: "Front-matter key for the creation timestamp."},
		{Name: "dateModifiedKey", Type: lint.OptionString, Default: "date modified", Description: "Front-matter key for the modification timestamp."},
		{Name: "format", Type: lint.OptionString, Default: lint.DefaultTimestampFormat, Description: "Go time layout, rendered in the resolved locale."},
	},
	ApplyStamp: applyTimestamp,
}

func applyTimestamp(text string, opts map[string]any, ctx *lint.Context) (string, bool, error) {
	dateCreated := lint.GetBoolOption(opts, "dateCreated", true)
	dateModified := lint.GetBoolOption(opts, "dateModified", true)
	if !dateCreated && !dateModified {
		return text, false, nil
	}

	createdKey := lint.GetStringOption(opts, "dateCreatedKey", "date created")
	modifiedKey := lint.GetStringOption(opts, "dateModifiedKey", "date modified")
	format := lint.GetStringOption(opts, "format", lint.DefaultTimestampFormat)

	block, body, found := yamlfm.Split(text)
	if !found {
		block, body = "", text
	}
	newBlock := block

	if dateCreated {
		if _, ok := yamlfm.Value(newBlock, createdKey); !ok {
			created := monday.Format(ctx.CreatedAt, format, ctx.Locale)
			newBlock = yamlfm.SetValue(newBlock, createdKey, created)
		}
	}

	stamped := false
	if dateModified {
		_, hasModified := yamlfm.Value(newBlock, modifiedKey)
		if !hasModified || ctx.AlreadyModified || newBlock != block {
			now := monday.Format(ctx.Now, format, ctx.Locale)
			updated := yamlfm.SetValue(newBlock, modifiedKey, now)
			stamped = updated != newBlock || !hasModified
			newBlock = updated
		}
	}

	if newBlock == block {
		return text, false, nil
	}
	return yamlfm.Join(newBlock, body), stamped, nil
}
