// Package rules assembles the built-in rule set. Importing it registers
// every rule with the lint registry in pipeline order.
package rules

import (
	"github.com/mdtidy/mdtidy/pkg/lint"
	"github.com/mdtidy/mdtidy/pkg/lint/rules/content"
	"github.com/mdtidy/mdtidy/pkg/lint/rules/spacing"
	"github.com/mdtidy/mdtidy/pkg/lint/rules/yamlrules"
)

func init() {
	for _, def := range Ordered() {
		lint.Register(def)
	}
}

// Ordered returns every built-in rule in registry order. Registration order
// is significant: the orchestrator's generic pass follows it.
func Ordered() []lint.RuleDef {
	var defs []lint.RuleDef
	defs = append(defs, yamlrules.Rules()...)
	defs = append(defs, spacing.Rules()...)
	defs = append(defs, content.Rules()...)
	return defs
}
