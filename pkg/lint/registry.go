package lint

import (
	"fmt"
	"sync"
)

// globalRegistry is the single global registry for all lint rules.
var globalRegistry = &registry{
	byAlias: make(map[string]int),
}

// registry stores registered rules in registration order. Ordering is
// significant: the orchestrator's generic pass follows it.
type registry struct {
	mu      sync.RWMutex
	rules   []RuleDef
	byAlias map[string]int
}

// Register adds a rule to the global registry. Call this when assembling the
// rule set at program start; registering the same alias twice panics.
func Register(rule RuleDef) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	if _, dup := globalRegistry.byAlias[rule.Alias]; dup {
		panic(fmt.Sprintf("lint: rule %q registered twice", rule.Alias))
	}
	globalRegistry.rules = append(globalRegistry.rules, rule)
	globalRegistry.byAlias[rule.Alias] = len(globalRegistry.rules) - 1
}

// All returns the registered rules in registration order.
func All() []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	out := make([]RuleDef, len(globalRegistry.rules))
	copy(out, globalRegistry.rules)
	return out
}

// ByAlias returns a rule by its alias.
func ByAlias(alias string) (RuleDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	i, ok := globalRegistry.byAlias[alias]
	if !ok {
		return RuleDef{}, false
	}
	return globalRegistry.rules[i], true
}

// Count returns the number of registered rules.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.rules)
}

// Clear removes all registered rules. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules = nil
	globalRegistry.byAlias = make(map[string]int)
}
