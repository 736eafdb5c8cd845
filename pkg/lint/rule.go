package lint

// Well-known rule aliases the orchestrator invokes at fixed pipeline stages.
// All other rules run in registry order.
const (
	AliasFormatTags = "format-tags-in-yaml"
	AliasEscapeYAML = "escape-yaml-special-characters"
	AliasTimestamp  = "yaml-timestamp"
	AliasKeySort    = "yaml-key-sort"
)

// EnabledOptionName is the option every rule declares for its on/off switch.
const EnabledOptionName = "enabled"

// ApplyFunc transforms document text. Rules are pure: the same text,
// options, and context always produce the same output.
type ApplyFunc func(text string, opts map[string]any, ctx *Context) (string, error)

// StampFunc is the apply signature of the end-stage rules. The boolean
// reports whether the rule rewrote the modification timestamp
// (yaml-timestamp) or changed the front-matter block (yaml-key-sort).
type StampFunc func(text string, opts map[string]any, ctx *Context) (string, bool, error)

// OptionType describes how an option value is rendered and updated.
type OptionType int

const (
	OptionBool OptionType = iota
	OptionInt
	OptionString
	OptionStringSlice
)

// OptionSpec declares one configurable option of a rule.
type OptionSpec struct {
	Name        string
	Type        OptionType
	Default     any
	Description string
}

// RuleDef is a data-driven rule definition. Definitions are immutable after
// registration; the registry's ordering is significant.
type RuleDef struct {
	Alias       string // stable identifier used in settings keys and disable directives
	Name        string // human-readable name
	Group       string // category label for grouped display
	Description string
	Options     []OptionSpec

	// SpecialExecutionOrder marks rules the orchestrator invokes explicitly
	// at a fixed stage instead of in the generic ordered loop.
	SpecialExecutionOrder bool

	Apply      ApplyFunc
	ApplyStamp StampFunc
}

// EnabledOption returns the declaration of the rule's enabled flag.
func (r RuleDef) EnabledOption() (OptionSpec, bool) {
	for _, o := range r.Options {
		if o.Name == EnabledOptionName {
			return o, true
		}
	}
	return OptionSpec{}, false
}

// Enabled reports whether the rule is switched on in opts, falling back to
// the declared default.
func (r RuleDef) Enabled(opts map[string]any) bool {
	def := false
	if spec, ok := r.EnabledOption(); ok {
		if d, ok := spec.Default.(bool); ok {
			def = d
		}
	}
	return GetBoolOption(opts, EnabledOptionName, def)
}

// DefaultOptions returns a fully-populated option map for the rule.
func (r RuleDef) DefaultOptions() map[string]any {
	opts := make(map[string]any, len(r.Options))
	for _, o := range r.Options {
		opts[o.Name] = o.Default
	}
	return opts
}
