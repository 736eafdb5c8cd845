package lint

// Settings is the persisted configuration: one option map per rule alias
// plus global scalars. Pipeline runs receive settings as an immutable
// snapshot; mutation happens only at the configuration surface, which
// produces a new snapshot and persists it.
type Settings struct {
	RuleConfigs map[string]map[string]any `koanf:"rules" yaml:"rules"`

	LintOnSave            bool     `koanf:"lint_on_save" yaml:"lint_on_save"`
	DisplayChangedMessage bool     `koanf:"display_changed_message" yaml:"display_changed_message"`
	Locale                string   `koanf:"locale" yaml:"locale"`
	LogLevel              string   `koanf:"log_level" yaml:"log_level"`
	IgnoredFolders        []string `koanf:"ignored_folders" yaml:"ignored_folders"`
}

// NewSettings returns settings populated with the defaults of every
// registered rule.
func NewSettings() *Settings {
	s := &Settings{
		DisplayChangedMessage: true,
		Locale:                "en",
		LogLevel:              "info",
	}
	s.FillDefaults()
	return s
}

// FillDefaults ensures every registered rule has a fully-populated option
// map: defaults are filled first, stored overrides already present win.
func (s *Settings) FillDefaults() {
	if s.RuleConfigs == nil {
		s.RuleConfigs = make(map[string]map[string]any)
	}
	for _, rule := range All() {
		cfg := s.RuleConfigs[rule.Alias]
		if cfg == nil {
			cfg = make(map[string]any, len(rule.Options))
			s.RuleConfigs[rule.Alias] = cfg
		}
		for _, opt := range rule.Options {
			if _, ok := cfg[opt.Name]; !ok {
				cfg[opt.Name] = opt.Default
			}
		}
	}
}

// legacyEnabledKey is the pre-rename spelling of the enabled option.
const legacyEnabledKey = "Enabled"

// MigrateLegacyKeys copies each rule's legacy enabled key to its current
// name and discards the old one. It reports whether anything changed, so
// the caller knows to persist.
func (s *Settings) MigrateLegacyKeys() bool {
	changed := false
	for _, cfg := range s.RuleConfigs {
		v, ok := cfg[legacyEnabledKey]
		if !ok {
			continue
		}
		if _, has := cfg[EnabledOptionName]; !has {
			cfg[EnabledOptionName] = v
		}
		delete(cfg, legacyEnabledKey)
		changed = true
	}
	return changed
}

// RuleOptions returns the option map for a rule alias. The map may be nil
// for unregistered aliases; rule code reads it through the typed getters.
func (s *Settings) RuleOptions(alias string) map[string]any {
	if s == nil || s.RuleConfigs == nil {
		return nil
	}
	return s.RuleConfigs[alias]
}

// SetRuleOption updates one option value.
func (s *Settings) SetRuleOption(alias, name string, value any) {
	if s.RuleConfigs == nil {
		s.RuleConfigs = make(map[string]map[string]any)
	}
	cfg := s.RuleConfigs[alias]
	if cfg == nil {
		cfg = make(map[string]any)
		s.RuleConfigs[alias] = cfg
	}
	cfg[name] = value
}

// Clone returns a deep copy, used to hand each run its own snapshot.
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}
	out := *s
	out.RuleConfigs = make(map[string]map[string]any, len(s.RuleConfigs))
	for alias, cfg := range s.RuleConfigs {
		c := make(map[string]any, len(cfg))
		for k, v := range cfg {
			c[k] = v
		}
		out.RuleConfigs[alias] = c
	}
	out.IgnoredFolders = append([]string(nil), s.IgnoredFolders...)
	return &out
}
