package lint

import (
	"log/slog"
	"time"

	"github.com/goodsign/monday"

	"github.com/mdtidy/mdtidy/pkg/locale"
	"github.com/mdtidy/mdtidy/pkg/yamlfm"
)

// Result is the outcome of one linting pass.
type Result struct {
	Text string
	// TimestampUpdated reports whether the yaml-timestamp rule rewrote the
	// modification timestamp.
	TimestampUpdated bool
}

// Engine drives one linting pass over a document: front-matter pre-rules,
// the generic ordered pass, the timestamp rule, then the key-sort rule.
// The stage order is fixed; users only enable/disable rules.
type Engine struct {
	settings *Settings
	logger   *slog.Logger
	now      func() time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the engine's logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) { e.logger = l }
}

// WithClock overrides the time source. Used in tests.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an engine over a settings snapshot. The snapshot is
// read-only for the engine's lifetime.
func NewEngine(settings *Settings, opts ...EngineOption) *Engine {
	if settings == nil {
		settings = NewSettings()
	}
	e := &Engine{
		settings: settings,
		logger:   slog.New(slog.DiscardHandler),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Settings returns the engine's settings snapshot.
func (e *Engine) Settings() *Settings {
	return e.settings
}

// Lint runs the full pipeline and returns the corrected text. On failure the
// document must not be modified by the caller; the error is a *ContentError
// classifying the failure.
func (e *Engine) Lint(original string, meta FileMeta) (Result, error) {
	// The disabled set comes from the original text only, never from
	// intermediate states, so a rule cannot suppress itself via text it emits.
	disabled := ScanDisabledRules(original)

	ctx := &Context{
		CreatedAt:  meta.CreatedAt,
		ModifiedAt: meta.ModifiedAt,
		FileName:   meta.Name,
		Locale:     locale.Resolve(e.settings.Locale),
	}

	text := original

	// Front-matter pre-rules run before the block is ever parsed into
	// structured form: tag formatting first, then escaping, since unescaped
	// values can make the block unparsable.
	for _, alias := range []string{AliasFormatTags, AliasEscapeYAML} {
		next, err := e.runByAlias(alias, text, disabled, ctx)
		if err != nil {
			return Result{}, wrapRuleError(meta.Path, err)
		}
		text = next
	}

	// The block must parse now; anything the pre-rules could not repair is a
	// structured-metadata error.
	if yamlfm.Has(text) {
		if _, _, err := yamlfm.Parse(text); err != nil {
			return Result{}, wrapRuleError(meta.Path, err)
		}
	}

	// Generic ordered pass.
	for _, rule := range All() {
		if rule.SpecialExecutionOrder || disabled.Has(rule.Alias) {
			continue
		}
		opts := e.settings.RuleOptions(rule.Alias)
		if !rule.Enabled(opts) {
			continue
		}
		next, err := rule.Apply(text, opts, ctx)
		if err != nil {
			return Result{}, wrapRuleError(meta.Path, err)
		}
		if next != text {
			e.logger.Debug("rule changed text", "rule", rule.Alias, "file", meta.Name)
		}
		text = next
	}

	// Timestamp rule: its decision to stamp a modified time must be driven
	// by what the earlier stages changed, never by its own output.
	tsOpts := e.settings.RuleOptions(AliasTimestamp)
	timestampUpdated := false
	if rule, ok := ByAlias(AliasTimestamp); ok && rule.Enabled(tsOpts) && !disabled.Has(AliasTimestamp) {
		ctx.Now = e.now()
		ctx.AlreadyModified = text != original
		next, updated, err := rule.ApplyStamp(text, tsOpts, ctx)
		if err != nil {
			return Result{}, wrapRuleError(meta.Path, err)
		}
		text = next
		timestampUpdated = updated
	}

	// Key-sort runs last of all. The formatted time is recomputed from a
	// fresh clock read rather than reused from the timestamp stage.
	if rule, ok := ByAlias(AliasKeySort); ok && !disabled.Has(AliasKeySort) {
		opts := e.settings.RuleOptions(AliasKeySort)
		if rule.Enabled(opts) {
			ctx.CurrentTimeFormatted = monday.Format(e.now(), timestampFormat(tsOpts), ctx.Locale)
			ctx.DateModifiedKey = GetStringOption(tsOpts, "dateModifiedKey", "date modified")
			ctx.TimestampUpdated = timestampUpdated
			next, _, err := rule.ApplyStamp(text, opts, ctx)
			if err != nil {
				return Result{}, wrapRuleError(meta.Path, err)
			}
			text = next
		}
	}

	return Result{Text: text, TimestampUpdated: timestampUpdated}, nil
}

// runByAlias executes one special-stage rule if it is registered, enabled,
// and not disabled for this run.
func (e *Engine) runByAlias(alias, text string, disabled DisabledRules, ctx *Context) (string, error) {
	rule, ok := ByAlias(alias)
	if !ok || disabled.Has(alias) {
		return text, nil
	}
	opts := e.settings.RuleOptions(alias)
	if !rule.Enabled(opts) {
		return text, nil
	}
	return rule.Apply(text, opts, ctx)
}

// timestampFormat reads the timestamp rule's layout option.
func timestampFormat(tsOpts map[string]any) string {
	return GetStringOption(tsOpts, "format", DefaultTimestampFormat)
}

// DefaultTimestampFormat is the Go layout used for front-matter timestamps
// when the yaml-timestamp rule has no explicit format configured.
const DefaultTimestampFormat = "Monday, January 2 2006, 3:04:05 pm"
