// Package locale resolves user-supplied locale identifiers to the date
// formatting locales supported by the timestamp rules, falling back to
// US English when a tag is unknown or malformed.
package locale

import (
	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// Default is used whenever resolution fails.
const Default = monday.LocaleEnUS

var supported = []struct {
	tag language.Tag
	loc monday.Locale
}{
	{language.AmericanEnglish, monday.LocaleEnUS},
	{language.BritishEnglish, monday.LocaleEnGB},
	{language.German, monday.LocaleDeDE},
	{language.French, monday.LocaleFrFR},
	{language.EuropeanSpanish, monday.LocaleEsES},
	{language.Italian, monday.LocaleItIT},
	{language.Dutch, monday.LocaleNlNL},
	{language.BrazilianPortuguese, monday.LocalePtBR},
	{language.EuropeanPortuguese, monday.LocalePtPT},
	{language.Russian, monday.LocaleRuRU},
	{language.Swedish, monday.LocaleSvSE},
	{language.Polish, monday.LocalePlPL},
	{language.Turkish, monday.LocaleTrTR},
	{language.Japanese, monday.LocaleJaJP},
	{language.SimplifiedChinese, monday.LocaleZhCN},
}

var matcher language.Matcher

func init() {
	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tags[i] = s.tag
	}
	matcher = language.NewMatcher(tags)
}

// Resolve maps a BCP 47 identifier ("de", "pt-BR", "en_US") to a formatting
// locale. Unknown or empty identifiers resolve to Default.
func Resolve(id string) monday.Locale {
	if id == "" {
		return Default
	}
	tag, err := language.Parse(id)
	if err != nil {
		return Default
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Default
	}
	return supported[idx].loc
}
