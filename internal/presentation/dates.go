package presentation

import (
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

type dateLocale struct {
	tag       language.Tag
	locale    monday.Locale
	shortDate string // day + short month layout in regional order
}

var (
	// First entry is the fallback when nothing matches.
	dateLocales = []dateLocale{
		{language.AmericanEnglish, monday.LocaleEnUS, "Jan 2"},
		{language.BritishEnglish, monday.LocaleEnGB, "2 Jan"},
		{language.Spanish, monday.LocaleEsES, "2 Jan"},
		{language.French, monday.LocaleFrFR, "2 Jan"},
		{language.German, monday.LocaleDeDE, "2. Jan"},
		{language.EuropeanPortuguese, monday.LocalePtPT, "2 Jan"},
		{language.BrazilianPortuguese, monday.LocalePtBR, "2 Jan"},
		{language.Italian, monday.LocaleItIT, "2 Jan"},
		{language.Dutch, monday.LocaleNlNL, "2 Jan"},
	}
	localeMatcher = language.NewMatcher(supportedTags())
)

func supportedTags() []language.Tag {
	tags := make([]language.Tag, len(dateLocales))
	for i, l := range dateLocales {
		tags[i] = l.tag
	}
	return tags
}

// DateFormatter renders forecast dates for one negotiated locale.
type DateFormatter struct {
	loc dateLocale
}

// NewDateFormatter negotiates locale (a BCP 47 tag or an Accept-Language
// header value) against the supported locales, falling back to US English.
func NewDateFormatter(locale string) *DateFormatter {
	tags, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(tags) == 0 {
		return &DateFormatter{loc: dateLocales[0]}
	}
	_, idx, conf := localeMatcher.Match(tags...)
	if conf == language.No {
		idx = 0
	}
	return &DateFormatter{loc: dateLocales[idx]}
}

// DayName returns the short weekday name of an ISO date, or the input
// unchanged if it is not one.
func (f *DateFormatter) DayName(isoDate string) string {
	t, err := time.Parse(time.DateOnly, isoDate)
	if err != nil {
		return isoDate
	}
	return monday.Format(t, "Mon", f.loc.locale)
}

// ShortDate returns day and short month of an ISO date, or the input
// unchanged if it is not one.
func (f *DateFormatter) ShortDate(isoDate string) string {
	t, err := time.Parse(time.DateOnly, isoDate)
	if err != nil {
		return isoDate
	}
	return monday.Format(t, f.loc.shortDate, f.loc.locale)
}

// ClockTime renders the HH:MM part of a local timestamp such as a sunrise.
func ClockTime(localISO string) string {
	t, ok := parseLocal(localISO)
	if !ok {
		return Placeholder
	}
	return t.Format("15:04")
}
