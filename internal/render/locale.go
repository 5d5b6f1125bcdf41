// Package render turns domain values into the labels both front-ends show.
package render

import (
	"fmt"
	"time"

	"clientTaskTracker/internal/models/task"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

type dateStyle int

const (
	monthFirst dateStyle = iota
	dayFirst
	buddhistEra
)

// buddhistOffset converts a Gregorian year to the Thai solar calendar.
const buddhistOffset = 543

var thai = language.MustParse("th-TH")

var supported = []language.Tag{
	language.AmericanEnglish,
	language.BritishEnglish,
	thai,
}

var styles = []dateStyle{monthFirst, dayFirst, buddhistEra}

var matcher = language.NewMatcher(supported)

type Locale struct {
	tag     language.Tag
	style   dateStyle
	printer *message.Printer
}

// NewLocale picks the closest supported locale for a BCP 47 name.
func NewLocale(name string) (Locale, error) {
	requested, err := language.Parse(name)
	if err != nil {
		return Locale{}, fmt.Errorf("parse locale %q: %w", name, err)
	}

	_, idx, _ := matcher.Match(requested)
	tag := supported[idx]
	return Locale{
		tag:     tag,
		style:   styles[idx],
		printer: message.NewPrinter(tag, message.Catalog(labels)),
	}, nil
}

// MustLocale is NewLocale for names known at compile time.
func MustLocale(name string) Locale {
	loc, err := NewLocale(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func (l Locale) Tag() string {
	return l.tag.String()
}

// T translates a label key; keys are the English texts.
func (l Locale) T(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// Date formats a calendar day; the zero Date renders as "".
func (l Locale) Date(d task.Date) string {
	if d.IsZero() {
		return ""
	}
	switch l.style {
	case dayFirst:
		return fmt.Sprintf("%02d/%02d/%d", d.Day, int(d.Month), d.Year)
	case buddhistEra:
		return fmt.Sprintf("%d/%d/%d", d.Day, int(d.Month), d.Year+buddhistOffset)
	default:
		return fmt.Sprintf("%d/%d/%d", int(d.Month), d.Day, d.Year)
	}
}

// Day labels the local calendar day of an instant, used for creation dates.
func (l Locale) Day(t time.Time) string {
	return l.Date(task.DateOf(t.Local()))
}

func (l Locale) Priority(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return l.T("High priority")
	case task.PriorityLow:
		return l.T("Low priority")
	default:
		return l.T("Medium priority")
	}
}

var labels = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range thaiLabels {
		if err := b.SetString(thai, key, msg); err != nil {
			panic(err)
		}
	}
	return b
}
