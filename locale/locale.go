// Package locale holds the mutable parsing configuration: the separator
// set, the day-first preference and the month name table.
//
// A Locale is meant to be configured once and then shared by every parse
// call that references it. It carries no internal locking: mutating it
// while another goroutine is parsing is undefined behavior.
package locale

import (
	"regexp"
	"strings"

	om "github.com/wk8/go-ordered-map/v2"

	"datehound/oops"
)

var ErrOrdinalRange = oops.Sentinel("month ordinal out of range")
var ErrLocaleShape = oops.Sentinel("locale must list 12 distinct month names")

const MonthCount = 12

type Locale struct {
	dayFirst   bool
	separators *om.OrderedMap[string, struct{}]
	months     [MonthCount]*om.OrderedMap[string, struct{}]
	sepPattern string
	generation uint64
}

var englishMonths = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

var ukrainianMonths = []string{
	"січень", "лютий", "березень", "квітень", "травень", "червень",
	"липень", "серпень", "вересень", "жовтень", "листопад", "грудень",
}

var russianMonths = []string{
	"январь", "февраль", "март", "апрель", "май", "июнь",
	"июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь",
}

var defaultSeparators = []string{" ", ".", "-", "/", ","}

// New returns a Locale preloaded with the default separators and the
// English, Ukrainian and Russian month names, in day-first mode.
func New() *Locale {
	l := &Locale{ //nolint:exhaustruct
		dayFirst:   true,
		separators: om.New[string, struct{}](),
	}
	for i := range l.months {
		l.months[i] = om.New[string, struct{}]()
	}
	for _, separator := range defaultSeparators {
		l.AddSeparator(separator)
	}
	for _, names := range [][]string{englishMonths, ukrainianMonths, russianMonths} {
		if err := l.AddMonthLocale(names); err != nil {
			panic(err)
		}
	}
	return l
}

func (l *Locale) DayFirst() bool {
	return l.dayFirst
}

func (l *Locale) SetDayFirst(dayFirst bool) {
	l.dayFirst = dayFirst
}

// SeparatorPattern is an alternation matching any one configured
// separator, escaped for literal use. Empty when no separators are
// configured.
func (l *Locale) SeparatorPattern() string {
	return l.sepPattern
}

// Generation increments on every separator mutation so that compiled
// patterns can be rebuilt once per configuration change instead of once
// per parse.
func (l *Locale) Generation() uint64 {
	return l.generation
}

func (l *Locale) AddSeparator(separator string) {
	if separator == "" {
		return
	}
	l.separators.Set(separator, struct{}{})
	l.rebuildSeparatorPattern()
}

func (l *Locale) RemoveSeparator(separator string) {
	if _, ok := l.separators.Get(separator); !ok {
		return
	}
	l.separators.Delete(separator)
	l.rebuildSeparatorPattern()
}

func (l *Locale) rebuildSeparatorPattern() {
	var alternatives []string
	for pair := l.separators.Oldest(); pair != nil; pair = pair.Next() {
		alternatives = append(alternatives, regexp.QuoteMeta(pair.Key))
	}
	l.sepPattern = strings.Join(alternatives, "|")
	l.generation++
}

// MonthNames returns the accepted spellings for a month in insertion
// order, or nil if ordinal is outside [1, 12].
func (l *Locale) MonthNames(ordinal int) []string {
	if ordinal < 1 || ordinal > MonthCount {
		return nil
	}
	names := make([]string, 0, l.months[ordinal-1].Len())
	for pair := l.months[ordinal-1].Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

func (l *Locale) HasMonthName(ordinal int, name string) bool {
	if ordinal < 1 || ordinal > MonthCount {
		return false
	}
	_, ok := l.months[ordinal-1].Get(normalizeMonthName(name))
	return ok
}

// AddMonthName registers another accepted spelling for a month. Spellings
// are stored trimmed and lowercased; adding one twice has no effect.
func (l *Locale) AddMonthName(ordinal int, name string) error {
	if ordinal < 1 || ordinal > MonthCount {
		return oops.Wrapf(ErrOrdinalRange, "got %d", ordinal)
	}
	l.months[ordinal-1].Set(normalizeMonthName(name), struct{}{})
	return nil
}

// AddMonthLocale registers one language's vocabulary for the 12 months,
// January first. The month table is left untouched when the list is
// rejected.
func (l *Locale) AddMonthLocale(names []string) error {
	if len(names) != MonthCount {
		return oops.Wrapf(ErrLocaleShape, "got %d names", len(names))
	}
	normalized := make([]string, 0, MonthCount)
	seen := make(map[string]bool, MonthCount)
	for _, name := range names {
		name = normalizeMonthName(name)
		if seen[name] {
			return oops.Wrapf(ErrLocaleShape, "duplicate name %q", name)
		}
		seen[name] = true
		normalized = append(normalized, name)
	}
	for i, name := range normalized {
		if err := l.AddMonthName(i+1, name); err != nil {
			return err
		}
	}
	return nil
}

func normalizeMonthName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
