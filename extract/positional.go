package extract

import (
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

type partKind int

const (
	partDay partKind = iota
	partMonth
	partYear
)

func (k partKind) String() string {
	switch k {
	case partDay:
		return "day"
	case partMonth:
		return "month"
	case partYear:
		return "year"
	default:
		panic("Unknown part kind")
	}
}

var dayRegex *regexp2.Regexp
var monthRegex *regexp2.Regexp
var yearRegex *regexp2.Regexp

func init() {
	// Each kind matches at the start of a token, with no digit following,
	// so that "3" of "31" can't be taken for a month.
	dayRegex = regexp2.MustCompile(`\A(0?[1-9]|[12]\d|3[01])(?=\D|\z)`, regexp2.None)
	monthRegex = regexp2.MustCompile(`\A(0?[1-9]|1[0-2])(?=\D|\z)`, regexp2.None)
	yearRegex = regexp2.MustCompile(`\A([12]\d{3})(?=\D|\z)`, regexp2.None)
}

func (k partKind) regex() *regexp2.Regexp {
	switch k {
	case partDay:
		return dayRegex
	case partMonth:
		return monthRegex
	case partYear:
		return yearRegex
	default:
		panic("Unknown part kind")
	}
}

func (f *DateFields) isSet(kind partKind) bool {
	switch kind {
	case partDay:
		return f.DayIsSet
	case partMonth:
		return f.MonthIsSet
	case partYear:
		return f.YearIsSet
	default:
		panic("Unknown part kind")
	}
}

func (f *DateFields) set(kind partKind, value int) {
	switch kind {
	case partDay:
		f.setDay(value)
	case partMonth:
		f.setMonth(value)
	case partYear:
		f.setYear(value)
	default:
		panic("Unknown part kind")
	}
}

// assignPositional splits the lowercased input on the configured
// separators and assigns tokens to the still-unresolved parts in
// resolution order. Garbage tokens are skipped; unresolved parts stay
// unset.
func (e *Extractor) assignPositional(input string, fields *DateFields) {
	var tokens []string
	if e.splitRegex != nil {
		tokens = e.splitRegex.Split(input, -1)
	} else {
		tokens = []string{input}
	}

	// In month-first mode a purely numeric day token could consume the
	// month slot before an alphabetic month token is reached. Resolve any
	// named month up front.
	if !e.loc.DayFirst() && !fields.MonthIsSet {
		for _, token := range tokens {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			if ordinal, ok := matchMonth(e.loc, token); ok {
				fields.setMonth(ordinal)
				break
			}
		}
	}

	order := []partKind{partDay, partMonth, partYear}
	if !e.loc.DayFirst() {
		order = []partKind{partMonth, partDay, partYear}
	}
	remaining := make([]partKind, 0, len(order))
	for _, kind := range order {
		if !fields.isSet(kind) {
			remaining = append(remaining, kind)
		}
	}

	for _, token := range tokens {
		if len(remaining) == 0 {
			break
		}
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		for i, kind := range remaining {
			match, err := kind.regex().FindStringMatch(token)
			if err == nil && match != nil {
				value, err := strconv.Atoi(match.String())
				if err != nil {
					continue
				}
				fields.set(kind, value)
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}

			if kind == partMonth && !fields.MonthIsSet {
				if ordinal, ok := matchMonth(e.loc, token); ok {
					fields.setMonth(ordinal)
					remaining = append(remaining[:i], remaining[i+1:]...)
					break
				}
			}
		}
	}
}
