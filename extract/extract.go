// Package extract pulls a calendar date (year, month, day — any subset
// possibly absent) out of an unstructured, human-written string, without
// knowing the input's format in advance.
//
// Purely numeric dates are resolved positionally in the configured
// day-first or month-first order, the compact YYYYMMDD shape gets a
// dedicated fast path, and month names spelled in any configured language
// are recognized including common inflected forms.
//
// Parsing is a pure, total function: any input, including garbage and the
// empty string, yields a DateFields with the unresolvable parts unset.
// An Extractor may be shared across goroutines as long as its Locale is
// not mutated concurrently with parsing.
package extract

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"

	"datehound/locale"
)

type Extractor struct {
	loc          *locale.Locale
	generation   uint64
	splitRegex   *regexp.Regexp // nil when no separators are configured
	generalRegex *regexp2.Regexp
}

func New(loc *locale.Locale) *Extractor {
	e := &Extractor{ //nolint:exhaustruct
		loc: loc,
	}
	e.rebuildPatterns()
	return e
}

// Separator-dependent patterns are rebuilt once per configuration change,
// not once per call.
func (e *Extractor) rebuildPatterns() {
	sepPattern := e.loc.SeparatorPattern()
	if sepPattern == "" {
		e.splitRegex = nil
	} else {
		e.splitRegex = regexp.MustCompile("(?:" + sepPattern + ")")
	}
	e.generalRegex = compileGeneralRegex(sepPattern)
	e.generation = e.loc.Generation()
}

// Parse extracts a date from input. It never fails: parts that aren't
// found are simply unset in the result.
func (e *Extractor) Parse(input string) DateFields {
	return e.ParseWithPresets(&input, DateFields{}) //nolint:exhaustruct
}

// ParseWithPresets extracts a date from maybeInput, treating the set
// fields of presets as already resolved; they are never reassigned. A nil
// maybeInput yields the presets verbatim with no parsing attempted.
func (e *Extractor) ParseWithPresets(maybeInput *string, presets DateFields) DateFields {
	if maybeInput == nil {
		return presets
	}
	if e.generation != e.loc.Generation() {
		e.rebuildPatterns()
	}

	fields := presets
	input := strings.ToLower(strings.TrimSpace(*maybeInput))
	if input == "" {
		return fields
	}

	if year, month, day, ok := matchGeneralFormat(e.generalRegex, input); ok {
		fields.setYear(year)
		fields.setMonth(month)
		fields.setDay(day)
		return fields
	}

	e.assignPositional(input, &fields)
	return fields
}
