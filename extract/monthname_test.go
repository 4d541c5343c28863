package extract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"datehound/locale"
)

func TestMatchMonthConfiguredSpellings(t *testing.T) {
	loc := locale.New()
	for ordinal := 1; ordinal <= locale.MonthCount; ordinal++ {
		names := loc.MonthNames(ordinal)
		require.NotEmpty(t, names, ordinal)
		for _, name := range names {
			matched, ok := matchMonth(loc, name)
			require.True(t, ok, name)
			require.Equal(t, ordinal, matched, name)
		}
	}
}

func TestMatchMonthInflected(t *testing.T) {
	type Test struct {
		Token   string
		Ordinal int
	}
	tests := []Test{
		// Ukrainian genitive
		{"січня", 1},
		{"лютого", 2},
		{"березня", 3},
		{"квітня", 4},
		{"травня", 5},
		{"червня", 6},
		{"липня", 7},
		{"серпня", 8},
		{"вересня", 9},
		{"жовтня", 10},
		{"листопада", 11},
		{"грудня", 12},
		// Russian genitive
		{"января", 1},
		{"февраля", 2},
		{"марта", 3},
		{"апреля", 4},
		{"мая", 5},
		{"июня", 6},
		{"июля", 7},
		{"августа", 8},
		{"сентября", 9},
		{"октября", 10},
		{"ноября", 11},
		{"декабря", 12},
		// English abbreviations and close variants
		{"jan", 1},
		{"januar", 1},
		{"mar", 3},
		{"aug", 8},
		{"sept", 9},
		// Case and whitespace are normalized defensively
		{"  ЛЮТОГО  ", 2},
		{"JANUARY", 1},
	}

	loc := locale.New()
	for _, test := range tests {
		ordinal, ok := matchMonth(loc, test.Token)
		require.True(t, ok, test.Token)
		require.Equal(t, test.Ordinal, ordinal, test.Token)
	}
}

func TestMatchMonthNone(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"not",
		"of",
		"a",
		"date",
		"21",
		"2021",
		"feb", // shares too few letters with "february" for the heuristic
		"xyz",
	}

	loc := locale.New()
	for _, test := range tests {
		_, ok := matchMonth(loc, test)
		require.False(t, ok, test)
	}
}

func TestMatchMonthCrossLocaleDuplicateLowestWins(t *testing.T) {
	loc := locale.New()
	require.NoError(t, loc.AddMonthName(3, "same"))
	require.NoError(t, loc.AddMonthName(7, "same"))

	ordinal, ok := matchMonth(loc, "same")
	require.True(t, ok)
	require.Equal(t, 3, ordinal)
}

func TestIsSameWord(t *testing.T) {
	type Test struct {
		A        string
		B        string
		Expected bool
	}
	tests := []Test{
		{"лютого", "лютий", true},
		{"jan", "january", true},
		{"januar", "january", true},
		{"mar", "march", true},
		// cond 2: letters unique to b must number fewer than half of b
		{"feb", "february", false},
		{"not", "november", false},
		{"may", "march", false},
		// cond 3: prefix anchor
		{"ondecember", "december", false},
		{"a", "april", false},
		// short words compare 2-rune prefixes, longer ones 3
		{"июня", "июнь", true},
		{"июля", "июнь", false},
		{"", "", false},
	}

	for _, test := range tests {
		require.Equal(t, test.Expected, isSameWord(test.A, test.B), "%s / %s", test.A, test.B)
	}
}
