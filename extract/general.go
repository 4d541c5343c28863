package extract

import (
	"strconv"

	"github.com/dlclark/regexp2"
)

// The compact YYYY[sep]MM[sep]DD shape is common enough (ISO-like) to
// deserve a fast path that sidesteps the token order machinery. Month and
// day must be exactly two digits here, unlike the positional path.
func compileGeneralRegex(sepPattern string) *regexp2.Regexp {
	sep := ""
	if sepPattern != "" {
		sep = "(?:" + sepPattern + ")?"
	}
	return regexp2.MustCompile(
		`\b([12]\d{3})`+sep+`(0[1-9]|1[0-2])`+sep+`([0-2]\d|3[01])\b`,
		regexp2.None,
	)
}

// matchGeneralFormat scans input for the first compact date, word-bounded
// at both ends. No match is ordinary control flow, not an error.
func matchGeneralFormat(generalRegex *regexp2.Regexp, input string) (year int, month int, day int, ok bool) {
	match, err := generalRegex.FindStringMatch(input)
	if err != nil || match == nil {
		return 0, 0, 0, false
	}
	groups := match.Groups()
	year, _ = strconv.Atoi(groups[1].String())
	month, _ = strconv.Atoi(groups[2].String())
	day, _ = strconv.Atoi(groups[3].String())
	return year, month, day, true
}
