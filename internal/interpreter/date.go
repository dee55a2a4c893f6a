package interpreter

import (
	"regexp"
	"strconv"
	"time"

	"halsologg/pkg/datemath"
)

// Relative day words, longest-first so "i förrgår" is consumed before "igår"
// could ever be probed inside it.
var relativeDayWords = []string{
	"day before yesterday",
	"i förrgår",
	"förrgår",
	"yesterday",
	"imorgon",
	"tomorrow",
	"today",
	"idag",
	"igår",
}

// Absolute fragments: [YYYY-]MM-DD. Matched against the raw lowercase input
// before anything else runs, so "03-15" can never be misread as a quantity by
// a later extractor.
var absoluteDateRe = regexp.MustCompile(`(?:(\d{4})-)?(\d{1,2})-(\d{1,2})`)

// extractDate strips a date reference from the input and resolves it against
// now. Returns the ISO date (or "") and the remaining text.
func (p *Parser) extractDate(text string, now time.Time) (string, string) {
	for _, word := range relativeDayWords {
		i := indexToken(text, word)
		if i < 0 {
			continue
		}
		resolved, err := p.dates.Parse(word, now)
		if err != nil {
			continue
		}
		return resolved.Format(datemath.ISODate), removeSpan(text, i, i+len(word))
	}

	if m := absoluteDateRe.FindStringSubmatchIndex(text); m != nil {
		// Reject matches glued to surrounding word characters, e.g. "12-34" in "2024-12-34x".
		start, end := m[0], m[1]
		bounded := true
		if start > 0 {
			if r, _ := lastRune(text[:start]); isWordChar(r) {
				bounded = false
			}
		}
		if end < len(text) && isWordChar(firstRune(text[end:])) {
			bounded = false
		}

		if bounded {
			year := 0
			if m[2] >= 0 {
				year, _ = strconv.Atoi(text[m[2]:m[3]])
			}
			month, _ := strconv.Atoi(text[m[4]:m[5]])
			day, _ := strconv.Atoi(text[m[6]:m[7]])

			if resolved, ok := p.dates.Date(year, month, day, now); ok {
				return resolved.Format(datemath.ISODate), removeSpan(text, start, end)
			}
		}
	}

	return "", text
}
