// Package interpreter turns a single line of user-typed text into exactly one
// typed intent: an exercise session, a food entry, a body-weight update, a
// vital-sign reading, a body measurement, a navigation command, or a generic
// search. Input is predominantly Swedish with mixed numerals, abbreviations
// and occasional English.
//
// The engine is a pure, synchronous cascade: raw text → normalized text →
// date pre-pass → ordered extractors → first match, else search fallback.
// There is no learned model and no external parsing library; ambiguity (the
// token "20" might mean minutes, kilograms or kilometers) is resolved by
// keyword anchoring, unit suffixes, magnitude thresholds, and the cascade
// order itself.
package interpreter

import (
	"strings"
	"time"

	"halsologg/pkg/datemath"
)

// Parser is the omnibox interpreter. It is safe for concurrent use: all state
// is read-only after construction.
type Parser struct {
	dates *datemath.Parser
}

// New creates a Parser resolving relative dates in the given IANA timezone,
// falling back to UTC when the timezone is unknown.
func New(timezone string) *Parser {
	dates, err := datemath.NewParser(timezone)
	if err != nil {
		dates, _ = datemath.NewParser("UTC")
	}
	return &Parser{dates: dates}
}

// An extractor attempts to recognize one intent category. Returning false
// means "not mine, try the next one" - extractors never fail.
type extractor func(text string, now time.Time) (Intent, bool)

// cascade is the fixed priority order. Earlier extractors win when a line
// could be read several ways: vitals keywords beat exercise keywords, an
// anchored body weight beats a food quantity, and so on. This ordering is a
// design decision for inherently ambiguous input, not guaranteed-correct
// language understanding.
var cascade = []extractor{
	extractVitals,
	extractNavigation,
	extractExercise,
	extractWeight,
	extractMeasurement,
	extractFood,
}

// Parse classifies one input line against the current wall-clock time. It is
// total: every input, including the empty string, yields a well-formed Intent.
// The search fallback carries the original, unmodified text so callers can
// show the user's exact query.
func (p *Parser) Parse(text string, now time.Time) Intent {
	original := text
	normalized := strings.ToLower(strings.TrimSpace(text))

	date, stripped := p.extractDate(normalized, now)

	for _, extract := range cascade {
		if intent, ok := extract(stripped, now); ok {
			intent.Date = date
			return intent
		}
	}

	return Intent{
		Kind:   KindSearch,
		Date:   date,
		Search: &SearchData{Query: original},
	}
}
