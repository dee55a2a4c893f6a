package interpreter

import (
	"regexp"
	"time"
)

var (
	weightKeywordRe = regexp.MustCompile(`(?:^|\s)vikt\s*:?\s*(\d+(?:[.,]\d+)?)`)
	weightUnitRe    = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:kg|kilo)\b`)
)

// Plausibility band for a body-weight update, exclusive on both ends.
const (
	minBodyWeightKg = 20
	maxBodyWeightKg = 500
)

// extractWeight resolves a numeric token anchored by a leading "vikt" keyword
// or a trailing kg unit. The anchor plus the bounds check is the whole
// disambiguation against tonnage and other numeric mentions.
func extractWeight(text string, _ time.Time) (Intent, bool) {
	for _, re := range []*regexp.Regexp{weightKeywordRe, weightUnitRe} {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, ok := parseAmount(m[1])
		if !ok {
			continue
		}
		if v > minBodyWeightKg && v < maxBodyWeightKg {
			return Intent{Kind: KindWeight, Weight: &WeightData{WeightKg: v}}, true
		}
	}
	return Intent{}, false
}
