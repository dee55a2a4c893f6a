package interpreter

import (
	"regexp"
	"time"
)

var (
	measurementAfterRe  = regexp.MustCompile(`^\s*:?\s*(\d+(?:[.,]\d+)?)\s*(?:cm)?`)
	measurementBeforeRe = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:cm)?\s*$`)
)

// extractMeasurement resolves a body-site keyword with an optional numeric
// value in either order ("midja 84", "84 midja", trailing "cm" allowed). A
// bare generic measurement word yields an empty payload that opens the
// measurement view.
func extractMeasurement(text string, _ time.Time) (Intent, bool) {
	for _, kw := range measurementSiteKeywords {
		i := indexToken(text, kw.word)
		if i < 0 {
			continue
		}

		value := 0.0
		if v, ok := measurementValueNear(text, i, i+len(kw.word)); ok {
			value = v
		}

		return Intent{
			Kind:        KindMeasurement,
			Measurement: &MeasurementData{Site: kw.site, ValueCm: value},
		}, true
	}

	for _, word := range genericMeasurementWords {
		if hasToken(text, word) {
			return Intent{Kind: KindMeasurement, Measurement: &MeasurementData{}}, true
		}
	}

	return Intent{}, false
}

// measurementValueNear looks for a number directly after the keyword span,
// then directly before it.
func measurementValueNear(text string, start, end int) (float64, bool) {
	if m := measurementAfterRe.FindStringSubmatch(text[end:]); m != nil {
		if v, ok := parseAmount(m[1]); ok {
			return v, true
		}
	}

	if m := measurementBeforeRe.FindStringSubmatch(text[:start]); m != nil {
		if v, ok := parseAmount(m[1]); ok {
			return v, true
		}
	}

	return 0, false
}
