package interpreter

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	tonRe     = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*ton\b`)
	setsRepsRe = regexp.MustCompile(`(\d+)\s*[x×*]\s*(\d+)\s*[x×*]\s*(\d+(?:[.,]\d+)?)\s*(?:kg)?`)
	bareKgRe  = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:kg|kilo)\b`)

	hrPairRe   = regexp.MustCompile(`(?:puls|hr|bpm)\s*:?\s*(\d{2,3})\s*/\s*(\d{2,3})`)
	hrSingleRe = regexp.MustCompile(`(?:puls|hr|bpm)\s*:?\s*(\d{2,3})`)
	hrSuffixRe = regexp.MustCompile(`(\d{2,3})\s*bpm`)

	distanceRe = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*km\b`)

	paceAtRe     = regexp.MustCompile(`@(\d{1,2}):(\d{2})`)
	paceClockRe  = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*(?:min/km|/km)`)
	paceTempoRe  = regexp.MustCompile(`tempo\s*(\d{1,2}):(\d{2})`)
	paceDecimalRe = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*min/km`)

	durationRe = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(minuters|minuter|minut|mins|min|timmar|timme|tim|h)\b`)
)

// maxSingleLiftKg: a bare kg figure above this is always tonnage, no matter
// what type context says. Below it, tonnage requires strength context.
const maxSingleLiftKg = 300

// defaultDurationMin applies when neither an explicit duration nor a
// distance-derived estimate exists.
const defaultDurationMin = 30

// extractExercise resolves type, tonnage, intensity, heart rate, distance,
// pace, duration and subtype from the date-stripped text. Numeric spans are
// consumed as they are claimed so a tonnage or distance figure is never
// reinterpreted as a duration.
func extractExercise(text string, _ time.Time) (Intent, bool) {
	typ, typeWord, typeFound := matchExerciseType(text)

	rest := text

	// Tonnage first: it competes with duration for bare numbers.
	tonnage, rest := resolveTonnage(rest, typ, typeFound)

	intensity := resolveIntensity(text)

	avgHR, maxHR, rest := resolveHeartRate(rest)

	distance, rest := resolveDistance(rest)

	paceSec, rest := resolvePace(rest)

	duration, durationFound, rest := resolveDuration(rest)
	if !durationFound {
		if distance > 0 {
			pace := paceSec
			if pace == 0 {
				pace = defaultPaceSecPerKm[intensity]
			}
			duration = int(math.Round(distance * float64(pace) / 60))
		} else {
			duration = defaultDurationMin
		}
	}

	subtype, subtypeFound := resolveRunningSubtype(text)
	if !subtypeFound && tonnage > 0 {
		subtype = SubtypeTonnage
	}

	// Infer a type when no keyword matched but other signals identify the session.
	if !typeFound {
		switch {
		case subtypeFound, distance > 0, paceSec > 0:
			typ = ExerciseRunning
			typeFound = true
		case tonnage > 0:
			typ = ExerciseStrength
			typeFound = true
		}
	}

	// A bare duration is ambiguous with other numeric intents; require at
	// least one exercise anchor.
	if !typeFound && tonnage == 0 && distance == 0 && avgHR == 0 {
		return Intent{}, false
	}
	if !typeFound {
		typ = ExerciseOther
	}

	data := &ExerciseData{
		Type:         typ,
		DurationMin:  duration,
		Intensity:    intensity,
		Subtype:      subtype,
		TonnageKg:    tonnage,
		DistanceKm:   distance,
		PaceSecPerKm: paceSec,
		AvgHeartRate: avgHR,
		MaxHeartRate: maxHR,
		Notes:        exerciseNotes(rest, typeWord),
	}

	return Intent{Kind: KindExercise, Exercise: data}, true
}

// matchExerciseType scans the keyword table longest-first with boundary-safe
// matching.
func matchExerciseType(text string) (ExerciseType, string, bool) {
	for _, kw := range exerciseTypeKeywords {
		if hasToken(text, kw.word) {
			return kw.typ, kw.word, true
		}
	}
	return ExerciseOther, "", false
}

// resolveTonnage claims a tonnage figure and removes its span from the text
// used for later numeric parsing.
func resolveTonnage(text string, typ ExerciseType, typeFound bool) (float64, string) {
	if m := tonRe.FindStringSubmatchIndex(text); m != nil {
		if v, ok := parseAmount(text[m[2]:m[3]]); ok {
			return v * 1000, removeSpan(text, m[0], m[1])
		}
	}

	if m := setsRepsRe.FindStringSubmatchIndex(text); m != nil {
		sets, _ := strconv.Atoi(text[m[2]:m[3]])
		reps, _ := strconv.Atoi(text[m[4]:m[5]])
		if weight, ok := parseAmount(text[m[6]:m[7]]); ok && sets > 0 && reps > 0 {
			return float64(sets*reps) * weight, removeSpan(text, m[0], m[1])
		}
	}

	if m := bareKgRe.FindStringSubmatchIndex(text); m != nil {
		if v, ok := parseAmount(text[m[2]:m[3]]); ok {
			strengthContext := (typeFound && typ == ExerciseStrength) || hasLiftKeyword(text)
			if strengthContext || v > maxSingleLiftKg {
				return v, removeSpan(text, m[0], m[1])
			}
		}
	}

	return 0, text
}

func hasLiftKeyword(text string) bool {
	for _, kw := range liftKeywords {
		if hasToken(text, kw) {
			return true
		}
	}
	return false
}

func resolveIntensity(text string) Intensity {
	for _, kw := range intensityKeywords {
		if hasToken(text, kw.word) {
			return kw.intensity
		}
	}
	return IntensityModerate
}

func resolveHeartRate(text string) (int, int, string) {
	if m := hrPairRe.FindStringSubmatchIndex(text); m != nil {
		avg, _ := strconv.Atoi(text[m[2]:m[3]])
		max, _ := strconv.Atoi(text[m[4]:m[5]])
		return avg, max, removeSpan(text, m[0], m[1])
	}
	if m := hrSingleRe.FindStringSubmatchIndex(text); m != nil {
		avg, _ := strconv.Atoi(text[m[2]:m[3]])
		return avg, 0, removeSpan(text, m[0], m[1])
	}
	if m := hrSuffixRe.FindStringSubmatchIndex(text); m != nil {
		avg, _ := strconv.Atoi(text[m[2]:m[3]])
		return avg, 0, removeSpan(text, m[0], m[1])
	}
	return 0, 0, text
}

func resolveDistance(text string) (float64, string) {
	if m := distanceRe.FindStringSubmatchIndex(text); m != nil {
		if v, ok := parseAmount(text[m[2]:m[3]]); ok {
			return v, removeSpan(text, m[0], m[1])
		}
	}
	return 0, text
}

// resolvePace normalizes any accepted pace spelling to seconds per kilometer.
func resolvePace(text string) (int, string) {
	for _, re := range []*regexp.Regexp{paceAtRe, paceClockRe, paceTempoRe} {
		if m := re.FindStringSubmatchIndex(text); m != nil {
			minutes, _ := strconv.Atoi(text[m[2]:m[3]])
			seconds, _ := strconv.Atoi(text[m[4]:m[5]])
			if seconds < 60 {
				return minutes*60 + seconds, removeSpan(text, m[0], m[1])
			}
		}
	}
	if m := paceDecimalRe.FindStringSubmatchIndex(text); m != nil {
		if v, ok := parseAmount(text[m[2]:m[3]]); ok {
			return int(math.Round(v * 60)), removeSpan(text, m[0], m[1])
		}
	}
	return 0, text
}

// resolveDuration requires an explicit unit suffix. The text it sees has had
// tonnage, distance, heart-rate and pace spans removed.
func resolveDuration(text string) (int, bool, string) {
	m := durationRe.FindStringSubmatchIndex(text)
	if m == nil {
		return 0, false, text
	}
	v, ok := parseAmount(text[m[2]:m[3]])
	if !ok {
		return 0, false, text
	}
	unit := text[m[4]:m[5]]
	if unit == "h" || strings.HasPrefix(unit, "tim") {
		v *= 60
	}
	return int(math.Round(v)), true, removeSpan(text, m[0], m[1])
}

func resolveRunningSubtype(text string) (Subtype, bool) {
	for _, kw := range runningSubtypeKeywords {
		if hasToken(text, kw.word) {
			return kw.subtype, true
		}
	}
	return SubtypeDefault, false
}

// exerciseNotes turns the unconsumed residue into free-text notes, dropping
// the matched type word and any lexicon keywords.
func exerciseNotes(rest, typeWord string) string {
	if typeWord != "" {
		if i := indexToken(rest, typeWord); i >= 0 {
			rest = removeSpan(rest, i, i+len(typeWord))
		}
	}
	for _, kw := range intensityKeywords {
		if i := indexToken(rest, kw.word); i >= 0 {
			rest = removeSpan(rest, i, i+len(kw.word))
		}
	}
	for _, kw := range runningSubtypeKeywords {
		if i := indexToken(rest, kw.word); i >= 0 {
			rest = removeSpan(rest, i, i+len(kw.word))
		}
	}

	rest = strings.Trim(strings.TrimSpace(rest), ".,;:!-@")
	if rest == "" || isPurelyNumeric(rest) {
		return ""
	}
	return rest
}

var numericOnlyRe = regexp.MustCompile(`^[\d.,:\s/x×*-]+$`)

func isPurelyNumeric(s string) bool {
	return numericOnlyRe.MatchString(s)
}
