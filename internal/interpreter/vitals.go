package interpreter

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	sleepBeforeRe = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:h|tim|timme|timmar)?\s*sömn`)
	sleepAfterRe  = regexp.MustCompile(`sömn(?:en)?\s*:?\s*(\d+(?:[.,]\d+)?)`)
	bareHoursRe   = regexp.MustCompile(`^(\d+(?:[.,]\d+)?)\s*(?:h|tim|timme|timmar)$`)

	stepsBeforeRe = regexp.MustCompile(`(\d+)\s*steg`)
	stepsAfterRe  = regexp.MustCompile(`steg\s*:?\s*(\d+)`)

	caffeineBeforeRe = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:mg)?\s*(?:caffeine|koffein|caf)`)
	caffeineAfterRe  = regexp.MustCompile(`(?:caffeine|koffein|caf)\s*:?\s*(\d+(?:[.,]\d+)?)\s*(?:mg)?`)

	coffeeRe = regexp.MustCompile(`(?:(\d+)\s+)?(?:(svagt?|starkt?)\s+)?(?:koppar?\s+)?kaffe`)
	energyRe = regexp.MustCompile(`(?:(\d+)\s+)?(nocco|energidryck|energydryck|energy)`)
	waterRe  = regexp.MustCompile(`(?:(\d+)\s+)?(?:glas\s+)?(vatten|water)\b`)
)

// parseAmount converts a numeric capture to a float, accepting decimal comma.
// Non-finite and negative values count as a non-match.
func parseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}

// extractVitals recognizes sleep, step counts, caffeine, coffee, energy drinks
// and water. Sub-rules are tried in fixed order and the first hit wins.
func extractVitals(text string, _ time.Time) (Intent, bool) {
	// Sleep with an explicit keyword, number on either side.
	if m := sleepBeforeRe.FindStringSubmatch(text); m != nil {
		if v, ok := parseAmount(m[1]); ok {
			return vitalsIntent(VitalSleep, v, 0), true
		}
	}
	if m := sleepAfterRe.FindStringSubmatch(text); m != nil {
		if v, ok := parseAmount(m[1]); ok {
			return vitalsIntent(VitalSleep, v, 0), true
		}
	}
	// A lone "<n>h" token is sleep only in the plausible night-sleep band;
	// anything else stays available as an exercise duration.
	if m := bareHoursRe.FindStringSubmatch(strings.TrimSpace(text)); m != nil {
		if v, ok := parseAmount(m[1]); ok && v > 2 && v < 16 {
			return vitalsIntent(VitalSleep, v, 0), true
		}
	}

	if m := stepsBeforeRe.FindStringSubmatch(text); m != nil {
		if v, ok := parseAmount(m[1]); ok {
			return vitalsIntent(VitalSteps, v, 0), true
		}
	}
	if m := stepsAfterRe.FindStringSubmatch(text); m != nil {
		if v, ok := parseAmount(m[1]); ok {
			return vitalsIntent(VitalSteps, v, 0), true
		}
	}

	// Explicit caffeine milligrams.
	if m := caffeineBeforeRe.FindStringSubmatch(text); m != nil {
		if v, ok := parseAmount(m[1]); ok {
			return vitalsIntent(VitalCoffee, 1, v), true
		}
	}
	if m := caffeineAfterRe.FindStringSubmatch(text); m != nil {
		if v, ok := parseAmount(m[1]); ok {
			return vitalsIntent(VitalCoffee, 1, v), true
		}
	}

	// Coffee with optional count and potency modifier.
	if m := coffeeRe.FindStringSubmatch(text); m != nil {
		count := 1.0
		if m[1] != "" {
			if v, ok := parseAmount(m[1]); ok && v > 0 {
				count = v
			}
		}
		perCup := float64(caffeineCoffeeNormal)
		switch {
		case strings.HasPrefix(m[2], "svag"):
			perCup = caffeineCoffeeWeak
		case strings.HasPrefix(m[2], "stark"):
			perCup = caffeineCoffeeStrong
		}
		return vitalsIntent(VitalCoffee, count, count*perCup), true
	}

	// Energy drinks: brand keyword carries its own caffeine figure.
	if m := energyRe.FindStringSubmatch(text); m != nil {
		count := 1.0
		if m[1] != "" {
			if v, ok := parseAmount(m[1]); ok && v > 0 {
				count = v
			}
		}
		if m[2] == "nocco" {
			return vitalsIntent(VitalNocco, count, count*caffeineNocco), true
		}
		return vitalsIntent(VitalEnergy, count, count*caffeineEnergyDrink), true
	}

	if m := waterRe.FindStringSubmatch(text); m != nil {
		count := 1.0
		if m[1] != "" {
			if v, ok := parseAmount(m[1]); ok && v > 0 {
				count = v
			}
		}
		return vitalsIntent(VitalWater, count, 0), true
	}

	return Intent{}, false
}

func vitalsIntent(typ VitalType, amount, caffeineMg float64) Intent {
	return Intent{
		Kind:   KindVitals,
		Vitals: &VitalsData{Type: typ, Amount: amount, CaffeineMg: caffeineMg},
	}
}
