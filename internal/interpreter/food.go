package interpreter

import (
	"regexp"
	"strings"
	"time"
)

var foodLeadingFillers = []string{
	"jag", "ska", "vill", "logga", "loggar", "åt", "ate", "äta", "lägg", "till", "add", "en", "ett",
}

var foodTrailingFillers = []string{"till", "som", "för"}

// A residual that is just a duration token is not a food name; it stays
// unclassified and falls through to the search fallback.
var bareTimeTokenRe = regexp.MustCompile(`^\d+(?:[.,]\d+)?\s*(?:h|min|mins|minut|minuter|tim|timme|timmar)$`)

// Default quantity when the line names a food but no amount: 100 g.
const (
	defaultFoodQuantity = 100
	defaultFoodUnit     = "g"
)

// extractFood resolves a meal type, a quantity+unit pair normalized to
// canonical units, and a residual food-name query. A line with no food name
// left after stripping is not a food mention.
func extractFood(text string, now time.Time) (Intent, bool) {
	meal, mealFound, text := stripMealKeyword(text)

	qty := 0.0
	unit := ""
	qtyFound := false
	if m := foodQuantityRe.FindStringSubmatchIndex(text); m != nil {
		if v, ok := parseAmount(text[m[2]:m[3]]); ok {
			if canonical, factor, known := lookupUnit(text[m[4]:m[5]]); known {
				qty = v * factor
				unit = canonical
				qtyFound = true
				text = removeSpan(text, m[0], m[1])
			}
		}
	}

	query := stripFoodFillers(text)
	if query == "" || isPurelyNumeric(query) || bareTimeTokenRe.MatchString(query) {
		return Intent{}, false
	}

	if !mealFound {
		meal = mealByHour(now.Hour())
	}
	if !qtyFound {
		qty = defaultFoodQuantity
		unit = defaultFoodUnit
	}

	return Intent{
		Kind: KindFood,
		Food: &FoodData{Query: query, Quantity: qty, Unit: unit, Meal: meal},
	}, true
}

func stripMealKeyword(text string) (MealType, bool, string) {
	for _, kw := range mealKeywords {
		if i := indexToken(text, kw.word); i >= 0 {
			return kw.meal, true, removeSpan(text, i, i+len(kw.word))
		}
	}
	return "", false, text
}

func lookupUnit(surface string) (string, float64, bool) {
	for _, u := range foodUnits {
		if u.surface == surface {
			return u.canonical, u.factor, true
		}
	}
	return "", 0, false
}

func stripFoodFillers(text string) string {
	words := strings.Fields(text)

	for len(words) > 0 && isFiller(words[0], foodLeadingFillers) {
		words = words[1:]
	}
	for len(words) > 0 && isFiller(words[len(words)-1], foodTrailingFillers) {
		words = words[:len(words)-1]
	}

	return strings.Trim(strings.Join(words, " "), ".,;:!")
}

func isFiller(word string, fillers []string) bool {
	word = strings.Trim(word, ".,;:!")
	for _, f := range fillers {
		if word == f {
			return true
		}
	}
	return false
}

// mealByHour infers the meal type from the wall-clock hour.
func mealByHour(hour int) MealType {
	switch {
	case hour >= 5 && hour < 10:
		return MealBreakfast
	case hour >= 10 && hour < 14:
		return MealLunch
	case hour >= 17 && hour < 21:
		return MealDinner
	default:
		return MealSnack
	}
}
