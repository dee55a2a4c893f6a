package interpreter

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// The lexicon is the static vocabulary of the interpreter: surface forms the
// user may type mapped to canonical values. Tables that are scanned for
// substring matches are sorted longest-first once at package init, so a longer
// stem ("löpning") always wins over a shorter one ("löp") that happens to be
// its prefix.

type typeKeyword struct {
	word string
	typ  ExerciseType
}

var exerciseTypeKeywords = []typeKeyword{
	{"löpning", ExerciseRunning},
	{"löprunda", ExerciseRunning},
	{"löptur", ExerciseRunning},
	{"löpte", ExerciseRunning},
	{"löp", ExerciseRunning},
	{"springa", ExerciseRunning},
	{"sprang", ExerciseRunning},
	{"sprungit", ExerciseRunning},
	{"jogga", ExerciseRunning},
	{"joggning", ExerciseRunning},
	{"jogg", ExerciseRunning},
	{"running", ExerciseRunning},

	{"cykling", ExerciseCycling},
	{"cykla", ExerciseCycling},
	{"cyklade", ExerciseCycling},
	{"cykeltur", ExerciseCycling},
	{"cykel", ExerciseCycling},
	{"spinning", ExerciseCycling},
	{"mtb", ExerciseCycling},
	{"cycling", ExerciseCycling},

	{"styrketräning", ExerciseStrength},
	{"styrkepass", ExerciseStrength},
	{"styrka", ExerciseStrength},
	{"gympass", ExerciseStrength},
	{"gym", ExerciseStrength},
	{"marklyft", ExerciseStrength},
	{"knäböj", ExerciseStrength},
	{"bänkpress", ExerciseStrength},
	{"axelpress", ExerciseStrength},
	{"benpress", ExerciseStrength},
	{"squat", ExerciseStrength},
	{"deadlift", ExerciseStrength},

	{"promenad", ExerciseWalking},
	{"promenerade", ExerciseWalking},
	{"gångtur", ExerciseWalking},
	{"gick", ExerciseWalking},
	{"walk", ExerciseWalking},
	{"walking", ExerciseWalking},

	{"simning", ExerciseSwimming},
	{"simma", ExerciseSwimming},
	{"simmade", ExerciseSwimming},
	{"simtur", ExerciseSwimming},
	{"sim", ExerciseSwimming},
	{"swim", ExerciseSwimming},

	{"yoga", ExerciseYoga},
	{"yogapass", ExerciseYoga},
	{"yinyoga", ExerciseYoga},
	{"stretching", ExerciseYoga},
	{"stretch", ExerciseYoga},

	{"träning", ExerciseOther},
	{"tränade", ExerciseOther},
	{"träna", ExerciseOther},
	{"workout", ExerciseOther},
}

// liftKeywords mark strength context for a bare "<n> kg" figure even when no
// explicit strength type keyword is present.
var liftKeywords = []string{
	"marklyft", "knäböj", "bänkpress", "axelpress", "benpress",
	"squat", "deadlift", "lyft", "press",
}

type subtypeKeyword struct {
	word    string
	subtype Subtype
}

var runningSubtypeKeywords = []subtypeKeyword{
	{"intervaller", SubtypeInterval},
	{"intervall", SubtypeInterval},
	{"intervals", SubtypeInterval},
	{"långpass", SubtypeLongRun},
	{"longrun", SubtypeLongRun},
	{"tävling", SubtypeCompetition},
	{"competition", SubtypeCompetition},
	{"lopp", SubtypeRace},
	{"race", SubtypeRace},
	{"ultra", SubtypeUltra},
}

type intensityKeyword struct {
	word      string
	intensity Intensity
}

var intensityKeywords = []intensityKeyword{
	{"lugnt", IntensityLow},
	{"lugn", IntensityLow},
	{"lätt", IntensityLow},
	{"easy", IntensityLow},
	{"light", IntensityLow},
	{"medel", IntensityModerate},
	{"moderate", IntensityModerate},
	{"hårt", IntensityHigh},
	{"hård", IntensityHigh},
	{"tufft", IntensityHigh},
	{"tuff", IntensityHigh},
	{"intensiv", IntensityHigh},
	{"hard", IntensityHigh},
	{"ultra", IntensityUltra},
}

type mealKeyword struct {
	word string
	meal MealType
}

var mealKeywords = []mealKeyword{
	{"frukost", MealBreakfast},
	{"frulle", MealBreakfast},
	{"breakfast", MealBreakfast},
	{"lunch", MealLunch},
	{"middag", MealDinner},
	{"kvällsmat", MealDinner},
	{"dinner", MealDinner},
	{"mellanmål", MealSnack},
	{"mellis", MealSnack},
	{"snack", MealSnack},
	{"fika", MealSnack},
	{"dryck", MealBeverage},
	{"dricka", MealBeverage},
	{"beverage", MealBeverage},
}

// unitDef maps a food unit spelling to its canonical unit and conversion
// factor: quantity × factor expressed in the canonical unit.
type unitDef struct {
	surface   string
	canonical string
	factor    float64
}

var foodUnits = []unitDef{
	{"gram", "g", 1},
	{"grams", "g", 1},
	{"gr", "g", 1},
	{"g", "g", 1},
	{"kilogram", "g", 1000},
	{"kilo", "g", 1000},
	{"kg", "g", 1000},
	{"milliliter", "ml", 1},
	{"ml", "ml", 1},
	{"liter", "ml", 1000},
	{"l", "ml", 1000},
	{"deciliter", "ml", 100},
	{"dl", "ml", 100},
	{"stycken", "st", 1},
	{"styck", "st", 1},
	{"st", "st", 1},
	{"pieces", "st", 1},
	{"piece", "st", 1},
	{"pcs", "st", 1},
	{"portioner", "portion", 1},
	{"portion", "portion", 1},
	{"port", "portion", 1},
	{"matskedar", "g", 15},
	{"matsked", "g", 15},
	{"msk", "g", 15},
	{"teskedar", "g", 5},
	{"tesked", "g", 5},
	{"tsk", "g", 5},
}

type siteKeyword struct {
	word string
	site Site
}

// Bilateral sites list the explicit left/right forms plus an un-prefixed alias
// that defaults to the left side.
var measurementSiteKeywords = []siteKeyword{
	{"midjemått", SiteWaist},
	{"midja", SiteWaist},
	{"waist", SiteWaist},
	{"höftmått", SiteHips},
	{"höfter", SiteHips},
	{"höft", SiteHips},
	{"hips", SiteHips},
	{"bröstkorg", SiteChest},
	{"bröst", SiteChest},
	{"chest", SiteChest},
	{"vänster lår", SiteThighLeft},
	{"höger lår", SiteThighRight},
	{"lår", SiteThighLeft},
	{"vänster underarm", SiteForearmLeft},
	{"höger underarm", SiteForearmRight},
	{"underarm", SiteForearmLeft},
	{"vänster arm", SiteArmLeft},
	{"höger arm", SiteArmRight},
	{"arm", SiteArmLeft},
	{"biceps", SiteArmLeft},
	{"vänster vad", SiteCalfLeft},
	{"höger vad", SiteCalfRight},
	{"vad", SiteCalfLeft},
	{"nacke", SiteNeck},
	{"hals", SiteNeck},
	{"neck", SiteNeck},
	{"axelbredd", SiteShoulders},
	{"axlar", SiteShoulders},
	{"shoulders", SiteShoulders},
}

// A bare measurement word with no site opens the generic measurement view.
var genericMeasurementWords = []string{"kroppsmått", "mått", "measurements", "mätning"}

type routeKeyword struct {
	word  string
	route string
}

// Scanned in order; first containment wins.
var navigationRoutes = []routeKeyword{
	{"träning", "/training"},
	{"training", "/training"},
	{"vikt", "/weight"},
	{"weight", "/weight"},
	{"sömn", "/sleep"},
	{"sleep", "/sleep"},
	{"kroppsmått", "/measurements"},
	{"mått", "/measurements"},
	{"measurements", "/measurements"},
	{"matsedel", "/meal-planning"},
	{"måltidsplanering", "/meal-planning"},
	{"veckoplanering", "/meal-planning"},
	{"meal", "/meal-planning"},
	{"recept", "/recipes"},
	{"recipes", "/recipes"},
	{"kalorier", "/calories"},
	{"calories", "/calories"},
	{"skafferi", "/pantry"},
	{"pantry", "/pantry"},
	{"tävling", "/competition"},
	{"competition", "/competition"},
	{"profil", "/profile"},
	{"profile", "/profile"},
	{"mat", "/food"},
	{"food", "/food"},
}

// Caffeine milligrams per unit.
const (
	caffeineCoffeeWeak   = 60
	caffeineCoffeeNormal = 100
	caffeineCoffeeStrong = 150
	caffeineNocco        = 180
	caffeineEnergyDrink  = 80
)

// metTable holds metabolic-equivalent coefficients per exercise type and
// intensity, used by Calories.
var metTable = map[ExerciseType]map[Intensity]float64{
	ExerciseRunning:  {IntensityLow: 8, IntensityModerate: 10, IntensityHigh: 12.5, IntensityUltra: 14},
	ExerciseCycling:  {IntensityLow: 6, IntensityModerate: 8, IntensityHigh: 10, IntensityUltra: 12},
	ExerciseStrength: {IntensityLow: 3.5, IntensityModerate: 5, IntensityHigh: 6, IntensityUltra: 6},
	ExerciseWalking:  {IntensityLow: 3, IntensityModerate: 3.5, IntensityHigh: 4.3, IntensityUltra: 5},
	ExerciseSwimming: {IntensityLow: 6, IntensityModerate: 8, IntensityHigh: 10, IntensityUltra: 11},
	ExerciseYoga:     {IntensityLow: 2.5, IntensityModerate: 3, IntensityHigh: 4, IntensityUltra: 4},
	ExerciseOther:    {IntensityLow: 3, IntensityModerate: 4, IntensityHigh: 5, IntensityUltra: 6},
}

// defaultPaceSecPerKm estimates duration from distance when no explicit
// duration or pace is given.
var defaultPaceSecPerKm = map[Intensity]int{
	IntensityLow:      420, // 7:00/km
	IntensityModerate: 360, // 6:00/km
	IntensityHigh:     300, // 5:00/km
	IntensityUltra:    270, // 4:30/km
}

func init() {
	// Longest-first ordering resolves stem-prefix collisions.
	sort.SliceStable(exerciseTypeKeywords, func(i, j int) bool {
		return len(exerciseTypeKeywords[i].word) > len(exerciseTypeKeywords[j].word)
	})
	sort.SliceStable(foodUnits, func(i, j int) bool {
		return len(foodUnits[i].surface) > len(foodUnits[j].surface)
	})
	sort.SliceStable(measurementSiteKeywords, func(i, j int) bool {
		return len(measurementSiteKeywords[i].word) > len(measurementSiteKeywords[j].word)
	})
	sort.SliceStable(runningSubtypeKeywords, func(i, j int) bool {
		return len(runningSubtypeKeywords[i].word) > len(runningSubtypeKeywords[j].word)
	})
	sort.SliceStable(intensityKeywords, func(i, j int) bool {
		return len(intensityKeywords[i].word) > len(intensityKeywords[j].word)
	})
	sort.SliceStable(mealKeywords, func(i, j int) bool {
		return len(mealKeywords[i].word) > len(mealKeywords[j].word)
	})

	// Built after sorting so the alternation keeps longest-first order and
	// "2 matskedar" never half-matches "msk".
	surfaces := make([]string, 0, len(foodUnits))
	for _, u := range foodUnits {
		surfaces = append(surfaces, regexp.QuoteMeta(u.surface))
	}
	foodQuantityRe = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(` + strings.Join(surfaces, "|") + `)\b`)
}

// foodQuantityRe matches a quantity plus any supported food-unit spelling.
var foodQuantityRe *regexp.Regexp

// isWordChar reports whether r continues a token. Swedish letters are not ASCII
// word characters, so regexp \b cannot be trusted at token edges here.
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// indexToken returns the byte index of the first boundary-safe occurrence of
// word in text, or -1. A match is boundary-safe when the runes immediately
// before and after it are not word characters.
func indexToken(text, word string) int {
	if word == "" {
		return -1
	}
	from := 0
	for {
		i := strings.Index(text[from:], word)
		if i < 0 {
			return -1
		}
		i += from

		ok := true
		if i > 0 {
			before, _ := lastRune(text[:i])
			if isWordChar(before) {
				ok = false
			}
		}
		end := i + len(word)
		if ok && end < len(text) {
			after := firstRune(text[end:])
			if isWordChar(after) {
				ok = false
			}
		}
		if ok {
			return i
		}
		from = i + len(word)
		if from >= len(text) {
			return -1
		}
	}
}

// hasToken reports whether word occurs boundary-safe in text.
func hasToken(text, word string) bool {
	return indexToken(text, word) >= 0
}

// removeSpan deletes text[start:end] and collapses the surrounding whitespace.
func removeSpan(text string, start, end int) string {
	return strings.Join(strings.Fields(text[:start]+" "+text[end:]), " ")
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func lastRune(s string) (rune, int) {
	var last rune
	var size int
	for i, r := range s {
		last = r
		size = len(s) - i
	}
	return last, size
}
