package interpreter

// IntentKind discriminates the Intent variant.
type IntentKind string

const (
	KindExercise    IntentKind = "exercise"
	KindFood        IntentKind = "food"
	KindWeight      IntentKind = "weight"
	KindVitals      IntentKind = "vitals"
	KindMeasurement IntentKind = "measurement"
	KindNavigate    IntentKind = "navigate"
	KindSearch      IntentKind = "search"
)

// ExerciseType classifies a training session.
type ExerciseType string

const (
	ExerciseRunning  ExerciseType = "running"
	ExerciseCycling  ExerciseType = "cycling"
	ExerciseStrength ExerciseType = "strength"
	ExerciseWalking  ExerciseType = "walking"
	ExerciseSwimming ExerciseType = "swimming"
	ExerciseYoga     ExerciseType = "yoga"
	ExerciseOther    ExerciseType = "other"
)

// Intensity is the perceived effort of a session.
type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
	IntensityUltra    Intensity = "ultra"
)

// Subtype refines a session beyond its exercise type.
type Subtype string

const (
	SubtypeDefault     Subtype = ""
	SubtypeInterval    Subtype = "interval"
	SubtypeLongRun     Subtype = "long-run"
	SubtypeRace        Subtype = "race"
	SubtypeCompetition Subtype = "competition"
	SubtypeUltra       Subtype = "ultra"
	SubtypeTonnage     Subtype = "tonnage"
)

// MealType classifies a food entry by meal.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
	MealBeverage  MealType = "beverage"
)

// VitalType classifies a vitals entry. Amount is hours for sleep and a plain
// count for everything else.
type VitalType string

const (
	VitalSleep  VitalType = "sleep"
	VitalWater  VitalType = "water"
	VitalCoffee VitalType = "coffee"
	VitalNocco  VitalType = "nocco"
	VitalEnergy VitalType = "energy"
	VitalSteps  VitalType = "steps"
)

// Site is a body-measurement location. Bilateral sites carry an explicit side.
type Site string

const (
	SiteWaist        Site = "waist"
	SiteHips         Site = "hips"
	SiteChest        Site = "chest"
	SiteThighLeft    Site = "thigh-left"
	SiteThighRight   Site = "thigh-right"
	SiteArmLeft      Site = "arm-left"
	SiteArmRight     Site = "arm-right"
	SiteCalfLeft     Site = "calf-left"
	SiteCalfRight    Site = "calf-right"
	SiteNeck         Site = "neck"
	SiteShoulders    Site = "shoulders"
	SiteForearmLeft  Site = "forearm-left"
	SiteForearmRight Site = "forearm-right"
)

// ExerciseData is the payload of an exercise intent. Canonical units are
// minutes, kilometers, kilograms, and beats per minute. Zero means absent for
// the optional numeric fields.
type ExerciseData struct {
	Type         ExerciseType `json:"type"`
	DurationMin  int          `json:"duration_min"`
	Intensity    Intensity    `json:"intensity"`
	Notes        string       `json:"notes,omitempty"`
	Subtype      Subtype      `json:"subtype,omitempty"`
	TonnageKg    float64      `json:"tonnage_kg,omitempty"`
	DistanceKm   float64      `json:"distance_km,omitempty"`
	PaceSecPerKm int          `json:"pace_sec_per_km,omitempty"`
	AvgHeartRate int          `json:"avg_heart_rate,omitempty"`
	MaxHeartRate int          `json:"max_heart_rate,omitempty"`
}

// FoodData is the payload of a food intent. Unit is always one of the
// canonical units: g, ml, st, portion.
type FoodData struct {
	Query    string   `json:"query"`
	Quantity float64  `json:"quantity"`
	Unit     string   `json:"unit"`
	Meal     MealType `json:"meal"`
}

// WeightData is a body-weight update in kilograms, strictly inside (20, 500).
type WeightData struct {
	WeightKg float64 `json:"weight_kg"`
}

// VitalsData is the payload of a vitals intent.
type VitalsData struct {
	Type       VitalType `json:"type"`
	Amount     float64   `json:"amount"`
	CaffeineMg float64   `json:"caffeine_mg,omitempty"`
}

// MeasurementData is the payload of a measurement intent. Both fields are
// optional: a bare measurement keyword yields an empty payload that opens the
// generic measurement view.
type MeasurementData struct {
	Site    Site    `json:"site,omitempty"`
	ValueCm float64 `json:"value_cm,omitempty"`
}

// NavigateData carries a resolved application route.
type NavigateData struct {
	Route string `json:"route"`
}

// SearchData carries the original, unmodified input line.
type SearchData struct {
	Query string `json:"query"`
}

// Intent is the single classification result for one input line. Exactly one
// payload pointer is non-nil, matching Kind. Date is the resolved ISO date
// (YYYY-MM-DD) or empty when the input carried no date reference.
type Intent struct {
	Kind IntentKind `json:"kind"`
	Date string     `json:"date,omitempty"`

	Exercise    *ExerciseData    `json:"exercise,omitempty"`
	Food        *FoodData        `json:"food,omitempty"`
	Weight      *WeightData      `json:"weight,omitempty"`
	Vitals      *VitalsData      `json:"vitals,omitempty"`
	Measurement *MeasurementData `json:"measurement,omitempty"`
	Navigate    *NavigateData    `json:"navigate,omitempty"`
	Search      *SearchData      `json:"search,omitempty"`
}
