package model

import (
	"time"

	"halsologg/internal/interpreter"
)

// EntryKind names a stored logbook entry type. It mirrors the loggable intent
// kinds; navigation and search intents are never persisted.
type EntryKind string

const (
	EntryExercise    EntryKind = "exercise"
	EntryMeal        EntryKind = "meal"
	EntryWeight      EntryKind = "weight"
	EntryVitals      EntryKind = "vitals"
	EntryMeasurement EntryKind = "measurement"
)

// ExerciseEntry is a stored training session. Date is the ISO day the session
// belongs to, which may differ from CreatedAt when the user logged in arrears.
type ExerciseEntry struct {
	ID           string                   `json:"id"`
	UserID       string                   `json:"user_id"`
	Date         string                   `json:"date"`
	Type         interpreter.ExerciseType `json:"type"`
	Subtype      interpreter.Subtype      `json:"subtype,omitempty"`
	DurationMin  int                      `json:"duration_min"`
	Intensity    interpreter.Intensity    `json:"intensity"`
	DistanceKm   float64                  `json:"distance_km,omitempty"`
	PaceSecPerKm int                      `json:"pace_sec_per_km,omitempty"`
	TonnageKg    float64                  `json:"tonnage_kg,omitempty"`
	AvgHeartRate int                      `json:"avg_heart_rate,omitempty"`
	MaxHeartRate int                      `json:"max_heart_rate,omitempty"`
	Calories     int                      `json:"calories"`
	Notes        string                   `json:"notes,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
}

// MealEntry is a stored food entry with quantity in a canonical unit.
type MealEntry struct {
	ID        string               `json:"id"`
	UserID    string               `json:"user_id"`
	Date      string               `json:"date"`
	Query     string               `json:"query"`
	Quantity  float64              `json:"quantity"`
	Unit      string               `json:"unit"`
	Meal      interpreter.MealType `json:"meal"`
	CreatedAt time.Time            `json:"created_at"`
}

// WeightEntry is a body-weight reading in kilograms.
type WeightEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"`
	WeightKg  float64   `json:"weight_kg"`
	CreatedAt time.Time `json:"created_at"`
}

// VitalsEntry is a sleep, hydration, caffeine or step-count reading.
type VitalsEntry struct {
	ID         string                `json:"id"`
	UserID     string                `json:"user_id"`
	Date       string                `json:"date"`
	Type       interpreter.VitalType `json:"type"`
	Amount     float64               `json:"amount"`
	CaffeineMg float64               `json:"caffeine_mg,omitempty"`
	CreatedAt  time.Time             `json:"created_at"`
}

// MeasurementEntry is a body measurement in centimeters.
type MeasurementEntry struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Date      string           `json:"date"`
	Site      interpreter.Site `json:"site"`
	ValueCm   float64          `json:"value_cm"`
	CreatedAt time.Time        `json:"created_at"`
}
