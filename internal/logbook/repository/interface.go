package repository

import (
	"context"
	"errors"

	"halsologg/internal/model"
)

// ErrNotFound is returned when a lookup matches nothing.
var ErrNotFound = errors.New("not found")

// Filter bounds list queries. From/To are inclusive ISO dates; empty means
// unbounded. Limit 0 means the store default.
type Filter struct {
	From  string
	To    string
	Limit int
}

// Repository is the persistence interface for logbook entries.
type Repository interface {
	CreateExercise(ctx context.Context, e model.ExerciseEntry) error
	CreateMeal(ctx context.Context, e model.MealEntry) error
	CreateWeight(ctx context.Context, e model.WeightEntry) error
	CreateVitals(ctx context.Context, e model.VitalsEntry) error
	CreateMeasurement(ctx context.Context, e model.MeasurementEntry) error

	ListExercise(ctx context.Context, userID string, f Filter) ([]model.ExerciseEntry, error)
	ListMeals(ctx context.Context, userID string, f Filter) ([]model.MealEntry, error)
	ListWeights(ctx context.Context, userID string, f Filter) ([]model.WeightEntry, error)
	ListVitals(ctx context.Context, userID string, f Filter) ([]model.VitalsEntry, error)
	ListMeasurements(ctx context.Context, userID string, f Filter) ([]model.MeasurementEntry, error)

	// LatestWeight returns the most recent weight entry for the user, by entry
	// date then creation time. ErrNotFound when the user has none.
	LatestWeight(ctx context.Context, userID string) (model.WeightEntry, error)

	// MealNames returns distinct previously logged meal queries starting with
	// prefix, most recent first.
	MealNames(ctx context.Context, userID, prefix string, limit int) ([]string, error)

	Close() error
}
