package sqlite

import (
	"context"
	"testing"
	"time"

	"halsologg/internal/interpreter"
	"halsologg/internal/logbook/repository"
	"halsologg/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("New(:memory:) failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestExerciseRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	entry := model.ExerciseEntry{
		ID:          "e1",
		UserID:      "u1",
		Date:        "2024-05-01",
		Type:        interpreter.ExerciseRunning,
		DurationMin: 30,
		Intensity:   interpreter.IntensityModerate,
		DistanceKm:  5,
		Calories:    400,
		Notes:       "i skogen",
		CreatedAt:   time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC),
	}
	if err := s.CreateExercise(ctx, entry); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	got, err := s.ListExercise(ctx, "u1", repository.Filter{})
	if err != nil {
		t.Fatalf("ListExercise failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	if got[0].ID != "e1" || got[0].Type != interpreter.ExerciseRunning || got[0].DistanceKm != 5 || got[0].Notes != "i skogen" {
		t.Errorf("round trip mismatch: %+v", got[0])
	}
}

func TestListDateRange(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i, date := range []string{"2024-04-28", "2024-04-30", "2024-05-02"} {
		err := s.CreateWeight(ctx, model.WeightEntry{
			ID:        "w" + string(rune('a'+i)),
			UserID:    "u1",
			Date:      date,
			WeightKg:  80,
			CreatedAt: time.Now(),
		})
		if err != nil {
			t.Fatalf("CreateWeight failed: %v", err)
		}
	}

	got, err := s.ListWeights(ctx, "u1", repository.Filter{From: "2024-04-29", To: "2024-05-01"})
	if err != nil {
		t.Fatalf("ListWeights failed: %v", err)
	}
	if len(got) != 1 || got[0].Date != "2024-04-30" {
		t.Errorf("range filter returned %+v, want single 2024-04-30 entry", got)
	}
}

func TestListScopedToUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, user := range []string{"u1", "u2"} {
		err := s.CreateVitals(ctx, model.VitalsEntry{
			ID:        user + "-v",
			UserID:    user,
			Date:      "2024-05-01",
			Type:      interpreter.VitalSleep,
			Amount:    7,
			CreatedAt: time.Now(),
		})
		if err != nil {
			t.Fatalf("CreateVitals failed: %v", err)
		}
	}

	got, err := s.ListVitals(ctx, "u1", repository.Filter{})
	if err != nil {
		t.Fatalf("ListVitals failed: %v", err)
	}
	if len(got) != 1 || got[0].UserID != "u1" {
		t.Errorf("user scoping leaked: %+v", got)
	}
}

func TestLatestWeight(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.LatestWeight(ctx, "u1"); err != repository.ErrNotFound {
		t.Errorf("empty store: got %v, want ErrNotFound", err)
	}

	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	weights := []model.WeightEntry{
		{ID: "w1", UserID: "u1", Date: "2024-04-28", WeightKg: 82, CreatedAt: base},
		{ID: "w2", UserID: "u1", Date: "2024-05-01", WeightKg: 81.5, CreatedAt: base.Add(time.Hour)},
		{ID: "w3", UserID: "u1", Date: "2024-04-30", WeightKg: 83, CreatedAt: base.Add(2 * time.Hour)},
	}
	for _, w := range weights {
		if err := s.CreateWeight(ctx, w); err != nil {
			t.Fatalf("CreateWeight failed: %v", err)
		}
	}

	got, err := s.LatestWeight(ctx, "u1")
	if err != nil {
		t.Fatalf("LatestWeight failed: %v", err)
	}
	if got.ID != "w2" || got.WeightKg != 81.5 {
		t.Errorf("LatestWeight = %+v, want the 2024-05-01 entry", got)
	}
}

func TestMealNames(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	meals := []model.MealEntry{
		{ID: "m1", UserID: "u1", Date: "2024-04-28", Query: "kyckling", Quantity: 200, Unit: "g", Meal: interpreter.MealLunch, CreatedAt: base},
		{ID: "m2", UserID: "u1", Date: "2024-04-29", Query: "kycklingsallad", Quantity: 1, Unit: "portion", Meal: interpreter.MealLunch, CreatedAt: base.Add(time.Hour)},
		{ID: "m3", UserID: "u1", Date: "2024-04-30", Query: "kyckling", Quantity: 150, Unit: "g", Meal: interpreter.MealDinner, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "m4", UserID: "u1", Date: "2024-04-30", Query: "pasta", Quantity: 100, Unit: "g", Meal: interpreter.MealDinner, CreatedAt: base.Add(3 * time.Hour)},
	}
	for _, m := range meals {
		if err := s.CreateMeal(ctx, m); err != nil {
			t.Fatalf("CreateMeal failed: %v", err)
		}
	}

	names, err := s.MealNames(ctx, "u1", "kyck", 10)
	if err != nil {
		t.Fatalf("MealNames failed: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("got %d names, want 2 distinct: %v", len(names), names)
	}
	// Most recently logged first.
	if names[0] != "kyckling" || names[1] != "kycklingsallad" {
		t.Errorf("unexpected order: %v", names)
	}
}

func TestMeasurementRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	entry := model.MeasurementEntry{
		ID:        "m1",
		UserID:    "u1",
		Date:      "2024-05-01",
		Site:      interpreter.SiteWaist,
		ValueCm:   84,
		CreatedAt: time.Now(),
	}
	if err := s.CreateMeasurement(ctx, entry); err != nil {
		t.Fatalf("CreateMeasurement failed: %v", err)
	}

	got, err := s.ListMeasurements(ctx, "u1", repository.Filter{})
	if err != nil {
		t.Fatalf("ListMeasurements failed: %v", err)
	}
	if len(got) != 1 || got[0].Site != interpreter.SiteWaist || got[0].ValueCm != 84 {
		t.Errorf("round trip mismatch: %+v", got)
	}
}
