package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"halsologg/internal/interpreter"
	"halsologg/internal/logbook"
	"halsologg/internal/logbook/repository"
	"halsologg/internal/model"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Info(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Warn(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Error(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Fatal(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...interface{}) {}

type mockRepo struct {
	exercise     []model.ExerciseEntry
	meals        []model.MealEntry
	weights      []model.WeightEntry
	vitals       []model.VitalsEntry
	measurements []model.MeasurementEntry
}

func (m *mockRepo) CreateExercise(ctx context.Context, e model.ExerciseEntry) error {
	m.exercise = append(m.exercise, e)
	return nil
}
func (m *mockRepo) CreateMeal(ctx context.Context, e model.MealEntry) error {
	m.meals = append(m.meals, e)
	return nil
}
func (m *mockRepo) CreateWeight(ctx context.Context, e model.WeightEntry) error {
	m.weights = append(m.weights, e)
	return nil
}
func (m *mockRepo) CreateVitals(ctx context.Context, e model.VitalsEntry) error {
	m.vitals = append(m.vitals, e)
	return nil
}
func (m *mockRepo) CreateMeasurement(ctx context.Context, e model.MeasurementEntry) error {
	m.measurements = append(m.measurements, e)
	return nil
}

func (m *mockRepo) ListExercise(ctx context.Context, userID string, f repository.Filter) ([]model.ExerciseEntry, error) {
	return m.exercise, nil
}
func (m *mockRepo) ListMeals(ctx context.Context, userID string, f repository.Filter) ([]model.MealEntry, error) {
	return m.meals, nil
}
func (m *mockRepo) ListWeights(ctx context.Context, userID string, f repository.Filter) ([]model.WeightEntry, error) {
	return m.weights, nil
}
func (m *mockRepo) ListVitals(ctx context.Context, userID string, f repository.Filter) ([]model.VitalsEntry, error) {
	return m.vitals, nil
}
func (m *mockRepo) ListMeasurements(ctx context.Context, userID string, f repository.Filter) ([]model.MeasurementEntry, error) {
	return m.measurements, nil
}

func (m *mockRepo) LatestWeight(ctx context.Context, userID string) (model.WeightEntry, error) {
	if len(m.weights) == 0 {
		return model.WeightEntry{}, repository.ErrNotFound
	}
	return m.weights[len(m.weights)-1], nil
}

func (m *mockRepo) MealNames(ctx context.Context, userID, prefix string, limit int) ([]string, error) {
	var names []string
	for _, e := range m.meals {
		if strings.HasPrefix(e.Query, prefix) {
			names = append(names, e.Query)
		}
	}
	return names, nil
}

func (m *mockRepo) Close() error { return nil }

func newTestUseCase(repo *mockRepo) *implUseCase {
	uc := New(nopLogger{}, repo, interpreter.New("UTC"), nil, "UTC", "", 80)
	uc.clock = func() time.Time {
		return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	}
	return uc
}

var testScope = model.Scope{UserID: "u1", Username: "testare"}

func TestProcess_Exercise(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(repo)

	out, err := uc.Process(context.Background(), testScope, logbook.ProcessInput{Text: "igår 5km löpning 30min"})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if !out.Stored || out.EntryID == "" {
		t.Fatalf("expected stored entry, got %+v", out)
	}
	if len(repo.exercise) != 1 {
		t.Fatalf("stored %d exercise entries, want 1", len(repo.exercise))
	}

	entry := repo.exercise[0]
	if entry.Date != "2024-04-30" {
		t.Errorf("date = %s, want 2024-04-30", entry.Date)
	}
	if entry.Type != interpreter.ExerciseRunning || entry.DistanceKm != 5 || entry.DurationMin != 30 {
		t.Errorf("unexpected entry: %+v", entry)
	}
	// Default body weight 80 kg, moderate running MET 10, half an hour.
	if entry.Calories != 400 {
		t.Errorf("calories = %d, want 400", entry.Calories)
	}
	if out.Reply == "" {
		t.Error("expected a confirmation reply")
	}
}

func TestProcess_ExerciseUsesLatestWeight(t *testing.T) {
	repo := &mockRepo{weights: []model.WeightEntry{
		{ID: "w1", UserID: "u1", Date: "2024-04-30", WeightKg: 100},
	}}
	uc := newTestUseCase(repo)

	_, err := uc.Process(context.Background(), testScope, logbook.ProcessInput{Text: "löpning 60 min"})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	// 100 kg, moderate running MET 10, one hour.
	if got := repo.exercise[0].Calories; got != 1000 {
		t.Errorf("calories = %d, want 1000", got)
	}
}

func TestProcess_StoresEachLoggableKind(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(repo)
	ctx := context.Background()

	inputs := []string{
		"vikt 82.5",
		"200g kyckling lunch",
		"7h sömn",
		"midja 84",
	}
	for _, text := range inputs {
		out, err := uc.Process(ctx, testScope, logbook.ProcessInput{Text: text})
		if err != nil {
			t.Fatalf("Process(%q) failed: %v", text, err)
		}
		if !out.Stored {
			t.Errorf("Process(%q) did not store", text)
		}
	}

	if len(repo.weights) != 1 || repo.weights[0].WeightKg != 82.5 {
		t.Errorf("weights: %+v", repo.weights)
	}
	if len(repo.meals) != 1 || repo.meals[0].Query != "kyckling" || repo.meals[0].Quantity != 200 {
		t.Errorf("meals: %+v", repo.meals)
	}
	if len(repo.vitals) != 1 || repo.vitals[0].Type != interpreter.VitalSleep {
		t.Errorf("vitals: %+v", repo.vitals)
	}
	if len(repo.measurements) != 1 || repo.measurements[0].Site != interpreter.SiteWaist {
		t.Errorf("measurements: %+v", repo.measurements)
	}
}

func TestProcess_UndatedEntryGetsToday(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Process(context.Background(), testScope, logbook.ProcessInput{Text: "vikt 80"})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if repo.weights[0].Date != "2024-05-01" {
		t.Errorf("date = %s, want today", repo.weights[0].Date)
	}
}

func TestProcess_NonLoggableIntents(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(repo)
	ctx := context.Background()

	out, err := uc.Process(ctx, testScope, logbook.ProcessInput{Text: "gå till recept"})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if out.Stored || out.Intent.Kind != interpreter.KindNavigate {
		t.Errorf("navigation should not be stored: %+v", out)
	}

	out, err = uc.Process(ctx, testScope, logbook.ProcessInput{Text: "20kg"})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if out.Stored || out.Intent.Kind != interpreter.KindSearch {
		t.Errorf("search should not be stored: %+v", out)
	}

	// Bare measurement keyword opens the view without storing.
	out, err = uc.Process(ctx, testScope, logbook.ProcessInput{Text: "mått"})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if out.Stored || len(repo.measurements) != 0 {
		t.Errorf("bare measurement word should not be stored: %+v", out)
	}
}

func TestProcess_SearchSuggestsLoggedMeals(t *testing.T) {
	repo := &mockRepo{meals: []model.MealEntry{
		{Query: "kyckling"},
	}}
	uc := newTestUseCase(repo)

	out, err := uc.Process(context.Background(), testScope, logbook.ProcessInput{Text: "kyck"})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	// "kyck" parses as a food mention and is logged; a non-food query like a
	// bare number reaches the suggestion path instead.
	if !out.Stored {
		t.Fatalf("expected food storage for %q", "kyck")
	}

	out, err = uc.Process(context.Background(), testScope, logbook.ProcessInput{Text: "20kg"})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if out.Stored {
		t.Fatal("search intent must not store")
	}
	if out.Reply == "" {
		t.Error("expected a reply for the search fallback")
	}
}

func TestList(t *testing.T) {
	repo := &mockRepo{weights: []model.WeightEntry{{ID: "w1", WeightKg: 80}}}
	uc := newTestUseCase(repo)

	out, err := uc.List(context.Background(), testScope, logbook.ListInput{Kind: model.EntryWeight})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if out.Count != 1 || len(out.Weights) != 1 {
		t.Errorf("unexpected output: %+v", out)
	}

	if _, err := uc.List(context.Background(), testScope, logbook.ListInput{Kind: "bogus"}); err != logbook.ErrUnknownKind {
		t.Errorf("unknown kind: got %v, want ErrUnknownKind", err)
	}

	_, err = uc.List(context.Background(), testScope, logbook.ListInput{Kind: model.EntryWeight, From: "2024-05-02", To: "2024-05-01"})
	if err != logbook.ErrInvalidRange {
		t.Errorf("inverted range: got %v, want ErrInvalidRange", err)
	}
}

func TestSuggest(t *testing.T) {
	repo := &mockRepo{meals: []model.MealEntry{
		{Query: "kyckling"},
		{Query: "pasta"},
	}}
	uc := newTestUseCase(repo)

	out, err := uc.Suggest(context.Background(), testScope, logbook.SuggestInput{Prefix: "kyck"})
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}
	if len(out.Names) != 1 || out.Names[0] != "kyckling" {
		t.Errorf("suggestions: %v", out.Names)
	}
}
