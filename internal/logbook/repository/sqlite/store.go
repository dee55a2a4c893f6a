// Package sqlite implements the logbook repository on a single SQLite file.
// Pass ":memory:" as the path for throwaway test databases.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"halsologg/internal/interpreter"
	"halsologg/internal/logbook/repository"
	"halsologg/internal/model"
)

// DefaultListLimit caps list queries when the caller passes no limit.
const DefaultListLimit = 100

const schema = `
CREATE TABLE IF NOT EXISTS exercise_entries (
	id              TEXT PRIMARY KEY,
	user_id         TEXT NOT NULL,
	date            TEXT NOT NULL,
	type            TEXT NOT NULL,
	subtype         TEXT NOT NULL DEFAULT '',
	duration_min    INTEGER NOT NULL,
	intensity       TEXT NOT NULL,
	distance_km     REAL NOT NULL DEFAULT 0,
	pace_sec_per_km INTEGER NOT NULL DEFAULT 0,
	tonnage_kg      REAL NOT NULL DEFAULT 0,
	avg_heart_rate  INTEGER NOT NULL DEFAULT 0,
	max_heart_rate  INTEGER NOT NULL DEFAULT 0,
	calories        INTEGER NOT NULL DEFAULT 0,
	notes           TEXT NOT NULL DEFAULT '',
	created_at      TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_exercise_user_date ON exercise_entries(user_id, date);

CREATE TABLE IF NOT EXISTS meal_entries (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	date       TEXT NOT NULL,
	query      TEXT NOT NULL,
	quantity   REAL NOT NULL,
	unit       TEXT NOT NULL,
	meal       TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_meal_user_date ON meal_entries(user_id, date);

CREATE TABLE IF NOT EXISTS weight_entries (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	date       TEXT NOT NULL,
	weight_kg  REAL NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_weight_user_date ON weight_entries(user_id, date);

CREATE TABLE IF NOT EXISTS vitals_entries (
	id          TEXT PRIMARY KEY,
	user_id     TEXT NOT NULL,
	date        TEXT NOT NULL,
	type        TEXT NOT NULL,
	amount      REAL NOT NULL,
	caffeine_mg REAL NOT NULL DEFAULT 0,
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_vitals_user_date ON vitals_entries(user_id, date);

CREATE TABLE IF NOT EXISTS measurement_entries (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	date       TEXT NOT NULL,
	site       TEXT NOT NULL,
	value_cm   REAL NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_measurement_user_date ON measurement_entries(user_id, date);
`

// Store implements repository.Repository on SQLite.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database at path and applies the schema.
func New(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) CreateExercise(ctx context.Context, e model.ExerciseEntry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO exercise_entries
		(id, user_id, date, type, subtype, duration_min, intensity, distance_km,
		 pace_sec_per_km, tonnage_kg, avg_heart_rate, max_heart_rate, calories, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.Date, string(e.Type), string(e.Subtype), e.DurationMin,
		string(e.Intensity), e.DistanceKm, e.PaceSecPerKm, e.TonnageKg,
		e.AvgHeartRate, e.MaxHeartRate, e.Calories, e.Notes, formatTime(e.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting exercise entry: %w", err)
	}
	return nil
}

func (s *Store) CreateMeal(ctx context.Context, e model.MealEntry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO meal_entries (id, user_id, date, query, quantity, unit, meal, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.Date, e.Query, e.Quantity, e.Unit, string(e.Meal), formatTime(e.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting meal entry: %w", err)
	}
	return nil
}

func (s *Store) CreateWeight(ctx context.Context, e model.WeightEntry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO weight_entries (id, user_id, date, weight_kg, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.Date, e.WeightKg, formatTime(e.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting weight entry: %w", err)
	}
	return nil
}

func (s *Store) CreateVitals(ctx context.Context, e model.VitalsEntry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO vitals_entries (id, user_id, date, type, amount, caffeine_mg, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.Date, string(e.Type), e.Amount, e.CaffeineMg, formatTime(e.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting vitals entry: %w", err)
	}
	return nil
}

func (s *Store) CreateMeasurement(ctx context.Context, e model.MeasurementEntry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO measurement_entries (id, user_id, date, site, value_cm, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.Date, string(e.Site), e.ValueCm, formatTime(e.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting measurement entry: %w", err)
	}
	return nil
}

func (s *Store) ListExercise(ctx context.Context, userID string, f repository.Filter) ([]model.ExerciseEntry, error) {
	query, args := listQuery(`
		SELECT id, user_id, date, type, subtype, duration_min, intensity, distance_km,
		       pace_sec_per_km, tonnage_kg, avg_heart_rate, max_heart_rate, calories, notes, created_at
		FROM exercise_entries`, userID, f)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing exercise entries: %w", err)
	}
	defer rows.Close()

	var out []model.ExerciseEntry
	for rows.Next() {
		var e model.ExerciseEntry
		var typ, subtype, intensity, createdAt string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &typ, &subtype, &e.DurationMin,
			&intensity, &e.DistanceKm, &e.PaceSecPerKm, &e.TonnageKg,
			&e.AvgHeartRate, &e.MaxHeartRate, &e.Calories, &e.Notes, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning exercise entry: %w", err)
		}
		e.Type = interpreter.ExerciseType(typ)
		e.Subtype = interpreter.Subtype(subtype)
		e.Intensity = interpreter.Intensity(intensity)
		e.CreatedAt = parseTime(createdAt)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) ListMeals(ctx context.Context, userID string, f repository.Filter) ([]model.MealEntry, error) {
	query, args := listQuery(`
		SELECT id, user_id, date, query, quantity, unit, meal, created_at
		FROM meal_entries`, userID, f)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing meal entries: %w", err)
	}
	defer rows.Close()

	var out []model.MealEntry
	for rows.Next() {
		var e model.MealEntry
		var meal, createdAt string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.Query, &e.Quantity, &e.Unit, &meal, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning meal entry: %w", err)
		}
		e.Meal = interpreter.MealType(meal)
		e.CreatedAt = parseTime(createdAt)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) ListWeights(ctx context.Context, userID string, f repository.Filter) ([]model.WeightEntry, error) {
	query, args := listQuery(`
		SELECT id, user_id, date, weight_kg, created_at
		FROM weight_entries`, userID, f)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing weight entries: %w", err)
	}
	defer rows.Close()

	var out []model.WeightEntry
	for rows.Next() {
		var e model.WeightEntry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.WeightKg, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning weight entry: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) ListVitals(ctx context.Context, userID string, f repository.Filter) ([]model.VitalsEntry, error) {
	query, args := listQuery(`
		SELECT id, user_id, date, type, amount, caffeine_mg, created_at
		FROM vitals_entries`, userID, f)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing vitals entries: %w", err)
	}
	defer rows.Close()

	var out []model.VitalsEntry
	for rows.Next() {
		var e model.VitalsEntry
		var typ, createdAt string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &typ, &e.Amount, &e.CaffeineMg, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning vitals entry: %w", err)
		}
		e.Type = interpreter.VitalType(typ)
		e.CreatedAt = parseTime(createdAt)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) ListMeasurements(ctx context.Context, userID string, f repository.Filter) ([]model.MeasurementEntry, error) {
	query, args := listQuery(`
		SELECT id, user_id, date, site, value_cm, created_at
		FROM measurement_entries`, userID, f)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing measurement entries: %w", err)
	}
	defer rows.Close()

	var out []model.MeasurementEntry
	for rows.Next() {
		var e model.MeasurementEntry
		var site, createdAt string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &site, &e.ValueCm, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning measurement entry: %w", err)
		}
		e.Site = interpreter.Site(site)
		e.CreatedAt = parseTime(createdAt)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) LatestWeight(ctx context.Context, userID string) (model.WeightEntry, error) {
	var e model.WeightEntry
	var createdAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, date, weight_kg, created_at
		FROM weight_entries
		WHERE user_id = ?
		ORDER BY date DESC, created_at DESC
		LIMIT 1`, userID).Scan(&e.ID, &e.UserID, &e.Date, &e.WeightKg, &createdAt)
	if err == sql.ErrNoRows {
		return model.WeightEntry{}, repository.ErrNotFound
	}
	if err != nil {
		return model.WeightEntry{}, fmt.Errorf("querying latest weight: %w", err)
	}
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

func (s *Store) MealNames(ctx context.Context, userID, prefix string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT query FROM meal_entries
		WHERE user_id = ? AND query LIKE ? || '%'
		GROUP BY query
		ORDER BY MAX(created_at) DESC
		LIMIT ?`, userID, prefix, limit)
	if err != nil {
		return nil, fmt.Errorf("querying meal names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning meal name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// listQuery appends the shared user/date-range/limit clauses.
func listQuery(base, userID string, f repository.Filter) (string, []any) {
	query := base + " WHERE user_id = ?"
	args := []any{userID}

	if f.From != "" {
		query += " AND date >= ?"
		args = append(args, f.From)
	}
	if f.To != "" {
		query += " AND date <= ?"
		args = append(args, f.To)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	query += " ORDER BY date DESC, created_at DESC LIMIT ?"
	args = append(args, limit)

	return query, args
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
