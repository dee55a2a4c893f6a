package logbook

import (
	"halsologg/internal/interpreter"
	"halsologg/internal/model"
)

// ProcessInput is one raw omnibox line. ChatID is set by the Telegram delivery
// so replies can be routed back; HTTP callers leave it zero.
type ProcessInput struct {
	Text   string
	ChatID int64
}

// ProcessOutput is the result of interpreting and persisting one line.
type ProcessOutput struct {
	Intent  interpreter.Intent
	EntryID string // empty when the intent was not loggable
	Stored  bool
	Reply   string // human-readable Swedish confirmation
}

// ListInput selects stored entries. From/To are inclusive ISO dates; empty
// means unbounded. Limit 0 means the repository default.
type ListInput struct {
	Kind  model.EntryKind
	From  string
	To    string
	Limit int
}

// ListOutput carries at most one non-nil slice, matching the requested kind.
type ListOutput struct {
	Exercise     []model.ExerciseEntry
	Meals        []model.MealEntry
	Weights      []model.WeightEntry
	Vitals       []model.VitalsEntry
	Measurements []model.MeasurementEntry
	Count        int
}

// SuggestInput is a meal-name prefix query.
type SuggestInput struct {
	Prefix string
	Limit  int
}

// SuggestOutput lists matching previously logged meal names.
type SuggestOutput struct {
	Names []string
}
