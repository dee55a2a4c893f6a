package logbook

import (
	"context"

	"halsologg/internal/model"
)

// UseCase defines the business logic interface for the logbook domain.
type UseCase interface {
	// Process interprets one omnibox line, persists the resulting entry when
	// the intent is loggable, and returns a confirmation for the user.
	Process(ctx context.Context, sc model.Scope, input ProcessInput) (ProcessOutput, error)

	// List returns stored entries of one kind, optionally bounded by an
	// inclusive ISO date range.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Suggest returns previously logged meal names matching a prefix, for
	// omnibox autocomplete.
	Suggest(ctx context.Context, sc model.Scope, input SuggestInput) (SuggestOutput, error)
}
