package usecase

import (
	"context"

	"halsologg/internal/logbook"
	"halsologg/internal/logbook/repository"
	"halsologg/internal/model"
)

// List returns stored entries of one kind, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input logbook.ListInput) (logbook.ListOutput, error) {
	if input.From != "" && input.To != "" && input.From > input.To {
		return logbook.ListOutput{}, logbook.ErrInvalidRange
	}

	f := repository.Filter{From: input.From, To: input.To, Limit: input.Limit}
	out := logbook.ListOutput{}

	switch input.Kind {
	case model.EntryExercise:
		entries, err := uc.repo.ListExercise(ctx, sc.UserID, f)
		if err != nil {
			return out, err
		}
		out.Exercise = entries
		out.Count = len(entries)
	case model.EntryMeal:
		entries, err := uc.repo.ListMeals(ctx, sc.UserID, f)
		if err != nil {
			return out, err
		}
		out.Meals = entries
		out.Count = len(entries)
	case model.EntryWeight:
		entries, err := uc.repo.ListWeights(ctx, sc.UserID, f)
		if err != nil {
			return out, err
		}
		out.Weights = entries
		out.Count = len(entries)
	case model.EntryVitals:
		entries, err := uc.repo.ListVitals(ctx, sc.UserID, f)
		if err != nil {
			return out, err
		}
		out.Vitals = entries
		out.Count = len(entries)
	case model.EntryMeasurement:
		entries, err := uc.repo.ListMeasurements(ctx, sc.UserID, f)
		if err != nil {
			return out, err
		}
		out.Measurements = entries
		out.Count = len(entries)
	default:
		return out, logbook.ErrUnknownKind
	}

	return out, nil
}
