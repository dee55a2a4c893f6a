package usecase

import (
	"context"
	"strings"

	"halsologg/internal/logbook"
	"halsologg/internal/model"
)

const defaultSuggestLimit = 10

// Suggest returns previously logged meal names matching a prefix.
func (uc *implUseCase) Suggest(ctx context.Context, sc model.Scope, input logbook.SuggestInput) (logbook.SuggestOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultSuggestLimit
	}

	names, err := uc.repo.MealNames(ctx, sc.UserID, strings.ToLower(strings.TrimSpace(input.Prefix)), limit)
	if err != nil {
		return logbook.SuggestOutput{}, err
	}
	return logbook.SuggestOutput{Names: names}, nil
}
