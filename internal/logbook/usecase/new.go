package usecase

import (
	"time"

	"halsologg/internal/interpreter"
	"halsologg/internal/logbook/repository"
	"halsologg/pkg/gcalendar"
	pkgLog "halsologg/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	parser   *interpreter.Parser
	calendar *gcalendar.Client // optional, nil when not configured

	location        *time.Location
	timezone        string
	calendarID      string
	defaultWeightKg float64

	clock func() time.Time
}

// New creates a new logbook UseCase instance. calendar may be nil.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	parser *interpreter.Parser,
	calendar *gcalendar.Client,
	timezone string,
	calendarID string,
	defaultWeightKg float64,
) *implUseCase {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return &implUseCase{
		l:               l,
		repo:            repo,
		parser:          parser,
		calendar:        calendar,
		location:        loc,
		timezone:        timezone,
		calendarID:      calendarID,
		defaultWeightKg: defaultWeightKg,
		clock:           time.Now,
	}
}
