package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"halsologg/internal/interpreter"
	"halsologg/internal/logbook"
	"halsologg/internal/logbook/repository"
	"halsologg/internal/model"
	"halsologg/pkg/datemath"
	"halsologg/pkg/gcalendar"
)

// Process interprets one omnibox line and persists the resulting entry. The
// interpreter is total, so Process fails only on storage errors.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input logbook.ProcessInput) (logbook.ProcessOutput, error) {
	now := uc.clock().In(uc.location)
	intent := uc.parser.Parse(input.Text, now)

	uc.l.Infof(ctx, "Process: user=%s kind=%s", sc.UserID, intent.Kind)

	out := logbook.ProcessOutput{Intent: intent}
	date := intent.Date
	if date == "" {
		date = now.Format(datemath.ISODate)
	}

	switch intent.Kind {
	case interpreter.KindExercise:
		entry := model.ExerciseEntry{
			ID:           uuid.NewString(),
			UserID:       sc.UserID,
			Date:         date,
			Type:         intent.Exercise.Type,
			Subtype:      intent.Exercise.Subtype,
			DurationMin:  intent.Exercise.DurationMin,
			Intensity:    intent.Exercise.Intensity,
			DistanceKm:   intent.Exercise.DistanceKm,
			PaceSecPerKm: intent.Exercise.PaceSecPerKm,
			TonnageKg:    intent.Exercise.TonnageKg,
			AvgHeartRate: intent.Exercise.AvgHeartRate,
			MaxHeartRate: intent.Exercise.MaxHeartRate,
			Notes:        intent.Exercise.Notes,
			CreatedAt:    now,
		}
		entry.Calories = interpreter.Calories(
			entry.Type, entry.DurationMin, entry.Intensity, uc.bodyWeight(ctx, sc.UserID))

		if err := uc.repo.CreateExercise(ctx, entry); err != nil {
			return out, fmt.Errorf("storing exercise entry: %w", err)
		}
		uc.tryCreateCalendarEvent(ctx, entry)

		out.EntryID = entry.ID
		out.Stored = true
		out.Reply = exerciseReply(entry)

	case interpreter.KindFood:
		entry := model.MealEntry{
			ID:        uuid.NewString(),
			UserID:    sc.UserID,
			Date:      date,
			Query:     intent.Food.Query,
			Quantity:  intent.Food.Quantity,
			Unit:      intent.Food.Unit,
			Meal:      intent.Food.Meal,
			CreatedAt: now,
		}
		if err := uc.repo.CreateMeal(ctx, entry); err != nil {
			return out, fmt.Errorf("storing meal entry: %w", err)
		}
		out.EntryID = entry.ID
		out.Stored = true
		out.Reply = mealReply(entry)

	case interpreter.KindWeight:
		entry := model.WeightEntry{
			ID:        uuid.NewString(),
			UserID:    sc.UserID,
			Date:      date,
			WeightKg:  intent.Weight.WeightKg,
			CreatedAt: now,
		}
		if err := uc.repo.CreateWeight(ctx, entry); err != nil {
			return out, fmt.Errorf("storing weight entry: %w", err)
		}
		out.EntryID = entry.ID
		out.Stored = true
		out.Reply = weightReply(entry)

	case interpreter.KindVitals:
		entry := model.VitalsEntry{
			ID:         uuid.NewString(),
			UserID:     sc.UserID,
			Date:       date,
			Type:       intent.Vitals.Type,
			Amount:     intent.Vitals.Amount,
			CaffeineMg: intent.Vitals.CaffeineMg,
			CreatedAt:  now,
		}
		if err := uc.repo.CreateVitals(ctx, entry); err != nil {
			return out, fmt.Errorf("storing vitals entry: %w", err)
		}
		out.EntryID = entry.ID
		out.Stored = true
		out.Reply = vitalsReply(entry)

	case interpreter.KindMeasurement:
		// A bare measurement keyword carries no site; treat it as opening the
		// measurement view rather than storing an empty record.
		if intent.Measurement.Site == "" {
			out.Reply = "Öppnar kroppsmått."
			return out, nil
		}
		entry := model.MeasurementEntry{
			ID:        uuid.NewString(),
			UserID:    sc.UserID,
			Date:      date,
			Site:      intent.Measurement.Site,
			ValueCm:   intent.Measurement.ValueCm,
			CreatedAt: now,
		}
		if err := uc.repo.CreateMeasurement(ctx, entry); err != nil {
			return out, fmt.Errorf("storing measurement entry: %w", err)
		}
		out.EntryID = entry.ID
		out.Stored = true
		out.Reply = measurementReply(entry)

	case interpreter.KindNavigate:
		out.Reply = fmt.Sprintf("Öppnar %s", intent.Navigate.Route)

	case interpreter.KindSearch:
		out.Reply = uc.searchReply(ctx, sc.UserID, intent.Search.Query)
	}

	return out, nil
}

// bodyWeight returns the user's most recent logged weight, falling back to the
// configured default when nothing is stored.
func (uc *implUseCase) bodyWeight(ctx context.Context, userID string) float64 {
	latest, err := uc.repo.LatestWeight(ctx, userID)
	if err != nil {
		if err != repository.ErrNotFound {
			uc.l.Warnf(ctx, "Process: latest weight lookup failed: %v", err)
		}
		return uc.defaultWeightKg
	}
	return latest.WeightKg
}

// tryCreateCalendarEvent schedules race and competition sessions in Google
// Calendar. Failures are logged and never block the entry.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, entry model.ExerciseEntry) {
	if uc.calendar == nil {
		return
	}
	if entry.Subtype != interpreter.SubtypeRace && entry.Subtype != interpreter.SubtypeCompetition {
		return
	}

	day, err := time.ParseInLocation(datemath.ISODate, entry.Date, uc.location)
	if err != nil {
		uc.l.Warnf(ctx, "Process: calendar event skipped, bad date %q: %v", entry.Date, err)
		return
	}
	start := day.Add(9 * time.Hour)
	end := start.Add(time.Duration(entry.DurationMin) * time.Minute)

	summary := fmt.Sprintf("%s (%s)", entry.Type, entry.Subtype)
	description := entry.Notes
	if entry.DistanceKm > 0 {
		description = fmt.Sprintf("%.1f km. %s", entry.DistanceKm, entry.Notes)
	}

	_, err = uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     summary,
		Description: description,
		StartTime:   start,
		EndTime:     end,
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "Process: calendar event creation failed (non-fatal): %v", err)
	}
}
