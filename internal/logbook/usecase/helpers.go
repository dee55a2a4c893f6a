package usecase

import (
	"context"
	"fmt"
	"strings"

	"halsologg/internal/interpreter"
	"halsologg/internal/model"
)

var exerciseTypeNames = map[interpreter.ExerciseType]string{
	interpreter.ExerciseRunning:  "Löpning",
	interpreter.ExerciseCycling:  "Cykling",
	interpreter.ExerciseStrength: "Styrketräning",
	interpreter.ExerciseWalking:  "Promenad",
	interpreter.ExerciseSwimming: "Simning",
	interpreter.ExerciseYoga:     "Yoga",
	interpreter.ExerciseOther:    "Träning",
}

var mealNames = map[interpreter.MealType]string{
	interpreter.MealBreakfast: "frukost",
	interpreter.MealLunch:     "lunch",
	interpreter.MealDinner:    "middag",
	interpreter.MealSnack:     "mellanmål",
	interpreter.MealBeverage:  "dryck",
}

var vitalNames = map[interpreter.VitalType]string{
	interpreter.VitalSleep:  "sömn",
	interpreter.VitalWater:  "vatten",
	interpreter.VitalCoffee: "kaffe",
	interpreter.VitalNocco:  "nocco",
	interpreter.VitalEnergy: "energidryck",
	interpreter.VitalSteps:  "steg",
}

func exerciseReply(e model.ExerciseEntry) string {
	name := exerciseTypeNames[e.Type]
	if name == "" {
		name = string(e.Type)
	}

	parts := []string{fmt.Sprintf("%s loggad: %d min", name, e.DurationMin)}
	if e.DistanceKm > 0 {
		parts = append(parts, fmt.Sprintf("%s km", trimFloat(e.DistanceKm)))
	}
	if e.TonnageKg > 0 {
		parts = append(parts, fmt.Sprintf("%s kg volym", trimFloat(e.TonnageKg)))
	}
	if e.Calories > 0 {
		parts = append(parts, fmt.Sprintf("ca %d kcal", e.Calories))
	}
	return strings.Join(parts, ", ") + fmt.Sprintf(" (%s).", e.Date)
}

func mealReply(e model.MealEntry) string {
	meal := mealNames[e.Meal]
	if meal == "" {
		meal = string(e.Meal)
	}
	return fmt.Sprintf("%s %s %s loggad som %s (%s).", trimFloat(e.Quantity), e.Unit, e.Query, meal, e.Date)
}

func weightReply(e model.WeightEntry) string {
	return fmt.Sprintf("Vikt %s kg loggad (%s).", trimFloat(e.WeightKg), e.Date)
}

func vitalsReply(e model.VitalsEntry) string {
	name := vitalNames[e.Type]
	if name == "" {
		name = string(e.Type)
	}
	switch e.Type {
	case interpreter.VitalSleep:
		return fmt.Sprintf("Sömn %s h loggad (%s).", trimFloat(e.Amount), e.Date)
	case interpreter.VitalSteps:
		return fmt.Sprintf("%s steg loggade (%s).", trimFloat(e.Amount), e.Date)
	default:
		if e.CaffeineMg > 0 {
			return fmt.Sprintf("%s %s loggad, ca %s mg koffein (%s).", trimFloat(e.Amount), name, trimFloat(e.CaffeineMg), e.Date)
		}
		return fmt.Sprintf("%s %s loggad (%s).", trimFloat(e.Amount), name, e.Date)
	}
}

func measurementReply(e model.MeasurementEntry) string {
	if e.ValueCm > 0 {
		return fmt.Sprintf("Mått %s: %s cm loggat (%s).", e.Site, trimFloat(e.ValueCm), e.Date)
	}
	return fmt.Sprintf("Öppnar mått för %s.", e.Site)
}

// searchReply suggests previously logged meals matching the query, or a plain
// "nothing matched" line.
func (uc *implUseCase) searchReply(ctx context.Context, userID, query string) string {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return "Skriv något att logga, t.ex. \"5km löpning\" eller \"200g kyckling lunch\"."
	}

	names, err := uc.repo.MealNames(ctx, userID, strings.ToLower(trimmed), 5)
	if err != nil {
		uc.l.Warnf(ctx, "Process: meal suggestion lookup failed: %v", err)
	}
	if len(names) == 0 {
		return fmt.Sprintf("Förstod inte %q. Inget loggades.", query)
	}
	return fmt.Sprintf("Förstod inte %q. Menade du: %s?", query, strings.Join(names, ", "))
}

// trimFloat formats a float without trailing zeros: 5 not 5.0, 82.5 kept.
func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
