package interpreter

import "math"

// Calories estimates energy burn in kilocalories for a session via MET lookup:
// kcal = MET × body weight (kg) × hours. Unknown types and intensities fall
// back to the moderate "other" coefficient.
func Calories(typ ExerciseType, durationMin int, intensity Intensity, bodyWeightKg float64) int {
	if durationMin <= 0 || bodyWeightKg <= 0 {
		return 0
	}

	byIntensity, ok := metTable[typ]
	if !ok {
		byIntensity = metTable[ExerciseOther]
	}
	met, ok := byIntensity[intensity]
	if !ok {
		met = byIntensity[IntensityModerate]
	}

	return int(math.Round(met * bodyWeightKg * float64(durationMin) / 60))
}
