package interpreter

import (
	"reflect"
	"testing"
)

func TestExtractExercise(t *testing.T) {
	tests := []struct {
		name string
		text string
		want ExerciseData
	}{
		{
			name: "Type and duration",
			text: "löpning 30 min",
			want: ExerciseData{Type: ExerciseRunning, DurationMin: 30, Intensity: IntensityModerate},
		},
		{
			name: "Distance derives duration from default pace",
			text: "5km löpning",
			want: ExerciseData{Type: ExerciseRunning, DurationMin: 30, Intensity: IntensityModerate, DistanceKm: 5},
		},
		{
			name: "Explicit pace derives duration",
			text: "löpning 10km @5:30",
			want: ExerciseData{Type: ExerciseRunning, DurationMin: 55, Intensity: IntensityModerate, DistanceKm: 10, PaceSecPerKm: 330},
		},
		{
			name: "Low intensity slows the default pace",
			text: "lugn löpning 5km",
			want: ExerciseData{Type: ExerciseRunning, DurationMin: 35, Intensity: IntensityLow, DistanceKm: 5},
		},
		{
			name: "Interval subtype infers running",
			text: "intervaller 8km",
			want: ExerciseData{Type: ExerciseRunning, DurationMin: 48, Intensity: IntensityModerate, Subtype: SubtypeInterval, DistanceKm: 8},
		},
		{
			name: "Sets x reps x weight tonnage",
			text: "styrka 5x5x100kg",
			want: ExerciseData{Type: ExerciseStrength, DurationMin: 30, Intensity: IntensityModerate, Subtype: SubtypeTonnage, TonnageKg: 2500},
		},
		{
			name: "Bare kg with strength context",
			text: "bänkpress 80 kg",
			want: ExerciseData{Type: ExerciseStrength, DurationMin: 30, Intensity: IntensityModerate, Subtype: SubtypeTonnage, TonnageKg: 80},
		},
		{
			name: "Ton shorthand",
			text: "2 ton marklyft",
			want: ExerciseData{Type: ExerciseStrength, DurationMin: 30, Intensity: IntensityModerate, Subtype: SubtypeTonnage, TonnageKg: 2000},
		},
		{
			name: "Huge bare kg is tonnage without context",
			text: "350 kg",
			want: ExerciseData{Type: ExerciseStrength, DurationMin: 30, Intensity: IntensityModerate, Subtype: SubtypeTonnage, TonnageKg: 350},
		},
		{
			name: "Heart rate pair and hours",
			text: "cykling 90 min hårt puls 145/165",
			want: ExerciseData{Type: ExerciseCycling, DurationMin: 90, Intensity: IntensityHigh, AvgHeartRate: 145, MaxHeartRate: 165},
		},
		{
			name: "Hour unit converts to minutes",
			text: "promenad 1h",
			want: ExerciseData{Type: ExerciseWalking, DurationMin: 60, Intensity: IntensityModerate},
		},
		{
			name: "Type alone gets the default duration",
			text: "yoga",
			want: ExerciseData{Type: ExerciseYoga, DurationMin: 30, Intensity: IntensityModerate},
		},
		{
			name: "Competition subtype",
			text: "löpning tävling 10km",
			want: ExerciseData{Type: ExerciseRunning, DurationMin: 60, Intensity: IntensityModerate, Subtype: SubtypeCompetition, DistanceKm: 10},
		},
		{
			name: "Generic training word",
			text: "träning",
			want: ExerciseData{Type: ExerciseOther, DurationMin: 30, Intensity: IntensityModerate},
		},
		{
			name: "Residue becomes notes",
			text: "löpning i skogen 30min",
			want: ExerciseData{Type: ExerciseRunning, DurationMin: 30, Intensity: IntensityModerate, Notes: "i skogen"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractExercise(tt.text, testNow)
			if !ok {
				t.Fatalf("extractExercise(%q) did not match", tt.text)
			}
			if !reflect.DeepEqual(*got.Exercise, tt.want) {
				t.Errorf("extractExercise(%q) = %+v, want %+v", tt.text, *got.Exercise, tt.want)
			}
		})
	}
}

func TestExtractExercise_Rejections(t *testing.T) {
	// Lines with numbers but no exercise anchor must fall through so later
	// extractors or the search fallback can claim them.
	tests := []string{
		"80 kg",
		"45 min",
		"5x5",
		"",
		"bara text utan siffror och nyckelord",
	}
	for _, text := range tests {
		if _, ok := extractExercise(text, testNow); ok {
			t.Errorf("extractExercise(%q) matched, want fall-through", text)
		}
	}
}

func TestResolveDuration_ConsumedSpans(t *testing.T) {
	// The distance span must be claimed before duration parsing so "5km" can
	// never be read as five minutes.
	_, rest := resolveDistance("5km 45 min")
	d, found, _ := resolveDuration(rest)
	if !found || d != 45 {
		t.Errorf("duration after distance removal = %d (found=%v), want 45", d, found)
	}
}
