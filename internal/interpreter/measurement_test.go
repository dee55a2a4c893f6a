package interpreter

import (
	"reflect"
	"testing"
)

func TestExtractMeasurement(t *testing.T) {
	tests := []struct {
		name string
		text string
		want MeasurementData
	}{
		{"Value after site", "midja 84", MeasurementData{Site: SiteWaist, ValueCm: 84}},
		{"Value before site", "84 midja", MeasurementData{Site: SiteWaist, ValueCm: 84}},
		{"Explicit cm suffix", "lår 55cm", MeasurementData{Site: SiteThighLeft, ValueCm: 55}},
		{"Explicit left side", "vänster lår 55", MeasurementData{Site: SiteThighLeft, ValueCm: 55}},
		{"Explicit right side", "höger arm 38,5", MeasurementData{Site: SiteArmRight, ValueCm: 38.5}},
		{"Unprefixed bilateral defaults to left", "underarm 29", MeasurementData{Site: SiteForearmLeft, ValueCm: 29}},
		{"Site without a value", "nacke", MeasurementData{Site: SiteNeck}},
		{"Shoulders", "axlar 110", MeasurementData{Site: SiteShoulders, ValueCm: 110}},
		{"Generic word opens the measurement view", "mått", MeasurementData{}},
		{"Generic English word", "measurements", MeasurementData{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractMeasurement(tt.text, testNow)
			if !ok {
				t.Fatalf("extractMeasurement(%q) did not match", tt.text)
			}
			if !reflect.DeepEqual(*got.Measurement, tt.want) {
				t.Errorf("extractMeasurement(%q) = %+v, want %+v", tt.text, *got.Measurement, tt.want)
			}
		})
	}
}

func TestExtractMeasurement_NoKeyword(t *testing.T) {
	for _, text := range []string{"", "84", "löpning 5km"} {
		if _, ok := extractMeasurement(text, testNow); ok {
			t.Errorf("extractMeasurement(%q) matched, want fall-through", text)
		}
	}
}
