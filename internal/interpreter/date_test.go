package interpreter

import "testing"

func TestExtractDate(t *testing.T) {
	p := testParser(t)

	tests := []struct {
		name     string
		text     string
		wantDate string
		wantRest string
	}{
		{"Today", "idag löpning", "2024-05-01", "löpning"},
		{"Yesterday trailing", "löpning igår", "2024-04-30", "löpning"},
		{"Day before yesterday", "i förrgår 5km", "2024-04-29", "5km"},
		{"Tomorrow", "imorgon tävling", "2024-05-02", "tävling"},
		{"Full ISO date", "2024-03-15 lunch", "2024-03-15", "lunch"},
		{"Short date takes the current year", "03-15 träning", "2024-03-15", "träning"},
		{"No date reference", "lunch", "", "lunch"},
		{"Invalid month is left in place", "13-45 test", "", "13-45 test"},
		{"Overflowing day is left in place", "02-30 test", "", "02-30 test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, rest := p.extractDate(tt.text, testNow)
			if date != tt.wantDate || rest != tt.wantRest {
				t.Errorf("extractDate(%q) = %q, %q; want %q, %q", tt.text, date, rest, tt.wantDate, tt.wantRest)
			}
		})
	}
}

func TestExtractDate_BoundarySafety(t *testing.T) {
	p := testParser(t)

	// A day word glued to a suffix must not be consumed.
	date, rest := p.extractDate("todays meny", testNow)
	if date != "" || rest != "todays meny" {
		t.Errorf("extractDate(%q) = %q, %q; want no date", "todays meny", date, rest)
	}

	// A date fragment glued to word characters is not a date.
	date, _ = p.extractDate("abc03-15x", testNow)
	if date != "" {
		t.Errorf("glued fragment resolved to %q, want none", date)
	}
}
