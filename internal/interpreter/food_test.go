package interpreter

import (
	"reflect"
	"testing"
	"time"
)

func TestExtractFood(t *testing.T) {
	noon := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		text string
		want FoodData
	}{
		{
			name: "Grams with explicit meal",
			text: "200g kyckling lunch",
			want: FoodData{Query: "kyckling", Quantity: 200, Unit: "g", Meal: MealLunch},
		},
		{
			name: "Kilograms normalize to grams",
			text: "2kg ris",
			want: FoodData{Query: "ris", Quantity: 2000, Unit: "g", Meal: MealLunch},
		},
		{
			name: "Portion unit",
			text: "1 portion pasta middag",
			want: FoodData{Query: "pasta", Quantity: 1, Unit: "portion", Meal: MealDinner},
		},
		{
			name: "Tablespoons normalize to grams",
			text: "3 msk olivolja",
			want: FoodData{Query: "olivolja", Quantity: 45, Unit: "g", Meal: MealLunch},
		},
		{
			name: "Teaspoons normalize to grams",
			text: "2 tsk socker",
			want: FoodData{Query: "socker", Quantity: 10, Unit: "g", Meal: MealLunch},
		},
		{
			name: "Deciliters normalize to milliliters",
			text: "2,5 dl mjölk",
			want: FoodData{Query: "mjölk", Quantity: 250, Unit: "ml", Meal: MealLunch},
		},
		{
			name: "Piece count",
			text: "2 st ägg frukost",
			want: FoodData{Query: "ägg", Quantity: 2, Unit: "st", Meal: MealBreakfast},
		},
		{
			name: "Bare food name gets the 100 g default",
			text: "kyckling",
			want: FoodData{Query: "kyckling", Quantity: 100, Unit: "g", Meal: MealLunch},
		},
		{
			name: "Leading fillers are stripped",
			text: "jag åt 2 st ägg",
			want: FoodData{Query: "ägg", Quantity: 2, Unit: "st", Meal: MealLunch},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractFood(tt.text, noon)
			if !ok {
				t.Fatalf("extractFood(%q) did not match", tt.text)
			}
			if !reflect.DeepEqual(*got.Food, tt.want) {
				t.Errorf("extractFood(%q) = %+v, want %+v", tt.text, *got.Food, tt.want)
			}
		})
	}
}

func TestExtractFood_Rejections(t *testing.T) {
	// No food name left after stripping means the line is not a food mention.
	tests := []string{
		"",
		"100",
		"20kg",
		"1h",
		"30 min",
		"jag åt",
	}
	for _, text := range tests {
		if _, ok := extractFood(text, testNow); ok {
			t.Errorf("extractFood(%q) matched, want fall-through", text)
		}
	}
}

func TestMealByHour(t *testing.T) {
	tests := []struct {
		hour int
		want MealType
	}{
		{5, MealBreakfast},
		{8, MealBreakfast},
		{10, MealLunch},
		{12, MealLunch},
		{15, MealSnack},
		{17, MealDinner},
		{19, MealDinner},
		{21, MealSnack},
		{23, MealSnack},
		{2, MealSnack},
	}
	for _, tt := range tests {
		if got := mealByHour(tt.hour); got != tt.want {
			t.Errorf("mealByHour(%d) = %s, want %s", tt.hour, got, tt.want)
		}
	}
}

func TestLookupUnit(t *testing.T) {
	tests := []struct {
		surface   string
		canonical string
		factor    float64
	}{
		{"g", "g", 1},
		{"kg", "g", 1000},
		{"l", "ml", 1000},
		{"dl", "ml", 100},
		{"msk", "g", 15},
		{"tsk", "g", 5},
		{"st", "st", 1},
		{"portion", "portion", 1},
	}
	for _, tt := range tests {
		canonical, factor, ok := lookupUnit(tt.surface)
		if !ok || canonical != tt.canonical || factor != tt.factor {
			t.Errorf("lookupUnit(%q) = %q, %v, %v; want %q, %v", tt.surface, canonical, factor, ok, tt.canonical, tt.factor)
		}
	}
	if _, _, ok := lookupUnit("furlong"); ok {
		t.Error("lookupUnit accepted an unknown unit")
	}
}
