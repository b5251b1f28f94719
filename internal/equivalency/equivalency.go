// Package equivalency converts abstract carbon footprint values (kg CO2e)
// into relatable real-world comparisons like "miles driven" or
// "smartphones charged", using EPA-published conversion factors.
package equivalency

import (
	"fmt"
	"math"
	"strings"
)

// EPA formula constants (2024 edition).
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
//
// To calculate the equivalency, divide the carbon value by the factor:
//
//	equivalency = kg_CO2e / factor
const (
	// EPAMilesDrivenFactor is kg CO2e per mile for an average passenger vehicle.
	EPAMilesDrivenFactor = 0.192

	// EPASmartphoneChargeFactor is kg CO2e per full smartphone charge.
	EPASmartphoneChargeFactor = 0.00822
)

// Unit conversion constants for normalizing carbon values to kilograms.
const (
	GramsToKg  = 0.001
	KgToKg     = 1.0
	TonsToKg   = 1000.0
	PoundsToKg = 0.453592
)

// MinEquivalencyThresholdKg is the minimum kg CO2e for showing
// equivalencies. Below this the comparisons become meaninglessly small.
const MinEquivalencyThresholdKg = 0.01

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrInvalidUnit indicates an unrecognized carbon unit.
	ErrInvalidUnit = constError("invalid carbon unit")

	// ErrNegativeValue indicates a negative carbon value.
	ErrNegativeValue = constError("negative carbon value")

	// ErrNonFiniteValue indicates an Inf or NaN carbon value.
	ErrNonFiniteValue = constError("non-finite carbon value")
)

// Result is a single calculated equivalency.
type Result struct {
	// Value is the raw calculated equivalency value.
	Value float64 `json:"value"`

	// FormattedValue is the display-ready string.
	FormattedValue string `json:"formatted_value"`

	// Label is the descriptive phrase (e.g., "miles driven").
	Label string `json:"label"`
}

// Output contains all equivalency results for display.
type Output struct {
	// InputKg is the normalized input value in kilograms CO2e.
	InputKg float64 `json:"input_kg"`

	// Results contains calculated equivalencies in priority order.
	Results []Result `json:"results"`

	// DisplayText is the prose format for CLI output.
	// Example: "Equivalent to driving ~12 miles or charging ~280 smartphones"
	DisplayText string `json:"display_text"`

	// ContextText is the relatable single-sentence framing of the total.
	ContextText string `json:"context_text"`

	// IsEmpty is true when the input was below the display threshold.
	IsEmpty bool `json:"is_empty"`
}

// getUnitFactor returns the conversion factor to kilograms for a unit
// string. Matching is case-insensitive. Returns (0, false) for
// unrecognized units.
func getUnitFactor(unit string) (float64, bool) {
	switch strings.ToLower(unit) {
	case "g", "gco2e":
		return GramsToKg, true
	case "kg", "kgco2e":
		return KgToKg, true
	case "t", "tco2e":
		return TonsToKg, true
	case "lb", "lbco2e":
		return PoundsToKg, true
	default:
		return 0, false
	}
}

// NormalizeToKg converts a carbon value in any recognized unit to
// kilograms. Recognized units: g, kg, t, lb and their CO2e variants,
// case-insensitive.
//
// Returns ErrNegativeValue for negative values, ErrNonFiniteValue for
// Inf/NaN, and ErrInvalidUnit for unrecognized units.
func NormalizeToKg(value float64, unit string) (float64, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, ErrNonFiniteValue
	}
	if value < 0 {
		return 0, ErrNegativeValue
	}

	factor, ok := getUnitFactor(unit)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, unit)
	}

	return value * factor, nil
}

// Calculate computes carbon equivalencies for a footprint in kg CO2e.
//
// Returns an empty Output if kg is below MinEquivalencyThresholdKg, and an
// error if kg is negative or non-finite.
func Calculate(kg float64) (Output, error) {
	if math.IsInf(kg, 0) || math.IsNaN(kg) {
		return Output{IsEmpty: true}, ErrNonFiniteValue
	}
	if kg < 0 {
		return Output{IsEmpty: true}, ErrNegativeValue
	}
	if kg < MinEquivalencyThresholdKg {
		return Output{InputKg: kg, IsEmpty: true}, nil
	}

	miles := kg / EPAMilesDrivenFactor
	phones := kg / EPASmartphoneChargeFactor

	milesFormatted := formatValue(miles)
	phonesFormatted := formatValue(phones)

	results := []Result{
		{Value: miles, FormattedValue: milesFormatted, Label: "miles driven"},
		{Value: phones, FormattedValue: phonesFormatted, Label: "smartphones charged"},
	}

	displayText := fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones",
		milesFormatted, phonesFormatted)

	return Output{
		InputKg:     kg,
		Results:     results,
		DisplayText: displayText,
		ContextText: Context(kg),
		IsEmpty:     false,
	}, nil
}

// Context returns a relatable one-sentence framing for a daily footprint.
func Context(kg float64) string {
	switch {
	case kg < 1:
		return "That's about the same as charging your phone 120 times!"
	case kg < 5:
		return "That's about the same as charging your phone over 200 times!"
	case kg < 10:
		return "That's about the same as watching 15 hours of HD video streaming."
	case kg < 20:
		return "That's over 3x the weight of a newborn baby, in carbon!"
	case kg < 50:
		return "That's about the same emissions as a short domestic flight."
	default:
		return "That's roughly equivalent to driving a car for over 100 miles!"
	}
}
