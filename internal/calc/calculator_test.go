package calc

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carboncount/internal/factors"
)

// testCalculator returns a Calculator over the embedded factor dataset.
func testCalculator(t *testing.T) *Calculator {
	t.Helper()
	reg, err := factors.Load()
	require.NoError(t, err)
	return NewCalculator(reg, zerolog.Nop())
}

func TestCompute_SingleActivity(t *testing.T) {
	c := testCalculator(t)

	result, err := c.Compute(ActivityInput{"gasoline_car": 100})

	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "gasoline_car", result.Entries[0].Key)
	assert.Equal(t, "Transportation", result.Entries[0].Category)
	assert.InDelta(t, 40.4, result.Entries[0].KgCO2e, 1e-9)
	assert.InDelta(t, 40.4, result.TotalKgCO2e, 1e-9)
	assert.InDelta(t, 40.4, result.CategoryTotal("Transportation"), 1e-9)
}

func TestCompute_ReferenceScenario(t *testing.T) {
	// Reference scenario: two activities with published factors
	// 0.404 kg/mile and 0.433 kg/kWh; 100 miles + 50 kWh = 62.05 kg CO2e.
	data := `{
		"version": "test",
		"categories": [{
			"name": "Reference",
			"unit": "kg CO2e per unit",
			"activities": [
				{"key": "car_miles", "label": "Car miles", "factor": 0.404},
				{"key": "electricity_kwh", "label": "Electricity", "factor": 0.433}
			]
		}]
	}`
	reg := registryFromJSON(t, data)
	c := NewCalculator(reg, zerolog.Nop())

	result, err := c.Compute(ActivityInput{
		"car_miles":       100,
		"electricity_kwh": 50,
	})

	require.NoError(t, err)
	breakdown := result.Breakdown()
	assert.InDelta(t, 40.4, breakdown["car_miles"], 1e-9)
	assert.InDelta(t, 21.65, breakdown["electricity_kwh"], 1e-9)
	assert.InDelta(t, 62.05, result.TotalKgCO2e, 1e-9)
}

func TestCompute_TotalEqualsSumOfBreakdown(t *testing.T) {
	c := testCalculator(t)

	result, err := c.Compute(ActivityInput{
		"gasoline_car":    12.5,
		"lighting":        6,
		"hot_shower":      10,
		"heavy_meat_meal": 2,
		"streaming_hd":    3.5,
	})
	require.NoError(t, err)

	var sum float64
	for _, entry := range result.Entries {
		sum += entry.KgCO2e
	}
	assert.InDelta(t, sum, result.TotalKgCO2e, 1e-9*math.Abs(sum),
		"total should equal the sum of breakdown entries")

	var catSum float64
	for _, kg := range result.CategoryTotals {
		catSum += kg
	}
	assert.InDelta(t, sum, catSum, 1e-9*math.Abs(sum),
		"category totals should partition the total")
}

func TestCompute_Deterministic(t *testing.T) {
	c := testCalculator(t)
	input := ActivityInput{
		"gasoline_car": 33.3,
		"vegan_meal":   2,
		"computer_use": 8,
	}

	first, err := c.Compute(input)
	require.NoError(t, err)
	second, err := c.Compute(input)
	require.NoError(t, err)

	assert.Equal(t, first, second, "repeated calls must be bit-identical")
}

func TestCompute_AllZeroQuantities(t *testing.T) {
	c := testCalculator(t)

	result, err := c.Compute(ActivityInput{
		"gasoline_car": 0,
		"lighting":     0,
		"vegan_meal":   0,
	})

	require.NoError(t, err)
	assert.Zero(t, result.TotalKgCO2e)
	for _, entry := range result.Entries {
		assert.Zero(t, entry.KgCO2e)
	}
}

func TestCompute_EmptyInput(t *testing.T) {
	c := testCalculator(t)

	result, err := c.Compute(ActivityInput{})

	require.NoError(t, err)
	assert.Empty(t, result.Entries)
	assert.Zero(t, result.TotalKgCO2e)
}

func TestCompute_Monotonicity(t *testing.T) {
	c := testCalculator(t)
	base := ActivityInput{"gasoline_car": 10, "lighting": 4}

	baseline, err := c.Compute(base)
	require.NoError(t, err)

	increased := ActivityInput{"gasoline_car": 11, "lighting": 4}
	higher, err := c.Compute(increased)
	require.NoError(t, err)

	assert.Greater(t, higher.TotalKgCO2e, baseline.TotalKgCO2e,
		"increasing one quantity should increase the total")
}

func TestCompute_InvalidCategory(t *testing.T) {
	c := testCalculator(t)

	_, err := c.Compute(ActivityInput{"unicorn_rides": 5})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCategory)
	assert.Contains(t, err.Error(), "unicorn_rides")
}

func TestCompute_InvalidQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
	}{
		{"negative", -10},
		{"NaN", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
	}

	c := testCalculator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Compute(ActivityInput{"gasoline_car": tt.quantity})

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidQuantity)
		})
	}
}

func TestCompute_MixedValidAndInvalidReturnsNoPartialResult(t *testing.T) {
	c := testCalculator(t)

	result, err := c.Compute(ActivityInput{
		"gasoline_car":  10,
		"unicorn_rides": 5,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCategory)
	assert.Nil(t, result)
}
