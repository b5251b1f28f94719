// Package tips generates carbon-reduction suggestions from an emissions
// breakdown. Generation is deterministic: the same breakdown always yields
// the same tips, in the same order.
package tips

import (
	"github.com/rshade/carboncount/internal/calc"
)

// MaxTips caps the number of suggestions returned.
const MaxTips = 5

// Breakdown share thresholds that trigger targeted tips.
const (
	// gasolineShareThreshold is the gasoline-car share of transportation
	// emissions above which a transit tip fires.
	gasolineShareThreshold = 0.7

	// meatShareThreshold is the meat-meal share of food emissions above
	// which a diet tip fires.
	meatShareThreshold = 0.5

	// homeEnergyThresholdKg is the home-energy total above which an
	// efficiency tip fires.
	homeEnergyThresholdKg = 5.0
)

// Category and activity keys the rules inspect.
const (
	categoryTransportation = "Transportation"
	categoryFood           = "Food & Diet"
	categoryHomeEnergy     = "Home Energy"
)

var starterTips = []string{
	"Start tracking your activities to get personalized tips!",
	"Consider walking or biking for short trips instead of driving.",
	"Try incorporating more plant-based meals into your diet.",
}

var generalTips = []string{
	"Turn off lights when leaving a room to save energy.",
	"Reduce, reuse, and recycle whenever possible.",
	"Every small action counts towards a more sustainable future!",
}

// Generate returns up to MaxTips suggestions for the given result.
// Targeted tips fire on breakdown shares; general tips pad the list.
// A nil or empty result yields the starter tips.
func Generate(result *calc.Result) []string {
	if result == nil || len(result.Entries) == 0 {
		return append([]string(nil), starterTips...)
	}

	var out []string
	out = append(out, transportTips(result)...)
	out = append(out, foodTips(result)...)
	out = append(out, homeEnergyTips(result)...)
	out = append(out, generalTips...)

	if len(out) > MaxTips {
		out = out[:MaxTips]
	}
	return out
}

// transportTips inspects the transportation breakdown for car dependence.
func transportTips(result *calc.Result) []string {
	transportTotal := result.CategoryTotal(categoryTransportation)
	if transportTotal <= 0 {
		return nil
	}

	var tips []string
	var gasolineKg float64
	usedTransit := false

	for _, entry := range result.Entries {
		if entry.Category != categoryTransportation {
			continue
		}
		switch entry.Key {
		case "gasoline_car":
			gasolineKg += entry.KgCO2e
		case "bus", "train":
			if entry.Quantity > 0 {
				usedTransit = true
			}
		}
	}

	if gasolineKg > transportTotal*gasolineShareThreshold {
		tips = append(tips, "Consider using public transportation, electric vehicles, or carpooling to reduce your gasoline car usage.")
	}
	if !usedTransit {
		tips = append(tips, "Try using public transportation or walking/biking for short trips - it's great for your health and the environment!")
	}
	return tips
}

// foodTips inspects the food breakdown for meat-heavy diets.
func foodTips(result *calc.Result) []string {
	foodTotal := result.CategoryTotal(categoryFood)
	if foodTotal <= 0 {
		return nil
	}

	var tips []string
	var meatKg float64
	atePlantBased := false

	for _, entry := range result.Entries {
		if entry.Category != categoryFood {
			continue
		}
		switch entry.Key {
		case "heavy_meat_meal", "moderate_meat_meal":
			meatKg += entry.KgCO2e
		case "vegetarian_meal", "vegan_meal":
			if entry.Quantity > 0 {
				atePlantBased = true
			}
		}
	}

	if meatKg > foodTotal*meatShareThreshold {
		tips = append(tips, "Consider reducing meat consumption - even switching to a vegetarian or vegan diet makes a significant difference!")
	}
	if !atePlantBased {
		tips = append(tips, "Try incorporating more plant-based meals - they have a much lower carbon footprint!")
	}
	return tips
}

// homeEnergyTips fires when home energy emissions are high.
func homeEnergyTips(result *calc.Result) []string {
	if result.CategoryTotal(categoryHomeEnergy) > homeEnergyThresholdKg {
		return []string{"Consider energy-saving measures like LED bulbs, better insulation, and unplugging unused electronics."}
	}
	return nil
}
