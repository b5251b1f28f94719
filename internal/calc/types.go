// Package calc turns categorized activity quantities into CO2-equivalent
// emission estimates using the factor table from the factors package.
//
// The calculation is a pure function of its input: no I/O, no hidden state,
// and identical inputs always produce identical results.
package calc

// ActivityInput maps activity keys (e.g., "gasoline_car") to non-negative
// quantities in the unit the activity's factor applies to.
type ActivityInput map[string]float64

// Entry is a single computed line of an emissions breakdown.
type Entry struct {
	// Key is the activity key from the input.
	Key string `json:"key"`

	// Label is the human-readable activity name.
	Label string `json:"label"`

	// Category is the activity's category.
	Category string `json:"category"`

	// Unit is the quantity unit the factor applies to.
	Unit string `json:"unit"`

	// Quantity is the input quantity.
	Quantity float64 `json:"quantity"`

	// KgCO2e is Quantity multiplied by the activity's emission factor.
	KgCO2e float64 `json:"kg_co2e"`
}

// Result is the outcome of a single emissions computation.
type Result struct {
	// Entries holds one line per input activity, sorted by key for
	// deterministic output.
	Entries []Entry `json:"entries"`

	// CategoryTotals sums entry emissions per category in kg CO2e.
	CategoryTotals map[string]float64 `json:"category_totals"`

	// TotalKgCO2e is the exact sum of all entry emissions.
	TotalKgCO2e float64 `json:"total_kg_co2e"`
}

// Breakdown returns the per-activity emissions as a key-to-kg map.
func (r *Result) Breakdown() map[string]float64 {
	out := make(map[string]float64, len(r.Entries))
	for _, e := range r.Entries {
		out[e.Key] = e.KgCO2e
	}
	return out
}

// CategoryTotal returns the summed emissions for a category, or 0 when the
// category contributed nothing.
func (r *Result) CategoryTotal(category string) float64 {
	return r.CategoryTotals[category]
}
