package calc

import (
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/rshade/carboncount/internal/factors"
)

// Calculator computes emission estimates against an immutable factor
// registry. Safe for concurrent use.
type Calculator struct {
	registry *factors.Registry
	logger   zerolog.Logger
}

// NewCalculator creates a Calculator bound to the given factor registry.
// The provided logger is used for computation diagnostics.
func NewCalculator(registry *factors.Registry, logger zerolog.Logger) *Calculator {
	return &Calculator{
		registry: registry,
		logger:   logger,
	}
}

// Compute validates the input and produces a per-activity emissions
// breakdown with an exact total.
//
// Every key must exist in the factor registry and every quantity must be a
// finite number >= 0. On the first violation Compute returns
// ErrInvalidCategory or ErrInvalidQuantity wrapped with the offending key,
// and no partial result.
//
// The returned entries are sorted by activity key, so identical inputs
// yield identical results.
func (c *Calculator) Compute(input ActivityInput) (*Result, error) {
	keys := make([]string, 0, len(input))
	for key := range input {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	// Validate everything before computing anything, so an error never
	// leaks a partial breakdown.
	for _, key := range keys {
		if _, ok := c.registry.Lookup(key); !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, key)
		}
		if err := validateQuantity(key, input[key]); err != nil {
			return nil, err
		}
	}

	result := &Result{
		Entries:        make([]Entry, 0, len(keys)),
		CategoryTotals: make(map[string]float64),
	}

	for _, key := range keys {
		factor, _ := c.registry.Lookup(key)
		quantity := input[key]
		kg := quantity * factor.KgCO2ePerUnit

		result.Entries = append(result.Entries, Entry{
			Key:      key,
			Label:    factor.Label,
			Category: factor.Category,
			Unit:     factor.Unit,
			Quantity: quantity,
			KgCO2e:   kg,
		})
		result.CategoryTotals[factor.Category] += kg
		result.TotalKgCO2e += kg
	}

	c.logger.Debug().
		Int("activities", len(result.Entries)).
		Float64("total_kg_co2e", result.TotalKgCO2e).
		Msg("computed emissions estimate")

	return result, nil
}

// validateQuantity rejects negative and non-finite quantities.
func validateQuantity(key string, quantity float64) error {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return fmt.Errorf("%w: %q has non-finite quantity", ErrInvalidQuantity, key)
	}
	if quantity < 0 {
		return fmt.Errorf("%w: %q has negative quantity %v", ErrInvalidQuantity, key, quantity)
	}
	return nil
}
