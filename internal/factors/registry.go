package factors

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Registry provides emission factor lookups by activity key.
// A Registry is immutable after construction.
type Registry struct {
	version    string
	source     string
	index      map[string]Factor
	categories []Category
}

var (
	defaultRegistry *Registry
	defaultErr      error
	defaultOnce     sync.Once
)

// Load returns the Registry built from the embedded factor dataset.
// The dataset is parsed exactly once; subsequent calls return the same
// Registry.
func Load() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = parseJSON(rawFactorsJSON)
	})
	return defaultRegistry, defaultErr
}

// LoadFile builds a Registry from a user-supplied dataset file.
// The format is chosen by extension: .yaml/.yml for YAML, anything else is
// parsed as JSON. The provided logger is used for load diagnostics.
func LoadFile(path string, logger zerolog.Logger) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading factor dataset %s: %w", path, err)
	}

	var reg *Registry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		reg, err = parseYAML(raw)
	default:
		reg, err = parseJSON(raw)
	}
	if err != nil {
		return nil, fmt.Errorf("loading factor dataset %s: %w", path, err)
	}

	logger.Debug().
		Str("path", path).
		Str("version", reg.Version()).
		Int("activities", reg.Len()).
		Msg("loaded custom factor dataset")

	return reg, nil
}

// Parse builds a Registry from raw JSON dataset bytes.
func Parse(raw []byte) (*Registry, error) {
	return parseJSON(raw)
}

// parseJSON decodes a JSON dataset and builds the lookup index.
func parseJSON(raw []byte) (*Registry, error) {
	var data dataset
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDataset, err)
	}
	return newRegistry(data)
}

// parseYAML decodes a YAML dataset and builds the lookup index.
func parseYAML(raw []byte) (*Registry, error) {
	var data dataset
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDataset, err)
	}
	return newRegistry(data)
}

// newRegistry validates the dataset and builds the in-memory index.
// Every activity must have a non-empty key and a finite factor > 0, and
// keys must be unique across categories.
func newRegistry(data dataset) (*Registry, error) {
	reg := &Registry{
		version: data.Version,
		source:  data.Source,
		index:   make(map[string]Factor),
	}

	for _, cat := range data.Categories {
		built := Category{
			Name:   cat.Name,
			Unit:   cat.Unit,
			Prompt: cat.Prompt,
		}
		for _, act := range cat.Activities {
			if act.Key == "" {
				return nil, fmt.Errorf("%w: activity without key in category %q", ErrMalformedDataset, cat.Name)
			}
			if act.Factor <= 0 || math.IsInf(act.Factor, 0) || math.IsNaN(act.Factor) {
				return nil, fmt.Errorf("%w: %q has factor %v", ErrInvalidFactor, act.Key, act.Factor)
			}
			if _, exists := reg.index[act.Key]; exists {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, act.Key)
			}

			factor := Factor{
				Key:           act.Key,
				Label:         act.Label,
				Category:      cat.Name,
				Unit:          cat.Unit,
				KgCO2ePerUnit: act.Factor,
			}
			reg.index[act.Key] = factor
			built.Activities = append(built.Activities, factor)
		}
		if len(built.Activities) > 0 {
			reg.categories = append(reg.categories, built)
		}
	}

	if len(reg.index) == 0 {
		return nil, ErrEmptyDataset
	}

	return reg, nil
}

// Lookup returns the factor for the given activity key.
// Returns (factor, true) if found, (zero, false) if not found.
func (r *Registry) Lookup(key string) (Factor, bool) {
	f, ok := r.index[key]
	return f, ok
}

// Keys returns all activity keys in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.index))
	for k := range r.index {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Categories returns the category groupings in dataset order.
// The returned slice is a copy; mutating it does not affect the Registry.
func (r *Registry) Categories() []Category {
	out := make([]Category, len(r.categories))
	for i, cat := range r.categories {
		out[i] = cat
		out[i].Activities = append([]Factor(nil), cat.Activities...)
	}
	return out
}

// Len returns the number of activities in the registry.
func (r *Registry) Len() int { return len(r.index) }

// Version returns the dataset version string.
func (r *Registry) Version() string { return r.version }

// Source returns the dataset provenance string.
func (r *Registry) Source() string { return r.source }
