// Package factors provides the emission factor reference table used to
// convert activity quantities into kilograms of CO2-equivalent.
//
// The shipped dataset is embedded at build time and parsed once; a custom
// dataset can be loaded from a JSON or YAML file to override it. A Registry
// is immutable after construction, so lookups are safe for concurrent use.
package factors

// Factor describes a single emissions-contributing activity and its
// conversion constant.
type Factor struct {
	// Key is the stable activity identifier (e.g., "gasoline_car").
	Key string `json:"key" yaml:"key"`

	// Label is the human-readable activity name (e.g., "Gasoline car").
	Label string `json:"label" yaml:"label"`

	// Category is the activity group (e.g., "Transportation").
	Category string `json:"category" yaml:"category"`

	// Unit describes the quantity unit the factor applies to
	// (e.g., "kg CO2e per mile").
	Unit string `json:"unit" yaml:"unit"`

	// KgCO2ePerUnit is the emission factor. Always > 0 in a valid registry.
	KgCO2ePerUnit float64 `json:"kg_co2e_per_unit" yaml:"kg_co2e_per_unit"`
}

// Category groups related activities sharing a quantity unit.
type Category struct {
	// Name is the category name (e.g., "Home Energy").
	Name string `json:"name" yaml:"name"`

	// Unit is the quantity unit shared by the category's activities.
	Unit string `json:"unit" yaml:"unit"`

	// Prompt is the suggested data-entry prompt (e.g., "hours used today").
	Prompt string `json:"prompt" yaml:"prompt"`

	// Activities are the factors in this category, in dataset order.
	Activities []Factor `json:"activities" yaml:"activities"`
}

// dataset mirrors the on-disk factor table layout (embedded JSON, or a
// user-supplied JSON/YAML override file).
type dataset struct {
	Version    string            `json:"version" yaml:"version"`
	Source     string            `json:"source" yaml:"source"`
	Categories []datasetCategory `json:"categories" yaml:"categories"`
}

// datasetCategory is a category entry in the on-disk layout. Activity
// entries carry only key/label/factor; category name and unit are attached
// during index construction.
type datasetCategory struct {
	Name       string            `json:"name" yaml:"name"`
	Unit       string            `json:"unit" yaml:"unit"`
	Prompt     string            `json:"prompt" yaml:"prompt"`
	Activities []datasetActivity `json:"activities" yaml:"activities"`
}

type datasetActivity struct {
	Key    string  `json:"key" yaml:"key"`
	Label  string  `json:"label" yaml:"label"`
	Factor float64 `json:"factor" yaml:"factor"`
}
