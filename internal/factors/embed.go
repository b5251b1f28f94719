package factors

import _ "embed"

// Shipped emission factor dataset.
// Update data/factors.json when new reference estimates are adopted.
//
//go:embed data/factors.json
var rawFactorsJSON []byte
