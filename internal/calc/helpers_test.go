package calc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/carboncount/internal/factors"
)

// registryFromJSON builds a factor registry from an inline JSON dataset.
func registryFromJSON(t *testing.T, data string) *factors.Registry {
	t.Helper()
	reg, err := factors.Parse([]byte(data))
	require.NoError(t, err)
	return reg
}
