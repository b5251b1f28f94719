package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carboncount/internal/calc"
)

func TestReadActivityInput_FromJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "today.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"gasoline_car": 12.5, "lighting": 6}`), 0o600))

	input, err := readActivityInput(path, nil)

	require.NoError(t, err)
	assert.Equal(t, calc.ActivityInput{"gasoline_car": 12.5, "lighting": 6}, input)
}

func TestReadActivityInput_FromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "today.yaml")
	require.NoError(t, os.WriteFile(path,
		[]byte("gasoline_car: 12.5\nvegan_meal: 2\n"), 0o600))

	input, err := readActivityInput(path, nil)

	require.NoError(t, err)
	assert.InDelta(t, 12.5, input["gasoline_car"], 1e-12)
	assert.InDelta(t, 2.0, input["vegan_meal"], 1e-12)
}

func TestReadActivityInput_SetPairsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "today.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"gasoline_car": 10}`), 0o600))

	input, err := readActivityInput(path, []string{"gasoline_car=20", "bus=3"})

	require.NoError(t, err)
	assert.InDelta(t, 20.0, input["gasoline_car"], 1e-12)
	assert.InDelta(t, 3.0, input["bus"], 1e-12)
}

func TestReadActivityInput_SetOnly(t *testing.T) {
	input, err := readActivityInput("", []string{"hot_shower=8"})

	require.NoError(t, err)
	assert.Equal(t, calc.ActivityInput{"hot_shower": 8}, input)
}

func TestReadActivityInput_Empty(t *testing.T) {
	_, err := readActivityInput("", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no activities supplied")
}

func TestReadActivityInput_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := readActivityInput(filepath.Join(t.TempDir(), "nope.json"), nil)
		require.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o600))

		_, err := readActivityInput(path, nil)
		require.Error(t, err)
	})
}

func TestParseSetPair(t *testing.T) {
	tests := []struct {
		name    string
		pair    string
		wantKey string
		wantQty float64
		wantErr bool
	}{
		{name: "valid", pair: "gasoline_car=12.5", wantKey: "gasoline_car", wantQty: 12.5},
		{name: "whitespace trimmed", pair: " bus = 3 ", wantKey: "bus", wantQty: 3},
		{name: "integer quantity", pair: "vegan_meal=2", wantKey: "vegan_meal", wantQty: 2},
		{name: "missing equals", pair: "gasoline_car", wantErr: true},
		{name: "empty key", pair: "=5", wantErr: true},
		{name: "non-numeric quantity", pair: "bus=lots", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, qty, err := parseSetPair(tt.pair)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, key)
			assert.InDelta(t, tt.wantQty, qty, 1e-12)
		})
	}
}
