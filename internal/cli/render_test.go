package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carboncount/internal/calc"
	"github.com/rshade/carboncount/internal/factors"
)

func testReport(t *testing.T) *report {
	t.Helper()

	reg, err := factors.Load()
	require.NoError(t, err)

	result, err := calc.NewCalculator(reg, zerolog.Nop()).Compute(calc.ActivityInput{
		"gasoline_car": 100,
		"vegan_meal":   2,
	})
	require.NoError(t, err)

	return &report{
		DatasetVersion: reg.Version(),
		Result:         result,
		Tips:           []string{"Try the train."},
	}
}

func TestValidateOutputFormat(t *testing.T) {
	assert.NoError(t, validateOutputFormat(outputTable))
	assert.NoError(t, validateOutputFormat(outputJSON))
	assert.NoError(t, validateOutputFormat(outputNDJSON))
	assert.Error(t, validateOutputFormat("csv"))
}

func TestRenderTable_SectionsPresent(t *testing.T) {
	buf := &bytes.Buffer{}

	require.NoError(t, renderTable(buf, testReport(t)))
	out := buf.String()

	assert.Contains(t, out, "CARBON FOOTPRINT ESTIMATE")
	assert.Contains(t, out, "CATEGORY TOTALS")
	assert.Contains(t, out, "TOTAL:")
	assert.Contains(t, out, "TIPS")
	assert.Contains(t, out, "Try the train.")
}

func TestRenderTable_DeterministicCategoryOrder(t *testing.T) {
	first := &bytes.Buffer{}
	second := &bytes.Buffer{}
	rep := testReport(t)

	require.NoError(t, renderTable(first, rep))
	require.NoError(t, renderTable(second, rep))

	assert.Equal(t, first.String(), second.String())
}

func TestRenderNDJSON_OneLinePerEntry(t *testing.T) {
	buf := &bytes.Buffer{}
	rep := testReport(t)

	require.NoError(t, renderNDJSON(buf, rep))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, len(rep.Result.Entries)+1)
}
