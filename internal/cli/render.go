package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	json "github.com/goccy/go-json"

	"github.com/rshade/carboncount/internal/calc"
	"github.com/rshade/carboncount/internal/equivalency"
)

// Output format names.
const (
	outputTable  = "table"
	outputJSON   = "json"
	outputNDJSON = "ndjson"
)

// report is the full estimate payload handed to the renderer.
type report struct {
	DatasetVersion string              `json:"dataset_version,omitempty"`
	Result         *calc.Result        `json:"result"`
	Equivalencies  *equivalency.Output `json:"equivalencies,omitempty"`
	Tips           []string            `json:"tips,omitempty"`
}

// Table styles.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	totalStyle  = lipgloss.NewStyle().Bold(true)
	subtleStyle = lipgloss.NewStyle().Faint(true)
)

// validateOutputFormat rejects unknown --output values.
func validateOutputFormat(format string) error {
	switch format {
	case outputTable, outputJSON, outputNDJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q: use table, json, or ndjson", format)
	}
}

// renderReport writes the report to w in the requested format.
func renderReport(w io.Writer, rep *report, format string) error {
	switch format {
	case outputJSON:
		return renderJSON(w, rep)
	case outputNDJSON:
		return renderNDJSON(w, rep)
	default:
		return renderTable(w, rep)
	}
}

// renderJSON writes the whole report as one indented JSON document.
func renderJSON(w io.Writer, rep *report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rep)
}

// renderNDJSON writes one JSON line per breakdown entry, then a summary
// line carrying the total and any tips/equivalencies.
func renderNDJSON(w io.Writer, rep *report) error {
	encoder := json.NewEncoder(w)
	for _, entry := range rep.Result.Entries {
		if err := encoder.Encode(entry); err != nil {
			return err
		}
	}

	summary := struct {
		TotalKgCO2e    float64             `json:"total_kg_co2e"`
		CategoryTotals map[string]float64  `json:"category_totals"`
		DatasetVersion string              `json:"dataset_version,omitempty"`
		Equivalencies  *equivalency.Output `json:"equivalencies,omitempty"`
		Tips           []string            `json:"tips,omitempty"`
	}{
		TotalKgCO2e:    rep.Result.TotalKgCO2e,
		CategoryTotals: rep.Result.CategoryTotals,
		DatasetVersion: rep.DatasetVersion,
		Equivalencies:  rep.Equivalencies,
		Tips:           rep.Tips,
	}
	return encoder.Encode(summary)
}

// renderTable writes a human-readable estimate: breakdown rows, category
// totals, the overall total with context, and optional tips.
func renderTable(w io.Writer, rep *report) error {
	fmt.Fprintln(w, titleStyle.Render("CARBON FOOTPRINT ESTIMATE"))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s\n", headerStyle.Render(fmt.Sprintf("%-28s %-26s %12s %12s",
		"ACTIVITY", "CATEGORY", "QUANTITY", "KG CO2E")))
	for _, entry := range rep.Result.Entries {
		fmt.Fprintf(w, "%-28s %-26s %12s %12s\n",
			entry.Label,
			entry.Category,
			equivalency.FormatKg(entry.Quantity),
			equivalency.FormatKg(entry.KgCO2e),
		)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("CATEGORY TOTALS"))
	for _, category := range sortedCategories(rep.Result.CategoryTotals) {
		fmt.Fprintf(w, "%-28s %12s\n",
			category, equivalency.FormatKg(rep.Result.CategoryTotals[category]))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, totalStyle.Render(
		fmt.Sprintf("TOTAL: %s kg CO2e", equivalency.FormatKg(rep.Result.TotalKgCO2e))))
	fmt.Fprintln(w, subtleStyle.Render(equivalency.Context(rep.Result.TotalKgCO2e)))

	if rep.Equivalencies != nil {
		fmt.Fprintln(w, subtleStyle.Render(rep.Equivalencies.DisplayText))
	}

	if len(rep.Tips) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headerStyle.Render("TIPS"))
		for i, tip := range rep.Tips {
			fmt.Fprintf(w, "%2d. %s\n", i+1, tip)
		}
	}

	if rep.DatasetVersion != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, subtleStyle.Render("factor dataset "+rep.DatasetVersion))
	}

	return nil
}

// sortedCategories returns the category names in sorted order for
// deterministic rendering.
func sortedCategories(totals map[string]float64) []string {
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
