package equivalency

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// formatValue formats an equivalency value for display.
// Values >= 10 round to whole numbers with thousand separators;
// smaller values keep one decimal place.
func formatValue(v float64) string {
	if v >= 10 {
		return printer.Sprintf("%d", int64(math.Round(v)))
	}
	return printer.Sprintf("%.1f", v)
}

// FormatKg formats a kilogram amount for display with two decimal places
// and thousand separators.
func FormatKg(kg float64) string {
	return printer.Sprintf("%.2f", kg)
}
