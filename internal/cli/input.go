package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/rshade/carboncount/internal/calc"
)

// readActivityInput assembles an ActivityInput from an optional input file
// and repeatable --set key=quantity pairs. Set pairs override file entries
// for the same key.
func readActivityInput(inputPath string, setPairs []string) (calc.ActivityInput, error) {
	input := calc.ActivityInput{}

	if inputPath != "" {
		fromFile, err := readInputFile(inputPath)
		if err != nil {
			return nil, err
		}
		for key, qty := range fromFile {
			input[key] = qty
		}
	}

	for _, pair := range setPairs {
		key, qty, err := parseSetPair(pair)
		if err != nil {
			return nil, err
		}
		input[key] = qty
	}

	if len(input) == 0 {
		return nil, fmt.Errorf("no activities supplied; use --input or --set key=quantity")
	}

	return input, nil
}

// readInputFile parses an activity file: a flat mapping of activity key to
// quantity, in JSON or YAML chosen by extension.
func readInputFile(path string) (map[string]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading activity input %s: %w", path, err)
	}

	activities := make(map[string]float64)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &activities); err != nil {
			return nil, fmt.Errorf("parsing activity input %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(raw, &activities); err != nil {
			return nil, fmt.Errorf("parsing activity input %s: %w", path, err)
		}
	}

	return activities, nil
}

// parseSetPair splits a "key=quantity" flag value.
func parseSetPair(pair string) (string, float64, error) {
	key, value, found := strings.Cut(pair, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return "", 0, fmt.Errorf("invalid --set value %q; expected key=quantity", pair)
	}

	qty, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid quantity in --set %q: %w", pair, err)
	}

	return key, qty, nil
}
