package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
)

// readInput loads a JSON resume record from path. Schema violations are
// logged and the offending values dropped; only unreadable or non-JSON
// files are errors.
func readInput(path string, logger *slog.Logger) (usecase.Values, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parsing input %s: %w", path, err)
	}
	if err := model.ValidateMap(m); err != nil {
		logger.Warn("input does not match schema", "file", path, "error", err)
	}
	return usecase.ValuesFromMap(m), nil
}

// override replaces a scalar key when the flag value is non-empty.
func override(v usecase.Values, key, value string) {
	if value != "" {
		v[key] = []string{value}
	}
}
