package model

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed input.schema.json
var inputSchema []byte

var schemaLoader = gojsonschema.NewBytesLoader(inputSchema)

// ValidationError lists every schema violation found in a JSON input payload.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "schema validation failed: " + strings.Join(e.Problems, "; ")
}

// ValidateMap validates a decoded JSON payload against the input schema.
// Scalar keys must be strings; every other key a string or a list of strings.
// A *ValidationError is returned for payloads that do not conform.
func ValidateMap(m map[string]interface{}) error {
	res, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(m))
	if err != nil {
		return fmt.Errorf("validate input: %w", err)
	}
	if res.Valid() {
		return nil
	}
	verr := &ValidationError{}
	for _, e := range res.Errors() {
		verr.Problems = append(verr.Problems, e.String())
	}
	return verr
}
