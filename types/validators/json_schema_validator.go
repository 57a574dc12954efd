package validators

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

func init() {
	gojsonschema.FormatCheckers.Add("bind_host", BindHostFormatChecker{})
}

type JSONSchemaValidator struct {
}

func (v *JSONSchemaValidator) ValidateSchema(schemaString string) (*gojsonschema.Schema, interface{}, error) {
	schemaLoader := gojsonschema.NewStringLoader(schemaString)
	schemaPtr, err := gojsonschema.NewSchema(schemaLoader)
	schema, _ := schemaLoader.LoadJSON()

	return schemaPtr, schema, err
}

// Validate checks document against schemaString. Every violation is
// reported in the returned error.
func (v *JSONSchemaValidator) Validate(schemaString string, document interface{}) error {
	schemaPtr, _, err := v.ValidateSchema(schemaString)
	if err != nil {
		return fmt.Errorf("load schema: %w", err)
	}

	result, err := schemaPtr.Validate(gojsonschema.NewGoLoader(document))
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, resultError := range result.Errors() {
		violations = append(violations, resultError.String())
	}

	return &ValidationError{Violations: violations}
}

type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}
