package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ValidationError represents a configuration validation error with context.
type ValidationError struct {
	FilePath string
	Line     int
	Message  string
	Field    string
}

func (e *ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.FilePath, e.Line, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: field '%s': %s", e.FilePath, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

// ValidateYAMLSyntax checks if the YAML file has valid syntax.
// Returns nil if valid, or a ValidationError with line information.
func ValidateYAMLSyntax(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Missing file is not an error - defaults apply
		}
		return &ValidationError{FilePath: filePath, Message: err.Error()}
	}

	// Empty file is valid - defaults apply
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return &ValidationError{
			FilePath: filePath,
			Line:     extractLine(err.Error()),
			Message:  err.Error(),
		}
	}

	return nil
}

// ValidateConfigValues validates configuration values against the struct
// constraints. Returns nil if valid, or a ValidationError with field info.
func ValidateConfigValues(cfg *Configuration, filePath string) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fieldErr := range validationErrors {
				return &ValidationError{
					FilePath: filePath,
					Field:    toSnakeCase(fieldErr.Field()),
					Message:  formatValidationError(fieldErr),
				}
			}
		}
		return &ValidationError{FilePath: filePath, Message: err.Error()}
	}
	return nil
}

// extractLine attempts to extract a line number from a yaml.v3 error
// message ("yaml: line 5: ..."). Returns 0 if unable to extract.
func extractLine(errMsg string) int {
	var l int
	if n, _ := fmt.Sscanf(errMsg, "yaml: line %d:", &l); n == 1 {
		return l
	}
	return 0
}

// formatValidationError formats a validation error for a specific field.
func formatValidationError(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	default:
		return fmt.Sprintf("failed validation: %s", fieldErr.Tag())
	}
}

// toSnakeCase converts a CamelCase field name to snake_case.
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune('_')
		}
		result.WriteRune(r)
	}
	return strings.ToLower(result.String())
}
