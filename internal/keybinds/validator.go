package keybinds

import (
	"fmt"
	"strings"
)

// ValidationError describes one problem in a keybinding configuration.
type ValidationError struct {
	Context Context
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s in context '%s': %s", e.Key, e.Context, e.Message)
}

// ValidationResult collects all problems found in one pass.
type ValidationResult struct {
	Errors []ValidationError
}

// HasErrors returns true if validation failed.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// String returns a human-readable summary.
func (r *ValidationResult) String() string {
	if !r.HasErrors() {
		return "No issues found"
	}
	var sb strings.Builder
	for _, err := range r.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// Validator checks user keybinding configurations.
type Validator struct {
	// reservedKeys must keep their default meaning.
	reservedKeys map[string]bool
}

// NewValidator creates a validator with the stock reserved keys.
func NewValidator() *Validator {
	return &Validator{
		reservedKeys: map[string]bool{
			"ctrl+c": true, // force quit always works
		},
	}
}

// Validate checks every binding in a user config: the action must exist and
// the key must not be reserved.
func (v *Validator) Validate(config *Config) *ValidationResult {
	result := &ValidationResult{}
	for context, section := range config.sections() {
		for key, action := range section {
			if v.reservedKeys[key] {
				result.Errors = append(result.Errors, ValidationError{
					Context: context,
					Key:     key,
					Message: "key is reserved and cannot be rebound",
				})
			}
			if !knownActions[Action(action)] {
				result.Errors = append(result.Errors, ValidationError{
					Context: context,
					Key:     key,
					Message: fmt.Sprintf("unknown action %q", action),
				})
			}
		}
	}
	return result
}
