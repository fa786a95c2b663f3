package engine

import "fmt"

// InvalidInputError reports a rejected calculator input. Field names the
// offending JSON field so the UI can attach the message to the right control.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Reason)
}

// ConfigError reports a missing or malformed tax-year table. It is kept
// distinct from InvalidInputError so callers can answer "data unavailable"
// instead of "check your inputs".
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "tax table: " + e.Reason
}

func invalidInput(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}

func configError(format string, args ...any) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

func requireAmount(field string, v float64) error {
	if v < 0 {
		return invalidInput(field, "monetary amount must not be negative")
	}
	return nil
}

func requireAge(field string, age int) error {
	if age < 0 || age > 120 {
		return invalidInput(field, "age must be between 0 and 120")
	}
	return nil
}

func requireRate(field string, v float64) error {
	if v < 0 || v > 1 {
		return invalidInput(field, "rate must be between 0 and 1")
	}
	return nil
}
