package domain

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Error taxonomy shared by services and the api layer. Services wrap these
// sentinels with context, callers match them with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrPermission = errors.New("permission denied")
	ErrConflict   = errors.New("conflict")
	ErrStorage    = errors.New("storage failure")
)

func NotFoundErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func PermissionErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPermission, fmt.Sprintf(format, args...))
}

func ConflictErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// StorageError wraps an underlying store failure. The cause stays reachable
// through errors.Unwrap for server-side logging.
func StorageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}

// FieldError describes a single invalid input field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

// ValidationError carries every failing field of one input payload.
type ValidationError struct {
	errs error
}

// Add records a failing field. Field paths use dotted/indexed notation,
// e.g. "mealPlans[1].targetCalories".
func (v *ValidationError) Add(field, reason string) {
	v.errs = multierr.Append(v.errs, &FieldError{Field: field, Reason: reason})
}

// Merge appends all fields of other under prefix.
func (v *ValidationError) Merge(prefix string, other *ValidationError) {
	if other == nil {
		return
	}
	for _, f := range other.Fields() {
		name := f.Field
		switch {
		case prefix == "":
		case name == "":
			name = prefix
		case name[0] == '[':
			name = prefix + name
		default:
			name = prefix + "." + name
		}
		v.Add(name, f.Reason)
	}
}

func (v *ValidationError) Fields() []FieldError {
	errs := multierr.Errors(v.errs)
	fields := make([]FieldError, 0, len(errs))
	for _, err := range errs {
		var fe *FieldError
		if errors.As(err, &fe) {
			fields = append(fields, *fe)
		}
	}
	return fields
}

func (v *ValidationError) HasErrors() bool {
	return v != nil && v.errs != nil
}

// OrNil returns v as an error when it holds any field, nil otherwise.
func (v *ValidationError) OrNil() error {
	if !v.HasErrors() {
		return nil
	}
	return v
}

func (v *ValidationError) Error() string {
	fields := v.Fields()
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Field + " " + f.Reason
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a ValidationError with a single field.
func NewValidationError(field, reason string) *ValidationError {
	v := &ValidationError{}
	v.Add(field, reason)
	return v
}
