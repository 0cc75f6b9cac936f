package planner

import "errors"

// ValidationError is a local, recoverable failure. The operation that
// returned it left the plan untouched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// FieldReason lets the HTTP layer report the failure per field.
func (e *ValidationError) FieldReason() (string, string) {
	return e.Field, e.Reason
}

var (
	ErrEndBeforeStart       = &ValidationError{Field: "end_date", Reason: "end date must be on or after start date"}
	ErrDayOutOfRange        = &ValidationError{Field: "day_number", Reason: "day is outside the trip"}
	ErrActivityNotInCatalog = &ValidationError{Field: "activity_id", Reason: "activity is not offered at the selected destination"}
	ErrTitleRequired        = &ValidationError{Field: "title", Reason: "title is required"}
	ErrDestinationRequired  = &ValidationError{Field: "destination_id", Reason: "destination is required"}
	ErrOrphanedActivities   = &ValidationError{Field: "activities", Reason: "some activities are scheduled after the last day of the trip"}
	ErrInvalidTime          = &ValidationError{Field: "time", Reason: "time must be formatted as HH:MM"}
)

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// ValidationErrors flattens err (possibly built with errors.Join) into the
// validation failures it carries.
func ValidationErrors(err error) []*ValidationError {
	if err == nil {
		return nil
	}
	var out []*ValidationError
	var walk func(error)
	walk = func(e error) {
		if v, ok := e.(*ValidationError); ok {
			out = append(out, v)
			return
		}
		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			if inner := u.Unwrap(); inner != nil {
				walk(inner)
			}
		}
	}
	walk(err)
	return out
}
