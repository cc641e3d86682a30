package resolver

import "fmt"

// DuplicateAssignmentError is returned when a keyword targets a slot that is
// already filled.
type DuplicateAssignmentError struct {
	Name    string
	Ordinal int
}

func (e *DuplicateAssignmentError) Error() string {
	return fmt.Sprintf("argument %q (position %d) was given more than once", e.Name, e.Ordinal)
}

// TooManyArgumentsError is returned when a positional value has no unfilled
// slot left to go to.
type TooManyArgumentsError struct {
	Value    string
	Position int
}

func (e *TooManyArgumentsError) Error() string {
	return fmt.Sprintf("too many arguments: no slot left for %q (token %d)", e.Value, e.Position)
}

// MissingMandatoryArgumentError is returned when a slot without a default
// received no value.
type MissingMandatoryArgumentError struct {
	Name    string
	Ordinal int
}

func (e *MissingMandatoryArgumentError) Error() string {
	return fmt.Sprintf("missing required argument %q at position %d", e.Name, e.Ordinal)
}

// TypeCoercionError wraps the complaint of an argument's coercer.
type TypeCoercionError struct {
	Name string
	Raw  string
	Err  error
}

func (e *TypeCoercionError) Error() string {
	return fmt.Sprintf("invalid value %q for argument %q: %v", e.Raw, e.Name, e.Err)
}

func (e *TypeCoercionError) Unwrap() error {
	return e.Err
}
