package registry

import "fmt"

// DuplicateNameError is returned by Add when a name is declared twice.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("argument %q is already declared", e.Name)
}

// UnknownNameError is returned when a name has not been declared.
type UnknownNameError struct {
	Name string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("unknown argument %q", e.Name)
}
