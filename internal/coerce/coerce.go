package coerce

// Coercer converts a raw argument string into a typed value.
type Coercer interface {
	// TypeName is the display name shown in the usage table.
	TypeName() string
	// Coerce converts raw or returns an error describing why it was rejected.
	Coerce(raw string) (any, error)
}

// Func is a Coercer backed by a plain function.
type Func struct {
	Name string
	Fn   func(raw string) (any, error)
}

// TypeName implements Coercer.
func (f Func) TypeName() string {
	return f.Name
}

// Coerce implements Coercer.
func (f Func) Coerce(raw string) (any, error) {
	return f.Fn(raw)
}

// New adapts a typed conversion function into a Coercer with the given
// display name.
func New[T any](name string, fn func(raw string) (T, error)) Coercer {
	return Func{
		Name: name,
		Fn: func(raw string) (any, error) {
			v, err := fn(raw)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
	}
}
