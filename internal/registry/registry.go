package registry

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/vk/kwargs/internal/coerce"
)

// noDefault is rendered in the usage table for mandatory arguments.
const noDefault = "None"

// Spec is one declared argument.
type Spec struct {
	Name        string
	Description string
	Coercer     coerce.Coercer
	Default     any
	HasDefault  bool
	Ordinal     int
}

// Mandatory reports whether the argument must be supplied on the command line.
func (s Spec) Mandatory() bool {
	return !s.HasDefault
}

// DefaultString renders the default for display.
func (s Spec) DefaultString() string {
	if !s.HasDefault {
		return noDefault
	}
	return fmt.Sprint(s.Default)
}

// Option customizes a Spec at registration time.
type Option func(*Spec)

// WithDefault makes the argument optional. The value is used as-is when the
// argument is not supplied and is never passed through the coercer.
func WithDefault(v any) Option {
	return func(s *Spec) {
		s.Default = v
		s.HasDefault = true
	}
}

// Registry is an ordered collection of Specs with lookup by name.
type Registry struct {
	specs []Spec
	index map[string]int
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		index: make(map[string]int),
	}
}

// Add declares a new argument with the next ordinal. A nil coercer accepts
// the raw string unchanged.
func (r *Registry) Add(name, description string, c coerce.Coercer, opts ...Option) error {
	if name == "" || strings.Contains(name, "=") {
		return fmt.Errorf("invalid argument name %q", name)
	}
	if _, exists := r.index[name]; exists {
		return &DuplicateNameError{Name: name}
	}
	if c == nil {
		c = coerce.String()
	}

	spec := Spec{
		Name:        name,
		Description: description,
		Coercer:     c,
		Ordinal:     len(r.specs) + 1,
	}
	for _, opt := range opts {
		opt(&spec)
	}

	slog.Debug("Registering argument.", "name", name, "ordinal", spec.Ordinal, "type", c.TypeName(), "mandatory", spec.Mandatory())
	r.index[name] = len(r.specs)
	r.specs = append(r.specs, spec)
	return nil
}

// Specs returns the declarations in ordinal order.
func (r *Registry) Specs() []Spec {
	out := make([]Spec, len(r.specs))
	copy(out, r.specs)
	return out
}

// Lookup returns the declaration with the given name.
func (r *Registry) Lookup(name string) (Spec, error) {
	i, ok := r.index[name]
	if !ok {
		return Spec{}, &UnknownNameError{Name: name}
	}
	return r.specs[i], nil
}

// Len returns the number of declarations.
func (r *Registry) Len() int {
	return len(r.specs)
}
