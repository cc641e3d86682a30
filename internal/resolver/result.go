package resolver

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Outcome tags the result of a resolution.
type Outcome int

const (
	// Resolved means every declared argument has a value.
	Resolved Outcome = iota
	// HelpRequested means a help keyword was found; no values were produced.
	HelpRequested
	// Failed means resolution stopped with Result.Err set.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Resolved:
		return "resolved"
	case HelpRequested:
		return "help"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Result is the outcome of Resolve. Values is set only when Outcome is
// Resolved and Err only when Outcome is Failed. Ignored holds the tokens after
// the separator in every case.
type Result struct {
	Outcome Outcome
	Values  Values
	Ignored []string
	Err     error
}

// Values maps every declared name to its coerced or default value.
type Values map[string]any

// Get returns the value for name and whether it exists.
func (v Values) Get(name string) (any, bool) {
	val, ok := v[name]
	return val, ok
}

// Decode copies the values into the struct pointed to by target. Fields are
// matched by their `arg` tag, falling back to a case-insensitive field name.
func (v Values) Decode(target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "arg",
		Result:           target,
		WeaklyTypedInput: false,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := dec.Decode(map[string]any(v)); err != nil {
		return fmt.Errorf("failed to decode arguments: %w", err)
	}
	return nil
}
