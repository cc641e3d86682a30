package coerce

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// String accepts any input unchanged.
func String() Coercer {
	return New("string", func(raw string) (string, error) {
		return raw, nil
	})
}

// Int accepts a whole number that fits into an int.
func Int() Coercer {
	return New("int", func(raw string) (int, error) {
		var n int
		err := fromString(raw, cty.Number, &n)
		return n, err
	})
}

// Float accepts any decimal number.
func Float() Coercer {
	return New("float", func(raw string) (float64, error) {
		var f float64
		err := fromString(raw, cty.Number, &f)
		return f, err
	})
}

// Bool accepts "true" or "false".
func Bool() Coercer {
	return New("bool", func(raw string) (bool, error) {
		var b bool
		err := fromString(raw, cty.Bool, &b)
		return b, err
	})
}

// Path accepts any non-empty string and returns it cleaned.
func Path() Coercer {
	return New("path", func(raw string) (string, error) {
		if raw == "" {
			return "", fmt.Errorf("path must not be empty")
		}
		return filepath.Clean(raw), nil
	})
}

// ExistingPath accepts a path only if something exists at it.
func ExistingPath() Coercer {
	return New("existing_path", func(raw string) (string, error) {
		if raw == "" {
			return "", fmt.Errorf("path must not be empty")
		}
		p := filepath.Clean(raw)
		if _, err := os.Stat(p); err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("'%s' does not exist", p)
			}
			return "", err
		}
		return p, nil
	})
}

// IntRange accepts a whole number within [lo, hi].
func IntRange(lo, hi int) Coercer {
	name := fmt.Sprintf("int[%s..%s]", bound(lo), bound(hi))
	base := Int()
	return New(name, func(raw string) (int, error) {
		v, err := base.Coerce(raw)
		if err != nil {
			return 0, err
		}
		n := v.(int)
		if n < lo || n > hi {
			return 0, fmt.Errorf("%d is not within %s and %s", n, bound(lo), bound(hi))
		}
		return n, nil
	})
}

// OneOf accepts exactly one of the listed values.
func OneOf(values ...string) Coercer {
	allowed := slices.Clone(values)
	return New("one_of("+strings.Join(allowed, "|")+")", func(raw string) (string, error) {
		if slices.Contains(allowed, raw) {
			return raw, nil
		}
		return "", fmt.Errorf("%q must be one of %s", raw, strings.Join(allowed, ", "))
	})
}

func bound(n int) string {
	switch n {
	case math.MinInt:
		return "-inf"
	case math.MaxInt:
		return "inf"
	}
	return fmt.Sprint(n)
}

// fromString converts raw into ty using cty's string conversions and decodes
// the result into target.
func fromString(raw string, ty cty.Type, target any) error {
	v, err := convert.Convert(cty.StringVal(strings.TrimSpace(raw)), ty)
	if err != nil {
		return fmt.Errorf("%q: %w", raw, err)
	}
	if err := gocty.FromCtyValue(v, target); err != nil {
		return fmt.Errorf("%q: %w", raw, err)
	}
	return nil
}
