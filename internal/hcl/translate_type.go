// This file maps the type keywords of an argument block (e.g. `int`,
// `existing_path`) to coercers and to the cty type used for its default.

package hcl

import (
	"fmt"
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/kwargs/internal/coerce"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

const defaultKind = "string"

// argKind describes one type keyword.
type argKind struct {
	ty      cty.Type
	decode  func(cty.Value) (any, error)
	coercer func() coerce.Coercer
}

var kinds = map[string]argKind{
	"string":        {ty: cty.String, decode: decodeAs[string], coercer: coerce.String},
	"number":        {ty: cty.Number, decode: decodeAs[float64], coercer: coerce.Float},
	"int":           {ty: cty.Number, decode: decodeAs[int], coercer: coerce.Int},
	"bool":          {ty: cty.Bool, decode: decodeAs[bool], coercer: coerce.Bool},
	"path":          {ty: cty.String, decode: decodeAs[string], coercer: coerce.Path},
	"existing_path": {ty: cty.String, decode: decodeAs[string], coercer: coerce.ExistingPath},
}

func decodeAs[T any](v cty.Value) (any, error) {
	var out T
	if err := gocty.FromCtyValue(v, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// kindOf reads the type keyword of an argument block. A missing type means
// string.
func kindOf(b *argumentBlock) (string, argKind, error) {
	name := defaultKind
	if b.Type != nil {
		if kw := hcl.ExprAsKeyword(b.Type); kw != "" {
			name = kw
		} else if v, diags := b.Type.Value(nil); diags.HasErrors() || !v.IsNull() {
			return "", argKind{}, fmt.Errorf("type must be a bare keyword such as string or int")
		}
	}
	kind, ok := kinds[name]
	if !ok {
		return "", argKind{}, fmt.Errorf("unknown type %q", name)
	}
	return name, kind, nil
}

// coercerFor builds the coercer for b, applying the min, max and one_of
// constraints that its kind supports.
func coercerFor(b *argumentBlock, name string, kind argKind) (coerce.Coercer, error) {
	hasRange := b.Min != nil || b.Max != nil
	switch {
	case hasRange && name != "int":
		return nil, fmt.Errorf("min and max are only supported for type int, not %s", name)
	case len(b.OneOf) > 0 && name != "string":
		return nil, fmt.Errorf("one_of is only supported for type string, not %s", name)
	case hasRange:
		lo, hi := math.MinInt, math.MaxInt
		if b.Min != nil {
			lo = *b.Min
		}
		if b.Max != nil {
			hi = *b.Max
		}
		if lo > hi {
			return nil, fmt.Errorf("min %d is greater than max %d", lo, hi)
		}
		return coerce.IntRange(lo, hi), nil
	case len(b.OneOf) > 0:
		return coerce.OneOf(b.OneOf...), nil
	}
	return kind.coercer(), nil
}

// defaultFor evaluates the default expression of b. A missing or null
// default leaves the argument mandatory.
func defaultFor(b *argumentBlock, kind argKind) (any, bool, error) {
	if b.Default == nil {
		return nil, false, nil
	}
	val, diags := b.Default.Value(nil)
	if diags.HasErrors() {
		return nil, false, diags
	}
	if val.IsNull() {
		return nil, false, nil
	}

	converted, err := convert.Convert(val, kind.ty)
	if err != nil {
		return nil, false, fmt.Errorf("cannot convert default of type %s to %s: %w", val.Type().FriendlyName(), kind.ty.FriendlyName(), err)
	}
	def, err := kind.decode(converted)
	if err != nil {
		return nil, false, fmt.Errorf("invalid default: %w", err)
	}
	return def, true, nil
}
