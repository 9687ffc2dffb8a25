// Package einops implements declarative tensor rearrangement driven by
// string patterns, in the spirit of the einops library.
//
// A pattern names the axes of the input and the desired layout of the
// output, separated by "->":
//
//	"b h w c -> b (c h w)"    reorder and merge
//	"(h w) c -> h w c"        split one dimension (size given via Axis)
//	"... c -> c ..."          move an axis across batch dimensions
//	"w -> h w"                repeat along a new axis (size given via Axis)
//
// Each call parses the pattern, resolves axis sizes against the tensor
// shape, validates the request, and derives a minimal sequence of reshape,
// transpose and broadcast primitives. The engine keeps no state between
// calls.
package einops

import (
	"github.com/pkg/errors"

	"github.com/SwekeR-463/Zinops/internal/tensor"
)

// AxisLength supplies an explicit size for one named axis. It stands in for
// the keyword arguments of the einops API: sizes that cannot be inferred
// from the input shape (repeat axes, ambiguous split components) must be
// given this way.
type AxisLength struct {
	Name string
	Size int
}

// Axis constructs an AxisLength.
func Axis(name string, size int) AxisLength {
	return AxisLength{Name: name, Size: size}
}

// Rearrange reshapes, transposes, splits, merges, repeats and broadcasts the
// axes of x according to pattern.
//
// Errors are *PatternError for malformed patterns and *ShapeError when the
// pattern does not fit the tensor's shape or the supplied sizes; both are
// reachable through errors.As. The input tensor is never mutated.
//
// Example:
//
//	y, err := einops.Rearrange(x, "b h w c -> b (c h w)")
//	y, err := einops.Rearrange(x, "(h w) c -> h w c", einops.Axis("h", 3))
func Rearrange[T tensor.DType, B tensor.Backend](x *tensor.Tensor[T, B], pattern string, axes ...AxisLength) (*tensor.Tensor[T, B], error) {
	p, err := planFor(pattern, x.Shape(), axes)
	if err != nil {
		return nil, errors.WithMessagef(err, "rearrange %q", pattern)
	}
	return runPlan(x, p), nil
}

// OutputShape resolves and validates pattern against an input shape and
// returns the resulting output shape without touching any data.
func OutputShape(pattern string, shape tensor.Shape, axes ...AxisLength) (tensor.Shape, error) {
	p, err := planFor(pattern, shape, axes)
	if err != nil {
		return nil, errors.WithMessagef(err, "rearrange %q", pattern)
	}
	return p.outShape.Clone(), nil
}

// planFor runs the full front half of the engine: parse, resolve, validate,
// build. Validation completes before any primitive operation is applied.
func planFor(pattern string, shape tensor.Shape, axes []AxisLength) (*plan, error) {
	explicit, err := explicitSizes(axes)
	if err != nil {
		return nil, err
	}
	in, out, err := parsePattern(pattern)
	if err != nil {
		return nil, err
	}
	bnd, err := resolve(in, shape, explicit)
	if err != nil {
		return nil, err
	}
	if err := validate(in, out, bnd, explicit); err != nil {
		return nil, err
	}
	return buildPlan(in, out, bnd, shape)
}

func explicitSizes(axes []AxisLength) (map[string]int, error) {
	if len(axes) == 0 {
		return nil, nil
	}
	m := make(map[string]int, len(axes))
	for _, a := range axes {
		if !isAxisName(a.Name) {
			return nil, patternErrorf("invalid axis name %q in explicit sizes", a.Name)
		}
		if a.Size < 1 {
			return nil, shapeErrorf("explicit size for axis %q must be positive, got %d", a.Name, a.Size)
		}
		if prev, ok := m[a.Name]; ok && prev != a.Size {
			return nil, shapeErrorf("axis %q given conflicting explicit sizes %d and %d", a.Name, prev, a.Size)
		}
		m[a.Name] = a.Size
	}
	return m, nil
}
