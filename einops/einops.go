// Copyright 2025 The Zinops Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package einops provides declarative tensor rearrangement driven by string
// patterns, replacing chains of reshape/transpose calls with one readable
// operation.
//
// # Patterns
//
// A pattern names the input axes and the desired output layout, separated
// by "->". Axis names are case-sensitive identifiers; parentheses group
// axes that split (input side) or merge (output side) a dimension; "..."
// matches any run of batch dimensions; "1" is an anonymous size-1 axis.
//
//	"h w -> w h"              transpose
//	"b h w c -> b (c h w)"    merge three axes into one
//	"(h w) c -> h w c"        split a dimension (give h or w via Axis)
//	"... c -> c ..."          move the channel axis across batch dims
//	"w -> h w"                repeat rows (give h via Axis)
//
// # Usage
//
//	import (
//	    "github.com/SwekeR-463/Zinops/backend/cpu"
//	    "github.com/SwekeR-463/Zinops/einops"
//	    "github.com/SwekeR-463/Zinops/tensor"
//	)
//
//	backend := cpu.New()
//	x := tensor.Randn[float32](tensor.Shape{2, 3, 4, 5}, backend)
//	y, err := einops.Rearrange(x, "b h w c -> b (c h w)")
//
// # Errors
//
// Malformed patterns yield a *PatternError; patterns that do not fit the
// concrete tensor shape or the supplied sizes yield a *ShapeError. Both are
// reachable through errors.As, and every failure is reported before any
// data is touched.
package einops

import (
	internaleinops "github.com/SwekeR-463/Zinops/internal/einops"
	"github.com/SwekeR-463/Zinops/tensor"
)

// AxisLength supplies an explicit size for one named axis, standing in for
// the keyword arguments of the Python einops API.
type AxisLength = internaleinops.AxisLength

// PatternError reports a syntactically malformed rearrangement pattern.
type PatternError = internaleinops.PatternError

// ShapeError reports a pattern that is semantically invalid for the
// concrete tensor shape or the supplied axis sizes.
type ShapeError = internaleinops.ShapeError

// Axis constructs an AxisLength.
//
// Example:
//
//	einops.Rearrange(x, "(h w) c -> h w c", einops.Axis("h", 3))
func Axis(name string, size int) AxisLength {
	return internaleinops.Axis(name, size)
}

// Rearrange reshapes, transposes, splits, merges, repeats and broadcasts
// the axes of x according to pattern. The input tensor is never mutated;
// the result is a new tensor (or a view for identity patterns).
func Rearrange[T tensor.DType, B tensor.Backend](x *tensor.Tensor[T, B], pattern string, axes ...AxisLength) (*tensor.Tensor[T, B], error) {
	return internaleinops.Rearrange(x, pattern, axes...)
}

// OutputShape resolves and validates pattern against an input shape and
// returns the resulting output shape without touching any data.
func OutputShape(pattern string, shape tensor.Shape, axes ...AxisLength) (tensor.Shape, error) {
	return internaleinops.OutputShape(pattern, shape, axes...)
}
