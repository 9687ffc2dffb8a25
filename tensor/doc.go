// Copyright 2025 The Zinops Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the typed multi-dimensional arrays that the
// Zinops rearrangement engine operates on.
//
// # Overview
//
// This package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - Contiguous row-major storage with zero-copy reshaping
//   - The Backend interface with the three shape primitives the
//     rearrangement engine needs: reshape, transpose, expand
//
// # Basic Usage
//
//	import (
//	    "github.com/SwekeR-463/Zinops/backend/cpu"
//	    "github.com/SwekeR-463/Zinops/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Arange[int32](0, 12, backend).Reshape(3, 4)
//	    y := x.Transpose(1, 0) // Shape: [4, 3]
//	}
//
// # Supported Data Types
//
// The tensor package supports the following data types via the DType
// constraint:
//   - float32, float64 (floating-point)
//   - float16.Float16 (half-precision, via github.com/x448/float16)
//   - int32, int64 (signed integers)
//   - uint8 (unsigned integers, useful for images)
//   - bool (boolean masks)
package tensor
