// Copyright 2025 The Zinops Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU backend for tensor operations.
//
// The backend implements the three shape primitives the rearrangement
// engine consumes: zero-copy reshape, coordinate-permuting transpose and
// NumPy-rule broadcast expansion. It has no CGO dependencies and is safe
// for concurrent use; no operation shares mutable state.
package cpu

import (
	internalcpu "github.com/SwekeR-463/Zinops/internal/backend/cpu"
	"github.com/SwekeR-463/Zinops/tensor"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/SwekeR-463/Zinops/backend/cpu"
//	    "github.com/SwekeR-463/Zinops/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}
