package cpu

import (
	"fmt"

	"github.com/SwekeR-463/Zinops/internal/tensor"
)

// Expand broadcasts the tensor to a new shape.
func (cpu *CPUBackend) Expand(x *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	// Validate that newShape is compatible with x.Shape(): aligned from the
	// right, every dimension must match or be 1 on the input side.
	if err := x.Shape().ExpandableTo(newShape); err != nil {
		panic(fmt.Sprintf("expand: %v", err))
	}

	result, err := tensor.NewRaw(newShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("expand: %v", err))
	}

	expandData(result, x)

	return result
}
