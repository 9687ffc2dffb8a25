package cpu

import (
	"fmt"

	"github.com/SwekeR-463/Zinops/internal/tensor"
)

// transposeData dispatches the transpose kernel on the tensor's dtype.
func transposeData(result, src *tensor.RawTensor, axes []int) {
	switch src.DType() {
	case tensor.Float32:
		transposeKernel(result.AsFloat32(), src.AsFloat32(), src.Shape(), axes)
	case tensor.Float64:
		transposeKernel(result.AsFloat64(), src.AsFloat64(), src.Shape(), axes)
	case tensor.Float16:
		transposeKernel(result.AsFloat16(), src.AsFloat16(), src.Shape(), axes)
	case tensor.Int32:
		transposeKernel(result.AsInt32(), src.AsInt32(), src.Shape(), axes)
	case tensor.Int64:
		transposeKernel(result.AsInt64(), src.AsInt64(), src.Shape(), axes)
	case tensor.Uint8:
		transposeKernel(result.AsUint8(), src.AsUint8(), src.Shape(), axes)
	case tensor.Bool:
		transposeKernel(result.AsBool(), src.AsBool(), src.Shape(), axes)
	default:
		panic(fmt.Sprintf("transpose: unsupported dtype %v", src.DType()))
	}
}

// transposeKernel permutes dimensions by walking source elements in order and
// scattering them to their permuted destination offsets.
func transposeKernel[T any](dst, src []T, shape tensor.Shape, axes []int) {
	ndim := len(shape)
	srcStrides := shape.ComputeStrides()

	dstShape := make(tensor.Shape, ndim)
	for i, ax := range axes {
		dstShape[i] = shape[ax]
	}
	dstStrides := dstShape.ComputeStrides()

	coords := make([]int, ndim)
	for i := range src {
		// Multi-dimensional coordinates in source
		idx := i
		for dim := 0; dim < ndim; dim++ {
			coords[dim] = idx / srcStrides[dim]
			idx %= srcStrides[dim]
		}

		// Flat index in destination after permuting coordinates
		dstIdx := 0
		for dstDim, srcDim := range axes {
			dstIdx += coords[srcDim] * dstStrides[dstDim]
		}

		dst[dstIdx] = src[i]
	}
}

// expandData dispatches the broadcast kernel on the tensor's dtype.
func expandData(result, x *tensor.RawTensor) {
	switch x.DType() {
	case tensor.Float32:
		expandKernel(result.AsFloat32(), x.AsFloat32(), result.Shape(), x.Shape())
	case tensor.Float64:
		expandKernel(result.AsFloat64(), x.AsFloat64(), result.Shape(), x.Shape())
	case tensor.Float16:
		expandKernel(result.AsFloat16(), x.AsFloat16(), result.Shape(), x.Shape())
	case tensor.Int32:
		expandKernel(result.AsInt32(), x.AsInt32(), result.Shape(), x.Shape())
	case tensor.Int64:
		expandKernel(result.AsInt64(), x.AsInt64(), result.Shape(), x.Shape())
	case tensor.Uint8:
		expandKernel(result.AsUint8(), x.AsUint8(), result.Shape(), x.Shape())
	case tensor.Bool:
		expandKernel(result.AsBool(), x.AsBool(), result.Shape(), x.Shape())
	default:
		panic(fmt.Sprintf("expand: unsupported dtype %v", x.DType()))
	}
}

// expandKernel copies source elements into the broadcast output, mapping every
// output coordinate back to the input with size-1 dimensions pinned at 0.
func expandKernel[T any](dst, src []T, outShape, xShape tensor.Shape) {
	offset := len(outShape) - len(xShape)
	outStrides := outShape.ComputeStrides()
	xStrides := xShape.ComputeStrides()

	coords := make([]int, len(outShape))
	for outIdx := range dst {
		idx := outIdx
		for dim := range outShape {
			coords[dim] = idx / outStrides[dim]
			idx %= outStrides[dim]
		}

		inIdx := 0
		for i := range xShape {
			coord := coords[offset+i]
			if xShape[i] == 1 {
				coord = 0 // Broadcast dimension
			}
			inIdx += coord * xStrides[i]
		}

		dst[outIdx] = src[inIdx]
	}
}
