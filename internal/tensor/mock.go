package tensor

import "fmt"

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple backend for testing.
// It implements the shape primitives naively on raw bytes, so it works for
// every dtype without per-type kernels. Correctness over speed.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// Reshape returns a zero-copy view with the new shape.
func (m *MockBackend) Reshape(t *RawTensor, newShape Shape) *RawTensor {
	if err := newShape.Validate(); err != nil {
		panic(fmt.Sprintf("reshape: invalid shape: %v", err))
	}
	if t.NumElements() != newShape.NumElements() {
		panic(fmt.Sprintf("reshape: incompatible shapes: %v -> %v", t.Shape(), newShape))
	}
	return t.WithShape(newShape)
}

// Transpose permutes dimensions by moving one element at a time.
func (m *MockBackend) Transpose(t *RawTensor, axes ...int) *RawTensor {
	shape := t.Shape()
	ndim := len(shape)

	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	if len(axes) != ndim {
		panic(fmt.Sprintf("transpose: axes length %d != ndim %d", len(axes), ndim))
	}

	newShape := make(Shape, ndim)
	for i, ax := range axes {
		newShape[i] = shape[ax]
	}

	result, err := NewRaw(newShape, t.DType(), t.Device())
	if err != nil {
		panic(fmt.Sprintf("transpose: %v", err))
	}

	es := t.DType().Size()
	srcStrides := shape.ComputeStrides()
	dstStrides := newShape.ComputeStrides()
	src, dst := t.Data(), result.Data()

	coords := make([]int, ndim)
	for i := 0; i < t.NumElements(); i++ {
		idx := i
		for dim := 0; dim < ndim; dim++ {
			coords[dim] = idx / srcStrides[dim]
			idx %= srcStrides[dim]
		}
		dstIdx := 0
		for dstDim, srcDim := range axes {
			dstIdx += coords[srcDim] * dstStrides[dstDim]
		}
		copy(dst[dstIdx*es:(dstIdx+1)*es], src[i*es:(i+1)*es])
	}

	return result
}

// Expand broadcasts the tensor to a larger shape.
func (m *MockBackend) Expand(x *RawTensor, shape Shape) *RawTensor {
	xShape := x.Shape()
	if err := xShape.ExpandableTo(shape); err != nil {
		panic(fmt.Sprintf("expand: %v", err))
	}

	result, err := NewRaw(shape, x.DType(), x.Device())
	if err != nil {
		panic(fmt.Sprintf("expand: %v", err))
	}

	es := x.DType().Size()
	offset := len(shape) - len(xShape)
	outStrides := shape.ComputeStrides()
	xStrides := xShape.ComputeStrides()
	src, dst := x.Data(), result.Data()

	coords := make([]int, len(shape))
	for outIdx := 0; outIdx < shape.NumElements(); outIdx++ {
		idx := outIdx
		for dim := range shape {
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
		copy(dst[outIdx*es:(outIdx+1)*es], src[inIdx*es:(inIdx+1)*es])
	}

	return result
}
