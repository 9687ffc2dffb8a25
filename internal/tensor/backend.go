package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// The rearrangement engine builds on exactly three primitives: reshape,
// axis permutation, and broadcast expansion. A backend that implements them
// correctly can run any rearrangement pattern.
//
// Implementations:
//   - CPU: Pure Go (internal/backend/cpu)
//   - MockBackend: Naive in-package implementation for tests
type Backend interface {
	// Reshape returns a tensor with the same data but a different shape.
	// The new shape must describe the same number of elements.
	Reshape(t *RawTensor, newShape Shape) *RawTensor

	// Transpose permutes the tensor's dimensions.
	// If axes is empty, all dimensions are reversed.
	Transpose(t *RawTensor, axes ...int) *RawTensor

	// Expand broadcasts the tensor to a larger shape following NumPy rules:
	// dimensions of size 1 may be repeated to any size.
	Expand(x *RawTensor, shape Shape) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
