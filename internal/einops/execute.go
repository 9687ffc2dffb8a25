package einops

import "github.com/SwekeR-463/Zinops/internal/tensor"

// runPlan applies the plan's primitive operations in order, skipping every
// stage that would be a no-op. The result is a new tensor (or the input
// itself for identity patterns); the input is never mutated.
func runPlan[T tensor.DType, B tensor.Backend](x *tensor.Tensor[T, B], p *plan) *tensor.Tensor[T, B] {
	cur := x
	if p.flatten != nil && !cur.Shape().Equal(p.flatten) {
		cur = cur.Reshape(p.flatten...)
	}
	if p.perm != nil {
		cur = cur.Transpose(p.perm...)
	}
	if p.inserted != nil && !cur.Shape().Equal(p.inserted) {
		cur = cur.Reshape(p.inserted...)
	}
	if p.expand != nil && !cur.Shape().Equal(p.expand) {
		cur = cur.Expand(p.expand)
	}
	if !cur.Shape().Equal(p.outShape) {
		cur = cur.Reshape(p.outShape...)
	}
	return cur
}
