package einops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SwekeR-463/Zinops/internal/tensor"
)

func mustPlan(t *testing.T, pattern string, shape tensor.Shape, axes ...AxisLength) *plan {
	t.Helper()
	p, err := planFor(pattern, shape, axes)
	require.NoError(t, err)
	return p
}

func TestPlanIdentityIsNoOp(t *testing.T) {
	p := mustPlan(t, "a b c -> a b c", tensor.Shape{2, 3, 4})

	assert.Nil(t, p.flatten)
	assert.Nil(t, p.perm)
	assert.Nil(t, p.inserted)
	assert.Nil(t, p.expand)
	assert.Equal(t, tensor.Shape{2, 3, 4}, p.outShape)
}

func TestPlanPermutationVector(t *testing.T) {
	// b h w c flattens in declared order; the output walks c before h and w.
	p := mustPlan(t, "b h w c -> b (c h w)", tensor.Shape{2, 3, 4, 5})

	assert.Nil(t, p.flatten) // no composite on the input side
	assert.Equal(t, []int{0, 3, 1, 2}, p.perm)
	assert.Nil(t, p.inserted)
	assert.Equal(t, tensor.Shape{2, 60}, p.outShape)
}

func TestPlanSplitOnly(t *testing.T) {
	p := mustPlan(t, "(h w) c -> h w c", tensor.Shape{12, 10}, Axis("h", 3))

	assert.Equal(t, tensor.Shape{3, 4, 10}, p.flatten)
	assert.Nil(t, p.perm) // already in output order after the split
	assert.Equal(t, tensor.Shape{3, 4, 10}, p.outShape)
}

func TestPlanRepeatInsertsBroadcast(t *testing.T) {
	p := mustPlan(t, "w -> h w", tensor.Shape{3}, Axis("h", 5))

	assert.Nil(t, p.flatten)
	assert.Nil(t, p.perm)
	assert.Equal(t, tensor.Shape{1, 3}, p.inserted)
	assert.Equal(t, tensor.Shape{5, 3}, p.expand)
	assert.Equal(t, tensor.Shape{5, 3}, p.outShape)
}

func TestPlanUnitInsertNeedsNoExpand(t *testing.T) {
	p := mustPlan(t, "a b -> a 1 b", tensor.Shape{2, 3})

	assert.Equal(t, tensor.Shape{2, 1, 3}, p.inserted)
	assert.Nil(t, p.expand) // all inserted slots stay at size 1
	assert.Equal(t, tensor.Shape{2, 1, 3}, p.outShape)
}

func TestPlanDropElidedInFlatten(t *testing.T) {
	// The dropped unit axis disappears in the flatten reshape, and the
	// repeat axis is broadcast into its place.
	p := mustPlan(t, "a 1 c -> a b c", tensor.Shape{3, 1, 5}, Axis("b", 4))

	assert.Equal(t, tensor.Shape{3, 5}, p.flatten)
	assert.Nil(t, p.perm)
	assert.Equal(t, tensor.Shape{3, 1, 5}, p.inserted)
	assert.Equal(t, tensor.Shape{3, 4, 5}, p.expand)
	assert.Equal(t, tensor.Shape{3, 4, 5}, p.outShape)
}

func TestPlanEllipsisPermutation(t *testing.T) {
	p := mustPlan(t, "... c -> c ...", tensor.Shape{2, 3, 4})

	assert.Nil(t, p.flatten)
	assert.Equal(t, []int{2, 0, 1}, p.perm)
	assert.Equal(t, tensor.Shape{4, 2, 3}, p.outShape)
}

func TestOutputShapeDeterminism(t *testing.T) {
	shape := tensor.Shape{2, 12, 5}
	first, err := OutputShape("b (h w) c -> (b c) h w", shape, Axis("w", 4))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := OutputShape("b (h w) c -> (b c) h w", shape, Axis("w", 4))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, tensor.Shape{10, 3, 4}, first)
}
