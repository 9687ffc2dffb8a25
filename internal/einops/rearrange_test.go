package einops

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/SwekeR-463/Zinops/internal/backend/cpu"
	"github.com/SwekeR-463/Zinops/internal/tensor"
)

type cpuTensor = tensor.Tensor[float32, *cpu.CPUBackend]

// arange builds a deterministic float32 tensor with values 0..n-1 in
// row-major order, so element positions are easy to assert on.
func arange(t *testing.T, shape tensor.Shape, b *cpu.CPUBackend) *cpuTensor {
	t.Helper()
	x := tensor.Arange[float32](0, float32(shape.NumElements()), b)
	return x.Reshape(shape...)
}

func TestRearrangeTranspose(t *testing.T) {
	b := cpu.New()
	x := arange(t, tensor.Shape{3, 4}, b)

	y, err := Rearrange(x, "h w -> w h")
	require.NoError(t, err)
	require.Equal(t, tensor.Shape{4, 3}, y.Shape())

	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			assert.Equal(t, x.At(i, j), y.At(j, i))
		}
	}
}

func TestRearrangeIdentity(t *testing.T) {
	b := cpu.New()
	x := arange(t, tensor.Shape{2, 3, 4}, b)

	y, err := Rearrange(x, "a b c -> a b c")
	require.NoError(t, err)
	assert.Equal(t, x.Shape(), y.Shape())
	assert.Equal(t, x.Data(), y.Data())
}

func TestRearrangeSplit(t *testing.T) {
	b := cpu.New()

	t.Run("split with inferred component", func(t *testing.T) {
		x := arange(t, tensor.Shape{12, 10}, b)
		y, err := Rearrange(x, "(h w) c -> h w c", Axis("h", 3))
		require.NoError(t, err)
		assert.Equal(t, tensor.Shape{3, 4, 10}, y.Shape())
		// A pure split is a reshape: data order is untouched.
		assert.Equal(t, x.Data(), y.Data())
	})

	t.Run("split of 1D tensor with both sizes", func(t *testing.T) {
		x := arange(t, tensor.Shape{24}, b)
		y, err := Rearrange(x, "(a b) -> a b", Axis("a", 4), Axis("b", 6))
		require.NoError(t, err)
		assert.Equal(t, tensor.Shape{4, 6}, y.Shape())
	})

	t.Run("non-divisible split size fails", func(t *testing.T) {
		x := arange(t, tensor.Shape{12, 1}, b)
		_, err := Rearrange(x, "(h w) c -> h w c", Axis("h", 5))
		require.Error(t, err)
		var serr *ShapeError
		require.ErrorAs(t, err, &serr)
		assert.Contains(t, err.Error(), "split size mismatch")
	})

	t.Run("split with unit channel", func(t *testing.T) {
		x := arange(t, tensor.Shape{12, 1}, b)
		y, err := Rearrange(x, "(h w) c -> h w c", Axis("h", 3))
		require.NoError(t, err)
		assert.Equal(t, tensor.Shape{3, 4, 1}, y.Shape())
	})
}

func TestRearrangeMerge(t *testing.T) {
	b := cpu.New()
	x := arange(t, tensor.Shape{3, 4, 5}, b)

	y, err := Rearrange(x, "a b c -> (a b) c")
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{12, 5}, y.Shape())
	// Merging adjacent axes in declared order is a reshape.
	assert.Equal(t, x.Data(), y.Data())
}

func TestRearrangeMergeReordered(t *testing.T) {
	b := cpu.New()
	x := arange(t, tensor.Shape{2, 3, 4, 5}, b)

	y, err := Rearrange(x, "b h w c -> b (c h w)")
	require.NoError(t, err)
	require.Equal(t, tensor.Shape{2, 60}, y.Shape())

	for bi := 0; bi < 2; bi++ {
		for h := 0; h < 3; h++ {
			for w := 0; w < 4; w++ {
				for c := 0; c < 5; c++ {
					idx := c*12 + h*4 + w
					assert.Equal(t, x.At(bi, h, w, c), y.At(bi, idx))
				}
			}
		}
	}
}

func TestRearrangeKeepOneMergeRest(t *testing.T) {
	b := cpu.New()
	x := tensor.Randn[float64](tensor.Shape{30, 40, 3, 32}, b)

	y, err := Rearrange(x, "b h w c -> h (b w) c")
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{40, 90, 32}, y.Shape())
}

func TestRearrangeEllipsis(t *testing.T) {
	b := cpu.New()

	t.Run("move axis across batch dims", func(t *testing.T) {
		x := arange(t, tensor.Shape{2, 3, 4}, b)
		y, err := Rearrange(x, "... c -> c ...")
		require.NoError(t, err)
		require.Equal(t, tensor.Shape{4, 2, 3}, y.Shape())

		for i := 0; i < 2; i++ {
			for j := 0; j < 3; j++ {
				for c := 0; c < 4; c++ {
					assert.Equal(t, x.At(i, j, c), y.At(c, i, j))
				}
			}
		}
	})

	t.Run("merge under ellipsis", func(t *testing.T) {
		x := arange(t, tensor.Shape{2, 3, 4, 5}, b)
		y, err := Rearrange(x, "... h w -> ... (h w)")
		require.NoError(t, err)
		assert.Equal(t, tensor.Shape{2, 3, 20}, y.Shape())
		assert.Equal(t, x.Data(), y.Data())
	})

	t.Run("ellipsis matching zero axes", func(t *testing.T) {
		x := arange(t, tensor.Shape{3, 4}, b)
		y, err := Rearrange(x, "... a b -> ... b a")
		require.NoError(t, err)
		assert.Equal(t, tensor.Shape{4, 3}, y.Shape())
	})
}

func TestRearrangeRepeat(t *testing.T) {
	b := cpu.New()
	x := arange(t, tensor.Shape{3}, b)

	y, err := Rearrange(x, "w -> h w", Axis("h", 5))
	require.NoError(t, err)
	require.Equal(t, tensor.Shape{5, 3}, y.Shape())

	for h := 0; h < 5; h++ {
		for w := 0; w < 3; w++ {
			assert.Equal(t, x.At(w), y.At(h, w))
		}
	}
}

func TestRearrangeRepeatIntoUnitSlot(t *testing.T) {
	b := cpu.New()
	x := arange(t, tensor.Shape{3, 1, 5}, b)

	y, err := Rearrange(x, "a 1 c -> a b c", Axis("b", 4))
	require.NoError(t, err)
	require.Equal(t, tensor.Shape{3, 4, 5}, y.Shape())

	for a := 0; a < 3; a++ {
		for bi := 0; bi < 4; bi++ {
			for c := 0; c < 5; c++ {
				assert.Equal(t, x.At(a, 0, c), y.At(a, bi, c))
			}
		}
	}
}

func TestRearrangeSplitThenMerge(t *testing.T) {
	b := cpu.New()
	x := arange(t, tensor.Shape{12, 4}, b)

	y, err := Rearrange(x, "(h1 h2) w -> h1 (h2 w)", Axis("h1", 3))
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 16}, y.Shape())
	// Split and merge in declared order leave the element sequence alone.
	assert.Equal(t, x.Data(), y.Data())
}

func TestRearrangeDropUnitAxis(t *testing.T) {
	b := cpu.New()
	x := arange(t, tensor.Shape{3, 1}, b)

	y, err := Rearrange(x, "a one -> a", Axis("one", 1))
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3}, y.Shape())

	z, err := Rearrange(x, "a 1 -> a")
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3}, z.Shape())
}

func TestRearrangeRoundTrip(t *testing.T) {
	b := cpu.New()
	x := tensor.Randn[float32](tensor.Shape{2, 3, 4}, b)

	y, err := Rearrange(x, "a b c -> c a b")
	require.NoError(t, err)
	z, err := Rearrange(y, "c a b -> a b c")
	require.NoError(t, err)

	assert.Equal(t, x.Shape(), z.Shape())
	assert.Equal(t, x.Data(), z.Data())
}

func TestRearrangeSplitMergeInverse(t *testing.T) {
	b := cpu.New()
	const H, W, C = 3, 4, 2
	x := arange(t, tensor.Shape{H * W, C}, b)

	y, err := Rearrange(x, "(h w) c -> h w c", Axis("h", H))
	require.NoError(t, err)
	z, err := Rearrange(y, "h w c -> (h w) c")
	require.NoError(t, err)

	assert.Equal(t, x.Shape(), z.Shape())
	assert.Equal(t, x.Data(), z.Data())
}

func TestRearrangeDoesNotMutateInput(t *testing.T) {
	b := cpu.New()
	x := arange(t, tensor.Shape{3, 4}, b)
	before := append([]float32(nil), x.Data()...)

	_, err := Rearrange(x, "h w -> (w h)")
	require.NoError(t, err)
	assert.Equal(t, before, x.Data())
	assert.Equal(t, tensor.Shape{3, 4}, x.Shape())
}

func TestRearrangeOtherDTypes(t *testing.T) {
	b := cpu.New()

	t.Run("int32", func(t *testing.T) {
		x := tensor.Arange[int32](0, 6, b).Reshape(2, 3)
		y, err := Rearrange(x, "a b -> b a")
		require.NoError(t, err)
		assert.Equal(t, []int32{0, 3, 1, 4, 2, 5}, y.Data())
	})

	t.Run("float16", func(t *testing.T) {
		data := []float16.Float16{
			float16.Fromfloat32(1), float16.Fromfloat32(2),
			float16.Fromfloat32(3), float16.Fromfloat32(4),
		}
		x, err := tensor.FromSlice(data, tensor.Shape{2, 2}, b)
		require.NoError(t, err)

		y, err := Rearrange(x, "a b -> b a")
		require.NoError(t, err)
		assert.Equal(t, float32(2), y.At(1, 0).Float32())
		assert.Equal(t, float32(3), y.At(0, 1).Float32())
	})
}

func TestRearrangeErrors(t *testing.T) {
	b := cpu.New()

	t.Run("repeat axis without explicit size", func(t *testing.T) {
		x := arange(t, tensor.Shape{2, 3}, b)
		_, err := Rearrange(x, "a b -> a b c")
		require.Error(t, err)
		var serr *ShapeError
		require.ErrorAs(t, err, &serr)
		assert.Contains(t, err.Error(), "requires explicit size")
	})

	t.Run("dropping a non-unit axis", func(t *testing.T) {
		x := arange(t, tensor.Shape{2, 3}, b)
		_, err := Rearrange(x, "a b -> a")
		require.Error(t, err)
		var serr *ShapeError
		require.ErrorAs(t, err, &serr)
		assert.Contains(t, err.Error(), "cannot drop non-unit axis")
	})

	t.Run("ellipsis on one side only", func(t *testing.T) {
		x := arange(t, tensor.Shape{2, 3}, b)
		_, err := Rearrange(x, "... a -> a")
		require.Error(t, err)
		var perr *PatternError
		require.ErrorAs(t, err, &perr)
		assert.Contains(t, err.Error(), "both sides or neither")
	})

	t.Run("axis count mismatch", func(t *testing.T) {
		x := arange(t, tensor.Shape{2, 3, 4}, b)
		_, err := Rearrange(x, "a b -> b a")
		var serr *ShapeError
		require.ErrorAs(t, err, &serr)
		assert.Contains(t, err.Error(), "axis count mismatch")
	})

	t.Run("non-positive explicit size", func(t *testing.T) {
		x := arange(t, tensor.Shape{3}, b)
		_, err := Rearrange(x, "w -> h w", Axis("h", 0))
		var serr *ShapeError
		require.ErrorAs(t, err, &serr)
		assert.Contains(t, err.Error(), "must be positive")
	})

	t.Run("conflicting explicit sizes", func(t *testing.T) {
		x := arange(t, tensor.Shape{3}, b)
		_, err := Rearrange(x, "w -> h w", Axis("h", 2), Axis("h", 3))
		var serr *ShapeError
		require.ErrorAs(t, err, &serr)
		assert.Contains(t, err.Error(), "conflicting explicit sizes")
	})

	t.Run("error message carries the pattern", func(t *testing.T) {
		x := arange(t, tensor.Shape{2, 3}, b)
		_, err := Rearrange(x, "a b -> a")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `rearrange "a b -> a"`)
	})

	t.Run("errors.Is does not match the other kind", func(t *testing.T) {
		x := arange(t, tensor.Shape{2, 3}, b)
		_, err := Rearrange(x, "a b -> a")
		var perr *PatternError
		assert.False(t, errors.As(err, &perr))
	})
}
