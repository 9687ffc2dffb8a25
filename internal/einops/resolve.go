package einops

import (
	"fmt"

	"github.com/SwekeR-463/Zinops/internal/tensor"
)

// binding is the result of resolving an input pattern side against a
// concrete tensor shape: every named axis bound to a positive size, plus the
// synthesized names of the dimensions matched by the ellipsis, in order.
type binding struct {
	sizes    *axisSizes
	ellipsis []string
}

// ellipsisName synthesizes a stable positional name for the i-th dimension
// matched by "...". Dots cannot occur in user identifiers, so these names
// never collide with declared axes.
func ellipsisName(i int) string {
	return fmt.Sprintf("...%d", i)
}

// resolve walks the input expression along the tensor shape, binding every
// named axis to a concrete size. Explicit sizes are consulted first when
// inferring split components and must agree with anything inferred from the
// shape. Explicit sizes for axes that never occur on the input side (repeat
// axes) are merged into the result verbatim, after all input bindings.
func resolve(input axisExpr, shape tensor.Shape, explicit map[string]int) (*binding, error) {
	rank := len(shape)
	slots := len(input.groups)

	nEllipsis := 0
	if input.hasEllipsis() {
		nEllipsis = rank - (slots - 1)
		if nEllipsis < 0 {
			return nil, shapeErrorf("axis count mismatch: pattern expects at least %d axes, tensor has %d", slots-1, rank)
		}
	} else if slots != rank {
		return nil, shapeErrorf("axis count mismatch: pattern expects %d axes, tensor has %d", slots, rank)
	}

	bnd := &binding{sizes: newAxisSizes()}

	// lookup consults previously bound sizes first, then explicit sizes.
	lookup := func(name string) (int, bool) {
		if size, ok := bnd.sizes.lookup(name); ok {
			return size, true
		}
		size, ok := explicit[name]
		return size, ok
	}

	// bind records name -> size, rejecting conflicts with earlier bindings
	// or caller-supplied sizes.
	bind := func(name string, size int) error {
		if prev, ok := bnd.sizes.lookup(name); ok {
			if prev != size {
				return shapeErrorf("axis %q bound to conflicting sizes %d and %d", name, prev, size)
			}
			return nil
		}
		if want, ok := explicit[name]; ok && want != size {
			return shapeErrorf("axis %q: explicit size %d conflicts with inferred size %d", name, want, size)
		}
		bnd.sizes.add(name, size)
		return nil
	}

	dim := 0
	for _, g := range input.groups {
		switch g.kind {
		case ellipsisAxes:
			for i := 0; i < nEllipsis; i++ {
				name := ellipsisName(i)
				bnd.sizes.add(name, shape[dim])
				bnd.ellipsis = append(bnd.ellipsis, name)
				dim++
			}

		case unitAxis:
			if shape[dim] != 1 {
				return nil, shapeErrorf("pattern has unit axis \"1\" at input position %d, but the dimension has size %d", dim, shape[dim])
			}
			dim++

		case simpleAxis:
			if err := bind(g.name, shape[dim]); err != nil {
				return nil, err
			}
			dim++

		case compositeAxes:
			if err := resolveSplit(g.axes, shape[dim], lookup, bind); err != nil {
				return nil, err
			}
			dim++
		}
	}

	// Output-only axes sized by the caller (repeats, or redundant split
	// sizes that the walk above already verified).
	for _, a := range sortedKeys(explicit) {
		if !bnd.sizes.has(a) {
			bnd.sizes.add(a, explicit[a])
		}
	}

	return bnd, nil
}

// resolveSplit decomposes one dimension into the members of a composite
// group. At most one member may be unknown; it is solved by exact division.
func resolveSplit(axes []string, dimSize int, lookup func(string) (int, bool), bind func(string, int) error) error {
	product := 1
	unknown := ""
	for _, name := range axes {
		size, ok := lookup(name)
		if !ok {
			if unknown != "" {
				return shapeErrorf("cannot infer split sizes for (%s): both %q and %q are unknown", joinAxes(axes), unknown, name)
			}
			unknown = name
			continue
		}
		product *= size
	}

	solved := 0
	if unknown == "" {
		if product != dimSize {
			return shapeErrorf("split size mismatch: (%s) multiplies to %d, but the dimension has size %d", joinAxes(axes), product, dimSize)
		}
	} else {
		if dimSize%product != 0 {
			return shapeErrorf("split size mismatch: cannot divide dimension of size %d into %d parts to solve %q", dimSize, product, unknown)
		}
		solved = dimSize / product
	}

	// Bind in declared order so the ordered size mapping reflects the
	// pattern's depth-first axis sequence.
	for _, name := range axes {
		size := solved
		if name != unknown {
			size, _ = lookup(name)
		}
		if err := bind(name, size); err != nil {
			return err
		}
	}
	return nil
}
