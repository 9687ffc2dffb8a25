package einops

import (
	"github.com/pkg/errors"

	"github.com/SwekeR-463/Zinops/internal/tensor"
)

// plan is the derived primitive-operation sequence for one rearrangement:
// reshape, permute, reshape (insert), expand, reshape, in that order. Plans
// are built fresh per call and never cached.
type plan struct {
	flatten  tensor.Shape // reshape exposing split components and eliding dropped unit axes; nil to skip
	perm     []int        // permutation over the flattened axes; nil for identity
	inserted tensor.Shape // reshape adding size-1 slots for axes new on the output side; nil when none
	expand   tensor.Shape // broadcast target for the inserted slots; nil when every inserted size is 1
	outShape tensor.Shape // final shape with output composite groups merged
}

// buildPlan derives the primitive operations realizing output from input.
//
// Failures here are internal assertions: user input has already been fully
// validated, so any error below indicates a bug in the engine, not in the
// caller's pattern.
func buildPlan(input, output axisExpr, bnd *binding, inShape tensor.Shape) (*plan, error) {
	outNames := make(map[string]bool)
	for _, name := range output.namedAxes() {
		outNames[name] = true
	}

	// Flat input axis order: depth-first left-to-right expansion of the
	// input side. Unit axes and dropped axes are elided here, so a single
	// reshape both splits composite dimensions and removes size-1 drops.
	var flatNames []string
	var flatShape tensor.Shape
	keepAxis := func(name string) error {
		size, ok := bnd.sizes.lookup(name)
		if !ok {
			return errors.Errorf("internal: input axis %q has no resolved size", name)
		}
		flatNames = append(flatNames, name)
		flatShape = append(flatShape, size)
		return nil
	}
	for _, g := range input.groups {
		switch g.kind {
		case unitAxis:
			// elided
		case ellipsisAxes:
			for _, name := range bnd.ellipsis {
				if err := keepAxis(name); err != nil {
					return nil, err
				}
			}
		case simpleAxis:
			if outNames[g.name] {
				if err := keepAxis(g.name); err != nil {
					return nil, err
				}
			}
		case compositeAxes:
			for _, name := range g.axes {
				if outNames[name] {
					if err := keepAxis(name); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	inIndex := make(map[string]int, len(flatNames))
	for i, name := range flatNames {
		inIndex[name] = i
	}

	// Flat output axis order; axes absent from the flat input order are
	// tagged for broadcast insertion instead of permutation.
	type outAxis struct {
		name   string
		size   int
		insert bool
	}
	var flatOut []outAxis
	addNamed := func(name string) error {
		size, ok := bnd.sizes.lookup(name)
		if !ok {
			return errors.Errorf("internal: output axis %q has no resolved size", name)
		}
		_, present := inIndex[name]
		flatOut = append(flatOut, outAxis{name: name, size: size, insert: !present})
		return nil
	}
	for _, g := range output.groups {
		switch g.kind {
		case unitAxis:
			flatOut = append(flatOut, outAxis{size: 1, insert: true})
		case ellipsisAxes:
			for _, name := range bnd.ellipsis {
				if err := addNamed(name); err != nil {
					return nil, err
				}
			}
		case simpleAxis:
			if err := addNamed(g.name); err != nil {
				return nil, err
			}
		case compositeAxes:
			for _, name := range g.axes {
				if err := addNamed(name); err != nil {
					return nil, err
				}
			}
		}
	}

	// Permutation vector over the flattened input axes.
	perm := make([]int, 0, len(flatNames))
	for _, a := range flatOut {
		if !a.insert {
			perm = append(perm, inIndex[a.name])
		}
	}
	if len(perm) != len(flatNames) {
		return nil, errors.Errorf("internal: permutation length %d does not match flattened rank %d", len(perm), len(flatNames))
	}
	identity := true
	for i, p := range perm {
		if p != i {
			identity = false
			break
		}
	}

	// Insertion and broadcast shapes for repeat axes.
	needInsert := false
	needExpand := false
	insertedShape := make(tensor.Shape, 0, len(flatOut))
	expandShape := make(tensor.Shape, 0, len(flatOut))
	for _, a := range flatOut {
		if a.insert {
			needInsert = true
			insertedShape = append(insertedShape, 1)
			if a.size != 1 {
				needExpand = true
			}
		} else {
			insertedShape = append(insertedShape, a.size)
		}
		expandShape = append(expandShape, a.size)
	}

	// Final shape: adjacent flat axes of the same output composite group
	// merge into one dimension.
	outShape := make(tensor.Shape, 0, len(output.groups))
	for _, g := range output.groups {
		switch g.kind {
		case unitAxis:
			outShape = append(outShape, 1)
		case ellipsisAxes:
			for _, name := range bnd.ellipsis {
				size, _ := bnd.sizes.lookup(name)
				outShape = append(outShape, size)
			}
		case simpleAxis:
			size, _ := bnd.sizes.lookup(g.name)
			outShape = append(outShape, size)
		case compositeAxes:
			merged := 1
			for _, name := range g.axes {
				size, _ := bnd.sizes.lookup(name)
				merged *= size
			}
			outShape = append(outShape, merged)
		}
	}

	p := &plan{outShape: outShape}
	if !flatShape.Equal(inShape) {
		p.flatten = flatShape
	}
	if !identity {
		p.perm = perm
	}
	if needInsert {
		p.inserted = insertedShape
	}
	if needExpand {
		p.expand = expandShape
	}
	return p, nil
}
