package einops

import (
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// validate cross-checks the two pattern sides against the resolved sizes.
// It fails loudly rather than coercing: every failure aborts the call before
// any primitive operation has touched the tensor.
func validate(input, output axisExpr, bnd *binding, explicit map[string]int) error {
	if input.hasEllipsis() != output.hasEllipsis() {
		return patternErrorf("ellipsis must appear on both sides or neither")
	}

	outNames := make(map[string]bool)
	for _, name := range output.namedAxes() {
		outNames[name] = true
	}

	// Every output axis must have a known size. An axis that is new on the
	// output side is a repeat and needs an explicit size from the caller.
	for _, name := range output.namedAxes() {
		if !bnd.sizes.has(name) {
			if len(explicit) > 0 {
				return shapeErrorf("repeat axis %q requires explicit size (sizes were given for %s)", name, joinNames(sortedKeys(explicit)))
			}
			return shapeErrorf("repeat axis %q requires explicit size", name)
		}
	}

	// An input axis missing from the output is a drop. Dropping a non-unit
	// axis would discard data, which only a reduction could make meaningful.
	for _, name := range input.namedAxes() {
		if outNames[name] {
			continue
		}
		size, _ := bnd.sizes.lookup(name)
		if size != 1 {
			return shapeErrorf("cannot drop non-unit axis %q (size %d); reductions are not supported", name, size)
		}
	}

	return nil
}

// sortedKeys returns the map's keys in deterministic order for error messages.
func sortedKeys(m map[string]int) []string {
	keys := maps.Keys(m)
	sort.Strings(keys)
	return keys
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}

func joinAxes(axes []string) string {
	return strings.Join(axes, " ")
}
