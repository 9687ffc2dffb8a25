package einops

// axisSizes is an ordered association of axis names to their concrete sizes.
// Insertion order equals the left-to-right, depth-first order in which axes
// are first bound while scanning the input pattern; the plan builder's
// permutation vector depends on that order, so a plain map is not enough.
type axisSizes struct {
	names []string
	sizes []int
	index map[string]int
}

func newAxisSizes() *axisSizes {
	return &axisSizes{index: make(map[string]int)}
}

// add binds name to size. The caller is responsible for conflict checks;
// adding an already-bound name panics because it indicates a resolver bug.
func (a *axisSizes) add(name string, size int) {
	if _, ok := a.index[name]; ok {
		panic("einops: axis bound twice: " + name)
	}
	a.index[name] = len(a.names)
	a.names = append(a.names, name)
	a.sizes = append(a.sizes, size)
}

// lookup returns the bound size for name.
func (a *axisSizes) lookup(name string) (int, bool) {
	i, ok := a.index[name]
	if !ok {
		return 0, false
	}
	return a.sizes[i], true
}

// has reports whether name is bound.
func (a *axisSizes) has(name string) bool {
	_, ok := a.index[name]
	return ok
}
