package automaton

// partition Union-find over state ids. The root of every class is the lowest id in it, so merging
// never moves the initial state away from id 0.
type partition struct {
	parent []int
}

func newPartition(size int) *partition {
	p := &partition{}
	p.ensure(size - 1)
	return p
}

func (p *partition) ensure(x int) {
	from := len(p.parent)
	p.parent = grow(p.parent, x+1)
	for i := from; i < len(p.parent); i++ {
		p.parent[i] = i
	}
}

func (p *partition) find(x int) int {
	p.ensure(x)
	for p.parent[x] != x {
		// path halving
		p.parent[x] = p.parent[p.parent[x]]
		x = p.parent[x]
	}
	return x
}

// union Merges the classes of x and y. Returns false if they already were one class.
func (p *partition) union(x, y int) bool {
	rx, ry := p.find(x), p.find(y)
	if rx == ry {
		return false
	}
	if ry < rx {
		rx, ry = ry, rx
	}
	p.parent[ry] = rx
	return true
}

// classes Groups ids by representative. Members are listed in the order of ids.
func (p *partition) classes(ids []int) map[int][]int {
	result := make(map[int][]int)
	for _, id := range ids {
		root := p.find(id)
		result[root] = append(result[root], id)
	}
	return result
}
