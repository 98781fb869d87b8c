package prim_kruskal

// DisjointSet is a union-find forest over the fixed index range [0..n-1].
//
// Find compresses paths fully (every visited node is relinked to the root)
// and Union attaches by rank, so any sequence of m operations costs
// O(m·α(n)). Indices are caller-enforced: out-of-range values panic like a
// slice access.
type DisjointSet struct {
	parent []int   // parent[x] == x iff x is a root
	rank   []uint8 // upper bound on tree height, meaningful for roots only
	count  int     // number of disjoint sets remaining
}

// NewDisjointSet returns n singleton sets {0}, {1}, …, {n-1}.
// Complexity: O(n).
func NewDisjointSet(n int) *DisjointSet {
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]uint8, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Find returns the canonical representative of x's set.
// Two passes keep it iterative: locate the root, then point every node on
// the path straight at it.
func (d *DisjointSet) Find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[x] != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets of a and b. The lower-rank root goes under the
// higher-rank one; rank grows only when both ranks are equal.
// It reports whether a merge happened (false if already in one set).
func (d *DisjointSet) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}
	d.count--

	return true
}

// Connected reports whether a and b share a representative.
func (d *DisjointSet) Connected(a, b int) bool {
	return d.Find(a) == d.Find(b)
}

// Count returns the number of disjoint sets.
func (d *DisjointSet) Count() int { return d.count }

// Len returns the size of the index range.
func (d *DisjointSet) Len() int { return len(d.parent) }
