package prim_kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspkit/matrix"
	"github.com/katalvlaran/tspkit/prim_kruskal"
)

// randomSymmetric builds an n×n symmetric matrix with weights in [1..maxW].
// Small maxW values produce many ties on purpose.
func randomSymmetric(r *rand.Rand, n int, maxW int64) *matrix.Distance {
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = make([]int64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := 1 + r.Int63n(maxW)
			rows[i][j], rows[j][i] = w, w
		}
	}

	return matrix.MustNew(rows)
}

// isSpanningTree reports whether edges connect all n vertices without a cycle.
func isSpanningTree(n int, edges []prim_kruskal.Edge) bool {
	if len(edges) != n-1 {
		return false
	}
	ds := prim_kruskal.NewDisjointSet(n)
	for _, e := range edges {
		if !ds.Union(e.U, e.V) {
			return false
		}
	}

	return ds.Count() == 1
}

func TestKruskal_Triangle(t *testing.T) {
	m := matrix.MustNew([][]int64{
		{0, 1, 3},
		{1, 0, 2},
		{3, 2, 0},
	})
	edges, total, err := prim_kruskal.Kruskal(m)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, []prim_kruskal.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 2},
	}, edges)
}

func TestKruskal_SingleVertex(t *testing.T) {
	edges, total, err := prim_kruskal.Kruskal(matrix.MustNew([][]int64{{0}}))
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)
}

// TestKruskal_TieBreakLexicographic: with all weights equal the accepted
// edges must be (0,1), (0,2), …, (0,n-1), the lexicographically first star.
func TestKruskal_TieBreakLexicographic(t *testing.T) {
	const n = 5
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = make([]int64, n)
		for j := range rows[i] {
			if i != j {
				rows[i][j] = 7
			}
		}
	}
	edges, total, err := prim_kruskal.Kruskal(matrix.MustNew(rows))
	require.NoError(t, err)
	assert.Equal(t, int64(7*(n-1)), total)
	for k, e := range edges {
		assert.Equal(t, prim_kruskal.Edge{U: 0, V: k + 1, Weight: 7}, e)
	}
}

// TestKruskalEdges_OrderIndependent shuffles the input edge list and
// expects the exact same accepted sequence.
func TestKruskalEdges_OrderIndependent(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	m := randomSymmetric(r, 12, 4)
	base := prim_kruskal.CompleteEdges(m)

	want, wantW, err := prim_kruskal.KruskalEdges(m.N(), base)
	require.NoError(t, err)

	for trial := 0; trial < 5; trial++ {
		shuffled := append([]prim_kruskal.Edge(nil), base...)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		// Flip some endpoints; the builder normalizes to U < V.
		for k := range shuffled {
			if k%3 == 0 {
				shuffled[k].U, shuffled[k].V = shuffled[k].V, shuffled[k].U
			}
		}
		got, gotW, err := prim_kruskal.KruskalEdges(m.N(), shuffled)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, wantW, gotW)
	}
}

func TestKruskalEdges_Disconnected(t *testing.T) {
	// {0,1} and {2,3} with no bridge.
	edges := []prim_kruskal.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 2, V: 3, Weight: 1},
	}
	mst, total, err := prim_kruskal.KruskalEdges(4, edges)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	assert.Nil(t, mst)
	assert.Zero(t, total)

	_, _, err = prim_kruskal.KruskalEdges(3, nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

func TestKruskalEdges_InvalidGraph(t *testing.T) {
	cases := map[string]struct {
		n     int
		edges []prim_kruskal.Edge
	}{
		"zero vertices": {0, nil},
		"self loop":     {2, []prim_kruskal.Edge{{U: 1, V: 1}}},
		"out of range":  {2, []prim_kruskal.Edge{{U: 0, V: 2}}},
		"negative":      {2, []prim_kruskal.Edge{{U: -1, V: 0}}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := prim_kruskal.KruskalEdges(tc.n, tc.edges)
			assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
		})
	}

	_, _, err := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, _, err = prim_kruskal.Prim(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}

// TestKruskal_MatchesPrim cross-checks total weight and tree shape against
// the dense Prim reference on random complete graphs.
func TestKruskal_MatchesPrim(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		n := 1 + r.Intn(30)
		m := randomSymmetric(r, n, int64(1+r.Intn(100)))

		ke, kw, err := prim_kruskal.Kruskal(m)
		require.NoError(t, err)
		pe, pw, err := prim_kruskal.Prim(m)
		require.NoError(t, err)

		require.Len(t, ke, n-1)
		require.Len(t, pe, n-1)
		assert.Equal(t, pw, kw, "n=%d trial=%d", n, trial)
		assert.Equal(t, kw, prim_kruskal.TotalWeight(ke))
		assert.Equal(t, pw, prim_kruskal.TotalWeight(pe))
		assert.True(t, isSpanningTree(n, ke))
		assert.True(t, isSpanningTree(n, pe))
	}
}

func TestCompleteEdges_Enumeration(t *testing.T) {
	m := matrix.MustNew([][]int64{
		{0, 4, 5},
		{4, 0, 6},
		{5, 6, 0},
	})
	assert.Equal(t, []prim_kruskal.Edge{
		{U: 0, V: 1, Weight: 4},
		{U: 0, V: 2, Weight: 5},
		{U: 1, V: 2, Weight: 6},
	}, prim_kruskal.CompleteEdges(m))
}
