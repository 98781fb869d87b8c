package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspkit/tsp"
)

func TestNew_Variants(t *testing.T) {
	s, err := tsp.New(tsp.Approx)
	require.NoError(t, err)
	assert.IsType(t, tsp.ApproxSolver{}, s)

	s, err = tsp.New(tsp.Exact, tsp.WithMaxVertices(12))
	require.NoError(t, err)
	assert.Equal(t, tsp.ExactSolver{MaxVertices: 12}, s)

	s, err = tsp.New(tsp.Exact, tsp.WithMaxVertices(-3), nil)
	require.NoError(t, err)
	assert.Equal(t, tsp.ExactSolver{}, s)

	_, err = tsp.New(tsp.Algorithm(9))
	assert.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)

	_, err = tsp.Solve(line(3), tsp.Algorithm(-1))
	assert.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)
}

func TestSolve_ExactCeilingViaOption(t *testing.T) {
	_, err := tsp.Solve(line(8), tsp.Exact, tsp.WithMaxVertices(7))
	assert.ErrorIs(t, err, tsp.ErrTooLarge)

	// The approximate solver ignores the ceiling.
	_, err = tsp.Solve(line(8), tsp.Approx, tsp.WithMaxVertices(7))
	assert.NoError(t, err)
}

func TestAlgorithm_StringAndParse(t *testing.T) {
	assert.Equal(t, "approx", tsp.Approx.String())
	assert.Equal(t, "exact", tsp.Exact.String())
	assert.Equal(t, "Algorithm(7)", tsp.Algorithm(7).String())

	for in, want := range map[string]tsp.Algorithm{
		"approx":      tsp.Approx,
		" MST ":       tsp.Approx,
		"Exact":       tsp.Exact,
		"held-karp":   tsp.Exact,
		"approximate": tsp.Approx,
	} {
		got, err := tsp.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := tsp.ParseAlgorithm("christofides")
	assert.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)
}
