package bench_test

import (
	"errors"
	"time"

	"github.com/katalvlaran/tspkit/catalog"
	"github.com/katalvlaran/tspkit/matrix"
	"github.com/katalvlaran/tspkit/tsp"
)

// example1 is the classic 4-city instance: approx 95, optimum 80.
var example1 = matrix.MustNew([][]int64{
	{0, 10, 15, 20},
	{10, 0, 35, 25},
	{15, 35, 0, 30},
	{20, 25, 30, 0},
})

var inst1 = catalog.Instance{Name: "ex1", File: "instances/ex1_80.txt", Optimal: 80}

// stepClock returns a clock that advances by step on every reading, so every
// measured run lasts exactly step.
func stepClock(step time.Duration) func() time.Time {
	t := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return func() time.Time {
		now := t
		t = t.Add(step)
		return now
	}
}

// countingSolver returns the call number as cost.
type countingSolver struct {
	calls  int
	failAt int // 0 = never
}

var errBoom = errors.New("boom")

func (c *countingSolver) Solve(*matrix.Distance) (tsp.Solution, error) {
	c.calls++
	if c.calls == c.failAt {
		return tsp.Solution{}, errBoom
	}

	return tsp.Solution{Tour: []int{0, 0}, Cost: int64(c.calls)}, nil
}
