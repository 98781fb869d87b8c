package bench_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspkit/bench"
	"github.com/katalvlaran/tspkit/catalog"
	"github.com/katalvlaran/tspkit/tsp"
)

func measurement(cost int64, runs ...time.Duration) bench.Measurement {
	s, _ := bench.Summarize(runs)
	return bench.Measurement{Solution: tsp.Solution{Cost: cost}, Runs: runs, Summary: s}
}

func sampleResults() []bench.Result {
	ms := time.Millisecond
	exact := measurement(80, 2*ms, 4*ms)
	return []bench.Result{
		{
			Instance:   catalog.Instance{Name: "ex1", File: "instances/ex1_80.txt", Optimal: 80},
			N:          4,
			ExactLimit: 20,
			Approx:     measurement(95, ms, 3*ms),
			Exact:      &exact,
		},
		{
			Instance:   catalog.Instance{Name: "big", File: "big.txt"},
			N:          29,
			ExactLimit: 20,
			Approx:     measurement(1700, 500*time.Microsecond),
			SkipReason: "n = 29 > 20",
		},
	}
}

func TestReport_Markdown(t *testing.T) {
	var buf bytes.Buffer
	rep, err := bench.NewReport(&buf, "20260102_030405")
	require.NoError(t, err)
	for _, res := range sampleResults() {
		require.NoError(t, rep.Add(res))
	}
	require.NoError(t, rep.Close())
	assert.Len(t, rep.Results(), 2)

	want := `=== TSP Benchmark 20260102_030405 ===

Instance: instances/ex1_80.txt (n=4)
  Approx:
    cost = 95
    run  1: 1.000 ms
    run  2: 3.000 ms
    mean: 2.000 ms

  Exact:
    cost = 80
    run  1: 2.000 ms
    run  2: 4.000 ms
    mean: 3.000 ms

────────────────────────────────────────

Instance: big.txt (n=29)
  Approx:
    cost = 1700
    run  1: 0.500 ms
    mean: 0.500 ms

  Exact: skipped (n = 29 > 20)

────────────────────────────────────────

=== Final Summary ===
| Instance | n | Optimal | Approx | Time A | Error % | Exact | Time E |
|----------|---|---------|--------|--------|---------|-------|--------|
| ex1 | 4 | 80 | 95 | 2.000ms | +18.75 % | 80 | 3.000ms |
| big | 29 | — | 1700 | 0.500ms | — | — | (skipped) |

=== End of Summary ===
`
	assert.Equal(t, want, buf.String())
}

func TestReport_CloseWithoutResults(t *testing.T) {
	var buf bytes.Buffer
	rep, err := bench.NewReport(&buf, "s")
	require.NoError(t, err)
	require.NoError(t, rep.Close())
	assert.Equal(t, "=== TSP Benchmark s ===\n\n", buf.String())
}

type failWriter struct{ after int }

var errDisk = errors.New("disk full")

func (f *failWriter) Write(p []byte) (int, error) {
	if f.after <= 0 {
		return 0, errDisk
	}
	f.after--
	return len(p), nil
}

func TestReport_WriteErrorSticks(t *testing.T) {
	rep, err := bench.NewReport(&failWriter{after: 1}, "s")
	require.NoError(t, err)
	res := sampleResults()[0]
	assert.ErrorIs(t, rep.Add(res), errDisk)
	assert.ErrorIs(t, rep.Close(), errDisk)

	_, err = bench.NewReport(&failWriter{}, "s")
	assert.ErrorIs(t, err, errDisk)
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bench.WriteSummary(&buf, sampleResults()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Error %")
	assert.Equal(t, strings.Fields(lines[1]), []string{"ex1", "4", "80", "95", "2.000ms", "+18.75", "%", "80", "3.000ms"})
	assert.Equal(t, strings.Fields(lines[2]), []string{"big", "29", "—", "1700", "0.500ms", "—", "—", "(skipped)"})
}

func TestFileName(t *testing.T) {
	ts := time.Date(2026, 10, 14, 9, 5, 3, 0, time.UTC)
	assert.Equal(t, "results_20261014_090503.md", bench.FileName(ts))
}
