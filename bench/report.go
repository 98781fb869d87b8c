package bench

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"
)

// StampLayout formats report stamps and result file names.
const StampLayout = "20060102_150405"

const (
	separator = "────────────────────────────────────────"
	unknown   = "—"
	skipped   = "(skipped)"
)

// FileName returns the log file name for a run started at t.
func FileName(t time.Time) string {
	return "results_" + t.Format(StampLayout) + ".md"
}

// errWriter keeps the first write error and turns later writes into no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

// Report is the markdown benchmark log. Blocks are written as results are
// added; Close appends the summary table.
type Report struct {
	out     errWriter
	results []Result
}

// NewReport writes the log header for stamp to w.
func NewReport(w io.Writer, stamp string) (*Report, error) {
	r := &Report{out: errWriter{w: w}}
	r.out.printf("=== TSP Benchmark %s ===\n\n", stamp)

	return r, r.out.err
}

// Results returns the results added so far.
func (r *Report) Results() []Result { return r.results }

// Add writes the block of one instance and remembers it for the summary.
func (r *Report) Add(res Result) error {
	r.results = append(r.results, res)
	o := &r.out
	o.printf("Instance: %s (n=%d)\n", res.Instance.File, res.N)
	writeMeasurement(o, "Approx", res.Approx)
	if res.Exact != nil {
		writeMeasurement(o, "Exact", *res.Exact)
	} else {
		o.printf("  Exact: skipped (n = %d > %d)\n\n", res.N, res.ExactLimit)
	}
	o.printf("%s\n\n", separator)

	return o.err
}

func writeMeasurement(o *errWriter, title string, m Measurement) {
	o.printf("  %s:\n", title)
	o.printf("    cost = %d\n", m.Solution.Cost)
	for i, d := range m.Runs {
		o.printf("    run %2d: %.3f ms\n", i+1, Millis(d))
	}
	o.printf("    mean: %.3f ms\n\n", Millis(m.Summary.Mean))
}

// Close writes the summary table. A report without results gets no table.
func (r *Report) Close() error {
	if len(r.results) == 0 {
		return r.out.err
	}
	o := &r.out
	o.printf("=== Final Summary ===\n")
	o.printf("| Instance | n | Optimal | Approx | Time A | Error %% | Exact | Time E |\n")
	o.printf("|----------|---|---------|--------|--------|---------|-------|--------|\n")
	for _, res := range r.results {
		c := cellsOf(res)
		o.printf("| %s |\n", strings.Join(c[:], " | "))
	}
	o.printf("\n=== End of Summary ===\n")

	return o.err
}

// WriteSummary renders the summary table for a terminal.
func WriteSummary(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	o := &errWriter{w: tw}
	o.printf("Instance\tn\tOptimal\tApprox\tTime A\tError %%\tExact\tTime E\t\n")
	for _, res := range results {
		c := cellsOf(res)
		o.printf("%s\t\n", strings.Join(c[:], "\t"))
	}
	if o.err != nil {
		return o.err
	}

	return tw.Flush()
}

// cellsOf formats one summary row.
func cellsOf(res Result) [8]string {
	var c [8]string
	c[0] = res.Instance.Name
	c[1] = strconv.Itoa(res.N)
	c[2] = unknown
	if res.Instance.Optimal > 0 {
		c[2] = strconv.FormatInt(res.Instance.Optimal, 10)
	}
	c[3] = strconv.FormatInt(res.Approx.Solution.Cost, 10)
	c[4] = fmt.Sprintf("%.3fms", Millis(res.Approx.Summary.Mean))
	c[5] = unknown
	if pct, ok := res.ErrorPercent(); ok {
		c[5] = fmt.Sprintf("%+.2f %%", pct)
	}
	c[6], c[7] = unknown, skipped
	if res.Exact != nil {
		c[6] = strconv.FormatInt(res.Exact.Solution.Cost, 10)
		c[7] = fmt.Sprintf("%.3fms", Millis(res.Exact.Summary.Mean))
	}

	return c
}
