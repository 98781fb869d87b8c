package bench

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/katalvlaran/tspkit/catalog"
	"github.com/katalvlaran/tspkit/matrix"
	"github.com/katalvlaran/tspkit/tsp"
)

// Measurement is the outcome of timing one solver on one matrix.
type Measurement struct {
	Algorithm tsp.Algorithm
	Solution  tsp.Solution    // from the first measured run
	Runs      []time.Duration // one entry per measured run
	Summary   Summary
}

// Result groups both measurements of one instance. Exact is nil when the
// exact solver was skipped; SkipReason then says why.
type Result struct {
	Instance   catalog.Instance
	N          int
	ExactLimit int
	Approx     Measurement
	Exact      *Measurement
	SkipReason string
}

// ErrorPercent returns 100·(approx − optimal)/optimal, or false when the
// optimum is unknown.
func (r Result) ErrorPercent() (float64, bool) {
	if r.Instance.Optimal <= 0 {
		return 0, false
	}
	diff := float64(r.Approx.Solution.Cost - r.Instance.Optimal)

	return 100 * diff / float64(r.Instance.Optimal), true
}

// Runner times solvers according to catalog settings.
type Runner struct {
	settings catalog.Settings
	log      *zap.Logger
	now      func() time.Time
}

// NewRunner validates settings and applies opts.
func NewRunner(settings catalog.Settings, opts ...Option) (*Runner, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{settings: settings, log: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r, nil
}

// Settings returns the settings the runner was built with.
func (r *Runner) Settings() catalog.Settings { return r.settings }

// Measure runs s on m WarmupRuns times without timing, then Runs times with
// timing. The first failing call aborts the measurement.
func (r *Runner) Measure(algo tsp.Algorithm, s tsp.Solver, m *matrix.Distance) (Measurement, error) {
	for i := 0; i < r.settings.WarmupRuns; i++ {
		if _, err := s.Solve(m); err != nil {
			return Measurement{}, fmt.Errorf("bench: %s warm-up %d: %w", algo, i+1, err)
		}
	}

	ms := Measurement{Algorithm: algo, Runs: make([]time.Duration, r.settings.Runs)}
	for i := range ms.Runs {
		t0 := r.now()
		sol, err := s.Solve(m)
		ms.Runs[i] = r.now().Sub(t0)
		if err != nil {
			return Measurement{}, fmt.Errorf("bench: %s run %d: %w", algo, i+1, err)
		}
		if i == 0 {
			ms.Solution = sol
		}
		r.log.Debug("run",
			zap.Stringer("algorithm", algo),
			zap.Int("run", i+1),
			zap.Duration("elapsed", ms.Runs[i]),
		)
	}

	var err error
	if ms.Summary, err = Summarize(ms.Runs); err != nil {
		return Measurement{}, err
	}
	r.log.Info("measured",
		zap.Stringer("algorithm", algo),
		zap.Int("n", m.N()),
		zap.Int64("cost", ms.Solution.Cost),
		zap.Duration("mean", ms.Summary.Mean),
		zap.Duration("stddev", ms.Summary.StdDev),
	)

	return ms, nil
}

// RunInstance measures the approximate solver, then the exact solver when
// m.N() ≤ MaxExactN.
func (r *Runner) RunInstance(inst catalog.Instance, m *matrix.Distance) (Result, error) {
	if m == nil {
		return Result{}, fmt.Errorf("bench: %s: %w", inst.Name, tsp.ErrInvalidInput)
	}
	res := Result{Instance: inst, N: m.N(), ExactLimit: r.settings.MaxExactN}
	log := r.log.With(zap.String("instance", inst.Name), zap.Int("n", res.N))

	approx, err := tsp.New(tsp.Approx)
	if err != nil {
		return Result{}, err
	}
	if res.Approx, err = r.Measure(tsp.Approx, approx, m); err != nil {
		return Result{}, fmt.Errorf("%s: %w", inst.Name, err)
	}

	if res.N > r.settings.MaxExactN {
		res.SkipReason = fmt.Sprintf("n = %d > %d, tables would need %s",
			res.N, r.settings.MaxExactN, humanize.Bytes(tsp.HeldKarpTableBytes(res.N)))
		log.Info("exact solver skipped", zap.String("reason", res.SkipReason))
		return res, nil
	}

	exact, err := tsp.New(tsp.Exact, tsp.WithMaxVertices(r.settings.MaxExactN))
	if err != nil {
		return Result{}, err
	}
	ex, err := r.Measure(tsp.Exact, exact, m)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", inst.Name, err)
	}
	res.Exact = &ex

	return res, nil
}
