// Command tspbench benchmarks the exact and approximate TSP solvers on
// distance-matrix files and writes a markdown log.
//
// Usage:
//
//	tspbench [-catalog file.yaml] [-out dir] [-cpuprofile] [-v] [instance.txt]
//
// With an instance argument that file is benchmarked once. Otherwise a menu
// lists the catalog instances until the user picks 0 or input ends. The log
// goes to <out>/results_YYYYMMDD_HHMMSS.md and the summary table is printed
// at exit.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/katalvlaran/tspkit/bench"
	"github.com/katalvlaran/tspkit/catalog"
	"github.com/katalvlaran/tspkit/matrix"
	"github.com/katalvlaran/tspkit/menu"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, time.Now); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "tspbench:", err)
		}
		os.Exit(1)
	}
}

type config struct {
	catalogPath string
	outDir      string
	cpuProfile  bool
	verbose     bool
	instance    string
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("tspbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.catalogPath, "catalog", "", "YAML instance catalog (default: built-in list under instances/)")
	fs.StringVar(&c.outDir, "out", ".", "directory for the results log and profiles")
	fs.BoolVar(&c.cpuProfile, "cpuprofile", false, "write a CPU profile into -out")
	fs.BoolVar(&c.verbose, "v", false, "verbose development logging")
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	switch fs.NArg() {
	case 0:
	case 1:
		c.instance = fs.Arg(0)
	default:
		fs.Usage()
		return c, fmt.Errorf("expected at most one instance file, got %d", fs.NArg())
	}

	return c, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

	return cfg.Build()
}

func run(args []string, in io.Reader, out io.Writer, now func() time.Time) (err error) {
	cfg, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.outDir), profile.NoShutdownHook).Stop()
	}

	cat := catalog.Default()
	if cfg.catalogPath != "" {
		if cat, err = catalog.Load(cfg.catalogPath); err != nil {
			return err
		}
	}
	runner, err := bench.NewRunner(cat.Settings, bench.WithLogger(logger))
	if err != nil {
		return err
	}

	start := now()
	logPath := filepath.Join(cfg.outDir, bench.FileName(start))
	f, err := os.Create(logPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	rep, err := bench.NewReport(f, start.Format(bench.StampLayout))
	if err != nil {
		return err
	}

	s := &session{out: out, log: logger, runner: runner, report: rep}
	if cfg.instance != "" {
		fmt.Fprintf(out, "Running single instance: %s\n", cfg.instance)
		if err = s.process(catalog.FromPath(cfg.instance)); err != nil {
			return err
		}
	} else if err = s.loop(menu.New(in, out, "TSP Solver"), cat); err != nil {
		return err
	}

	if err = rep.Close(); err != nil {
		return err
	}
	if results := rep.Results(); len(results) > 0 {
		fmt.Fprintln(out, "\n=== Final Summary ===")
		if err = bench.WriteSummary(out, results); err != nil {
			return err
		}
		fmt.Fprintln(out, "=== End of Summary ===")
	}
	fmt.Fprintf(out, "Log written to: %s\n", logPath)

	return nil
}

// session carries what one CLI invocation needs to benchmark instances.
type session struct {
	out    io.Writer
	log    *zap.Logger
	runner *bench.Runner
	report *bench.Report
}

// loop offers the catalog until the user quits. A failing instance is
// reported and the menu shown again.
func (s *session) loop(sel *menu.Selector, cat *catalog.Catalog) error {
	items := make([]string, len(cat.Instances))
	for i, inst := range cat.Instances {
		items[i] = inst.File
	}
	for {
		idx, ok, err := sel.Choose(items)
		if err != nil || !ok {
			return err
		}
		inst := cat.Instances[idx]
		inst.File = cat.Path(inst)
		if err = s.process(inst); err != nil {
			s.log.Error("instance failed", zap.String("file", inst.File), zap.Error(err))
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

func (s *session) process(inst catalog.Instance) error {
	fmt.Fprintf(s.out, "\nReading instance: %s …\n", inst.File)
	m, err := matrix.ReadFile(inst.File)
	if err != nil {
		return err
	}
	optimal := "unknown"
	if inst.Optimal > 0 {
		optimal = fmt.Sprint(inst.Optimal)
	}
	fmt.Fprintf(s.out, "Selected instance: '%s' (n=%d, optimal=%s)\n", inst.Name, m.N(), optimal)

	res, err := s.runner.RunInstance(inst, m)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "  Approx: cost=%d, avg=%.3fms\n", res.Approx.Solution.Cost, bench.Millis(res.Approx.Summary.Mean))
	if res.Exact != nil {
		fmt.Fprintf(s.out, "  Exact:  cost=%d, avg=%.3fms\n", res.Exact.Solution.Cost, bench.Millis(res.Exact.Summary.Mean))
	} else {
		fmt.Fprintf(s.out, "  Exact: skipped (%s)\n", res.SkipReason)
	}

	return s.report.Add(res)
}
