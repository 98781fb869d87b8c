// Package bench times the TSP solvers on catalog instances and renders the
// results.
//
// A Runner executes each solver WarmupRuns times (discarded) and then Runs
// times (measured), keeping the Solution of the first measured run. The exact
// solver is skipped on instances larger than MaxExactN. A Report writes the
// markdown benchmark log incrementally and closes it with a summary table;
// WriteSummary renders the same table for a terminal.
//
// Timing uses an injectable clock (WithClock) so tests are deterministic.
// Nothing here runs concurrently: solvers are measured one call at a time.
package bench
