package bench

/*

# Scenario benchmark runner

This package measures sboarray workloads described by named scenarios and
writes the measurements to a JSON results file, so runs can be collected over
time and plotted. Scenarios come from a YAML file or from the built-in
default set.

A scenario names an operation mix (push, insert-front, erase-front, mixed),
an element shape (small plain, large plain, or pointer-carrying "boxed"), and
an item count relative to the fixed inline threshold of 64. Below-threshold
plain workloads are the ones expected to report zero allocations per op.

The runner executes each workload under testing.Benchmark, which handles
iteration calibration and alloc accounting the same way `go test -bench`
does.

*/
