// Package testutil provides seeded random generators for tests and
// benchmarks: random loci and Zipf-distributed annotation strings that
// mimic the heavy symbol reuse of real annotation columns.
package testutil
