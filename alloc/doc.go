// Package alloc implements greedy fractional-knapsack bandwidth allocation.
//
// # Reading Guide
//
// Start with these three files to understand the allocation kernel:
//   - claim.go: the Claim type (one competing demand) and input validation
//   - rank.go: value-density ranking (the greedy order)
//   - allocator.go: the single-pass fill and the Result it produces
//
// # Architecture
//
// The alloc package holds the pure allocation logic plus plan-file loading
// and report rendering; supporting concerns live in sub-packages:
//   - alloc/workload/: synthetic claim population generation
//   - alloc/trace/: per-decision allocation records and summaries
//
// The allocation pass is synchronous and non-reentrant. Callers exposing it
// as a service must serialize passes over a shared capacity pool externally,
// since the remaining-capacity accumulator is not updated atomically across
// claims.
package alloc
