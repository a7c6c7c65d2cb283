// Package plan turns a validated manifest into an execution plan: one node per
// declared resource and one typed edge per ordering constraint.
//
// # Construction
//
// Build runs in two steps. Every declaration is constructed through the
// resource registry and added to the graph in source order. Every relation is
// then normalised (`<-` and `<~` swap their operands) and expanded into the
// Cartesian product of its two sides, one edge per pair. The graph refuses any
// edge that would close a cycle, and Build returns no plan at all when that
// happens.
//
// # Queries
//
// A Plan is immutable once built and safe for concurrent reads. Its
// topological order is deterministic: unrelated nodes keep declaration order.
// Levels groups nodes into batches that have no dependencies among themselves.
package plan
