// Package engine wires the compilation pipeline together: load manifest
// files, parse each one, merge them in order, validate references across the
// merged manifest, and build the plan.
//
// Every stage either succeeds completely or returns the first error; no
// stage ever sees the partial output of a failed one.
package engine
