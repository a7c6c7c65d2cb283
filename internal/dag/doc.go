// Package dag implements the directed acyclic graph underneath an execution
// plan. Nodes live in an arena and are addressed by NodeIndex; edges are typed
// with an EdgeKind.
//
// Acyclicity is an admission check: AddEdge refuses any edge that would close
// a cycle and leaves the graph untouched, so a Graph built through the public
// API is always a DAG. Topological orders are deterministic, with ties broken
// by insertion index.
package dag
