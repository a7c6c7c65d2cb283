package dag

import (
	"fmt"
	"slices"
)

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		index: make(map[string]NodeIndex),
	}
}

// AddNode appends a node with the given key and returns its index. Keys must
// be unique.
func (g *Graph) AddNode(key string) (NodeIndex, error) {
	if _, ok := g.index[key]; ok {
		return 0, fmt.Errorf("node already exists: %s", key)
	}

	idx := NodeIndex(len(g.keys))
	g.keys = append(g.keys, key)
	g.index[key] = idx
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)
	return idx, nil
}

// AddEdge inserts a directed edge from -> to. An edge that would create a
// cycle, including a self loop, is rejected with a *CycleError and the graph
// is left unchanged. Inserting an edge identical to an existing one is a
// no-op.
func (g *Graph) AddEdge(from, to NodeIndex, kind EdgeKind) error {
	if err := g.checkIndex(from); err != nil {
		return fmt.Errorf("source node: %w", err)
	}
	if err := g.checkIndex(to); err != nil {
		return fmt.Errorf("destination node: %w", err)
	}

	edge := Edge{From: from, To: to, Kind: kind}
	if slices.Contains(g.out[from], edge) {
		return nil
	}

	// from -> to closes a cycle exactly when from is already reachable from to.
	if from == to || g.reachable(to, from) {
		return &CycleError{From: g.keys[from], To: g.keys[to]}
	}

	g.insertEdge(edge)
	return nil
}

// addEdgeUnchecked inserts an edge without the acyclicity check. Only tests
// use it, to exercise the defensive paths of the sorts.
func (g *Graph) addEdgeUnchecked(from, to NodeIndex, kind EdgeKind) {
	g.insertEdge(Edge{From: from, To: to, Kind: kind})
}

func (g *Graph) insertEdge(edge Edge) {
	g.out[edge.From] = append(g.out[edge.From], edge)
	g.in[edge.To] = append(g.in[edge.To], edge)
	g.edges++
}

// reachable reports whether target can be reached from start by following
// outgoing edges.
func (g *Graph) reachable(start, target NodeIndex) bool {
	visited := make([]bool, len(g.keys))
	stack := []NodeIndex{start}
	visited[start] = true

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == target {
			return true
		}
		for _, e := range g.out[n] {
			if !visited[e.To] {
				visited[e.To] = true
				stack = append(stack, e.To)
			}
		}
	}
	return false
}

func (g *Graph) checkIndex(i NodeIndex) error {
	if i < 0 || int(i) >= len(g.keys) {
		return fmt.Errorf("node index %d out of range", i)
	}
	return nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.keys)
}

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Key returns the key of the node at index i. It panics if i is out of range.
func (g *Graph) Key(i NodeIndex) string {
	return g.keys[i]
}

// Index returns the index of the node with the given key.
func (g *Graph) Index(key string) (NodeIndex, bool) {
	idx, ok := g.index[key]
	return idx, ok
}

// Outgoing returns the edges leaving node i in insertion order.
func (g *Graph) Outgoing(i NodeIndex) []Edge {
	if g.checkIndex(i) != nil {
		return nil
	}
	return slices.Clone(g.out[i])
}

// Incoming returns the edges entering node i in insertion order.
func (g *Graph) Incoming(i NodeIndex) []Edge {
	if g.checkIndex(i) != nil {
		return nil
	}
	return slices.Clone(g.in[i])
}
