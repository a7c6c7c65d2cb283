package dag

import (
	"container/heap"
	"slices"
)

// indexHeap is a min-heap of node indices.
type indexHeap []NodeIndex

func (h indexHeap) Len() int           { return len(h) }
func (h indexHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h indexHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *indexHeap) Push(x any)        { *h = append(*h, x.(NodeIndex)) }
func (h *indexHeap) Pop() any {
	old := *h
	n := old[len(old)-1]
	*h = old[:len(old)-1]
	return n
}

func (g *Graph) inDegrees() []int {
	degrees := make([]int, len(g.keys))
	for i := range g.in {
		degrees[i] = len(g.in[i])
	}
	return degrees
}

// TopologicalSort returns every node index such that each edge's source
// precedes its target. Among nodes that are ready at the same time the one
// with the lowest index comes first, so identical graphs always produce
// identical orders.
func (g *Graph) TopologicalSort() ([]NodeIndex, error) {
	degrees := g.inDegrees()
	ready := &indexHeap{}
	for i, d := range degrees {
		if d == 0 {
			*ready = append(*ready, NodeIndex(i))
		}
	}
	heap.Init(ready)

	order := make([]NodeIndex, 0, len(g.keys))
	for ready.Len() > 0 {
		n := heap.Pop(ready).(NodeIndex)
		order = append(order, n)
		for _, e := range g.out[n] {
			degrees[e.To]--
			if degrees[e.To] == 0 {
				heap.Push(ready, e.To)
			}
		}
	}

	if len(order) != len(g.keys) {
		return nil, g.remainingCycle(degrees)
	}
	return order, nil
}

// TopologicalLevels groups nodes into layers. Every node in a layer depends
// only on nodes in earlier layers, so the members of one layer can be
// processed concurrently. Layers are sorted by index.
func (g *Graph) TopologicalLevels() ([][]NodeIndex, error) {
	degrees := g.inDegrees()
	var current []NodeIndex
	for i, d := range degrees {
		if d == 0 {
			current = append(current, NodeIndex(i))
		}
	}

	var levels [][]NodeIndex
	seen := 0
	for len(current) > 0 {
		levels = append(levels, current)
		seen += len(current)

		var next []NodeIndex
		for _, n := range current {
			for _, e := range g.out[n] {
				degrees[e.To]--
				if degrees[e.To] == 0 {
					next = append(next, e.To)
				}
			}
		}
		slices.Sort(next)
		current = next
	}

	if seen != len(g.keys) {
		return nil, g.remainingCycle(degrees)
	}
	return levels, nil
}

// remainingCycle names an edge between two nodes a sort could not emit.
// Such nodes only exist when the graph contains a cycle.
func (g *Graph) remainingCycle(degrees []int) error {
	for i, d := range degrees {
		if d == 0 {
			continue
		}
		for _, e := range g.in[i] {
			if degrees[e.From] > 0 {
				return &CycleError{From: g.keys[e.From], To: g.keys[e.To]}
			}
		}
	}
	return &CycleError{}
}
