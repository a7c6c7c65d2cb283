package plan

import (
	"github.com/specialistvlad/ppcatalog/internal/dag"
	"github.com/specialistvlad/ppcatalog/internal/manifest"
	"github.com/specialistvlad/ppcatalog/internal/nodeid"
	"github.com/specialistvlad/ppcatalog/internal/resource"
)

// Node is a single plan vertex.
type Node struct {
	Index       dag.NodeIndex
	ID          string
	Resource    resource.Resource
	Declaration *manifest.Resource
}

// Edge is an ordering constraint between two nodes, identified by id.
type Edge struct {
	Kind dag.EdgeKind
	From string
	To   string
}

// Plan is an immutable, acyclic execution plan.
type Plan struct {
	graph *dag.Graph
	nodes []*Node
	byID  map[string]*Node
}

// Len returns the number of nodes.
func (p *Plan) Len() int { return len(p.nodes) }

// EdgeCount returns the number of edges.
func (p *Plan) EdgeCount() int { return p.graph.EdgeCount() }

// Nodes returns the nodes in declaration order.
func (p *Plan) Nodes() []*Node {
	out := make([]*Node, len(p.nodes))
	copy(out, p.nodes)
	return out
}

// Node looks up a node by its composite id, e.g. "File[/tmp/one]". The type
// part need not be canonical, so "file[/tmp/one]" finds the same node.
func (p *Plan) Node(id string) (*Node, bool) {
	if n, ok := p.byID[id]; ok {
		return n, true
	}
	addr, err := nodeid.Parse(id)
	if err != nil {
		return nil, false
	}
	n, ok := p.byID[addr.String()]
	return n, ok
}

// Resource returns the resource at index i, or nil if i is out of range.
func (p *Plan) Resource(i dag.NodeIndex) resource.Resource {
	if n := p.at(i); n != nil {
		return n.Resource
	}
	return nil
}

// Declaration returns the manifest declaration for index i, or nil.
func (p *Plan) Declaration(i dag.NodeIndex) *manifest.Resource {
	if n := p.at(i); n != nil {
		return n.Declaration
	}
	return nil
}

func (p *Plan) at(i dag.NodeIndex) *Node {
	if i < 0 || int(i) >= len(p.nodes) {
		return nil
	}
	return p.nodes[i]
}

// TopologicalOrder returns node ids in a safe application order: for every
// path A to B, A comes first. Ties keep declaration order. A plan produced
// by Build never fails here.
func (p *Plan) TopologicalOrder() ([]string, error) {
	order, err := p.graph.TopologicalSort()
	if err != nil {
		return nil, err
	}
	return p.ids(order), nil
}

// Levels returns the nodes grouped into parallelisable batches.
func (p *Plan) Levels() ([][]string, error) {
	levels, err := p.graph.TopologicalLevels()
	if err != nil {
		return nil, err
	}
	out := make([][]string, len(levels))
	for i, level := range levels {
		out[i] = p.ids(level)
	}
	return out, nil
}

// OutgoingEdges returns the edges leaving id in insertion order.
func (p *Plan) OutgoingEdges(id string) []Edge {
	n, ok := p.Node(id)
	if !ok {
		return nil
	}
	return p.edges(p.graph.Outgoing(n.Index))
}

// IncomingEdges returns the edges entering id in insertion order.
func (p *Plan) IncomingEdges(id string) []Edge {
	n, ok := p.Node(id)
	if !ok {
		return nil
	}
	return p.edges(p.graph.Incoming(n.Index))
}

// Notifies returns the ids that id signals through notify edges.
func (p *Plan) Notifies(id string) []string {
	var targets []string
	for _, e := range p.OutgoingEdges(id) {
		if e.Kind == dag.NotifyEdge {
			targets = append(targets, e.To)
		}
	}
	return targets
}

func (p *Plan) ids(indices []dag.NodeIndex) []string {
	ids := make([]string, len(indices))
	for i, idx := range indices {
		ids[i] = p.nodes[idx].ID
	}
	return ids
}

func (p *Plan) edges(raw []dag.Edge) []Edge {
	if len(raw) == 0 {
		return nil
	}
	out := make([]Edge, len(raw))
	for i, e := range raw {
		out[i] = Edge{Kind: e.Kind, From: p.nodes[e.From].ID, To: p.nodes[e.To].ID}
	}
	return out
}
