package dag

// NodeIndex addresses a node in the graph arena. Indices are assigned in
// insertion order starting at zero and never change.
type NodeIndex int

// EdgeKind distinguishes plain ordering edges from notification edges.
type EdgeKind int

const (
	// ProvideEdge orders the source before the target.
	ProvideEdge EdgeKind = iota
	// NotifyEdge orders the source before the target and signals the target
	// when the source changes.
	NotifyEdge
)

// String returns the relation symbol for the edge kind.
func (k EdgeKind) String() string {
	switch k {
	case ProvideEdge:
		return "->"
	case NotifyEdge:
		return "~>"
	default:
		return "?"
	}
}

// Edge is a directed, typed edge between two nodes.
type Edge struct {
	From NodeIndex
	To   NodeIndex
	Kind EdgeKind
}

// Graph is an arena of keyed nodes and the typed edges between them.
// It is not safe for concurrent mutation; once built it may be read from
// any number of goroutines.
type Graph struct {
	// keys holds the node key for each index.
	keys []string
	// index maps a node key back to its arena index.
	index map[string]NodeIndex
	// out and in hold the adjacency lists per node, in insertion order.
	out [][]Edge
	in  [][]Edge
	// edges counts distinct edges.
	edges int
}
