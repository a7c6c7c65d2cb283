package plan

import (
	"fmt"
	"strings"
)

// Visualize renders the plan in Graphviz DOT. Nodes are numbered by
// declaration index and labelled with their id; edges are labelled with
// their kind symbol.
func (p *Plan) Visualize() string {
	var sb strings.Builder
	sb.WriteString("digraph {\n")
	for _, n := range p.nodes {
		fmt.Fprintf(&sb, "    %d [ label = %s ]\n", n.Index, dotQuote(n.ID))
	}
	for _, n := range p.nodes {
		for _, e := range p.graph.Outgoing(n.Index) {
			fmt.Fprintf(&sb, "    %d -> %d [ label = %s ]\n", e.From, e.To, dotQuote(e.Kind.String()))
		}
	}
	sb.WriteString("}\n")
	return sb.String()
}

// dotQuote quotes s as a DOT string. DOT only escapes double quotes and
// backslashes.
func dotQuote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	return `"` + r.Replace(s) + `"`
}
