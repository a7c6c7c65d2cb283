// Package report renders a plan as an execution report: the nodes in
// topological order, each with its outgoing edges. Text, JSON and YAML
// renderings carry the same data.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/ppcatalog/internal/plan"
	"github.com/specialistvlad/ppcatalog/internal/resource"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
	"gopkg.in/yaml.v3"
)

// Report is the ordered view of a plan.
type Report struct {
	Nodes int    `yaml:"nodes"`
	Edges int    `yaml:"edges"`
	Steps []Step `yaml:"steps"`
}

// Step is one node of the plan, in application order.
type Step struct {
	ID         string            `yaml:"id"`
	Type       string            `yaml:"type"`
	Title      string            `yaml:"title"`
	Level      int               `yaml:"level"`
	Ensure     string            `yaml:"ensure,omitempty"`
	Attributes map[string]string `yaml:"attributes,omitempty"`
	Edges      []StepEdge        `yaml:"edges,omitempty"`
}

// StepEdge is an outgoing edge of a step.
type StepEdge struct {
	Kind   string `yaml:"kind"`
	Target string `yaml:"target"`
}

// New builds the report for p.
func New(p *plan.Plan) (*Report, error) {
	order, err := p.TopologicalOrder()
	if err != nil {
		return nil, fmt.Errorf("ordering plan: %w", err)
	}
	levels, err := p.Levels()
	if err != nil {
		return nil, fmt.Errorf("grouping plan levels: %w", err)
	}
	levelOf := make(map[string]int, p.Len())
	for i, level := range levels {
		for _, id := range level {
			levelOf[id] = i
		}
	}

	r := &Report{Nodes: p.Len(), Edges: p.EdgeCount(), Steps: make([]Step, 0, len(order))}
	for _, id := range order {
		n, _ := p.Node(id)
		step := Step{
			ID:    id,
			Type:  n.Resource.Type(),
			Title: n.Resource.Title(),
			Level: levelOf[id],
		}
		step.Ensure = ensureState(n)
		if decl := n.Declaration; decl != nil && len(decl.Attributes) > 0 {
			step.Attributes = make(map[string]string, len(decl.Attributes))
			for _, attr := range decl.Attributes {
				step.Attributes[attr.Name] = attr.Value.String()
			}
		}
		for _, e := range p.OutgoingEdges(id) {
			step.Edges = append(step.Edges, StepEdge{Kind: e.Kind.String(), Target: e.To})
		}
		r.Steps = append(r.Steps, step)
	}
	return r, nil
}

// ensureState returns the state the declared `ensure` attribute asks for,
// Present when there is none. Kind-specific values such as "running" yield ""
// and stay visible through the attributes.
func ensureState(n *plan.Node) string {
	var declared string
	if n.Declaration != nil {
		if v, ok := n.Declaration.Attribute("ensure"); ok {
			declared = v.String()
		}
	}
	state, err := resource.ParseEnsure(declared)
	if err != nil {
		return ""
	}
	return state.String()
}

// WriteText writes the human-readable listing: one line per step, with each
// outgoing edge as "(kind target)".
func (r *Report) WriteText(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("# Execution plan debug:\n")
	for _, step := range r.Steps {
		sb.WriteString("# ")
		sb.WriteString(step.ID)
		for _, e := range step.Edges {
			fmt.Fprintf(&sb, " (%s %s)", e.Kind, e.Target)
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Value returns the report as a cty object value.
func (r *Report) Value() cty.Value {
	steps := make([]cty.Value, len(r.Steps))
	for i, step := range r.Steps {
		steps[i] = step.value()
	}
	stepsVal := cty.EmptyTupleVal
	if len(steps) > 0 {
		stepsVal = cty.TupleVal(steps)
	}
	return cty.ObjectVal(map[string]cty.Value{
		"nodes": cty.NumberIntVal(int64(r.Nodes)),
		"edges": cty.NumberIntVal(int64(r.Edges)),
		"steps": stepsVal,
	})
}

func (s Step) value() cty.Value {
	attrs := cty.MapValEmpty(cty.String)
	if len(s.Attributes) > 0 {
		m := make(map[string]cty.Value, len(s.Attributes))
		for k, v := range s.Attributes {
			m[k] = cty.StringVal(v)
		}
		attrs = cty.MapVal(m)
	}

	edges := cty.EmptyTupleVal
	if len(s.Edges) > 0 {
		vals := make([]cty.Value, len(s.Edges))
		for i, e := range s.Edges {
			vals[i] = cty.ObjectVal(map[string]cty.Value{
				"kind":   cty.StringVal(e.Kind),
				"target": cty.StringVal(e.Target),
			})
		}
		edges = cty.TupleVal(vals)
	}

	ensure := cty.NullVal(cty.String)
	if s.Ensure != "" {
		ensure = cty.StringVal(s.Ensure)
	}

	return cty.ObjectVal(map[string]cty.Value{
		"id":         cty.StringVal(s.ID),
		"type":       cty.StringVal(s.Type),
		"title":      cty.StringVal(s.Title),
		"level":      cty.NumberIntVal(int64(s.Level)),
		"ensure":     ensure,
		"attributes": attrs,
		"edges":      edges,
	})
}

// JSON encodes the report as JSON.
func (r *Report) JSON() ([]byte, error) {
	val := r.Value()
	data, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return nil, fmt.Errorf("encoding report as JSON: %w", err)
	}
	return data, nil
}

// YAML encodes the report as YAML.
func (r *Report) YAML() ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encoding report as YAML: %w", err)
	}
	return data, nil
}
