package plan

import (
	"context"

	"github.com/specialistvlad/ppcatalog/internal/ctxlog"
	"github.com/specialistvlad/ppcatalog/internal/dag"
	"github.com/specialistvlad/ppcatalog/internal/manifest"
	"github.com/specialistvlad/ppcatalog/internal/registry"
)

// Build constructs the plan for a validated manifest. An unregistered type or
// an edge that would close a cycle fails with a *SourceError wrapping the
// *registry.UnknownTypeError or *dag.CycleError. An unvalidated manifest
// fails with an *InternalError. No partial plan is ever returned.
func Build(ctx context.Context, m *manifest.Manifest, reg *registry.Registry) (*Plan, error) {
	logger := ctxlog.FromContext(ctx)
	p := &Plan{
		graph: dag.New(),
		byID:  make(map[string]*Node),
	}

	for _, decl := range m.Resources() {
		if err := p.addNode(decl, reg); err != nil {
			return nil, err
		}
		logger.Debug("Added plan node.", "id", decl.ID())
	}

	for _, rel := range m.Relations() {
		if err := p.addRelation(rel); err != nil {
			return nil, err
		}
	}

	logger.Info("Plan built.", "nodes", p.Len(), "edges", p.EdgeCount())
	return p, nil
}

func (p *Plan) addNode(decl *manifest.Resource, reg *registry.Registry) error {
	res, err := reg.Construct(decl.Type, decl.Title.String())
	if err != nil {
		return &SourceError{Summary: "Unknown resource type", Range: decl.Range, Err: err}
	}

	id := res.ID()
	idx, err := p.graph.AddNode(id)
	if err != nil {
		return &InternalError{Message: "duplicate declaration reached graph construction", ID: id}
	}

	n := &Node{Index: idx, ID: id, Resource: res, Declaration: decl}
	p.nodes = append(p.nodes, n)
	p.byID[id] = n
	return nil
}

func (p *Plan) addRelation(rel *manifest.Relation) error {
	kind := dag.ProvideEdge
	if rel.Op.Notifies() {
		kind = dag.NotifyEdge
	}

	before, after := rel.Direction()
	for _, from := range before {
		src, err := p.lookup(from)
		if err != nil {
			return err
		}
		for _, to := range after {
			dst, err := p.lookup(to)
			if err != nil {
				return err
			}
			if err := p.graph.AddEdge(src.Index, dst.Index, kind); err != nil {
				return &SourceError{Summary: "Dependency cycle", Range: rel.Range, Err: err}
			}
		}
	}
	return nil
}

func (p *Plan) lookup(ref manifest.ResourceRef) (*Node, error) {
	n, ok := p.byID[ref.ID()]
	if !ok {
		return nil, &InternalError{Message: "edge endpoint missing from graph", ID: ref.ID()}
	}
	return n, nil
}
