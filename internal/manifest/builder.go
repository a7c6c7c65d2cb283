// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package manifest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/ppcatalog/internal/nodeid"
)

// buildManifest converts the raw parse tree into source-ordered expressions.
func buildManifest(nodes []syntaxNode) (*Manifest, error) {
	m := &Manifest{Exprs: make([]Expr, 0, len(nodes))}
	for _, node := range nodes {
		switch n := node.(type) {
		case *declNode:
			res, err := buildResource(n)
			if err != nil {
				return nil, err
			}
			m.Exprs = append(m.Exprs, res)
		case *chainNode:
			for _, rel := range buildRelations(n) {
				m.Exprs = append(m.Exprs, rel)
			}
		default:
			return nil, fmt.Errorf("internal error: unexpected syntax node %T", node)
		}
	}
	return m, nil
}

func buildResource(n *declNode) (*Resource, error) {
	res := &Resource{
		Type:  nodeid.CanonicalType(n.typeName.Text),
		Title: n.title.Value,
		Range: n.rng,
	}

	seen := make(map[string]hcl.Range, len(n.attrs))
	for _, a := range n.attrs {
		if first, dup := seen[a.name.Text]; dup {
			return nil, newSyntaxError(a.name.Range, "Duplicate attribute",
				fmt.Sprintf("Attribute %q was already set at %s.", a.name.Text, first))
		}
		seen[a.name.Text] = a.name.Range
		res.Attributes = append(res.Attributes, Attribute{
			Name:  a.name.Text,
			Value: attributeValue(a.value),
			Range: hcl.RangeBetween(a.name.Range, a.value.Range),
		})
	}
	return res, nil
}

// attributeValue decodes strings and keeps bare words verbatim.
func attributeValue(tok token) PuppetString {
	if tok.Type == tokenString {
		return tok.Value
	}
	return Literal(tok.Text)
}

// buildRelations decomposes a chain into one relation per adjacent pair of
// groups, each keeping its own operator.
func buildRelations(n *chainNode) []*Relation {
	groups := make([][]ResourceRef, len(n.groups))
	for i, g := range n.groups {
		groups[i] = buildRefs(g)
	}

	relations := make([]*Relation, 0, len(n.ops))
	for i, opTok := range n.ops {
		// The lexer only emits tokenOp for the four arrows.
		op, _ := ParseRelationOp(opTok.Text)
		relations = append(relations, &Relation{
			From:  append([]ResourceRef(nil), groups[i]...),
			To:    append([]ResourceRef(nil), groups[i+1]...),
			Op:    op,
			Range: hcl.RangeBetween(n.groups[i].rng, n.groups[i+1].rng),
		})
	}
	return relations
}

func buildRefs(g refGroup) []ResourceRef {
	refs := make([]ResourceRef, 0, len(g.refs))
	for _, r := range g.refs {
		refs = append(refs, ResourceRef{
			Type:  nodeid.CanonicalType(r.typeName.Text),
			Title: r.title.Value,
			Range: r.rng,
		})
	}
	return refs
}
