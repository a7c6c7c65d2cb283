// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package manifest

import (
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/ppcatalog/internal/nodeid"
)

// SegmentKind distinguishes literal text from variable placeholders.
type SegmentKind int

const (
	// SegmentLiteral is verbatim text.
	SegmentLiteral SegmentKind = iota
	// SegmentVariable is an unresolved `${name}` placeholder.
	SegmentVariable
)

// Segment is one piece of a PuppetString.
type Segment struct {
	Kind SegmentKind
	// Text is the literal text, or the variable name without `${` and `}`.
	Text string
}

// Lit returns a literal segment.
func Lit(text string) Segment { return Segment{Kind: SegmentLiteral, Text: text} }

// Var returns a variable placeholder segment.
func Var(name string) Segment { return Segment{Kind: SegmentVariable, Text: name} }

// String renders the segment the way it appears inside a double-quoted string.
func (s Segment) String() string {
	if s.Kind == SegmentVariable {
		return "${" + s.Text + "}"
	}
	return s.Text
}

// PuppetString is an ordered sequence of literal and variable segments.
//
// Construct values with NewString or Literal: they drop empty literals and
// merge adjacent literal runs, which keeps equality purely structural.
type PuppetString struct {
	Segments []Segment
}

// NewString builds a normalized PuppetString from segments.
func NewString(segments ...Segment) PuppetString {
	var out []Segment
	for _, seg := range segments {
		if seg.Kind == SegmentLiteral {
			if seg.Text == "" {
				continue
			}
			if n := len(out); n > 0 && out[n-1].Kind == SegmentLiteral {
				out[n-1].Text += seg.Text
				continue
			}
		}
		out = append(out, seg)
	}
	return PuppetString{Segments: out}
}

// Literal builds a PuppetString holding a single literal.
func Literal(text string) PuppetString {
	return NewString(Lit(text))
}

// String renders the string with variables shown as `${name}`.
func (p PuppetString) String() string {
	var sb strings.Builder
	for _, seg := range p.Segments {
		sb.WriteString(seg.String())
	}
	return sb.String()
}

// Equal reports whether both strings have exactly the same segments.
func (p PuppetString) Equal(other PuppetString) bool {
	if len(p.Segments) != len(other.Segments) {
		return false
	}
	for i := range p.Segments {
		if p.Segments[i] != other.Segments[i] {
			return false
		}
	}
	return true
}

// Key returns a string that is equal for two PuppetStrings iff Equal is true.
// Unlike String, it never confuses a literal `${x}` with a variable.
func (p PuppetString) Key() string {
	var sb strings.Builder
	for _, seg := range p.Segments {
		if seg.Kind == SegmentVariable {
			sb.WriteByte('v')
		} else {
			sb.WriteByte('l')
		}
		sb.WriteString(strconv.Itoa(len(seg.Text)))
		sb.WriteByte(':')
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

// HasVariables reports whether any segment is a placeholder.
func (p PuppetString) HasVariables() bool {
	for _, seg := range p.Segments {
		if seg.Kind == SegmentVariable {
			return true
		}
	}
	return false
}


// ResourceRef identifies a resource by canonical type and title.
type ResourceRef struct {
	Type  string
	Title PuppetString
	Range hcl.Range
}

// Address returns the structured identifier of the referenced resource.
func (r ResourceRef) Address() nodeid.Address {
	return nodeid.Address{Type: r.Type, Title: r.Title.String()}
}

// ID returns the canonical `Type[title]` identifier.
func (r ResourceRef) ID() string {
	addr := r.Address()
	return addr.String()
}

// Matches reports whether both refs name the same resource structurally.
func (r ResourceRef) Matches(other ResourceRef) bool {
	return r.Type == other.Type && r.Title.Equal(other.Title)
}

func (r ResourceRef) String() string { return r.ID() }

// Attribute is a name/value pair attached to a resource declaration.
type Attribute struct {
	Name  string
	Value PuppetString
	Range hcl.Range
}

// Expr is either a *Resource or a *Relation.
type Expr interface {
	// SourceRange returns the location of the expression in its source.
	SourceRange() hcl.Range
	String() string

	isExpr()
}

// Resource is a resource declaration.
type Resource struct {
	Type       string
	Title      PuppetString
	Attributes []Attribute
	Range      hcl.Range
}

// Ref returns a reference to this declaration.
func (r *Resource) Ref() ResourceRef {
	return ResourceRef{Type: r.Type, Title: r.Title, Range: r.Range}
}

// Address returns the structured identifier of the declaration.
func (r *Resource) Address() nodeid.Address {
	return r.Ref().Address()
}

// ID returns the canonical `Type[title]` identifier.
func (r *Resource) ID() string {
	return r.Ref().ID()
}

// Attribute looks up an attribute value by name.
func (r *Resource) Attribute(name string) (PuppetString, bool) {
	for _, attr := range r.Attributes {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return PuppetString{}, false
}

func (r *Resource) SourceRange() hcl.Range { return r.Range }
func (*Resource) isExpr()                  {}

// Relation is one ordering constraint between two groups of references.
type Relation struct {
	From  []ResourceRef
	To    []ResourceRef
	Op    RelationOp
	Range hcl.Range
}

func (r *Relation) SourceRange() hcl.Range { return r.Range }
func (*Relation) isExpr()                  {}

// Manifest is the source-ordered sequence of expressions of one compilation unit.
type Manifest struct {
	Exprs []Expr
}

// Resources returns the declarations in source order.
func (m *Manifest) Resources() []*Resource {
	var out []*Resource
	for _, expr := range m.Exprs {
		if res, ok := expr.(*Resource); ok {
			out = append(out, res)
		}
	}
	return out
}

// Relations returns the relation statements in source order.
func (m *Manifest) Relations() []*Relation {
	var out []*Relation
	for _, expr := range m.Exprs {
		if rel, ok := expr.(*Relation); ok {
			out = append(out, rel)
		}
	}
	return out
}

// Merge concatenates manifests in argument order. Nil manifests are skipped.
func Merge(manifests ...*Manifest) *Manifest {
	merged := &Manifest{}
	for _, m := range manifests {
		if m == nil {
			continue
		}
		merged.Exprs = append(merged.Exprs, m.Exprs...)
	}
	return merged
}
