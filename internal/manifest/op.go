// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package manifest

import "fmt"

// RelationOp is one of the four chaining arrows.
type RelationOp int

const (
	// OpProvide is `->`: the left side is applied before the right side.
	OpProvide RelationOp = iota
	// OpRequire is `<-`: the right side is applied before the left side.
	OpRequire
	// OpNotify is `~>`: like OpProvide, and the right side reacts to changes.
	OpNotify
	// OpSubscribe is `<~`: like OpRequire, and the left side reacts to changes.
	OpSubscribe
)

var opSymbols = map[RelationOp]string{
	OpProvide:   "->",
	OpRequire:   "<-",
	OpNotify:    "~>",
	OpSubscribe: "<~",
}

// ParseRelationOp maps an arrow symbol to its operator.
func ParseRelationOp(symbol string) (RelationOp, error) {
	for op, s := range opSymbols {
		if s == symbol {
			return op, nil
		}
	}
	return 0, fmt.Errorf("invalid relation operator: %q", symbol)
}

// String returns the arrow symbol.
func (op RelationOp) String() string {
	if s, ok := opSymbols[op]; ok {
		return s
	}
	return fmt.Sprintf("RelationOp(%d)", int(op))
}

// Reversed reports whether the arrow points from the dependent to its
// dependency, so the sides must be swapped to get the edge direction.
func (op RelationOp) Reversed() bool {
	return op == OpRequire || op == OpSubscribe
}

// Notifies reports whether the dependent must react to changes.
func (op RelationOp) Notifies() bool {
	return op == OpNotify || op == OpSubscribe
}

// Direction returns the sides of a relation in edge order: the first result
// must be applied before the second.
func (r *Relation) Direction() (before, after []ResourceRef) {
	if r.Op.Reversed() {
		return r.To, r.From
	}
	return r.From, r.To
}
