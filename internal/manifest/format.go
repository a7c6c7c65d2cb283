// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package manifest

import (
	"strings"
)

// String formats the manifest as source text, one expression per line group.
// Parsing the result yields a structurally equal manifest.
func (m *Manifest) String() string {
	var sb strings.Builder
	for _, expr := range m.Exprs {
		sb.WriteString(expr.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (r *Resource) String() string {
	var sb strings.Builder
	sb.WriteString(r.Type)
	sb.WriteString(" { ")
	sb.WriteString(Quote(r.Title))
	sb.WriteString(":")
	if len(r.Attributes) == 0 {
		sb.WriteString(" }")
		return sb.String()
	}
	sb.WriteByte('\n')
	for _, attr := range r.Attributes {
		sb.WriteString("  ")
		sb.WriteString(attr.Name)
		sb.WriteString(" => ")
		sb.WriteString(Quote(attr.Value))
		sb.WriteString(",\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (r *Relation) String() string {
	var sb strings.Builder
	writeRefList(&sb, r.From)
	sb.WriteByte(' ')
	sb.WriteString(r.Op.String())
	sb.WriteByte(' ')
	writeRefList(&sb, r.To)
	return sb.String()
}

func writeRefList(sb *strings.Builder, refs []ResourceRef) {
	sb.WriteByte('[')
	for i, ref := range refs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(ref.Type)
		sb.WriteByte('[')
		sb.WriteString(Quote(ref.Title))
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
}

// Quote renders s as a string literal. Plain literals are single-quoted;
// strings with variables, or containing a single quote, are double-quoted.
// The grammar has no escapes, so a literal holding both quote characters
// cannot be represented and is emitted single-quoted as is.
func Quote(s PuppetString) string {
	text := s.String()
	if !s.HasVariables() && !strings.Contains(text, "'") {
		return "'" + text + "'"
	}
	if s.HasVariables() || !strings.Contains(text, `"`) {
		return `"` + text + `"`
	}
	return "'" + text + "'"
}
