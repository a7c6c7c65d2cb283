// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package manifest is the front-end of the catalog compiler. It turns manifest
// source text into an ordered, validated sequence of expressions.
//
// # Pipeline
//
// Compilation of a single source goes through three explicit phases:
//
//  1. Grammar (lexer.go, parser.go): the source is tokenized and recognized
//     into a raw parse tree of declarations and relation chains. Any input
//     that does not match the grammar fails with a *SyntaxError carrying an
//     hcl.Diagnostic that points at the offending token.
//
//  2. AST builder (builder.go): the parse tree is converted into a Manifest,
//     canonicalizing type names and decomposing every relation chain into
//     one Relation per adjacent pair of reference groups.
//
//  3. Reference validator (validate.go): all declarations are collected
//     first, then every reference used in a relation is checked against
//     them. Declaration order in the source is irrelevant.
//
// ParseFile runs phases 1 and 2 only, so several files can be merged before
// they are validated as one unit. Parse runs all three.
//
// # Grammar
//
//	manifest    = { declaration | chain } EOF
//	declaration = type "{" string ":" [ attribute { "," attribute } [ "," ] ] "}"
//	attribute   = name "=>" ( string | name | number )
//	chain       = refarg op refarg { op refarg }
//	refarg      = type "[" string "]" | "[" refarg { "," refarg } [ "," ] "]"
//	op          = "->" | "<-" | "~>" | "<~"
//	type        = name { "::" name }
//
// Single-quoted strings are verbatim. Double-quoted strings record `${name}`
// placeholders as variable segments; variables are never resolved here.
// Comments start with `#` and run to the end of the line, or are enclosed in
// `/*` and `*/`.
package manifest
