// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package manifest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// SyntaxError reports input that does not match the manifest grammar.
type SyntaxError struct {
	Diagnostic *hcl.Diagnostic
}

func newSyntaxError(rng hcl.Range, summary, detail string) *SyntaxError {
	return &SyntaxError{Diagnostic: &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   detail,
		Subject:  rng.Ptr(),
	}}
}

func (e *SyntaxError) Error() string {
	return e.Diagnostic.Error()
}

// Range returns the location of the offending input.
func (e *SyntaxError) Range() hcl.Range {
	if e.Diagnostic.Subject == nil {
		return hcl.Range{}
	}
	return *e.Diagnostic.Subject
}

// Diagnostics returns the error in a form hcl diagnostic writers understand.
func (e *SyntaxError) Diagnostics() hcl.Diagnostics {
	return hcl.Diagnostics{e.Diagnostic}
}

// UndefinedReferenceError reports a relation that names an undeclared resource.
type UndefinedReferenceError struct {
	Ref ResourceRef
}

func (e *UndefinedReferenceError) Error() string {
	return fmt.Sprintf("%s: undefined resource reference: %s", e.Ref.Range, e.Ref.ID())
}

// ID returns the canonical identifier that could not be resolved.
func (e *UndefinedReferenceError) ID() string {
	return e.Ref.ID()
}

func (e *UndefinedReferenceError) Diagnostics() hcl.Diagnostics {
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  "Undefined resource reference",
		Detail:   fmt.Sprintf("No resource %s is declared in this manifest.", e.Ref.ID()),
		Subject:  e.Ref.Range.Ptr(),
	}}
}

// DuplicateDeclarationError reports two declarations with the same identifier.
type DuplicateDeclarationError struct {
	ID     string
	First  hcl.Range
	Second hcl.Range
}

func (e *DuplicateDeclarationError) Error() string {
	return fmt.Sprintf("%s: duplicate declaration of %s, first declared at %s", e.Second, e.ID, e.First)
}

func (e *DuplicateDeclarationError) Diagnostics() hcl.Diagnostics {
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  "Duplicate resource declaration",
		Detail:   fmt.Sprintf("%s was already declared at %s.", e.ID, e.First),
		Subject:  e.Second.Ptr(),
	}}
}
