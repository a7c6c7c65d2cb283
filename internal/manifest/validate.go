// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package manifest

// Validate checks cross references in two passes. The first pass collects
// every declaration, so a relation may name a resource declared after it.
// The second pass scans relations in source order and fails on the first
// reference that matches no declaration.
//
// Two declarations with the same identifier are rejected with a
// *DuplicateDeclarationError.
func Validate(m *Manifest) error {
	declared, err := collectDeclarations(m)
	if err != nil {
		return err
	}
	return validateReferences(m, declared)
}

// collectDeclarations indexes declarations by canonical id.
func collectDeclarations(m *Manifest) (map[string]*Resource, error) {
	declared := make(map[string]*Resource)
	for _, res := range m.Resources() {
		id := res.ID()
		if first, exists := declared[id]; exists {
			return nil, &DuplicateDeclarationError{ID: id, First: first.Range, Second: res.Range}
		}
		declared[id] = res
	}
	return declared, nil
}

func validateReferences(m *Manifest, declared map[string]*Resource) error {
	for _, rel := range m.Relations() {
		for _, side := range [][]ResourceRef{rel.From, rel.To} {
			for _, ref := range side {
				res, ok := declared[ref.ID()]
				if !ok || !res.Ref().Matches(ref) {
					return &UndefinedReferenceError{Ref: ref}
				}
			}
		}
	}
	return nil
}
