// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package manifest

// DefaultFilename labels sources that do not come from a file.
const DefaultFilename = "<input>"

// ParseFile recognizes src and builds its expressions without validating
// references. Use it to parse several files that are validated together.
func ParseFile(filename string, src []byte) (*Manifest, error) {
	nodes, err := parseSyntax(filename, src)
	if err != nil {
		return nil, err
	}
	return buildManifest(nodes)
}

// Parse recognizes, builds and validates a complete manifest.
func Parse(filename string, src []byte) (*Manifest, error) {
	m, err := ParseFile(filename, src)
	if err != nil {
		return nil, err
	}
	if err := Validate(m); err != nil {
		return nil, err
	}
	return m, nil
}

// ParseString is Parse for in-memory text.
func ParseString(text string) (*Manifest, error) {
	return Parse(DefaultFilename, []byte(text))
}
