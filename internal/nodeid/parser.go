package nodeid

import (
	"fmt"
	"regexp"
	"strings"
)

// typeRegex matches a qualified type name, e.g. `file` or `foo::bar`.
var typeRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(?:::[A-Za-z_][A-Za-z0-9_]*)*$`)

// ValidType reports whether name is a syntactically valid type name.
func ValidType(name string) bool {
	return typeRegex.MatchString(name)
}

// Parse creates a new Address by parsing its `Type[title]` representation.
// The type name is canonicalized.
func Parse(rawID string) (*Address, error) {
	if rawID == "" {
		return nil, fmt.Errorf("identifier cannot be empty")
	}

	open := strings.IndexByte(rawID, '[')
	if open < 0 {
		return nil, fmt.Errorf("identifier %q has no title: expected Type[title]", rawID)
	}
	if !strings.HasSuffix(rawID, "]") {
		return nil, fmt.Errorf("identifier %q is not terminated by ']'", rawID)
	}

	typeName := rawID[:open]
	if !ValidType(typeName) {
		return nil, fmt.Errorf("invalid type name: %q", typeName)
	}

	addr := New(typeName, rawID[open+1:len(rawID)-1])
	return &addr, nil
}
