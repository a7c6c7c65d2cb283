package nodeid

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// typeSeparator joins the segments of a qualified type name.
const typeSeparator = "::"

// String serializes the Address into its canonical `Type[title]` representation.
func (a *Address) String() string {
	if a == nil {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(a.Type) + len(a.Title) + 2)
	sb.WriteString(a.Type)
	sb.WriteByte('[')
	sb.WriteString(a.Title)
	sb.WriteByte(']')
	return sb.String()
}

// Equal checks for equality between two Address pointers.
func (a *Address) Equal(other *Address) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.Type == other.Type && a.Title == other.Title
}

// CanonicalType upper-cases the first character of every `::` segment of a
// type name. Only leading characters are touched: `foo::barBaz` becomes
// `Foo::BarBaz`.
func CanonicalType(typeName string) string {
	segments := strings.Split(typeName, typeSeparator)
	for i, segment := range segments {
		r, size := utf8.DecodeRuneInString(segment)
		if size == 0 || r == utf8.RuneError {
			continue
		}
		segments[i] = string(unicode.ToUpper(r)) + segment[size:]
	}
	return strings.Join(segments, typeSeparator)
}
