package nodeid

// Address is the structured representation of a unique resource identifier.
type Address struct {
	// Type is the canonical resource type name, e.g. "File" or "Foo::Bar".
	Type string
	// Title is the display form of the resource title.
	Title string
}

// New creates an Address with a canonicalized type name.
func New(typeName, title string) Address {
	return Address{Type: CanonicalType(typeName), Title: title}
}
