package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/specialistvlad/ppcatalog/internal/nodeid"
	"github.com/specialistvlad/ppcatalog/internal/resource"
)

// Module is the interface that all resource modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Constructor builds a resource of one kind from its title.
type Constructor func(title string) resource.Resource

// Registry holds the constructors for every known resource type.
type Registry struct {
	constructors map[string]Constructor
}

// New creates and initializes an empty Registry.
func New() *Registry {
	return &Registry{
		constructors: make(map[string]Constructor),
	}
}

// Register binds a constructor to a type name. The name is canonicalised
// first, so "foo::bar" and "Foo::Bar" are the same type.
func (r *Registry) Register(typeName string, ctor Constructor) {
	if !nodeid.ValidType(typeName) {
		panic(fmt.Sprintf("invalid resource type name '%s'", typeName))
	}
	if ctor == nil {
		panic(fmt.Sprintf("nil constructor for resource type '%s'", typeName))
	}
	canonical := nodeid.CanonicalType(typeName)
	if _, exists := r.constructors[canonical]; exists {
		panic(fmt.Sprintf("resource type '%s' already registered", canonical))
	}
	slog.Debug("Registering resource type.", "type", canonical)
	r.constructors[canonical] = ctor
}

// RegisterModules calls Register on each module in order.
func (r *Registry) RegisterModules(modules ...Module) {
	for _, m := range modules {
		m.Register(r)
	}
}

// Construct builds the resource for a declaration. An unregistered type
// yields an *UnknownTypeError.
func (r *Registry) Construct(typeName, title string) (resource.Resource, error) {
	canonical := nodeid.CanonicalType(typeName)
	ctor, ok := r.constructors[canonical]
	if !ok {
		return nil, &UnknownTypeError{Type: canonical, Known: r.Types()}
	}
	return ctor(title), nil
}

// Types returns the registered canonical type names, sorted.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.constructors))
	for t := range r.constructors {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// UnknownTypeError is returned when a declaration names a type with no
// registered constructor.
type UnknownTypeError struct {
	Type  string
	Known []string
}

func (e *UnknownTypeError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown resource type '%s'", e.Type)
	}
	return fmt.Sprintf("unknown resource type '%s' (known types: %v)", e.Type, e.Known)
}
