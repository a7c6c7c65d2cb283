// Package foobar provides the namespaced Foo::Bar resource kind, used to
// exercise qualified type names.
package foobar

import (
	"context"

	"github.com/specialistvlad/ppcatalog/internal/registry"
	"github.com/specialistvlad/ppcatalog/internal/resource"
)

// TypeName is the canonical type of Foo::Bar resources.
const TypeName = "Foo::Bar"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the Foo::Bar constructor.
func (m *Module) Register(r *registry.Registry) {
	r.Register(TypeName, New)
}

// FooBar is a namespaced resource with no behaviour of its own.
type FooBar struct {
	resource.Base
}

// New returns a FooBar with the given title.
func New(title string) resource.Resource {
	return &FooBar{Base: resource.NewBase(TypeName, title)}
}

// Ensure logs the requested state.
func (f *FooBar) Ensure(ctx context.Context, state resource.Ensure) error {
	return f.LogEnsure(ctx, state)
}
