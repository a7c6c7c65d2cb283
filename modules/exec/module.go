// Package exec provides the Exec resource kind.
package exec

import (
	"context"

	"github.com/specialistvlad/ppcatalog/internal/registry"
	"github.com/specialistvlad/ppcatalog/internal/resource"
)

// TypeName is the canonical type of exec resources.
const TypeName = "Exec"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the Exec constructor.
func (m *Module) Register(r *registry.Registry) {
	r.Register(TypeName, New)
}

// Exec is a command; its title is the command line.
type Exec struct {
	resource.Base
}

// New returns an Exec whose title is the command line.
func New(title string) resource.Resource {
	return &Exec{Base: resource.NewBase(TypeName, title)}
}

// Command returns the command line.
func (e *Exec) Command() string {
	return e.Title()
}

func (e *Exec) Ensure(ctx context.Context, state resource.Ensure) error {
	return e.LogEnsure(ctx, state)
}
