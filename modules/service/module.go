// Package service provides the Service resource kind.
package service

import (
	"context"

	"github.com/specialistvlad/ppcatalog/internal/registry"
	"github.com/specialistvlad/ppcatalog/internal/resource"
)

// TypeName is the canonical type of service resources.
const TypeName = "Service"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the Service constructor.
func (m *Module) Register(r *registry.Registry) {
	r.Register(TypeName, New)
}

// Service is a system service, identified by name.
type Service struct {
	resource.Base
}

// New returns a Service whose title is the service name.
func New(title string) resource.Resource {
	return &Service{Base: resource.NewBase(TypeName, title)}
}

// Name returns the service name.
func (s *Service) Name() string {
	return s.Title()
}

// Ensure logs the requested state. Present means running, Absent stopped.
func (s *Service) Ensure(ctx context.Context, state resource.Ensure) error {
	return s.LogEnsure(ctx, state)
}
