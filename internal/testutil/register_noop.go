package testutil

import (
	"context"

	"github.com/specialistvlad/ppcatalog/internal/registry"
	"github.com/specialistvlad/ppcatalog/internal/resource"
)

// NoOpTypeName is the type registered by NoOpModule.
const NoOpTypeName = "Noop"

// NoOpModule registers a "Noop" resource kind whose Ensure does nothing.
// It lets tests exercise a registry beyond the built-in kinds.
type NoOpModule struct{}

func (m *NoOpModule) Register(r *registry.Registry) {
	r.Register(NoOpTypeName, func(title string) resource.Resource {
		return &noop{Base: resource.NewBase(NoOpTypeName, title)}
	})
}

type noop struct {
	resource.Base
}

func (n *noop) Ensure(context.Context, resource.Ensure) error { return nil }
