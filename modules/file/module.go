// Package file provides the File resource kind.
package file

import (
	"context"

	"github.com/specialistvlad/ppcatalog/internal/ctxlog"
	"github.com/specialistvlad/ppcatalog/internal/registry"
	"github.com/specialistvlad/ppcatalog/internal/resource"
)

// TypeName is the canonical type of file resources.
const TypeName = "File"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the File constructor.
func (m *Module) Register(r *registry.Registry) {
	r.Register(TypeName, New)
}

// File is a file on disk, identified by its path.
type File struct {
	resource.Base
}

// New returns a File whose title is the file path.
func New(title string) resource.Resource {
	return &File{Base: resource.NewBase(TypeName, title)}
}

// Path returns the managed path.
func (f *File) Path() string {
	return f.Title()
}

// Ensure logs the requested state. Planning never touches the filesystem.
func (f *File) Ensure(ctx context.Context, state resource.Ensure) error {
	ctxlog.FromContext(ctx).Debug("File ensure requested.", "path", f.Path())
	return f.LogEnsure(ctx, state)
}
