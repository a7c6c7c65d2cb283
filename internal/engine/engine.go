package engine

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/ppcatalog/internal/ctxlog"
	"github.com/specialistvlad/ppcatalog/internal/fsutil"
	"github.com/specialistvlad/ppcatalog/internal/manifest"
	"github.com/specialistvlad/ppcatalog/internal/plan"
	"github.com/specialistvlad/ppcatalog/internal/registry"
	"github.com/specialistvlad/ppcatalog/modules/exec"
	"github.com/specialistvlad/ppcatalog/modules/file"
	"github.com/specialistvlad/ppcatalog/modules/foobar"
	"github.com/specialistvlad/ppcatalog/modules/service"
)

// ManifestExtension is the file extension of manifest files.
const ManifestExtension = ".pp"

// CoreModules returns the built-in resource modules.
func CoreModules() []registry.Module {
	return []registry.Module{
		&file.Module{},
		&exec.Module{},
		&service.Module{},
		&foobar.Module{},
	}
}

// DefaultRegistry returns a registry holding the built-in resource kinds.
func DefaultRegistry() *registry.Registry {
	r := registry.New()
	r.RegisterModules(CoreModules()...)
	return r
}

// Source is one manifest file's contents.
type Source struct {
	Filename string
	Bytes    []byte
}

// Result is a successful compilation.
type Result struct {
	Manifest *manifest.Manifest
	Plan     *plan.Plan
}

// Compile parses, validates and builds a single manifest.
func Compile(ctx context.Context, filename string, src []byte, reg *registry.Registry) (*Result, error) {
	return CompileSources(ctx, reg, []Source{{Filename: filename, Bytes: src}})
}

// CompileSources compiles several manifest files as one. Declarations from
// any file may be referenced from any other.
func CompileSources(ctx context.Context, reg *registry.Registry, sources []Source) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	parsed := make([]*manifest.Manifest, 0, len(sources))
	for _, src := range sources {
		m, err := manifest.ParseFile(src.Filename, src.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", src.Filename, err)
		}
		if len(m.Resources()) == 0 {
			logger.Warn("Manifest declares no resources.", "file", src.Filename)
		}
		logger.Debug("Parsed manifest.", "file", src.Filename, "expressions", len(m.Exprs))
		parsed = append(parsed, m)
	}

	merged := manifest.Merge(parsed...)
	if err := manifest.Validate(merged); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	logger.Debug("Manifest validated.", "resources", len(merged.Resources()), "relations", len(merged.Relations()))

	p, err := plan.Build(ctx, merged, reg)
	if err != nil {
		return nil, fmt.Errorf("failed to build plan: %w", err)
	}
	return &Result{Manifest: merged, Plan: p}, nil
}

// LoadSources resolves each path (a manifest file or a directory of them)
// and reads the files in order.
func LoadSources(ctx context.Context, paths ...string) ([]Source, error) {
	logger := ctxlog.FromContext(ctx)

	var sources []Source
	for _, path := range paths {
		files, err := fsutil.ResolvePath(path, ManifestExtension)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve manifest path '%s': %w", path, err)
		}
		if len(files) == 0 {
			logger.Warn("No manifest files found at the specified path.", "path", path)
		}
		for _, f := range files {
			data, err := os.ReadFile(f)
			if err != nil {
				return nil, fmt.Errorf("failed to read manifest %s: %w", f, err)
			}
			logger.Debug("Loaded manifest file.", "path", f, "bytes", len(data))
			sources = append(sources, Source{Filename: f, Bytes: data})
		}
	}

	logger.Info("Found manifest files to process.", "count", len(sources))
	return sources, nil
}
