package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/ppcatalog/internal/ctxlog"
	"github.com/specialistvlad/ppcatalog/internal/engine"
	"github.com/specialistvlad/ppcatalog/internal/registry"
	"github.com/specialistvlad/ppcatalog/internal/report"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	// sources holds the loaded manifest files, kept for diagnostics.
	sources []engine.Source
}

// NewApp is the constructor for the main application. Rendered output goes
// to outW and logs to logW. Without explicit modules the built-in resource
// kinds are registered.
func NewApp(outW, logW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = engine.CoreModules()
	}
	reg := registry.New()
	reg.RegisterModules(modules...)
	logger.Debug("All resource modules registered.", "count", len(modules), "types", reg.Types())

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Run loads and compiles the configured manifests and writes the plan in the
// configured format.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "paths", a.config.ManifestPaths, "format", a.config.Format)

	sources, err := engine.LoadSources(ctx, a.config.ManifestPaths...)
	if err != nil {
		return err
	}
	a.sources = sources

	result, err := engine.CompileSources(ctx, a.registry, sources)
	if err != nil {
		return err
	}

	if err := a.render(result); err != nil {
		return fmt.Errorf("failed to write %s output: %w", a.config.Format, err)
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) render(result *engine.Result) error {
	switch a.config.Format {
	case FormatDOT:
		_, err := io.WriteString(a.outW, result.Plan.Visualize())
		return err
	case FormatManifest:
		_, err := io.WriteString(a.outW, result.Manifest.String())
		return err
	}

	rep, err := report.New(result.Plan)
	if err != nil {
		return err
	}

	var data []byte
	switch a.config.Format {
	case FormatJSON:
		data, err = rep.JSON()
		if err == nil {
			data = append(data, '\n')
		}
	case FormatYAML:
		data, err = rep.YAML()
	default:
		return rep.WriteText(a.outW)
	}
	if err != nil {
		return err
	}
	_, err = a.outW.Write(data)
	return err
}

// diagnoser is implemented by errors that carry source-located diagnostics.
type diagnoser interface {
	Diagnostics() hcl.Diagnostics
}

// WriteDiagnostics renders err with source snippets if it carries
// diagnostics, and reports whether it did.
func (a *App) WriteDiagnostics(w io.Writer, err error) bool {
	var d diagnoser
	if !errors.As(err, &d) {
		return false
	}

	files := make(map[string]*hcl.File, len(a.sources))
	for _, src := range a.sources {
		files[src.Filename] = &hcl.File{Bytes: src.Bytes}
	}
	writer := hcl.NewDiagnosticTextWriter(w, files, 78, false)
	if werr := writer.WriteDiagnostics(d.Diagnostics()); werr != nil {
		a.logger.Error("Failed to write diagnostics.", "error", werr)
		return false
	}
	return true
}
