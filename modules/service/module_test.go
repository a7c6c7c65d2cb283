package service

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/specialistvlad/ppcatalog/internal/ctxlog"
	"github.com/specialistvlad/ppcatalog/internal/registry"
	"github.com/specialistvlad/ppcatalog/internal/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModule_Register(t *testing.T) {
	r := registry.New()
	(&Module{}).Register(r)
	assert.Equal(t, []string{TypeName}, r.Types())

	res, err := r.Construct("service", "nginx")
	require.NoError(t, err)
	assert.Equal(t, "Service", res.Type())
	assert.IsType(t, &Service{}, res)
	assert.Equal(t, "Service[nginx]", res.ID())
}

func TestEnsure(t *testing.T) {
	var buf bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	require.NoError(t, New("nginx").Ensure(ctx, resource.Present))
	assert.Contains(t, buf.String(), "state=present")
}
