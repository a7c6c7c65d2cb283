package foobar

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

	res, err := r.Construct("foo::bar", "x")
	require.NoError(t, err)
	assert.Equal(t, "Foo::Bar", res.Type())
	assert.Equal(t, "Foo::Bar[x]", res.ID())
	assert.IsType(t, &FooBar{}, res)

	// Only the qualified name is registered.
	_, err = r.Construct("foo", "x")
	var unknown *registry.UnknownTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Foo", unknown.Type)
}

func TestEnsure(t *testing.T) {
	var buf bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	require.NoError(t, New("x").Ensure(ctx, resource.Present))
	assert.Contains(t, buf.String(), "state=present")
}
