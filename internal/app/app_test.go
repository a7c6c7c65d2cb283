package app

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/specialistvlad/ppcatalog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const siteManifest = `
	file { "/tmp/one": }
	file { "/tmp/two": }
	service { "nginx": }
	File["/tmp/one"] -> File["/tmp/two"] ~> Service["nginx"]
`

// runApp writes files to a temporary directory and runs the app on it.
func runApp(t *testing.T, format string, files map[string]string) (string, *testutil.SafeBuffer, *App, error) {
	t.Helper()
	root := testutil.WriteManifests(t, files)

	cfg, err := NewConfig(Config{
		ManifestPaths: []string{root},
		Format:        format,
		LogLevel:      "debug",
		LogFormat:     "text",
	})
	require.NoError(t, err)

	var out bytes.Buffer
	logs := &testutil.SafeBuffer{}
	a := NewApp(&out, logs, cfg)
	err = a.Run(context.Background())
	return out.String(), logs, a, err
}

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(Config{ManifestPaths: []string{"site.pp"}})
	require.NoError(t, err)
	assert.Equal(t, FormatText, cfg.Format)

	_, err = NewConfig(Config{})
	assert.ErrorContains(t, err, "at least one manifest path is required")

	_, err = NewConfig(Config{ManifestPaths: []string{"x"}, Format: "svg"})
	assert.ErrorContains(t, err, `invalid format "svg"`)
}

func TestNewApp_RegistersCoreModules(t *testing.T) {
	cfg, err := NewConfig(Config{ManifestPaths: []string{"x"}})
	require.NoError(t, err)

	a := NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg)
	assert.Equal(t, []string{"Exec", "File", "Foo::Bar", "Service"}, a.Registry().Types())

	a = NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg, &testutil.NoOpModule{})
	assert.Equal(t, []string{testutil.NoOpTypeName}, a.Registry().Types())
}

func TestRun_Formats(t *testing.T) {
	files := map[string]string{"site.pp": siteManifest}

	t.Run("text", func(t *testing.T) {
		out, logs, _, err := runApp(t, FormatText, files)
		require.NoError(t, err)
		assert.Equal(t, "# Execution plan debug:\n"+
			"# File[/tmp/one] (-> File[/tmp/two])\n"+
			"# File[/tmp/two] (~> Service[nginx])\n"+
			"# Service[nginx]\n", out)
		assert.Contains(t, logs.String(), "Plan built.")
	})

	t.Run("dot", func(t *testing.T) {
		out, _, _, err := runApp(t, FormatDOT, files)
		require.NoError(t, err)
		assert.Contains(t, out, "digraph {\n")
		assert.Contains(t, out, `1 -> 2 [ label = "~>" ]`)
	})

	t.Run("json", func(t *testing.T) {
		out, _, _, err := runApp(t, FormatJSON, files)
		require.NoError(t, err)
		assert.Contains(t, out, `"nodes":3`)
		assert.Contains(t, out, `"edges":2`)
	})

	t.Run("yaml", func(t *testing.T) {
		out, _, _, err := runApp(t, FormatYAML, files)
		require.NoError(t, err)
		assert.Contains(t, out, "nodes: 3\n")
	})

	t.Run("manifest", func(t *testing.T) {
		out, _, _, err := runApp(t, FormatManifest, files)
		require.NoError(t, err)
		assert.Contains(t, out, "File { '/tmp/one': }\n")
		assert.Contains(t, out, "[File['/tmp/two']] ~> [Service['nginx']]\n")
	})
}

func TestRun_WriteDiagnostics(t *testing.T) {
	_, _, a, err := runApp(t, FormatText, map[string]string{
		"site.pp": `
			file { "/tmp/one": }
			File["/tmp/missing"] -> File["/tmp/one"]
		`,
	})
	require.Error(t, err)

	var diag bytes.Buffer
	require.True(t, a.WriteDiagnostics(&diag, err))
	assert.Contains(t, diag.String(), "Undefined resource reference")
	assert.Contains(t, diag.String(), "site.pp line 2")
	assert.Contains(t, diag.String(), `File["/tmp/missing"]`)
}

func TestRun_WriteDiagnosticsForPlanErrors(t *testing.T) {
	testCases := map[string]struct {
		src         string
		wantSummary string
		wantLine    string
		wantDetail  string
	}{
		"unknown type": {
			src:         "file { 'a': }\npackage { 'nginx': }\n",
			wantSummary: "Error: Unknown resource type",
			wantLine:    "site.pp line 2",
			wantDetail:  "unknown resource type 'Package'",
		},
		"cycle": {
			src:         "exec { 'a': }\nexec { 'b': }\nExec['a'] -> Exec['b']\nExec['b'] -> Exec['a']\n",
			wantSummary: "Error: Dependency cycle",
			wantLine:    "site.pp line 4",
			wantDetail:  "edge Exec[b] -> Exec[a] would create a cycle",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			_, _, a, err := runApp(t, FormatText, map[string]string{"site.pp": tc.src})
			require.Error(t, err)

			var diag bytes.Buffer
			require.True(t, a.WriteDiagnostics(&diag, err))
			assert.Contains(t, diag.String(), tc.wantSummary)
			assert.Contains(t, diag.String(), tc.wantLine)
			assert.Contains(t, diag.String(), tc.wantDetail)
		})
	}
}

func TestWriteDiagnostics_NonDiagnosticError(t *testing.T) {
	_, _, a, err := runApp(t, FormatText, map[string]string{"site.pp": `file { 'a': }`})
	require.NoError(t, err)
	assert.False(t, a.WriteDiagnostics(&bytes.Buffer{}, errors.New("disk on fire")))
}
