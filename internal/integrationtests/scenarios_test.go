package integration_tests

import (
	"errors"
	"testing"

	"github.com/specialistvlad/ppcatalog/internal/app"
	"github.com/specialistvlad/ppcatalog/internal/dag"
	"github.com/specialistvlad/ppcatalog/internal/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_SingleResource(t *testing.T) {
	// --- Act ---
	result := runIntegrationTest(t, app.FormatText, map[string]string{
		"site.pp": `file { "/tmp/one": }`,
	})

	// --- Assert ---
	require.NoError(t, result.Err)
	assert.Equal(t, "# Execution plan debug:\n# File[/tmp/one]\n", result.Output)
	assert.Contains(t, result.LogOutput, "nodes=1 edges=0")
}

func TestScenario_FileBeforeService(t *testing.T) {
	result := runIntegrationTest(t, app.FormatText, map[string]string{
		"site.pp": `
			file { "/tmp/one": }
			service { "nginx": }
			File["/tmp/one"] -> Service["nginx"]
		`,
	})

	require.NoError(t, result.Err)
	assert.Equal(t, "# Execution plan debug:\n"+
		"# File[/tmp/one] (-> Service[nginx])\n"+
		"# Service[nginx]\n", result.Output)
}

func TestScenario_ChainWithNotify(t *testing.T) {
	result := runIntegrationTest(t, app.FormatDOT, map[string]string{
		"site.pp": `
			file { "/tmp/one": }
			file { "/tmp/two": }
			service { "nginx": }
			File["/tmp/one"] -> File["/tmp/two"] ~> Service["nginx"]
		`,
	})

	require.NoError(t, result.Err)
	assert.Equal(t, `digraph {
    0 [ label = "File[/tmp/one]" ]
    1 [ label = "File[/tmp/two]" ]
    2 [ label = "Service[nginx]" ]
    0 -> 1 [ label = "->" ]
    1 -> 2 [ label = "~>" ]
}
`, result.Output)
}

func TestScenario_UndefinedReference(t *testing.T) {
	result := runIntegrationTest(t, app.FormatText, map[string]string{
		"site.pp": `
			file { "/tmp/one": }
			File["/tmp/missing"] -> Service["nginx"]
		`,
	})

	var undefined *manifest.UndefinedReferenceError
	require.True(t, errors.As(result.Err, &undefined), "expected UndefinedReferenceError, got %v", result.Err)
	assert.Contains(t, result.Err.Error(), "/tmp/missing")
	assert.Empty(t, result.Output, "no plan may be written")
}

func TestScenario_CycleAbortsPlan(t *testing.T) {
	result := runIntegrationTest(t, app.FormatText, map[string]string{
		"site.pp": `
			exec { 'a': }
			exec { 'b': }
			exec { 'c': }
			Exec['a'] -> Exec['b']
			Exec['b'] -> Exec['c']
			Exec['c'] -> Exec['a']
		`,
	})

	cycleErr, ok := dag.AsCycleError(result.Err)
	require.True(t, ok, "expected CycleError, got %v", result.Err)
	assert.Equal(t, "Exec[c]", cycleErr.From)
	assert.Equal(t, "Exec[a]", cycleErr.To)
	assert.Empty(t, result.Output)
	assert.NotContains(t, result.LogOutput, "Plan built.")
}
