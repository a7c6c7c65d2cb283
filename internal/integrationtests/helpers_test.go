package integration_tests

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/specialistvlad/ppcatalog/internal/app"
	"github.com/specialistvlad/ppcatalog/internal/testutil"
	"github.com/stretchr/testify/require"
)

// harnessResult holds the outcomes of an integration test run.
type harnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// runIntegrationTest writes files to a temporary directory and runs the
// application over it with the given output format.
func runIntegrationTest(t *testing.T, format string, files map[string]string) *harnessResult {
	t.Helper()
	root := testutil.WriteManifests(t, files)

	cfg, err := app.NewConfig(app.Config{
		ManifestPaths: []string{root},
		Format:        format,
		LogLevel:      "debug",
		LogFormat:     "text",
	})
	require.NoError(t, err)

	var out bytes.Buffer
	logBuffer := &testutil.SafeBuffer{}
	a := app.NewApp(&out, logBuffer, cfg)
	runErr := a.Run(context.Background())

	if os.Getenv("PPCATALOG_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &harnessResult{
		Output:    out.String(),
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       a,
	}
}
