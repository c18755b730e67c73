package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/internal/config"
)

var testdata = filepath.Join("..", "..", "mazefile", "testdata")

func isolate(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvMaze, config.EnvStrategies, config.EnvLogLevel,
		config.EnvParallel, config.EnvMaxSteps, config.EnvTimeout} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Setenv(config.EnvFile, filepath.Join(t.TempDir(), "missing.env"))
}

func TestRun_File(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{filepath.Join(testdata, "open3x3.txt")}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	assert.Equal(t,
		"BFS: Path: EESS Cost = 44\n"+
			"DFS: Path: SSEE Cost = 44\n"+
			"UCS: Path: ESES Cost = 34\n"+
			"\n",
		stdout.String())
}

// TestRun_Prompt reads the filename from stdin like the interactive tool.
func TestRun_Prompt(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer
	in := strings.NewReader(filepath.Join(testdata, "enclosed.txt") + "\n")

	code := run([]string{"-parallel=false"}, in, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	assert.Equal(t,
		"Enter filename:\n"+
			"BFS: No solution\n"+
			"DFS: No solution\n"+
			"UCS: No solution\n"+
			"\n",
		stdout.String())
}

func TestRun_SubsetAndDebugLogging(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-strategies", "ucs", "-log-level", "debug", filepath.Join(testdata, "open3x3.txt")},
		strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	assert.Equal(t, "UCS: Path: ESES Cost = 34\n\n", stdout.String())
	assert.Contains(t, stderr.String(), "search finished")
	assert.Contains(t, stderr.String(), "strategy=UCS")
	assert.Contains(t, stderr.String(), "run=")
}

func TestRun_Failures(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{filepath.Join(t.TempDir(), "nope.txt")}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, exitFailed, code)
	assert.Contains(t, stderr.String(), "loading maze")

	stderr.Reset()
	code = run([]string{"-max-steps", "1", filepath.Join(testdata, "open3x3.txt")}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, exitFailed, code)
	assert.Contains(t, stderr.String(), "step limit")

	code = run([]string{"-strategies", "astar"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, exitUsage, code)

	code = run(nil, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, exitUsage, code, "empty stdin at the prompt")

	code = run([]string{"-h"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, exitOK, code)
}
