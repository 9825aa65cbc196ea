package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/pathgrid/internal/status"
)

func writeGraphFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const diamondGraph = `
node "A" {
  links = ["B", "C"]
}

node "B" {
  links = ["D"]
}

node "C" {
  links = ["D"]
}

node "D" {}
`

func TestRun(t *testing.T) {
	t.Run("prints the route for a resolvable query", func(t *testing.T) {
		path := writeGraphFile(t, diamondGraph)
		var out, errOut bytes.Buffer

		err := run(&out, &errOut, []string{"-source", "A", "-destination", "D", path})
		require.NoError(t, err)
		assert.Equal(t, "[\"A\",\"B\",\"D\"]\n", out.String())
	})

	t.Run("no route prints nothing and succeeds", func(t *testing.T) {
		path := writeGraphFile(t, diamondGraph)
		var out, errOut bytes.Buffer

		err := run(&out, &errOut, []string{"-source", "D", "-destination", "A", path})
		require.NoError(t, err)
		assert.Empty(t, out.String())
	})

	t.Run("unresolved endpoint is a bad argument", func(t *testing.T) {
		path := writeGraphFile(t, diamondGraph)
		var out, errOut bytes.Buffer

		err := run(&out, &errOut, []string{"-source", "A", "-destination", "Z", path})
		require.Error(t, err)
		code, ok := status.CodeOf(err)
		require.True(t, ok)
		assert.Equal(t, status.BadArgument, code)
		assert.Empty(t, out.String())
	})

	t.Run("help exits cleanly", func(t *testing.T) {
		var out, errOut bytes.Buffer
		assert.NoError(t, run(&out, &errOut, []string{"-h"}))
	})
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 2, exitCode(status.ErrBadArgument))
	assert.Equal(t, 3, exitCode(status.ErrNoMemory))
	assert.Equal(t, 4, exitCode(status.ErrUnsupported))
	assert.Equal(t, 1, exitCode(assert.AnError))
}
