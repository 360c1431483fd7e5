package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestGenerate_YAMLSummary(t *testing.T) {
	out, _, err := run(t, "generate", "--model", "gilbert", "--nodes", "6", "--p", "1", "--seed", "3")
	require.NoError(t, err)

	var rep report
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "gilbert", rep.Model)
	assert.Equal(t, 6, rep.Summary.Nodes)
	assert.Equal(t, 15, rep.Summary.Links)
	assert.Equal(t, 1.0, rep.Summary.Clustering)
	assert.True(t, rep.Summary.Connected)
	assert.Empty(t, rep.Links)
}

func TestGenerate_TextWithLinks(t *testing.T) {
	out, _, err := run(t, "generate", "--model", "ba-forest", "--nodes", "5", "--seed", "1",
		"--format", "text", "--print-links")
	require.NoError(t, err)
	assert.Contains(t, out, "model       ba-forest")
	assert.Contains(t, out, "links       4")
	assert.Contains(t, out, "tree        true")
}

func TestGenerate_ConfigFileAndVerbose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: kregular\nparams:\n  numNodes: 8\n  k: 2\n  seed: 4\n"), 0o600))

	out, errOut, err := run(t, "generate", "--config", path, "--verbose")
	require.NoError(t, err)

	var rep report
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 16, rep.Summary.Links)
	assert.Equal(t, 4, rep.Summary.MinDegree)
	assert.Equal(t, 4, rep.Summary.MaxDegree)
	assert.Contains(t, errOut, "network generated")
}

func TestGenerate_Errors(t *testing.T) {
	_, _, err := run(t, "generate", "--model", "lattice")
	assert.Error(t, err)

	_, _, err = run(t, "generate", "--model", "ws", "--nodes", "10", "--degree", "2", "--p", "1")
	assert.Error(t, err)

	_, _, err = run(t, "generate", "--format", "json")
	assert.Error(t, err)
}

func TestModels_ListsRegistry(t *testing.T) {
	out, _, err := run(t, "models")
	require.NoError(t, err)
	for _, name := range []string{"ba", "ba-forest", "er", "gilbert", "kregular", "ws"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "numNodes=10")
}
