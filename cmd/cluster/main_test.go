package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T) string {
	var b strings.Builder
	b.WriteString("playlist,tempo,energy\n")
	for i := 0; i < 10; i++ {
		b.WriteString(fmt.Sprintf("chill,%d,0.1\n", 60+i))
		b.WriteString(fmt.Sprintf("rock,%d,0.9\n", 900+i))
	}
	p := filepath.Join(t.TempDir(), "playlists.csv")
	require.NoError(t, os.WriteFile(p, []byte(b.String()), 0644))
	return p
}

func execute(args ...string) (string, error) {
	cmd := rootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCluster_MissingDataFile(t *testing.T) {
	out, err := execute()
	assert.Error(t, err)
	assert.Contains(t, out, "Usage:")
}

func TestCluster_Run(t *testing.T) {
	p := writeDataset(t)
	metricsFile := filepath.Join(t.TempDir(), "cluster.prom")

	out, err := execute(p, "0", "--seed", "7", "--iterations", "20", "--metrics", metricsFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Clustering on [tempo]")
	assert.Contains(t, out, "merged:")
	assert.Contains(t, out, "entropy:")

	b, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "cluster_evaluations")
}

func TestCluster_Config(t *testing.T) {
	p := writeDataset(t)
	cfg := filepath.Join(t.TempDir(), "cluster.json")
	require.NoError(t, os.WriteFile(cfg, []byte(`{"factor": 1, "iterations": 20}`), 0644))

	type test struct {
		args []string
		k    string
	}

	tests := map[string]test{
		"defaults": {
			args: []string{p, "--seed", "7"},
			k:    "k=4",
		},
		"config-file": {
			args: []string{p, "--seed", "7", "--config", cfg},
			k:    "k=2",
		},
		"flag-over-config-file": {
			args: []string{p, "--seed", "7", "--config", cfg, "--factor", "3"},
			k:    "k=6",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := execute(tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.k)
		})
	}
}

func TestCluster_InvalidArgs(t *testing.T) {
	p := writeDataset(t)

	_, err := execute(p, "x")
	assert.Error(t, err)

	_, err = execute(p, "5")
	assert.Error(t, err)

	_, err = execute(p, "--factor", "0")
	assert.Error(t, err)

	_, err = execute(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestParseIndices(t *testing.T) {
	indices, err := parseIndices([]string{"2", "0"})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0}, indices)

	_, err = parseIndices([]string{"a"})
	assert.Error(t, err)
}
