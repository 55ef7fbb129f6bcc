package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedsim/schedsim/sim"
)

// executeCommand runs the CLI with args and returns what it printed.
// Flag values leak between executions through the package-level vars, so every
// flag is put back to its default first.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const fcfsCSV = "id,arrival,burst,priority\n1,0,5,3\n2,1,3,1\n3,2,8,2\n"

func TestRun_TableOutput(t *testing.T) {
	// GIVEN a CSV process file
	path := writeFile(t, t.TempDir(), "p.csv", fcfsCSV)

	// WHEN run with the default algorithm
	out, err := executeCommand(t, "run", "--processes", path)
	require.NoError(t, err)

	// THEN the Gantt chart, table and metrics block are printed
	assert.Contains(t, out, "=== First-Come-First-Served (fcfs) ===")
	assert.Contains(t, out, "|  P1  |  P2  |  P3  |\n0      5      8      16\n")
	assert.Contains(t, out, "Schedule table")
	assert.Contains(t, out, "=== Simulation Metrics ===\nAWT: 3.33\nATT: 8.67\nCPU Utilization: 100.00%\nThroughput: 0.19 proc/sec\n")
}

func TestRun_JSONOutput(t *testing.T) {
	path := writeFile(t, t.TempDir(), "p.csv", fcfsCSV)

	out, err := executeCommand(t, "run", "--processes", path, "--algorithm", "SRTF", "--format", "json")
	require.NoError(t, err)

	var got struct {
		Algorithm sim.Algorithm        `json:"algorithm"`
		Schedule  sim.Schedule         `json:"schedule"`
		Metrics   sim.Metrics          `json:"metrics"`
		Processes []sim.Process        `json:"processes"`
		Summary   []sim.ProcessSummary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, sim.SRTF, got.Algorithm)
	assert.Len(t, got.Schedule, 16, "one unit slice per tick of work")
	assert.Len(t, got.Processes, 3)
	assert.Len(t, got.Summary, 3)
}

func TestRun_GeneratesWhenNoFile(t *testing.T) {
	out1, err := executeCommand(t, "run", "--algorithm", "hrrn", "--seed", "5", "--format", "json")
	require.NoError(t, err)
	out2, err := executeCommand(t, "run", "--algorithm", "hrrn", "--seed", "5", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, out1, out2, "same seed must reproduce the run")

	var got runOutput
	require.NoError(t, json.Unmarshal([]byte(out1), &got))
	assert.Len(t, got.Processes, 25)
}

func TestRun_MergeSlices(t *testing.T) {
	path := writeFile(t, t.TempDir(), "p.csv", "id,arrival,burst\n1,0,3\n")
	out, err := executeCommand(t, "run", "--processes", path, "--algorithm", "srtf", "--merge-slices")
	require.NoError(t, err)
	assert.Contains(t, out, "|  P1  |\n0      3\n")
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.csv", "id,arrival,burst\n1,0,0\n")
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown algorithm", []string{"run", "--algorithm", "rr"}, "unknown scheduling algorithm"},
		{"unknown format", []string{"run", "--format", "xml"}, "unknown output format"},
		{"invalid process", []string{"run", "--processes", bad}, "invalid process set"},
		{"missing file", []string{"run", "--processes", filepath.Join(dir, "none.csv")}, "opening process file"},
		{"bad generator range", []string{"run", "--burst-min", "0"}, "burst_min"},
		{"bad log level", []string{"--log", "loud", "run"}, "invalid log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCompare_AllAlgorithms(t *testing.T) {
	path := writeFile(t, t.TempDir(), "p.csv", fcfsCSV)

	out, err := executeCommand(t, "compare", "--processes", path)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "=== Comparison over 3 processes ===\n"))
	for _, a := range sim.AlgorithmNames() {
		assert.Contains(t, out, string(a))
	}
}

func TestCompare_SelectedAlgorithmsJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "p.csv", fcfsCSV)

	out, err := executeCommand(t, "compare", "--processes", path, "--algorithms", "sjf,fcfs", "--format", "json")
	require.NoError(t, err)

	var results []*sim.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, sim.SJF, results[0].Algorithm)
	assert.Equal(t, sim.FCFS, results[1].Algorithm)
}

func TestCompare_UnknownAlgorithm(t *testing.T) {
	_, err := executeCommand(t, "compare", "--algorithms", "fcfs,lottery")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lottery")
}

func TestRun_AlgorithmNameNormalized(t *testing.T) {
	// GIVEN an algorithm name in upper case with surrounding space, from the config file
	dir := t.TempDir()
	writeFile(t, dir, "p.csv", fcfsCSV)
	path := writeFile(t, dir, "run.yaml", "algorithm: \" SJF \"\nprocesses_file: p.csv\n")

	// WHEN run
	out, err := executeCommand(t, "run", "--config", path)

	// THEN the parsed algorithm drives the run
	require.NoError(t, err)
	assert.Contains(t, out, "=== Shortest-Job-First (sjf) ===")
}
