package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSeedOverride_CLIWinsOverYAML verifies that an explicit --seed replaces the
// seed from the run config while the rest of the generator block is kept.
func TestSeedOverride_CLIWinsOverYAML(t *testing.T) {
	// GIVEN a run config with seed 42 and 6 processes
	path := writeFile(t, t.TempDir(), "run.yaml", "generator:\n  seed: 42\n  count: 6\noutput:\n  format: json\n")

	// WHEN the CLI passes a different seed
	fromYAML, err := executeCommand(t, "run", "--config", path)
	require.NoError(t, err)
	fromCLI, err := executeCommand(t, "run", "--config", path, "--seed", "100")
	require.NoError(t, err)

	// THEN the process sets differ but both keep the YAML count
	var a, b runOutput
	require.NoError(t, json.Unmarshal([]byte(fromYAML), &a))
	require.NoError(t, json.Unmarshal([]byte(fromCLI), &b))
	assert.Len(t, a.Processes, 6)
	assert.Len(t, b.Processes, 6)
	assert.NotEqual(t, a.Processes, b.Processes)
}

// TestSeedOverride_YAMLSeedPreserved_WhenCLINotSpecified verifies that flag
// defaults never clobber values from the run config.
func TestSeedOverride_YAMLSeedPreserved_WhenCLINotSpecified(t *testing.T) {
	// GIVEN a run config with seed 7
	path := writeFile(t, t.TempDir(), "run.yaml", "algorithm: sjf\ngenerator:\n  seed: 7\n")

	// WHEN run without --seed and without --algorithm
	_, err := executeCommand(t, "run", "--config", path, "--format", "json")
	require.NoError(t, err)
	cfg, err := resolveRunConfig(runCmd)
	require.NoError(t, err)

	// THEN the YAML values survive
	assert.Equal(t, int64(7), cfg.Generator.Seed)
	assert.Equal(t, "sjf", cfg.Algorithm)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
}

func TestSeedOverride_SameSeed_IdenticalRun(t *testing.T) {
	a, err := executeCommand(t, "compare", "--seed", "9", "--format", "json")
	require.NoError(t, err)
	b, err := executeCommand(t, "compare", "--seed", "9", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
