package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/workload"
)

// Output formats accepted by run and compare.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

const defaultSeed = 42

// RunConfig is the YAML form of a run. Every field can also be set by a flag;
// flags given explicitly on the command line win over the file.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type RunConfig struct {
	Algorithm     string                 `yaml:"algorithm"`
	ProcessesFile string                 `yaml:"processes_file"`
	Generator     workload.GeneratorSpec `yaml:"generator"`
	Output        OutputConfig           `yaml:"output"`
}

// OutputConfig selects how results are printed.
type OutputConfig struct {
	Format      string `yaml:"format"`
	MergeSlices bool   `yaml:"merge_slices"`
}

func defaultRunConfig() *RunConfig {
	return &RunConfig{
		Algorithm: string(sim.FCFS),
		Generator: workload.DefaultGeneratorSpec(defaultSeed),
		Output:    OutputConfig{Format: FormatTable},
	}
}

// LoadRunConfig parses a run config on top of the defaults. Typos in field
// names are errors. A relative processes_file is resolved against the config
// file's directory.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}
	cfg := defaultRunConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing run config: %w", err)
	}
	if cfg.ProcessesFile != "" && !filepath.IsAbs(cfg.ProcessesFile) {
		cfg.ProcessesFile = filepath.Join(filepath.Dir(path), cfg.ProcessesFile)
	}
	return cfg, nil
}

// Validate checks names and ranges. The generator block is only checked when
// no processes file is given, since it is unused otherwise.
func (c *RunConfig) Validate() error {
	if _, err := sim.ParseAlgorithm(c.Algorithm); err != nil {
		return err
	}
	if c.Output.Format != FormatTable && c.Output.Format != FormatJSON {
		return fmt.Errorf("unknown output format %q (valid: %s, %s)", c.Output.Format, FormatTable, FormatJSON)
	}
	if c.ProcessesFile == "" {
		if err := c.Generator.Validate(); err != nil {
			return fmt.Errorf("generator: %w", err)
		}
	}
	return nil
}

// loadProcesses returns the process set the config describes: the file when
// one is named, a generated set otherwise.
func (c *RunConfig) loadProcesses() ([]sim.Process, error) {
	if c.ProcessesFile != "" {
		return workload.LoadProcessesFile(c.ProcessesFile)
	}
	return workload.GenerateProcesses(c.Generator)
}
