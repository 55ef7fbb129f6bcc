package workload

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default generator ranges, matching the simulator's "generate 25 processes" action.
const (
	DefaultCount       = 25
	DefaultArrivalMax  = 20
	DefaultBurstMin    = 1
	DefaultBurstMax    = 10
	DefaultPriorityMin = 1
	DefaultPriorityMax = 10
)

// Generator limits. They keep one request from allocating an unbounded process
// slice and keep every generated set inside the range ValidateProcesses accepts.
const (
	MaxCount       = 100_000
	MaxArrival     = 1_000_000
	MaxBurst       = 1_000_000
	MaxPriorityAbs = 1_000_000
)

// GeneratorSpec parameterizes random process-set generation.
// Arrivals are drawn from [0, ArrivalMax); bursts and priorities from their
// inclusive [Min, Max] ranges.
type GeneratorSpec struct {
	Seed        int64 `yaml:"seed" json:"seed"`
	Count       int   `yaml:"count" json:"count"`
	ArrivalMax  int   `yaml:"arrival_max" json:"arrival_max"`
	BurstMin    int   `yaml:"burst_min" json:"burst_min"`
	BurstMax    int   `yaml:"burst_max" json:"burst_max"`
	PriorityMin int   `yaml:"priority_min" json:"priority_min"`
	PriorityMax int   `yaml:"priority_max" json:"priority_max"`
}

// DefaultGeneratorSpec returns the default ranges with the given seed.
func DefaultGeneratorSpec(seed int64) GeneratorSpec {
	return GeneratorSpec{
		Seed:        seed,
		Count:       DefaultCount,
		ArrivalMax:  DefaultArrivalMax,
		BurstMin:    DefaultBurstMin,
		BurstMax:    DefaultBurstMax,
		PriorityMin: DefaultPriorityMin,
		PriorityMax: DefaultPriorityMax,
	}
}

// Validate checks that every range is non-empty and that bursts stay positive.
func (s *GeneratorSpec) Validate() error {
	if s.Count < 0 || s.Count > MaxCount {
		return fmt.Errorf("count must be in 0..%d, got %d", MaxCount, s.Count)
	}
	if s.ArrivalMax < 1 || s.ArrivalMax > MaxArrival {
		return fmt.Errorf("arrival_max must be in 1..%d, got %d", MaxArrival, s.ArrivalMax)
	}
	if s.BurstMin < 1 {
		return fmt.Errorf("burst_min must be >= 1, got %d", s.BurstMin)
	}
	if s.BurstMax < s.BurstMin {
		return fmt.Errorf("burst_max %d is below burst_min %d", s.BurstMax, s.BurstMin)
	}
	if s.BurstMax > MaxBurst {
		return fmt.Errorf("burst_max must be <= %d, got %d", MaxBurst, s.BurstMax)
	}
	if s.PriorityMin < -MaxPriorityAbs || s.PriorityMax > MaxPriorityAbs {
		return fmt.Errorf("priorities must be in -%d..%d, got %d..%d", MaxPriorityAbs, MaxPriorityAbs, s.PriorityMin, s.PriorityMax)
	}
	if s.PriorityMax < s.PriorityMin {
		return fmt.Errorf("priority_max %d is below priority_min %d", s.PriorityMax, s.PriorityMin)
	}
	return nil
}

// LoadGeneratorSpec reads a YAML generator spec. Fields missing from the file
// keep their defaults; unknown fields are rejected.
func LoadGeneratorSpec(path string) (*GeneratorSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading generator spec: %w", err)
	}
	spec := DefaultGeneratorSpec(0)
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing generator spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator spec: %w", err)
	}
	return &spec, nil
}
