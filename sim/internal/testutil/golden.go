// Package testutil provides shared test infrastructure for the scheduler.
// It consolidates golden dataset types and assertion helpers used across
// sim/ and its sub-package tests.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldenschedules.json.
type GoldenDataset struct {
	Cases []GoldenCase `json:"cases"`
}

// GoldenCase is one hand-checked scheduling scenario.
type GoldenCase struct {
	Name      string          `json:"name"`
	Algorithm string          `json:"algorithm"`
	Processes []GoldenProcess `json:"processes"`
	Schedule  []GoldenSlice   `json:"schedule"`
	Metrics   GoldenMetrics   `json:"metrics"`
}

// GoldenProcess mirrors sim.Process without importing sim, so that in-package
// sim tests can use this helper.
type GoldenProcess struct {
	ID       int `json:"id"`
	Arrival  int `json:"arrival"`
	Burst    int `json:"burst"`
	Priority int `json:"priority"`
}

// GoldenSlice mirrors sim.Slice.
type GoldenSlice struct {
	ID       int `json:"id"`
	Arrival  int `json:"arrival"`
	Start    int `json:"start"`
	Duration int `json:"duration"`
}

// GoldenMetrics mirrors sim.Metrics.
type GoldenMetrics struct {
	AverageWaitingTime    float64 `json:"average_waiting_time"`
	AverageTurnaroundTime float64 `json:"average_turnaround_time"`
	CPUUtilizationPercent float64 `json:"cpu_utilization_percent"`
	Throughput            float64 `json:"throughput"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldenschedules.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.Cases) == 0 {
		t.Fatal("golden dataset has no cases")
	}
	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Errorf("%s: got non-finite %v, want %v", name, got, want)
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
