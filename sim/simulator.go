package sim

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Result is the outcome of one simulation run.
type Result struct {
	Algorithm Algorithm `json:"algorithm" yaml:"algorithm"`
	Schedule  Schedule  `json:"schedule" yaml:"schedule"`
	Metrics   Metrics   `json:"metrics" yaml:"metrics"`
}

// ComputeSchedule validates processes and runs them through the selected policy.
// Invalid input is rejected before any slice is produced.
func ComputeSchedule(processes []Process, algorithm Algorithm) (Schedule, error) {
	if !IsValidAlgorithm(algorithm) {
		return nil, fmt.Errorf("%w %q", ErrUnknownAlgorithm, algorithm)
	}
	schedule, err := NewPolicy(algorithm).Schedule(processes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", algorithm, err)
	}
	logrus.Debugf("%s: scheduled %d processes into %d slices, makespan %d",
		algorithm, len(processes), len(schedule), schedule.Makespan())
	return schedule, nil
}

// Run computes the schedule for processes and reduces it to Metrics.
func Run(processes []Process, algorithm Algorithm) (*Result, error) {
	schedule, err := ComputeSchedule(processes, algorithm)
	if err != nil {
		return nil, err
	}
	return &Result{
		Algorithm: algorithm,
		Schedule:  schedule,
		Metrics:   ComputeMetrics(schedule),
	}, nil
}

// RunAll runs every requested algorithm concurrently, each on its own copy of
// processes. With no algorithms given, all of them run. Results come back in
// request order; if any run fails, the error of the earliest failing algorithm
// is returned.
func RunAll(processes []Process, algorithms ...Algorithm) ([]*Result, error) {
	if len(algorithms) == 0 {
		algorithms = AlgorithmNames()
	}
	for _, a := range algorithms {
		if !IsValidAlgorithm(a) {
			return nil, fmt.Errorf("%w %q", ErrUnknownAlgorithm, a)
		}
	}

	results := make([]*Result, len(algorithms))
	errs := make([]error, len(algorithms))
	var wg sync.WaitGroup
	wg.Add(len(algorithms))
	for i, a := range algorithms {
		i, a := i, a
		input := append([]Process(nil), processes...)
		go func() {
			defer wg.Done()
			results[i], errs[i] = Run(input, a)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
