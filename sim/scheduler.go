package sim

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnknownAlgorithm is returned (wrapped) for an algorithm name outside the closed set.
	ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")

	// ErrNoProgress is returned (wrapped) when a unit-tick policy runs past the latest
	// tick any valid input could need. Seeing it means a policy bug, not bad input.
	ErrNoProgress = errors.New("scheduler made no progress")
)

// Algorithm names one of the supported scheduling policies.
type Algorithm string

const (
	FCFS Algorithm = "fcfs" // first-come-first-served
	SJF  Algorithm = "sjf"  // shortest-job-first, non-preemptive
	SRTF Algorithm = "srtf" // shortest-remaining-time-first, preemptive
	HRRN Algorithm = "hrrn" // highest-response-ratio-next
)

// ValidAlgorithms is the set of recognized algorithm names.
// Shared by ParseAlgorithm and NewPolicy to avoid duplication.
var ValidAlgorithms = map[Algorithm]bool{FCFS: true, SJF: true, SRTF: true, HRRN: true}

// IsValidAlgorithm reports whether a is one of the supported policies.
func IsValidAlgorithm(a Algorithm) bool {
	return ValidAlgorithms[a]
}

// AlgorithmNames returns every valid algorithm in a stable order.
func AlgorithmNames() []Algorithm {
	names := make([]Algorithm, 0, len(ValidAlgorithms))
	for a := range ValidAlgorithms {
		names = append(names, a)
	}
	order := map[Algorithm]int{FCFS: 0, SJF: 1, SRTF: 2, HRRN: 3}
	sort.Slice(names, func(i, j int) bool { return order[names[i]] < order[names[j]] })
	return names
}

// ParseAlgorithm resolves a user-supplied name, ignoring case and surrounding space.
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if !IsValidAlgorithm(a) {
		return "", fmt.Errorf("%w %q (valid: %v)", ErrUnknownAlgorithm, name, AlgorithmNames())
	}
	return a, nil
}

// Policy turns an unordered process set into a Schedule.
// Implementations validate their input and MUST NOT modify it.
type Policy interface {
	Schedule(processes []Process) (Schedule, error)
	Name() string
}

// NewPolicy creates a Policy for a validated Algorithm.
// Panics on unrecognized names; check IsValidAlgorithm first.
func NewPolicy(a Algorithm) Policy {
	if !IsValidAlgorithm(a) {
		panic(fmt.Sprintf("unknown algorithm %q", a))
	}
	switch a {
	case FCFS:
		return &FCFSPolicy{}
	case SJF:
		return &SJFPolicy{}
	case SRTF:
		return &SRTFPolicy{}
	case HRRN:
		return &HRRNPolicy{}
	default:
		panic(fmt.Sprintf("unhandled algorithm %q", a))
	}
}

// FCFSPolicy runs processes in arrival order. Equal arrivals keep input order.
type FCFSPolicy struct{}

func (f *FCFSPolicy) Name() string { return "First-Come-First-Served" }

func (f *FCFSPolicy) Schedule(processes []Process) (Schedule, error) {
	if err := ValidateProcesses(processes); err != nil {
		return nil, err
	}
	sorted := append([]Process(nil), processes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Arrival < sorted[j].Arrival
	})

	out := make(Schedule, 0, len(sorted))
	clock := 0
	for _, p := range sorted {
		clock = max(clock, p.Arrival) // idle until the process arrives
		out = append(out, Slice{ID: p.ID, Arrival: p.Arrival, Start: clock, Duration: p.Burst})
		clock += p.Burst
	}
	return out, nil
}

// SJFPolicy runs the arrived process with the smallest burst to completion.
// Ties go to the process that entered the ready set first; processes that
// become ready on the same tick enter in input order.
type SJFPolicy struct{}

func (s *SJFPolicy) Name() string { return "Shortest-Job-First" }

func (s *SJFPolicy) Schedule(processes []Process) (Schedule, error) {
	if err := ValidateProcesses(processes); err != nil {
		return nil, err
	}
	pending := append([]Process(nil), processes...)
	ready := make([]Process, 0, len(processes))
	out := make(Schedule, 0, len(processes))
	limit := tickLimit(processes)

	clock := 0
	for len(pending) > 0 || len(ready) > 0 {
		if clock > limit {
			return nil, fmt.Errorf("%w: sjf clock %d passed limit %d", ErrNoProgress, clock, limit)
		}
		pending, ready = admitArrived(pending, ready, clock)
		if len(ready) == 0 {
			clock++
			continue
		}

		best := 0
		for i := 1; i < len(ready); i++ {
			if ready[i].Burst < ready[best].Burst {
				best = i
			}
		}
		next := ready[best]
		ready = append(ready[:best], ready[best+1:]...)

		out = append(out, Slice{ID: next.ID, Arrival: next.Arrival, Start: clock, Duration: next.Burst})
		clock += next.Burst
	}
	return out, nil
}

// admitArrived moves every pending process with Arrival <= clock to the back of
// ready, preserving the relative order of both slices.
func admitArrived(pending, ready []Process, clock int) ([]Process, []Process) {
	kept := pending[:0]
	for _, p := range pending {
		if p.Arrival <= clock {
			ready = append(ready, p)
		} else {
			kept = append(kept, p)
		}
	}
	return kept, ready
}
