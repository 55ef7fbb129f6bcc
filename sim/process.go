package sim

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned (wrapped) when a process set cannot be scheduled:
// a non-positive burst, a negative arrival, a duplicated process id, or a
// timeline too long to represent in an int.
var ErrInvalidInput = errors.New("invalid process set")

// Process describes one CPU-bound job submitted to a simulation run.
// Values are never modified by a policy.
type Process struct {
	ID       int `json:"id" yaml:"id"`
	Arrival  int `json:"arrival" yaml:"arrival"`   // tick at which the process becomes eligible
	Burst    int `json:"burst" yaml:"burst"`       // total CPU ticks required, >= 1
	Priority int `json:"priority" yaml:"priority"` // carried through, not consumed by any policy
}

// Slice is one contiguous span of CPU time given to a single process.
type Slice struct {
	ID       int `json:"id" yaml:"id"`
	Arrival  int `json:"arrival" yaml:"arrival"`
	Start    int `json:"start" yaml:"start"`
	Duration int `json:"duration" yaml:"duration"`
}

// End returns the first tick after the slice finishes.
func (s Slice) End() int {
	return s.Start + s.Duration
}

// Schedule is a timeline of slices ordered by Start. Slices never overlap.
type Schedule []Slice

// ProcessIDs returns the distinct process ids in order of first appearance.
func (s Schedule) ProcessIDs() []int {
	seen := make(map[int]bool, len(s))
	ids := make([]int, 0, len(s))
	for _, sl := range s {
		if !seen[sl.ID] {
			seen[sl.ID] = true
			ids = append(ids, sl.ID)
		}
	}
	return ids
}

// ServiceTime returns the total ticks attributed to process id.
func (s Schedule) ServiceTime(id int) int {
	total := 0
	for _, sl := range s {
		if sl.ID == id {
			total += sl.Duration
		}
	}
	return total
}

// Makespan returns the latest slice end, or 0 for an empty schedule.
func (s Schedule) Makespan() int {
	last := 0
	for _, sl := range s {
		last = max(last, sl.End())
	}
	return last
}

// ValidateProcesses checks every process before any simulation starts.
// The first violation is reported, wrapped in ErrInvalidInput.
func ValidateProcesses(processes []Process) error {
	seen := make(map[int]int, len(processes))
	latest, total := 0, 0
	for i, p := range processes {
		if p.ID <= 0 {
			return fmt.Errorf("%w: process at index %d has id %d, must be >= 1", ErrInvalidInput, i, p.ID)
		}
		if p.Burst <= 0 {
			return fmt.Errorf("%w: process %d (index %d) has burst %d, must be >= 1", ErrInvalidInput, p.ID, i, p.Burst)
		}
		if p.Arrival < 0 {
			return fmt.Errorf("%w: process %d (index %d) has arrival %d, must be >= 0", ErrInvalidInput, p.ID, i, p.Arrival)
		}
		if prev, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: process id %d used at index %d and %d", ErrInvalidInput, p.ID, prev, i)
		}
		seen[p.ID] = i

		if p.Burst > math.MaxInt-total {
			return fmt.Errorf("%w: total burst overflows at process %d (index %d)", ErrInvalidInput, p.ID, i)
		}
		total += p.Burst
		latest = max(latest, p.Arrival)
		// the unit-tick policies step the clock one past tickLimit
		if latest >= math.MaxInt-total {
			return fmt.Errorf("%w: latest arrival %d plus total burst %d overflows the clock at process %d (index %d)",
				ErrInvalidInput, latest, total, p.ID, i)
		}
	}
	return nil
}

// tickLimit bounds the clock of the unit-tick policies. Every valid process set
// finishes by the latest arrival plus the sum of all bursts, and
// ValidateProcesses guarantees that sum stays below math.MaxInt.
func tickLimit(processes []Process) int {
	limit := 0
	for _, p := range processes {
		limit = max(limit, p.Arrival)
	}
	for _, p := range processes {
		limit += p.Burst
	}
	return limit
}
