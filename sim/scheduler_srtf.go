package sim

import "fmt"

// SRTFPolicy is the preemptive variant of SJF. The choice is re-made every tick,
// so each emitted slice lasts exactly one tick.
//
// Among eligible processes (arrived, work remaining) the one with the least
// remaining time runs; ties go to the process listed first in the input, not to
// the one that has been running.
type SRTFPolicy struct{}

func (s *SRTFPolicy) Name() string { return "Shortest-Remaining-Time-First" }

func (s *SRTFPolicy) Schedule(processes []Process) (Schedule, error) {
	if err := ValidateProcesses(processes); err != nil {
		return nil, err
	}
	remaining := make([]int, len(processes)) // indexed like processes
	total := 0
	for i, p := range processes {
		remaining[i] = p.Burst
		total += p.Burst
	}
	out := make(Schedule, 0, total)
	limit := tickLimit(processes)

	completed := 0
	for clock := 0; completed < len(processes); clock++ {
		if clock > limit {
			return nil, fmt.Errorf("%w: srtf clock %d passed limit %d", ErrNoProgress, clock, limit)
		}
		pick := -1
		for i, p := range processes {
			if p.Arrival > clock || remaining[i] == 0 {
				continue
			}
			if pick < 0 || remaining[i] < remaining[pick] {
				pick = i
			}
		}
		if pick < 0 {
			continue // idle tick
		}

		p := processes[pick]
		out = append(out, Slice{ID: p.ID, Arrival: p.Arrival, Start: clock, Duration: 1})
		remaining[pick]--
		if remaining[pick] == 0 {
			completed++
		}
	}
	return out, nil
}
