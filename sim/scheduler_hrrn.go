package sim

import "fmt"

// HRRNPolicy runs the arrived process with the highest response ratio
// (waiting + burst) / burst to completion. Waiting time ages long jobs so they
// cannot starve behind a stream of short ones.
//
// The ready subset is scanned in queue order (input order minus already
// scheduled processes) and a candidate replaces the current best only when its
// ratio is strictly greater, so exact ties keep the earlier process.
type HRRNPolicy struct{}

func (h *HRRNPolicy) Name() string { return "Highest-Response-Ratio-Next" }

func (h *HRRNPolicy) Schedule(processes []Process) (Schedule, error) {
	if err := ValidateProcesses(processes); err != nil {
		return nil, err
	}
	queue := append([]Process(nil), processes...)
	out := make(Schedule, 0, len(processes))
	limit := tickLimit(processes)

	clock := 0
	for len(queue) > 0 {
		if clock > limit {
			return nil, fmt.Errorf("%w: hrrn clock %d passed limit %d", ErrNoProgress, clock, limit)
		}
		pick := -1
		best := -1.0
		for i, p := range queue {
			if p.Arrival > clock {
				continue
			}
			if ratio := ResponseRatio(p, clock); ratio > best {
				best = ratio
				pick = i
			}
		}
		if pick < 0 {
			clock++
			continue
		}

		next := queue[pick]
		queue = append(queue[:pick], queue[pick+1:]...)
		out = append(out, Slice{ID: next.ID, Arrival: next.Arrival, Start: clock, Duration: next.Burst})
		clock += next.Burst
	}
	return out, nil
}

// ResponseRatio returns (waiting + burst) / burst for p at tick clock, where
// waiting = clock - arrival. Equal rationals always yield the same float64.
func ResponseRatio(p Process, clock int) float64 {
	waiting := clock - p.Arrival
	return float64(waiting+p.Burst) / float64(p.Burst)
}
