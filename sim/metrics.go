// Reduces a Schedule to the summary statistics reported for every run.

package sim

import (
	"fmt"
	"io"
)

// Metrics holds the four summary statistics of one Schedule.
// The zero value is the result for an empty schedule.
type Metrics struct {
	AverageWaitingTime    float64 `json:"average_waiting_time" yaml:"average_waiting_time"`
	AverageTurnaroundTime float64 `json:"average_turnaround_time" yaml:"average_turnaround_time"`
	CPUUtilizationPercent float64 `json:"cpu_utilization_percent" yaml:"cpu_utilization_percent"`
	Throughput            float64 `json:"throughput" yaml:"throughput"` // processes per tick
}

// ComputeMetrics derives Metrics from a schedule.
//
// Waiting and turnaround are accumulated per slice, then divided by the number
// of distinct processes. With one slice per process this is the usual
// per-process average; for a preemptive schedule every slice contributes its own
// (start - arrival) and (end - arrival), so the averages grow with the number
// of interruptions.
func ComputeMetrics(schedule Schedule) Metrics {
	if len(schedule) == 0 {
		return Metrics{}
	}

	var waiting, turnaround, busy int64
	lastTime := 0
	ids := make(map[int]struct{}, len(schedule))
	for _, sl := range schedule {
		waiting += int64(sl.Start - sl.Arrival)
		turnaround += int64(sl.End() - sl.Arrival)
		busy += int64(sl.Duration)
		lastTime = max(lastTime, sl.End())
		ids[sl.ID] = struct{}{}
	}
	if lastTime == 0 {
		return Metrics{}
	}

	count := float64(len(ids))
	return Metrics{
		AverageWaitingTime:    float64(waiting) / count,
		AverageTurnaroundTime: float64(turnaround) / count,
		CPUUtilizationPercent: 100 * float64(busy) / float64(lastTime),
		Throughput:            count / float64(lastTime),
	}
}

// Print writes the metrics block in the simulator's text format.
func (m Metrics) Print(w io.Writer) {
	_, _ = fmt.Fprintf(w, "AWT: %.2f\n", m.AverageWaitingTime)
	_, _ = fmt.Fprintf(w, "ATT: %.2f\n", m.AverageTurnaroundTime)
	_, _ = fmt.Fprintf(w, "CPU Utilization: %.2f%%\n", m.CPUUtilizationPercent)
	_, _ = fmt.Fprintf(w, "Throughput: %.2f proc/sec\n", m.Throughput)
}

// ProcessSummary is the per-process view of a schedule: first dispatch,
// completion, and waiting/turnaround measured once from arrival to completion.
type ProcessSummary struct {
	Process    `yaml:",inline"`
	FirstStart int `json:"first_start" yaml:"first_start"`
	Completion int `json:"completion" yaml:"completion"`
	Turnaround int `json:"turnaround" yaml:"turnaround"`
	Waiting    int `json:"waiting" yaml:"waiting"`
	Slices     int `json:"slices" yaml:"slices"`
}

// Summarize builds one ProcessSummary per input process, in input order.
// Processes absent from the schedule get FirstStart and Completion of -1.
func Summarize(processes []Process, schedule Schedule) []ProcessSummary {
	type span struct{ first, last, n int }
	spans := make(map[int]*span, len(processes))
	for _, sl := range schedule {
		sp, ok := spans[sl.ID]
		if !ok {
			spans[sl.ID] = &span{first: sl.Start, last: sl.End(), n: 1}
			continue
		}
		sp.first = min(sp.first, sl.Start)
		sp.last = max(sp.last, sl.End())
		sp.n++
	}

	out := make([]ProcessSummary, 0, len(processes))
	for _, p := range processes {
		sum := ProcessSummary{Process: p, FirstStart: -1, Completion: -1}
		if sp, ok := spans[p.ID]; ok {
			sum.FirstStart = sp.first
			sum.Completion = sp.last
			sum.Turnaround = sp.last - p.Arrival
			sum.Waiting = sum.Turnaround - p.Burst
			sum.Slices = sp.n
		}
		out = append(out, sum)
	}
	return out
}
