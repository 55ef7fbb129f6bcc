// Package report renders schedules and metrics for terminals and files.
// Nothing here makes scheduling decisions; it only lays out what sim produced.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/schedsim/schedsim/sim"
)

const (
	idleLabel    = "idle"
	minCellWidth = 6
)

// GanttOptions controls Gantt rendering.
type GanttOptions struct {
	// MergeAdjacent joins back-to-back slices of the same process into one cell.
	// Display only; the schedule itself is untouched.
	MergeAdjacent bool
}

// Segment is one cell of the Gantt chart: a process slice or an idle gap.
type Segment struct {
	Label string
	Start int
	End   int
	Idle  bool
}

// Segments lays a schedule out on the timeline from tick 0, inserting idle
// segments wherever the CPU has nothing to run.
func Segments(schedule sim.Schedule, opts GanttOptions) []Segment {
	segs := make([]Segment, 0, len(schedule))
	cursor := 0
	lastID := 0
	for _, sl := range schedule {
		if sl.Start > cursor {
			segs = append(segs, Segment{Label: idleLabel, Start: cursor, End: sl.Start, Idle: true})
		}
		n := len(segs)
		if opts.MergeAdjacent && n > 0 && !segs[n-1].Idle && lastID == sl.ID && segs[n-1].End == sl.Start {
			segs[n-1].End = sl.End()
		} else {
			segs = append(segs, Segment{Label: "P" + strconv.Itoa(sl.ID), Start: sl.Start, End: sl.End()})
		}
		lastID = sl.ID
		cursor = max(cursor, sl.End())
	}
	return segs
}

// WriteGantt draws the schedule as a one-row text chart with tick markers below.
func WriteGantt(w io.Writer, schedule sim.Schedule, opts GanttOptions) error {
	segs := Segments(schedule, opts)
	if len(segs) == 0 {
		_, err := fmt.Fprintln(w, "Gantt chart: (empty)")
		return err
	}

	width := minCellWidth
	for _, s := range segs {
		width = max(width, len(s.Label)+2)
	}

	var bar, ticks strings.Builder
	bar.WriteString("|")
	for _, s := range segs {
		left := (width - len(s.Label)) / 2
		bar.WriteString(strings.Repeat(" ", left))
		bar.WriteString(s.Label)
		bar.WriteString(strings.Repeat(" ", width-len(s.Label)-left))
		bar.WriteString("|")

		mark := strconv.Itoa(s.Start)
		ticks.WriteString(mark)
		ticks.WriteString(strings.Repeat(" ", max(1, width+1-len(mark))))
	}
	ticks.WriteString(strconv.Itoa(segs[len(segs)-1].End))

	_, err := fmt.Fprintf(w, "Gantt chart\n%s\n%s\n", bar.String(), ticks.String())
	return err
}
