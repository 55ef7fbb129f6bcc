package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/schedsim/schedsim/sim"
)

// WriteScheduleTable prints one row per process followed by a footer holding
// the run's Metrics.
func WriteScheduleTable(w io.Writer, summaries []sim.ProcessSummary, m sim.Metrics) {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			strconv.Itoa(s.ID),
			strconv.Itoa(s.Priority),
			strconv.Itoa(s.Burst),
			strconv.Itoa(s.Arrival),
			strconv.Itoa(s.FirstStart),
			strconv.Itoa(s.Waiting),
			strconv.Itoa(s.Turnaround),
			strconv.Itoa(s.Completion),
		})
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Start", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("CPU\n%.2f%%", m.CPUUtilizationPercent),
		fmt.Sprintf("Average\n%.2f", m.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", m.AverageTurnaroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", m.Throughput)})
	table.Render()
}

// WriteMetrics prints the four summary statistics as a text block.
func WriteMetrics(w io.Writer, m sim.Metrics) {
	_, _ = fmt.Fprintln(w, "=== Simulation Metrics ===")
	m.Print(w)
}

// WriteComparisonTable prints one row per algorithm.
func WriteComparisonTable(w io.Writer, results []*sim.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Slices", "Makespan", "Avg Wait", "Avg Turnaround", "CPU %", "Throughput"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, r := range results {
		table.Append([]string{
			string(r.Algorithm),
			strconv.Itoa(len(r.Schedule)),
			strconv.Itoa(r.Schedule.Makespan()),
			fmt.Sprintf("%.2f", r.Metrics.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.Metrics.AverageTurnaroundTime),
			fmt.Sprintf("%.2f", r.Metrics.CPUUtilizationPercent),
			fmt.Sprintf("%.4f", r.Metrics.Throughput),
		})
	}
	table.Render()
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
