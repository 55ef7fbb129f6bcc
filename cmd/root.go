package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/report"
)

var (
	logLevel string // Log verbosity level

	// Run inputs
	configPath    string // YAML run config
	algorithm     string // Scheduling algorithm for run
	processesFile string // CSV/YAML/JSON process list; overrides generation
	outputFormat  string // table or json
	mergeSlices   bool   // Join back-to-back slices of one process in the Gantt chart

	// Process generation, used when no processes file is given
	seed        int64 // Seed for process generation
	count       int   // Number of generated processes
	arrivalMax  int   // Arrivals drawn from [0, arrivalMax)
	burstMin    int   // Min burst (inclusive)
	burstMax    int   // Max burst (inclusive)
	priorityMin int   // Min priority (inclusive)
	priorityMax int   // Max priority (inclusive)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:          "schedsim",
	Short:        "Discrete single-CPU process scheduling simulator",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		logrus.SetLevel(level)
		return nil
	},
}

// runCmd schedules one process set with one algorithm and prints the result
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Schedule a process set with one algorithm",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveRunConfig(cmd)
		if err != nil {
			return err
		}
		processes, err := cfg.loadProcesses()
		if err != nil {
			return err
		}
		alg, err := sim.ParseAlgorithm(cfg.Algorithm)
		if err != nil {
			return err
		}

		logrus.Infof("Scheduling %d processes with %s", len(processes), alg)
		result, err := sim.Run(processes, alg)
		if err != nil {
			return err
		}
		return writeResult(cmd.OutOrStdout(), cfg, processes, result)
	},
}

// resolveRunConfig layers defaults, the --config file and explicitly set flags,
// then validates the result.
func resolveRunConfig(cmd *cobra.Command) (*RunConfig, error) {
	cfg := defaultRunConfig()
	if configPath != "" {
		loaded, err := LoadRunConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Only flags the user actually set override the file.
	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		cfg.Algorithm = algorithm
	}
	if flags.Changed("processes") {
		cfg.ProcessesFile = processesFile
	}
	if flags.Changed("format") {
		cfg.Output.Format = outputFormat
	}
	if flags.Changed("merge-slices") {
		cfg.Output.MergeSlices = mergeSlices
	}
	gen := &cfg.Generator
	overrideInt64(flags.Changed("seed"), &gen.Seed, seed)
	overrideInt(flags.Changed("count"), &gen.Count, count)
	overrideInt(flags.Changed("arrival-max"), &gen.ArrivalMax, arrivalMax)
	overrideInt(flags.Changed("burst-min"), &gen.BurstMin, burstMin)
	overrideInt(flags.Changed("burst-max"), &gen.BurstMax, burstMax)
	overrideInt(flags.Changed("priority-min"), &gen.PriorityMin, priorityMin)
	overrideInt(flags.Changed("priority-max"), &gen.PriorityMax, priorityMax)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid run configuration: %w", err)
	}
	return cfg, nil
}

func overrideInt(changed bool, dst *int, v int) {
	if changed {
		*dst = v
	}
}

func overrideInt64(changed bool, dst *int64, v int64) {
	if changed {
		*dst = v
	}
}

// runOutput is the JSON document printed by `run --format json`.
type runOutput struct {
	*sim.Result
	Processes []sim.Process        `json:"processes"`
	Summary   []sim.ProcessSummary `json:"summary"`
}

func writeResult(w io.Writer, cfg *RunConfig, processes []sim.Process, result *sim.Result) error {
	summary := sim.Summarize(processes, result.Schedule)
	if cfg.Output.Format == FormatJSON {
		return report.WriteJSON(w, runOutput{Result: result, Processes: processes, Summary: summary})
	}

	policy := sim.NewPolicy(result.Algorithm)
	if _, err := fmt.Fprintf(w, "=== %s (%s) ===\n", policy.Name(), result.Algorithm); err != nil {
		return err
	}
	if err := report.WriteGantt(w, result.Schedule, report.GanttOptions{MergeAdjacent: cfg.Output.MergeSlices}); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w)
	report.WriteScheduleTable(w, summary, result.Metrics)
	_, _ = fmt.Fprintln(w)
	report.WriteMetrics(w, result.Metrics)
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addInputFlags registers the process-source flags shared by run and compare.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configPath, "config", "", "YAML run configuration file")
	cmd.Flags().StringVar(&processesFile, "processes", "", "Process list file (.csv, .yaml, .yml, .json); generated when empty")
	cmd.Flags().StringVar(&outputFormat, "format", FormatTable, "Output format (table, json)")

	cmd.Flags().Int64Var(&seed, "seed", defaultSeed, "Seed for process generation")
	cmd.Flags().IntVar(&count, "count", 25, "Number of generated processes")
	cmd.Flags().IntVar(&arrivalMax, "arrival-max", 20, "Generated arrivals fall in [0, arrival-max)")
	cmd.Flags().IntVar(&burstMin, "burst-min", 1, "Min generated burst (inclusive)")
	cmd.Flags().IntVar(&burstMax, "burst-max", 10, "Max generated burst (inclusive)")
	cmd.Flags().IntVar(&priorityMin, "priority-min", 1, "Min generated priority (inclusive)")
	cmd.Flags().IntVar(&priorityMax, "priority-max", 10, "Max generated priority (inclusive)")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	addInputFlags(runCmd)
	runCmd.Flags().StringVar(&algorithm, "algorithm", string(sim.FCFS), "Scheduling algorithm (fcfs, sjf, srtf, hrrn)")
	runCmd.Flags().BoolVar(&mergeSlices, "merge-slices", false, "Join back-to-back slices of one process in the Gantt chart")

	rootCmd.AddCommand(runCmd)
}
