package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/report"
)

var compareAlgorithms []string // Algorithms to compare; all when empty

// compareCmd runs several algorithms over the same process set side by side
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run several algorithms concurrently on one process set and compare metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveRunConfig(cmd)
		if err != nil {
			return err
		}
		algs, err := parseAlgorithms(compareAlgorithms)
		if err != nil {
			return err
		}
		processes, err := cfg.loadProcesses()
		if err != nil {
			return err
		}

		if len(algs) == 0 {
			algs = sim.AlgorithmNames()
		}

		logrus.Infof("Comparing %v over %d processes", algs, len(processes))
		results, err := sim.RunAll(processes, algs...)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if cfg.Output.Format == FormatJSON {
			return report.WriteJSON(w, results)
		}
		_, _ = fmt.Fprintf(w, "=== Comparison over %d processes ===\n", len(processes))
		report.WriteComparisonTable(w, results)
		return nil
	},
}

func parseAlgorithms(names []string) ([]sim.Algorithm, error) {
	algs := make([]sim.Algorithm, 0, len(names))
	for _, name := range names {
		a, err := sim.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		algs = append(algs, a)
	}
	return algs, nil
}

func init() {
	addInputFlags(compareCmd)
	compareCmd.Flags().StringSliceVar(&compareAlgorithms, "algorithms", nil, "Comma-separated algorithms to compare (default all)")
	rootCmd.AddCommand(compareCmd)
}
