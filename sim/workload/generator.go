package workload

import (
	"fmt"
	"math/rand"

	"github.com/schedsim/schedsim/sim"
)

// GenerateProcesses creates spec.Count processes with ids 1..Count.
// Deterministic given the same spec; arrival, burst and priority come from
// separate RNG streams.
func GenerateProcesses(spec GeneratorSpec) ([]sim.Process, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator spec: %w", err)
	}

	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(spec.Seed))
	arrivals := rng.ForSubsystem(sim.SubsystemArrival)
	bursts := rng.ForSubsystem(sim.SubsystemBurst)
	priorities := rng.ForSubsystem(sim.SubsystemPriority)

	processes := make([]sim.Process, 0, spec.Count)
	for i := 1; i <= spec.Count; i++ {
		processes = append(processes, sim.Process{
			ID:       i,
			Arrival:  arrivals.Intn(spec.ArrivalMax),
			Burst:    uniform(bursts, spec.BurstMin, spec.BurstMax),
			Priority: uniform(priorities, spec.PriorityMin, spec.PriorityMax),
		})
	}
	return processes, nil
}

// uniform draws from the inclusive range [lo, hi].
func uniform(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
