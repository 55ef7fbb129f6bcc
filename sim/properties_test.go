package sim

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomProcesses draws n processes the way the workload generator does,
// without importing it (sim/workload depends on sim).
func randomProcesses(seed int64, n int) []Process {
	rng := NewPartitionedRNG(NewSimulationKey(seed))
	arrivals := rng.ForSubsystem(SubsystemArrival)
	bursts := rng.ForSubsystem(SubsystemBurst)
	procs := make([]Process, n)
	for i := range procs {
		procs[i] = Process{
			ID:      i + 1,
			Arrival: arrivals.Intn(20),
			Burst:   1 + bursts.Intn(10),
		}
	}
	return procs
}

// assertScheduleInvariants checks the properties every policy guarantees.
func assertScheduleInvariants(t *testing.T, a Algorithm, procs []Process, s Schedule) {
	t.Helper()
	byID := make(map[int]Process, len(procs))
	for _, p := range procs {
		byID[p.ID] = p
	}

	// every process appears and receives exactly its burst
	got := s.ProcessIDs()
	sort.Ints(got)
	want := make([]int, 0, len(procs))
	for _, p := range procs {
		want = append(want, p.ID)
	}
	sort.Ints(want)
	assert.Equal(t, want, got, "%s: process coverage", a)
	for _, p := range procs {
		assert.Equal(t, p.Burst, s.ServiceTime(p.ID), "%s: service time of %d", a, p.ID)
	}

	for i, sl := range s {
		p, ok := byID[sl.ID]
		require.True(t, ok, "%s: slice for unknown id %d", a, sl.ID)
		assert.Equal(t, p.Arrival, sl.Arrival, "%s: slice arrival copied from process", a)
		assert.GreaterOrEqual(t, sl.Start, p.Arrival, "%s: slice %d starts before arrival", a, i)
		assert.Positive(t, sl.Duration, "%s: slice %d duration", a, i)
		if i > 0 {
			assert.GreaterOrEqual(t, sl.Start, s[i-1].End(), "%s: slice %d overlaps its predecessor", a, i)
		}
		if a == SRTF {
			assert.Equal(t, 1, sl.Duration, "srtf slices last one tick")
		}
	}
	if a != SRTF {
		assert.Len(t, s, len(procs), "%s: one slice per process", a)
	}

	// the CPU never idles while an arrived process still has work
	busy := 0
	for _, sl := range s {
		busy += sl.Duration
	}
	idle := s.Makespan() - busy
	gaps := 0
	prevEnd := 0
	for _, sl := range s {
		if sl.Start > prevEnd {
			for _, p := range procs {
				if p.Arrival <= prevEnd && firstStart(s, p.ID) >= sl.Start {
					t.Errorf("%s: CPU idle at %d while process %d waits", a, prevEnd, p.ID)
				}
			}
			gaps += sl.Start - prevEnd
		}
		prevEnd = sl.End()
	}
	assert.Equal(t, idle, gaps, "%s: idle time accounting", a)
}

func firstStart(s Schedule, id int) int {
	for _, sl := range s {
		if sl.ID == id {
			return sl.Start
		}
	}
	return -1
}

func TestPolicies_ScheduleInvariants(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 1234, -99} {
		procs := randomProcesses(seed, 25)
		for _, a := range AlgorithmNames() {
			s, err := NewPolicy(a).Schedule(procs)
			require.NoError(t, err)
			assertScheduleInvariants(t, a, procs, s)
		}
	}
}

func TestPolicies_Deterministic(t *testing.T) {
	procs := randomProcesses(42, 25)
	before := append([]Process(nil), procs...)
	for _, a := range AlgorithmNames() {
		first, err := NewPolicy(a).Schedule(procs)
		require.NoError(t, err)
		second, err := NewPolicy(a).Schedule(procs)
		require.NoError(t, err)
		assert.Equal(t, first, second, "%s: same input, same schedule", a)
	}
	assert.Equal(t, before, procs, "input must not be modified")
}

func TestPolicies_SingleProcess(t *testing.T) {
	procs := []Process{{ID: 1, Arrival: 3, Burst: 4}}
	for _, a := range AlgorithmNames() {
		res, err := Run(procs, a)
		require.NoError(t, err)
		assert.Equal(t, 3, res.Schedule[0].Start)
		assert.Equal(t, 7, res.Schedule.Makespan())
	}
}

func TestPolicies_NonPreemptiveMetricsAgreeWithSummary(t *testing.T) {
	procs := randomProcesses(3, 25)
	for _, a := range []Algorithm{FCFS, SJF, HRRN} {
		res, err := Run(procs, a)
		require.NoError(t, err)
		var wait int
		for _, sum := range Summarize(procs, res.Schedule) {
			wait += sum.Waiting
		}
		assert.InDelta(t, float64(wait)/float64(len(procs)), res.Metrics.AverageWaitingTime, 1e-9, "%s", a)
	}
}
