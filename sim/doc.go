// Package sim provides the single-CPU scheduling engine for schedsim.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - process.go: Process input records, Slice/Schedule output and input validation
//   - scheduler.go: the Policy interface, the Algorithm enum and the FCFS/SJF policies
//   - scheduler_srtf.go, scheduler_hrrn.go: the preemptive and response-ratio policies
//   - metrics.go: reduction of a Schedule to the four summary statistics
//   - simulator.go: ComputeSchedule / Run / RunAll, the only entry points callers need
//
// # Architecture
//
// Every policy is a pure function of its input slice: no policy keeps state between
// calls and none mutates the Process values it receives, so independent runs can
// execute concurrently (see RunAll). Time is discrete; one tick is one time unit.
//
// Sub-packages:
//   - sim/workload/: seeded process-set generation and CSV/YAML loaders
//   - sim/report/: Gantt and table rendering of a Schedule and its Metrics
package sim
