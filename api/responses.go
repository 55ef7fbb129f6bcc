package api

import "github.com/schedsim/schedsim/sim"

type ScheduleResponse struct {
	RunID     string               `json:"run_id"`
	Algorithm sim.Algorithm        `json:"algorithm"`
	Schedule  sim.Schedule         `json:"schedule"`
	Metrics   sim.Metrics          `json:"metrics"`
	Summary   []sim.ProcessSummary `json:"summary"`
}

type CompareResponse struct {
	RunID   string        `json:"run_id"`
	Results []*sim.Result `json:"results"`
}

type GenerateResponse struct {
	Processes []sim.Process `json:"processes"`
}

type AlgorithmInfo struct {
	Name        sim.Algorithm `json:"name"`
	Description string        `json:"description"`
	Preemptive  bool          `json:"preemptive"`
}

type AlgorithmsResponse struct {
	Algorithms []AlgorithmInfo `json:"algorithms"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
