package api

import "github.com/schedsim/schedsim/sim"

type ScheduleRequest struct {
	Processes []sim.Process `json:"processes"`
}

type CompareRequest struct {
	Processes  []sim.Process `json:"processes"`
	Algorithms []string      `json:"algorithms"`
}
