package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/workload"
)

type SchedulerHandler interface {
	Algorithms(ctx *fiber.Ctx) error
	Schedule(ctx *fiber.Ctx) error
	Compare(ctx *fiber.Ctx) error
	Generate(ctx *fiber.Ctx) error
}

// SchedulerHandlerImpl is stateless; every request schedules its own copy of
// the submitted processes.
type SchedulerHandlerImpl struct{}

func NewSchedulerHandlerImpl() *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{}
}

func (s *SchedulerHandlerImpl) Algorithms(ctx *fiber.Ctx) error {
	names := sim.AlgorithmNames()
	infos := make([]AlgorithmInfo, 0, len(names))
	for _, name := range names {
		infos = append(infos, AlgorithmInfo{
			Name:        name,
			Description: sim.NewPolicy(name).Name(),
			Preemptive:  name == sim.SRTF,
		})
	}
	return ctx.JSON(AlgorithmsResponse{Algorithms: infos})
}

func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	alg, err := sim.ParseAlgorithm(ctx.Params("algorithm"))
	if err != nil {
		return err
	}
	var request ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request format: "+err.Error())
	}

	result, err := sim.Run(request.Processes, alg)
	if err != nil {
		return err
	}
	return ctx.JSON(ScheduleResponse{
		RunID:     uuid.NewString(),
		Algorithm: result.Algorithm,
		Schedule:  result.Schedule,
		Metrics:   result.Metrics,
		Summary:   sim.Summarize(request.Processes, result.Schedule),
	})
}

func (s *SchedulerHandlerImpl) Compare(ctx *fiber.Ctx) error {
	var request CompareRequest
	if err := ctx.BodyParser(&request); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request format: "+err.Error())
	}
	algs := make([]sim.Algorithm, 0, len(request.Algorithms))
	for _, name := range request.Algorithms {
		a, err := sim.ParseAlgorithm(name)
		if err != nil {
			return err
		}
		algs = append(algs, a)
	}

	results, err := sim.RunAll(request.Processes, algs...)
	if err != nil {
		return err
	}
	return ctx.JSON(CompareResponse{RunID: uuid.NewString(), Results: results})
}

// Generate returns a random process set. Fields missing from the body keep
// the generator defaults; an empty body generates with seed 0.
func (s *SchedulerHandlerImpl) Generate(ctx *fiber.Ctx) error {
	spec := workload.DefaultGeneratorSpec(0)
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&spec); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request format: "+err.Error())
		}
	}
	processes, err := workload.GenerateProcesses(spec)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return ctx.JSON(GenerateResponse{Processes: processes})
}
