// Package api serves the scheduling engine over HTTP.
package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim"
)

// Config holds server tunables.
type Config struct {
	BodyLimit int // bytes; fiber's default when <= 0
}

// NewApp builds the fiber application with all routes registered.
func NewApp(cfg Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "schedsim",
		BodyLimit:             cfg.BodyLimit,
		ErrorHandler:          errorHandler,
		DisableStartupMessage: true,
	})
	app.Use(recover.New(recover.Config{EnableStackTrace: true, StackTraceHandler: logPanic}))
	app.Use(requestLogger)

	h := NewSchedulerHandlerImpl()
	v1 := app.Group("/api/v1")
	{
		v1.Get("/algorithms", h.Algorithms)
		v1.Post("/schedule/:algorithm", h.Schedule)
		v1.Post("/compare", h.Compare)
		v1.Post("/generate", h.Generate)
	}
	return app
}

// errorHandler maps engine errors to status codes and renders every error as
// {"error": "..."}.
func errorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		code = fe.Code
	case errors.Is(err, sim.ErrInvalidInput), errors.Is(err, sim.ErrUnknownAlgorithm):
		code = fiber.StatusBadRequest
	}
	return ctx.Status(code).JSON(ErrorResponse{Error: err.Error()})
}

// requestLogger logs one line per request. Errors are rendered here so the
// logged status is the one the client sees.
func requestLogger(ctx *fiber.Ctx) error {
	start := time.Now()
	if err := ctx.Next(); err != nil {
		if herr := errorHandler(ctx, err); herr != nil {
			return herr
		}
	}
	fields := logrus.Fields{
		"method":   ctx.Method(),
		"path":     ctx.Path(),
		"status":   ctx.Response().StatusCode(),
		"duration": time.Since(start),
	}
	if ctx.Response().StatusCode() >= fiber.StatusInternalServerError {
		logrus.WithFields(fields).Error("request failed")
	} else {
		logrus.WithFields(fields).Debug("request")
	}
	return nil
}

// logPanic records a recovered handler panic; the client gets a 500 from errorHandler.
func logPanic(ctx *fiber.Ctx, e interface{}) {
	logrus.WithFields(logrus.Fields{
		"method": ctx.Method(),
		"path":   ctx.Path(),
	}).Errorf("panic serving request: %v", e)
}
