package middleware

import (
	"math/rand"
	"strings"
	"time"

	"talentflow-backend/config"
	apimodels "talentflow-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

// WithChaos injects random latency on every request and a random failure on
// write requests. Assessment saves fail at a reduced rate so authoring stays
// usable while still exercising client retry paths.
func WithChaos() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if config.Conf.Chaos.Enabled == nil || !*config.Conf.Chaos.Enabled {
			return ctx.Next()
		}
		sleepRandom()
		if isWrite(ctx.Method()) && shouldFail(ctx.Path()) {
			return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("simulated write failure"))
		}
		return ctx.Next()
	}
}

func sleepRandom() {
	minMs := config.Conf.Chaos.MinLatencyMs
	maxMs := config.Conf.Chaos.MaxLatencyMs
	if maxMs <= minMs {
		time.Sleep(time.Duration(minMs) * time.Millisecond)
		return
	}
	delay := minMs + rand.Intn(maxMs-minMs)
	time.Sleep(time.Duration(delay) * time.Millisecond)
}

func isWrite(method string) bool {
	switch method {
	case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete:
		return true
	}
	return false
}

func shouldFail(path string) bool {
	rate := config.Conf.Chaos.WriteFailPercent
	if strings.Contains(path, "/assessment") {
		rate = config.Conf.Chaos.SaveFailPercent
	}
	return rand.Intn(100) < rate
}
