package controller

import (
	"errors"

	"github.com/benbeisheim/chess-engine/internal/model"
	"github.com/benbeisheim/chess-engine/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// errorStatus maps service and rules errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrBadRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrNotInGame):
		return fiber.StatusForbidden
	case errors.Is(err, model.ErrGameOver),
		errors.Is(err, service.ErrNotYourTurn),
		errors.Is(err, service.ErrGameFull),
		errors.Is(err, service.ErrGameExists),
		errors.Is(err, service.ErrAlreadyQueued):
		return fiber.StatusConflict
	case errors.Is(err, model.ErrParse), errors.Is(err, model.ErrIllegalMove):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

func respondError(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
		return c.Status(status).JSON(fiber.Map{
			"error": "internal error",
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
