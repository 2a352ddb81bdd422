// Package handlers contains the JSON API handlers.
package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"platewatch/internal/db"
)

// jsonSuccess returns a 200 response with data wrapped in the standard envelope.
func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"data":   data,
	})
}

// jsonCreated returns a 201 response with data wrapped in the standard envelope.
func jsonCreated(c fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "ok",
		"data":   data,
	})
}

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}

// respondError translates domain errors into HTTP responses in one place.
// Anything unrecognized becomes a generic 500 with no internal detail.
func respondError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, db.ErrDuplicateUser):
		return jsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, db.ErrUserNotFound),
		errors.Is(err, db.ErrPriceUpdateNotFound),
		errors.Is(err, db.ErrClaimRequestNotFound):
		return jsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, db.ErrUnknownSubmitter):
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
