package handlers

import (
	"errors"

	"storefront/internal/logging"
	"storefront/internal/shop"
	"storefront/models"

	"github.com/gofiber/fiber/v2"
)

var httpLog = logging.Component("http")

// respond writes the outcome of a storefront operation. Persistence failures
// do not undo the operation, so they come back as a success with a warning.
func respond(c *fiber.Ctx, message string, data interface{}, err error) error {
	if err == nil {
		return c.JSON(models.SuccessResponse(message, data))
	}

	var verr *shop.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Validation failed", models.ErrorDetail{
			Code:    verr.Code,
			Message: verr.Message,
		}))
	case errors.Is(err, shop.ErrProductNotFound), errors.Is(err, shop.ErrAccountNotFound):
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Not Found", err.Error()))
	case errors.Is(err, shop.ErrDirectoryUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.ErrorResponse("Service Unavailable", err.Error()))
	case errors.Is(err, shop.ErrNotAuthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Unauthorized", err.Error()))
	case shop.IsPersistence(err):
		httpLog.Warn().Err(err).Str("path", c.Path()).Msg("change kept in memory only")
		return c.JSON(models.WarningResponse(message, data, err.Error()))
	default:
		return err
	}
}

func badRequest(c *fiber.Ctx, detail string) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid input", detail))
}
