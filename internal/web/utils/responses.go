package utils

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/lunarfavor/habitkit/internal/habits"
	"github.com/lunarfavor/habitkit/internal/web/models"
)

// SendJSON sends a JSON response using Fiber
func SendJSON(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(data)
}

// SendSuccess sends a successful JSON response
func SendSuccess(c *fiber.Ctx, data interface{}, message string) error {
	return SendJSON(c, http.StatusOK, models.NewSuccessResponse(data, message))
}

// SendError sends an error JSON response
func SendError(c *fiber.Ctx, statusCode int, code, message string, details map[string]string) error {
	return SendJSON(c, statusCode, models.NewErrorResponse(code, message, details))
}

// SendBadRequest sends a bad request error response
func SendBadRequest(c *fiber.Ctx, message string, details map[string]string) error {
	return SendError(c, http.StatusBadRequest, "BAD_REQUEST", message, details)
}

// SendNotFound sends a not found error response
func SendNotFound(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusNotFound, "NOT_FOUND", message, nil)
}

// SendConflict sends a conflict error response
func SendConflict(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusConflict, "CONFLICT", message, nil)
}

// SendInternalServerError sends an internal server error response
func SendInternalServerError(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message, nil)
}

// SendDomainError maps the domain error taxonomy onto HTTP statuses. The
// business-rule outcomes are deterministic, so nothing here retries.
func SendDomainError(c *fiber.Ctx, err error) error {
	if errors.Is(err, habits.ErrHabitNotFound) {
		return SendNotFound(c, err.Error())
	}

	switch habits.KindOf(err) {
	case habits.KindValidation:
		return SendBadRequest(c, err.Error(), nil)
	case habits.KindConflict:
		return SendError(c, http.StatusConflict, "CONFLICT", err.Error(), nil)
	case habits.KindResourceExhausted:
		return SendError(c, http.StatusPaymentRequired, "RESOURCE_EXHAUSTED", err.Error(), nil)
	case habits.KindState:
		return SendError(c, http.StatusUnprocessableEntity, "INVALID_STATE", err.Error(), nil)
	case habits.KindTransient:
		return SendError(c, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "storage temporarily unavailable", nil)
	default:
		return SendInternalServerError(c, "unexpected error")
	}
}
