package utils

import (
	"errors"

	"coursereview/backend/apperrors"

	"github.com/gofiber/fiber/v2"
)

// Result is the body of every mutation endpoint: success flag, message and
// optional extra top-level fields.
func Result(c *fiber.Ctx, status int, success bool, message string, extra ...fiber.Map) error {
	body := fiber.Map{
		"success": success,
		"message": message,
	}
	for _, m := range extra {
		for k, v := range m {
			body[k] = v
		}
	}
	return c.Status(status).JSON(body)
}

// Success sends a 200 response with success=true.
func Success(c *fiber.Ctx, message string, extra ...fiber.Map) error {
	return Result(c, fiber.StatusOK, true, message, extra...)
}

// Created sends a 201 response with success=true.
func Created(c *fiber.Ctx, message string, extra ...fiber.Map) error {
	return Result(c, fiber.StatusCreated, true, message, extra...)
}

// Fail sends a response with success=false.
func Fail(c *fiber.Ctx, status int, message string, extra ...fiber.Map) error {
	return Result(c, status, false, message, extra...)
}

// ValidationError sends the per-field messages of a rejected form.
func ValidationError(c *fiber.Ctx, errors map[string]string) error {
	return Fail(c, fiber.StatusUnprocessableEntity, "Validation failed", fiber.Map{"errors": errors})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusBadRequest, message)
}

func Unauthorized(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusUnauthorized, message)
}

func InternalServerError(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusInternalServerError, message)
}

// ErrorHandler renders errors that escape a handler, including unknown routes.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal Server Error"
	if e, ok := err.(*fiber.Error); ok {
		status = e.Code
		message = e.Message
	}
	return Fail(c, status, message)
}

// ErrorStatus maps an application error to its HTTP status. ok is false for
// errors of no known kind.
func ErrorStatus(err error) (status int, ok bool) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return fiber.StatusNotFound, true
	case errors.Is(err, apperrors.ErrConflict):
		return fiber.StatusConflict, true
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, true
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return fiber.StatusForbidden, true
	case errors.Is(err, apperrors.ErrBadRequest):
		return fiber.StatusBadRequest, true
	}
	return fiber.StatusInternalServerError, false
}

// HandleError answers with the status and message carried by err.
func HandleError(c *fiber.Ctx, err error) error {
	status, ok := ErrorStatus(err)
	if !ok {
		return InternalServerError(c, "Internal Server Error")
	}
	return Fail(c, status, apperrors.Message(err, defaultMessages[status]))
}

var defaultMessages = map[int]string{
	fiber.StatusNotFound:     "Resource not found",
	fiber.StatusConflict:     "Resource already exists",
	fiber.StatusUnauthorized: "Invalid credentials",
	fiber.StatusForbidden:    "Permission denied",
	fiber.StatusBadRequest:   "Bad request",
}
