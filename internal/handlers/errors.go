package handlers

import (
	"errors"
	"log"

	"bookstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the Fiber error handler of the API. It converts service
// errors into their status code and a {msg} body. Unexpected errors are
// logged and answered with a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status, msg := classify(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{"msg": msg})
}

func classify(err error) (int, string) {
	var (
		validationErr   *services.ValidationError
		notFoundErr     *services.NotFoundError
		conflictErr     *services.ConflictError
		unauthorizedErr *services.UnauthorizedError
		forbiddenErr    *services.ForbiddenError
		fiberErr        *fiber.Error
	)
	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest, validationErr.Msg
	case errors.As(err, &notFoundErr):
		return fiber.StatusNotFound, notFoundErr.Msg
	case errors.As(err, &conflictErr):
		return fiber.StatusConflict, conflictErr.Msg
	case errors.As(err, &unauthorizedErr):
		return fiber.StatusUnauthorized, unauthorizedErr.Msg
	case errors.As(err, &forbiddenErr):
		return fiber.StatusForbidden, forbiddenErr.Msg
	case errors.As(err, &fiberErr):
		return fiberErr.Code, fiberErr.Message
	default:
		return fiber.StatusInternalServerError, "Internal server error"
	}
}

var errInvalidBody = &services.ValidationError{Msg: "Invalid request body"}

// parseBody decodes a non-empty request body into out. An empty body leaves
// out untouched so the service can report the missing data.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		log.Printf("Error parsing request body on %s %s: %v", c.Method(), c.Path(), err)
		return errInvalidBody
	}
	return nil
}
