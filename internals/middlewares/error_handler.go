package middlewares

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "rentku_backend/internals/helpers"
)

// ErrorHandler is the single place where errors become HTTP responses.
// Validation errors carry field details, *fiber.Error keeps its code, and
// anything else is logged and answered with a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var vErr *helper.ValidationError
	if errors.As(err, &vErr) {
		return helper.JsonValidationError(c, vErr.Errors)
	}

	var fErr *fiber.Error
	if errors.As(err, &fErr) {
		if fErr.Code >= fiber.StatusInternalServerError {
			logUnhandled(c, err)
		}
		return helper.JsonError(c, fErr.Code, fErr.Message)
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return helper.JsonError(c, fiber.StatusBadRequest, "Record already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return helper.JsonError(c, fiber.StatusBadRequest, "Referenced record does not exist")
	}

	logUnhandled(c, err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
}

func logUnhandled(c *fiber.Ctx, err error) {
	slog.ErrorContext(c.UserContext(), "unhandled error",
		"method", c.Method(),
		"url", c.OriginalURL(),
		"origin", c.Get(fiber.HeaderOrigin),
		"error_type", errorType(err),
		"error", err.Error(),
	)
}

func errorType(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			break
		}
		err = next
	}
	return fmt.Sprintf("%T", err)
}
