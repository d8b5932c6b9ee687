// file: internals/helpers/errors.go
package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* ===============================
   Domain errors
=================================*/

func BadRequest(message string) error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func NotFound(message string) error {
	return fiber.NewError(fiber.StatusNotFound, message)
}

func Unauthorized(message string) error {
	return fiber.NewError(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) error {
	return fiber.NewError(fiber.StatusForbidden, message)
}

// BadGateway reports a failing downstream collaborator (SMTP).
func BadGateway(message string) error {
	return fiber.NewError(fiber.StatusBadGateway, message)
}

// FieldError is one failed check of a request body, query or param.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Path+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func NewValidationError(path, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Path: path, Message: message}}}
}

// NotFoundOr maps gorm.ErrRecordNotFound to a 404 with the given message
// and passes every other error through.
func NotFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(message)
	}
	return err
}

// DuplicateOr maps a unique-constraint violation to a 400 with the given
// message. Requires gorm.Config{TranslateError: true}.
func DuplicateOr(err error, message string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return BadRequest(message)
	}
	return err
}
