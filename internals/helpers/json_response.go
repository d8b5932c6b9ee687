// file: internals/helpers/json_response.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

func init() {
	// fees and units go out as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

/* ===============================
   Envelope
=================================*/

type Envelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Content any          `json:"content"`
	Status  int          `json:"status"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func respond(c *fiber.Ctx, status int, message, fallback string, content any) error {
	if strings.TrimSpace(message) == "" {
		message = fallback
	}
	return c.Status(status).JSON(Envelope{
		Success: status < 400,
		Message: message,
		Content: content,
		Status:  status,
	})
}

/* ===============================
   JSON responses (standard success)
=================================*/

// JsonOK: response sukses generic (GET detail, dsb)
func JsonOK(c *fiber.Ctx, message string, content any) error {
	return respond(c, fiber.StatusOK, message, "ok", content)
}

// JsonCreated: response sukses create (POST)
func JsonCreated(c *fiber.Ctx, message string, content any) error {
	return respond(c, fiber.StatusCreated, message, "created", content)
}

// JsonUpdated: response sukses update (PUT)
func JsonUpdated(c *fiber.Ctx, message string, content any) error {
	return respond(c, fiber.StatusOK, message, "updated", content)
}

// JsonDeleted: response sukses delete (DELETE)
func JsonDeleted(c *fiber.Ctx, message string, content any) error {
	return respond(c, fiber.StatusOK, message, "deleted", content)
}

// JsonList wraps one page of rows with meta and fully qualified links.
func JsonList[T any](c *fiber.Ctx, message string, data []T, total int64, p Params) error {
	if data == nil {
		data = []T{}
	}
	meta := BuildMeta(total, p)
	return respond(c, fiber.StatusOK, message, "ok", Paginated[T]{
		Data:  data,
		Meta:  meta,
		Links: BuildLinks(c, meta),
	})
}

/* ===============================
   Error helpers (standard shape)
=================================*/

// JsonError: error generic (bukan validasi)
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(Envelope{
		Success: false,
		Message: message,
		Content: nil,
		Status:  status,
	})
}

// JsonValidationError: khusus error validasi (400 + errors[])
func JsonValidationError(c *fiber.Ctx, fieldErrors []FieldError) error {
	if fieldErrors == nil {
		fieldErrors = []FieldError{}
	}
	return c.Status(fiber.StatusBadRequest).JSON(Envelope{
		Success: false,
		Message: "Validation failed",
		Content: nil,
		Status:  fiber.StatusBadRequest,
		Errors:  fieldErrors,
	})
}
