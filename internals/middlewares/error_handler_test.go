package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	helper "rentku_backend/internals/helpers"
)

func decodeEnvelope(t *testing.T, body io.Reader) helper.Envelope {
	t.Helper()
	var env helper.Envelope
	require.NoError(t, json.NewDecoder(body).Decode(&env))
	return env
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"fiber error", helper.NotFound("Bill not found"), fiber.StatusNotFound, "Bill not found"},
		{"bad gateway", helper.BadGateway("Failed to deliver the receipt e-mail"), fiber.StatusBadGateway, "Failed to deliver the receipt e-mail"},
		{"wrapped record not found", fmt.Errorf("load: %w", gorm.ErrRecordNotFound), fiber.StatusNotFound, "Record not found"},
		{"duplicate key", gorm.ErrDuplicatedKey, fiber.StatusBadRequest, "Record already exists"},
		{"unknown error", errors.New("boom"), fiber.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			env := decodeEnvelope(t, resp.Body)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantStatus, env.Status)
			assert.Equal(t, tt.wantMsg, env.Message)
		})
	}
}

func TestErrorHandlerValidation(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/", func(c *fiber.Ctx) error {
		return helper.NewValidationError("billing_period", "billing_period must be YYYY-MM")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	env := decodeEnvelope(t, resp.Body)
	assert.Equal(t, "Validation failed", env.Message)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "billing_period", env.Errors[0].Path)
}

func TestRecoveryGoesThroughErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Use(RecoveryMiddleware())
	app.Get("/", func(c *fiber.Ctx) error { panic("kaboom") })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestRequestTimeout(t *testing.T) {
	app := fiber.New()
	app.Use(RequestTimeout(50 * time.Millisecond))

	var deadline time.Time
	var hasDeadline bool
	app.Get("/", func(c *fiber.Ctx) error {
		deadline, hasDeadline = c.UserContext().Deadline()
		<-c.UserContext().Done()
		if errors.Is(c.UserContext().Err(), context.DeadlineExceeded) {
			return c.SendStatus(fiber.StatusGatewayTimeout)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	start := time.Now()
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), 2000)
	require.NoError(t, err)
	assert.True(t, hasDeadline)
	assert.WithinDuration(t, start.Add(50*time.Millisecond), deadline, time.Second)
	assert.Equal(t, fiber.StatusGatewayTimeout, resp.StatusCode)
}
