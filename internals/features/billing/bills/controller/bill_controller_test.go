package controller

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentku_backend/internals/constants"
	"rentku_backend/internals/databases/dbtest"
	"rentku_backend/internals/features/billing/bills/service"
	helper "rentku_backend/internals/helpers"
	"rentku_backend/internals/helpers/mailer"
	"rentku_backend/internals/middlewares"
)

// newApp mounts the tenant views behind a stub that plays the auth
// middleware for the given role and tenant.
func newApp(t *testing.T, role, tenantID string) *fiber.App {
	t.Helper()
	ctrl := NewBillController(service.NewBillService(dbtest.Open(t), mailer.LogMailer{}))

	app := fiber.New(fiber.Config{ErrorHandler: middlewares.ErrorHandler})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helper.LocUserRole, role)
		if tenantID != "" {
			c.Locals(helper.LocTenantID, tenantID)
		}
		return c.Next()
	})
	app.Get("/tenants/:id/bills/latest", ctrl.LatestForTenant)
	app.Get("/tenants/:id/bills/history", ctrl.HistoryForTenant)
	app.Post("/bills", ctrl.Create)
	return app
}

func status(t *testing.T, app *fiber.App, method, path, body string) int {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestTenantBillAccess(t *testing.T) {
	own := uuid.New()
	other := uuid.New()

	tenantApp := newApp(t, constants.RoleTenant, own.String())
	// own record passes the guard and hits the empty store
	assert.Equal(t, fiber.StatusNotFound, status(t, tenantApp, "GET", "/tenants/"+own.String()+"/bills/latest", ""))
	assert.Equal(t, fiber.StatusForbidden, status(t, tenantApp, "GET", "/tenants/"+other.String()+"/bills/latest", ""))
	assert.Equal(t, fiber.StatusForbidden, status(t, tenantApp, "GET", "/tenants/"+other.String()+"/bills/history", ""))
	assert.Equal(t, fiber.StatusBadRequest, status(t, tenantApp, "GET", "/tenants/not-a-uuid/bills/latest", ""))

	unlinked := newApp(t, constants.RoleTenant, "")
	assert.Equal(t, fiber.StatusForbidden, status(t, unlinked, "GET", "/tenants/"+own.String()+"/bills/latest", ""))

	staffApp := newApp(t, constants.RoleStaff, "")
	assert.Equal(t, fiber.StatusNotFound, status(t, staffApp, "GET", "/tenants/"+other.String()+"/bills/latest", ""))
}

func TestCreateValidatesBody(t *testing.T) {
	app := newApp(t, constants.RoleStaff, "")

	assert.Equal(t, fiber.StatusBadRequest, status(t, app, "POST", "/bills", `{"room_id":"`+uuid.NewString()+`","electricity_fee":-5}`))
	assert.Equal(t, fiber.StatusBadRequest, status(t, app, "POST", "/bills", `{`))
}
