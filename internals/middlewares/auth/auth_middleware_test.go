package auth

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentku_backend/internals/configs"
	"rentku_backend/internals/constants"
	"rentku_backend/internals/databases/dbtest"
	authRepo "rentku_backend/internals/features/users/auth/repository"
	authService "rentku_backend/internals/features/users/auth/service"
	userModel "rentku_backend/internals/features/users/user/model"
	helper "rentku_backend/internals/helpers"
	"rentku_backend/internals/middlewares"
)

const testSecret = "middleware-test-secret"

func issuer() authService.TokenIssuer {
	return authService.TokenIssuer{AccessSecret: testSecret, RefreshSecret: "r", AccessTTL: time.Minute, RefreshTTL: time.Hour}
}

func TestAuthMiddleware(t *testing.T) {
	configs.JWTSecret = testSecret
	db := dbtest.Open(t)

	tenantID := uuid.New()
	user := userModel.UserModel{UserName: "tenant", Email: "t@rentku.local", Password: "x", Role: constants.RoleTenant, TenantID: &tenantID, IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	app := fiber.New(fiber.Config{ErrorHandler: middlewares.ErrorHandler})
	app.Get("/me", AuthMiddleware(db), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":   c.Locals(helper.LocUserID),
			"role":      c.Locals(helper.LocUserRole),
			"tenant_id": c.Locals(helper.LocTenantID),
		})
	})

	call := func(token string) int {
		req := httptest.NewRequest("GET", "/me", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	token, err := issuer().IssueAccess(user, time.Now())
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, call(token))
	assert.Equal(t, fiber.StatusUnauthorized, call(""))
	assert.Equal(t, fiber.StatusUnauthorized, call("garbage"))

	expired, err := issuer().IssueAccess(user, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, call(expired))

	refresh, _, err := issuer().IssueRefresh(user.ID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, call(refresh), "refresh tokens are not accepted")

	require.NoError(t, authRepo.BlacklistToken(context.Background(), db, helper.HashToken(token, testSecret), time.Now().Add(time.Minute)))
	assert.Equal(t, fiber.StatusUnauthorized, call(token))

	fresh, err := issuer().IssueAccess(user, time.Now().Add(time.Second))
	require.NoError(t, err)
	require.NoError(t, db.Model(&user).Update("is_active", false).Error)
	assert.Equal(t, fiber.StatusForbidden, call(fresh))
}

func TestOnlyRoles(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: middlewares.ErrorHandler})
	withRole := func(role string) fiber.Handler {
		return func(c *fiber.Ctx) error {
			if role != "" {
				c.Locals(helper.LocUserRole, role)
			}
			return c.Next()
		}
	}
	gate := OnlyRoles(constants.RoleErrorStaff("billing"), constants.AdminAndStaff...)
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) }

	app.Get("/admin", withRole(constants.RoleAdmin), gate, ok)
	app.Get("/staff", withRole(constants.RoleStaff), gate, ok)
	app.Get("/tenant", withRole(constants.RoleTenant), gate, ok)
	app.Get("/anonymous", withRole(""), gate, ok)

	cases := map[string]int{
		"/admin":     fiber.StatusNoContent,
		"/staff":     fiber.StatusNoContent,
		"/tenant":    fiber.StatusForbidden,
		"/anonymous": fiber.StatusUnauthorized,
	}
	for path, want := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, path)
	}
}
