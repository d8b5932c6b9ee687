// file: internals/helpers/params.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys set by the auth middleware
const (
	LocUserID   = "user_id"
	LocUserRole = "userRole"
	LocUserName = "user_name"
	LocTenantID = "tenant_id"
)

// ParseUUIDParam reads a path param and fails with a validation error
// when it is not a UUID.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, NewValidationError(name, name+" must be a valid UUID")
	}
	return id, nil
}

// Ambil user_id dari c.Locals("user_id")
// Return 401 kalau belum login, 400 kalau formatnya tidak valid.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	if v == nil {
		return uuid.Nil, Unauthorized("Unauthorized - user is not logged in")
	}

	var s string
	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, Unauthorized("Unauthorized - user is not logged in")
		}
		return t, nil
	case string:
		s = strings.TrimSpace(t)
	case []byte:
		s = strings.TrimSpace(string(t))
	default:
		return uuid.Nil, BadRequest("Invalid user id in token")
	}

	if s == "" {
		return uuid.Nil, Unauthorized("Unauthorized - user is not logged in")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, BadRequest("Invalid user id in token")
	}
	return id, nil
}

func GetUserRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocUserRole).(string)
	return role
}

// GetTenantIDFromToken returns the tenant linked to a Tenant-role user.
func GetTenantIDFromToken(c *fiber.Ctx) (uuid.UUID, bool) {
	s, ok := c.Locals(LocTenantID).(string)
	if !ok || s == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
