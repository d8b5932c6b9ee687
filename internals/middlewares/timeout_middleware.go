package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// DefaultRequestTimeout matches statement_timeout on the DB side.
const DefaultRequestTimeout = 5 * time.Second

// RequestTimeout puts a deadline on c.UserContext(). Services pass that
// context to GORM, so slow queries are cancelled instead of piling up.
func RequestTimeout(d time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), d)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
