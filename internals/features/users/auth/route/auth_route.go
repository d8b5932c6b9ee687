// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentku_backend/internals/features/users/auth/controller"
	rateLimiter "rentku_backend/internals/middlewares"
	authMiddleware "rentku_backend/internals/middlewares/auth"
)

// AuthRoutes mounts /auth under the given router (normally /api/v1).
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	auth := r.Group("/auth")

	// public
	auth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	auth.Post("/refresh-token", authController.RefreshToken)

	// protected
	protected := auth.Group("", authMiddleware.AuthMiddleware(db))
	protected.Post("/logout", authController.Logout)
	protected.Get("/me", authController.Me)
	protected.Post("/change-password", authController.ChangePassword)
}
