package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentku_backend/internals/constants"
	"rentku_backend/internals/features/users/user/controller"
	authMiddleware "rentku_backend/internals/middlewares/auth"
)

// UserRoutes: Admin only. r must already carry AuthMiddleware.
func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	users := r.Group("/users",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("user management"), constants.AdminOnly...),
	)
	users.Get("/", ctrl.List)
	users.Post("/", ctrl.Create)
	users.Get("/:id", ctrl.Get)
	users.Put("/:id", ctrl.Update)
}
