package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentku_backend/internals/constants"
	"rentku_backend/internals/features/properties/rooms/controller"
	authMiddleware "rentku_backend/internals/middlewares/auth"
)

// RoomRoutes: Admin and Staff manage rooms, only Admin deletes.
func RoomRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewRoomController(db)

	rooms := r.Group("/rooms",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("rooms"), constants.AdminAndStaff...),
	)
	rooms.Get("/", ctrl.List)
	rooms.Post("/", ctrl.Create)
	rooms.Get("/:id", ctrl.Get)
	rooms.Put("/:id", ctrl.Update)
	rooms.Delete("/:id",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("room deletion"), constants.AdminOnly...),
		ctrl.Delete,
	)
}
