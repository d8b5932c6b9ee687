package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentku_backend/internals/constants"
	"rentku_backend/internals/features/properties/occupants/controller"
	authMiddleware "rentku_backend/internals/middlewares/auth"
)

func OccupantRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewOccupantController(db)

	g := r.Group("/occupants",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("occupants"), constants.AdminAndStaff...),
	)
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Get("/:id", ctrl.Get)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
