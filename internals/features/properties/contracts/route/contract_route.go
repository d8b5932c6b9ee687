package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentku_backend/internals/constants"
	"rentku_backend/internals/features/properties/contracts/controller"
	authMiddleware "rentku_backend/internals/middlewares/auth"
)

func ContractRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewContractController(db)

	g := r.Group("/contracts",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("contracts"), constants.AdminAndStaff...),
	)
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Get("/:id", ctrl.Get)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
