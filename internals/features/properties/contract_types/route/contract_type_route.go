package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentku_backend/internals/constants"
	"rentku_backend/internals/features/properties/contract_types/controller"
	authMiddleware "rentku_backend/internals/middlewares/auth"
)

// ContractTypeRoutes: pricing plans are read by Admin and Staff and
// changed by Admin only.
func ContractTypeRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewContractTypeController(db)
	admin := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("contract type changes"), constants.AdminOnly...)

	g := r.Group("/contract-types",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("contract types"), constants.AdminAndStaff...),
	)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Post("/", admin, ctrl.Create)
	g.Put("/:id", admin, ctrl.Update)
	g.Delete("/:id", admin, ctrl.Delete)
}
