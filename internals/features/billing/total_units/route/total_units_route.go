package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentku_backend/internals/constants"
	"rentku_backend/internals/features/billing/total_units/controller"
	authMiddleware "rentku_backend/internals/middlewares/auth"
)

func TotalUnitsRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTotalUnitsController(db)
	staff := authMiddleware.OnlyRoles(constants.RoleErrorStaff("utility readings"), constants.AdminAndStaff...)

	units := r.Group("/total-units", staff)
	units.Get("/", ctrl.List)
	units.Get("/:id", ctrl.Get)
	units.Put("/:id", ctrl.Update)

	r.Get("/bills/:id/total-units", staff, ctrl.GetByBill)
}
