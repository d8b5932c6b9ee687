package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentku_backend/internals/constants"
	"rentku_backend/internals/features/analytics/controller"
	authMiddleware "rentku_backend/internals/middlewares/auth"
)

func AnalyticsRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAnalyticsController(db)

	g := r.Group("/analytics",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("analytics"), constants.AdminAndStaff...),
	)
	g.Get("/bills/status", ctrl.BillStatus)
	g.Get("/bills/revenue", ctrl.Revenue)
	g.Get("/contract-types/tenants", ctrl.ContractTypeTenants)
	g.Get("/rooms/status", ctrl.RoomStatus)
}
