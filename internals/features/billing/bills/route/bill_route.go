package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentku_backend/internals/constants"
	"rentku_backend/internals/features/billing/bills/controller"
	"rentku_backend/internals/features/billing/bills/service"
	"rentku_backend/internals/helpers/mailer"
	"rentku_backend/internals/middlewares"
	authMiddleware "rentku_backend/internals/middlewares/auth"
)

// BillRoutes mounts /bills and the tenant bill views. r must carry
// AuthMiddleware. Tenants reach only their own latest/history.
func BillRoutes(r fiber.Router, db *gorm.DB, m mailer.Mailer) {
	ctrl := controller.NewBillController(service.NewBillService(db, m))

	staff := authMiddleware.OnlyRoles(constants.RoleErrorStaff("billing"), constants.AdminAndStaff...)
	admin := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("bill generation"), constants.AdminOnly...)

	bills := r.Group("/bills")
	bills.Post("/auto-generate", admin, middlewares.BillGenerationRateLimiter(), ctrl.AutoGenerate)
	bills.Get("/", staff, ctrl.List)
	bills.Post("/", staff, ctrl.Create)
	bills.Get("/:id", staff, ctrl.Get)
	bills.Put("/:id", staff, ctrl.Update)

	tenantBills := r.Group("/tenants/:id/bills",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("tenant bills"), constants.AllRoles...),
	)
	tenantBills.Get("/latest", ctrl.LatestForTenant)
	tenantBills.Get("/history", ctrl.HistoryForTenant)
}
