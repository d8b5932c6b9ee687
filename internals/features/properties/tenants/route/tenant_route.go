package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentku_backend/internals/constants"
	"rentku_backend/internals/features/properties/tenants/controller"
	authMiddleware "rentku_backend/internals/middlewares/auth"
)

// TenantRoutes: gates sit on each route, /tenants/:id/bills/* stays open
// to Tenant users.
func TenantRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTenantController(db)
	staff := authMiddleware.OnlyRoles(constants.RoleErrorStaff("tenants"), constants.AdminAndStaff...)
	admin := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("tenant deletion"), constants.AdminOnly...)

	r.Get("/tenants", staff, ctrl.List)
	r.Post("/tenants", staff, ctrl.Create)
	r.Get("/tenants/:id", staff, ctrl.Get)
	r.Put("/tenants/:id", staff, ctrl.Update)
	r.Delete("/tenants/:id", admin, ctrl.Delete)
}
