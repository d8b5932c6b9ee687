package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentku_backend/internals/constants"
	"rentku_backend/internals/features/properties/customer_services/controller"
	authMiddleware "rentku_backend/internals/middlewares/auth"
)

// CustomerServiceRoutes: tenants raise and follow tickets for their own
// room, staff triage them.
func CustomerServiceRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCustomerServiceController(db)
	staff := authMiddleware.OnlyRoles(constants.RoleErrorStaff("ticket triage"), constants.AdminAndStaff...)

	g := r.Group("/customer-services",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("customer services"), constants.AllRoles...),
	)
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Get("/:id", ctrl.Get)
	g.Put("/:id", staff, ctrl.Update)
	g.Delete("/:id", staff, ctrl.Delete)
}
