package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentku_backend/internals/constants"
	"rentku_backend/internals/features/billing/invoices/controller"
	"rentku_backend/internals/features/billing/invoices/service"
	"rentku_backend/internals/helpers/mailer"
	authMiddleware "rentku_backend/internals/middlewares/auth"
)

// InvoiceRoutes mounts /invoices and /receipts. r must carry AuthMiddleware.
func InvoiceRoutes(r fiber.Router, db *gorm.DB, m mailer.Mailer) {
	staff := authMiddleware.OnlyRoles(constants.RoleErrorStaff("billing"), constants.AdminAndStaff...)

	ic := controller.NewInvoiceController(service.NewInvoiceService(db))
	invoices := r.Group("/invoices", staff)
	invoices.Get("/", ic.List)
	invoices.Post("/", ic.Create)
	invoices.Get("/:id", ic.Get)
	invoices.Put("/:id", ic.Update)

	rc := controller.NewReceiptController(service.NewReceiptService(db, m))
	receipts := r.Group("/receipts", staff)
	receipts.Get("/", rc.List)
	receipts.Post("/", rc.Create)
	receipts.Get("/:id", rc.Get)
	receipts.Put("/:id", rc.Update)
	receipts.Post("/:id/send", rc.Send)
}
