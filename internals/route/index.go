// file: internals/route/index.go
package routes

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsRoute "rentku_backend/internals/features/analytics/route"
	billRoute "rentku_backend/internals/features/billing/bills/route"
	invoiceRoute "rentku_backend/internals/features/billing/invoices/route"
	totalUnitsRoute "rentku_backend/internals/features/billing/total_units/route"
	contractTypeRoute "rentku_backend/internals/features/properties/contract_types/route"
	contractRoute "rentku_backend/internals/features/properties/contracts/route"
	customerServiceRoute "rentku_backend/internals/features/properties/customer_services/route"
	occupantRoute "rentku_backend/internals/features/properties/occupants/route"
	roomRoute "rentku_backend/internals/features/properties/rooms/route"
	tenantRoute "rentku_backend/internals/features/properties/tenants/route"
	authRoute "rentku_backend/internals/features/users/auth/route"
	userRoute "rentku_backend/internals/features/users/user/route"
	"rentku_backend/internals/helpers/mailer"
	authMiddleware "rentku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, m mailer.Mailer) {
	startTime = time.Now()

	// ===================== BASE =====================
	BaseRoutes(app, db)

	api := app.Group("/api/v1")

	// ===================== AUTH (public + own guards) =====================
	slog.Info("setting up auth routes")
	authRoute.AuthRoutes(api, db)

	// ===================== PRIVATE =====================
	slog.Info("setting up private routes")
	private := api.Group("", authMiddleware.AuthMiddleware(db))

	userRoute.UserRoutes(private, db)

	// properties
	roomRoute.RoomRoutes(private, db)
	tenantRoute.TenantRoutes(private, db)
	occupantRoute.OccupantRoutes(private, db)
	contractTypeRoute.ContractTypeRoutes(private, db)
	contractRoute.ContractRoutes(private, db)
	customerServiceRoute.CustomerServiceRoutes(private, db)

	// billing
	billRoute.BillRoutes(private, db, m)
	invoiceRoute.InvoiceRoutes(private, db, m)
	totalUnitsRoute.TotalUnitsRoutes(private, db)

	analyticsRoute.AnalyticsRoutes(private, db)

	slog.Info("routes ready")
}
