package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsDTO "rentku_backend/internals/features/analytics/dto"
	"rentku_backend/internals/features/analytics/service"
	helper "rentku_backend/internals/helpers"
)

type AnalyticsController struct {
	Svc *service.AnalyticsService
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{Svc: service.NewAnalyticsService(db)}
}

// GET /api/v1/analytics/bills/status?month=&year=
func (ac *AnalyticsController) BillStatus(c *fiber.Ctx) error {
	q, err := helper.BindQuery[analyticsDTO.MonthQuery](c)
	if err != nil {
		return err
	}
	out, err := ac.Svc.StatusByMonth(c.UserContext(), q)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Bill status summary fetched", out)
}

// GET /api/v1/analytics/bills/revenue?month=&year=
func (ac *AnalyticsController) Revenue(c *fiber.Ctx) error {
	q, err := helper.BindQuery[analyticsDTO.MonthQuery](c)
	if err != nil {
		return err
	}
	out, err := ac.Svc.RevenueByMonth(c.UserContext(), q)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Revenue fetched", out)
}

// GET /api/v1/analytics/contract-types/tenants
func (ac *AnalyticsController) ContractTypeTenants(c *fiber.Ctx) error {
	out, err := ac.Svc.ContractTypeTenants(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Contract type tenants fetched", out)
}

// GET /api/v1/analytics/rooms/status
func (ac *AnalyticsController) RoomStatus(c *fiber.Ctx) error {
	out, err := ac.Svc.RoomStatusCounts(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Room status counts fetched", out)
}
