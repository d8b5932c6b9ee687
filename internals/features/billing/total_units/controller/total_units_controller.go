package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billDTO "rentku_backend/internals/features/billing/bills/dto"
	billingModel "rentku_backend/internals/features/billing/model"
	unitsDTO "rentku_backend/internals/features/billing/total_units/dto"
	"rentku_backend/internals/features/billing/total_units/service"
	helper "rentku_backend/internals/helpers"
)

type TotalUnitsController struct {
	Svc *service.TotalUnitsService
}

func NewTotalUnitsController(db *gorm.DB) *TotalUnitsController {
	return &TotalUnitsController{Svc: service.NewTotalUnitsService(db)}
}

func toResponses(list []billingModel.TotalUnitsModel) []billDTO.TotalUnitsResponse {
	out := make([]billDTO.TotalUnitsResponse, 0, len(list))
	for _, m := range list {
		out = append(out, billDTO.ToTotalUnitsResponse(m))
	}
	return out
}

// GET /api/v1/total-units
func (tc *TotalUnitsController) List(c *fiber.Ctx) error {
	q, err := helper.BindQuery[unitsDTO.ListTotalUnitsQuery](c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, helper.DefaultOpts)
	list, total, err := tc.Svc.List(c.UserContext(), q, p)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "Total units fetched", toResponses(list), total, p)
}

// GET /api/v1/total-units/:id
func (tc *TotalUnitsController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	tu, err := tc.Svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Total units fetched", billDTO.ToTotalUnitsResponse(*tu))
}

// GET /api/v1/bills/:id/total-units
func (tc *TotalUnitsController) GetByBill(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	tu, err := tc.Svc.GetByBill(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Total units fetched", billDTO.ToTotalUnitsResponse(*tu))
}

// PUT /api/v1/total-units/:id
func (tc *TotalUnitsController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	in, err := helper.BindUpdate[unitsDTO.UpdateTotalUnitsRequest](c)
	if err != nil {
		return err
	}
	tu, err := tc.Svc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Total units updated", billDTO.ToTotalUnitsResponse(*tu))
}
