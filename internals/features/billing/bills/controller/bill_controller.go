package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"rentku_backend/internals/constants"
	billDTO "rentku_backend/internals/features/billing/bills/dto"
	"rentku_backend/internals/features/billing/bills/service"
	helper "rentku_backend/internals/helpers"
	"rentku_backend/internals/helpers/dbtime"
)

type BillController struct {
	Svc *service.BillService
}

func NewBillController(svc *service.BillService) *BillController {
	return &BillController{Svc: svc}
}

// POST /api/v1/bills
func (bc *BillController) Create(c *fiber.Ctx) error {
	in, err := helper.BindBody[billDTO.CreateBillRequest](c)
	if err != nil {
		return err
	}
	bill, err := bc.Svc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Bill created", billDTO.ToBillResponse(*bill))
}

// GET /api/v1/bills
func (bc *BillController) List(c *fiber.Ctx) error {
	q, err := helper.BindQuery[billDTO.ListBillsQuery](c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, helper.DefaultOpts)
	list, total, err := bc.Svc.List(c.UserContext(), q, p)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "Bills fetched", billDTO.ToBillResponses(list), total, p)
}

// GET /api/v1/bills/:id
func (bc *BillController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	bill, err := bc.Svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Bill fetched", billDTO.ToBillResponse(*bill))
}

// PUT /api/v1/bills/:id
func (bc *BillController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	in, err := helper.BindUpdate[billDTO.UpdateBillRequest](c)
	if err != nil {
		return err
	}
	bill, err := bc.Svc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Bill updated", billDTO.ToBillResponse(*bill))
}

// POST /api/v1/bills/auto-generate
func (bc *BillController) AutoGenerate(c *fiber.Ctx) error {
	var in billDTO.AutoGenerateRequest
	if len(c.Body()) > 0 {
		var err error
		if in, err = helper.BindBody[billDTO.AutoGenerateRequest](c); err != nil {
			return err
		}
	}
	period, err := dbtime.ParsePeriod(in.Period)
	if err != nil {
		return helper.NewValidationError("period", "period must be YYYY-MM")
	}

	res, err := bc.Svc.AutoGenerate(c.UserContext(), period)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Bills generated", billDTO.AutoGenerateResponse{
		Period:    res.Period.String(),
		Generated: res.Generated,
		Skipped:   res.Skipped,
		Failed:    res.Failed,
		BillIDs:   res.BillIDs,
	})
}

// GET /api/v1/tenants/:id/bills/latest
func (bc *BillController) LatestForTenant(c *fiber.Ctx) error {
	id, err := tenantParam(c)
	if err != nil {
		return err
	}
	bill, err := bc.Svc.LatestForTenant(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Latest bill fetched", billDTO.ToBillResponse(*bill))
}

// GET /api/v1/tenants/:id/bills/history
func (bc *BillController) HistoryForTenant(c *fiber.Ctx) error {
	id, err := tenantParam(c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, helper.DefaultOpts)
	list, total, err := bc.Svc.HistoryForTenant(c.UserContext(), id, p)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "Bill history fetched", billDTO.ToBillResponses(list), total, p)
}

// tenantParam reads :id; a Tenant user may only ask for their own record.
func tenantParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return uuid.Nil, err
	}
	if helper.GetUserRole(c) != constants.RoleTenant {
		return id, nil
	}
	own, ok := helper.GetTenantIDFromToken(c)
	if !ok || own != id {
		return uuid.Nil, helper.Forbidden("Tenants can only view their own bills")
	}
	return id, nil
}
