package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tenantDTO "rentku_backend/internals/features/properties/tenants/dto"
	"rentku_backend/internals/features/properties/tenants/service"
	helper "rentku_backend/internals/helpers"
)

type TenantController struct {
	Svc *service.TenantService
}

func NewTenantController(db *gorm.DB) *TenantController {
	return &TenantController{Svc: service.NewTenantService(db)}
}

// GET /api/v1/tenants
func (tc *TenantController) List(c *fiber.Ctx) error {
	q, err := helper.BindQuery[tenantDTO.ListTenantsQuery](c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, helper.DefaultOpts)
	list, total, err := tc.Svc.List(c.UserContext(), q, p)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "Tenants fetched", list, total, p)
}

// GET /api/v1/tenants/:id
func (tc *TenantController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	t, err := tc.Svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Tenant fetched", t)
}

// POST /api/v1/tenants
func (tc *TenantController) Create(c *fiber.Ctx) error {
	in, err := helper.BindBody[tenantDTO.CreateTenantRequest](c)
	if err != nil {
		return err
	}
	t, err := tc.Svc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Tenant created", t)
}

// PUT /api/v1/tenants/:id
func (tc *TenantController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	in, err := helper.BindUpdate[tenantDTO.UpdateTenantRequest](c)
	if err != nil {
		return err
	}
	t, err := tc.Svc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Tenant updated", t)
}

// DELETE /api/v1/tenants/:id
func (tc *TenantController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := tc.Svc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Tenant deleted", fiber.Map{"id": id})
}
