package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contractTypeDTO "rentku_backend/internals/features/properties/contract_types/dto"
	"rentku_backend/internals/features/properties/contract_types/service"
	helper "rentku_backend/internals/helpers"
)

type ContractTypeController struct {
	Svc *service.ContractTypeService
}

func NewContractTypeController(db *gorm.DB) *ContractTypeController {
	return &ContractTypeController{Svc: service.NewContractTypeService(db)}
}

// GET /api/v1/contract-types
func (h *ContractTypeController) List(c *fiber.Ctx) error {
	q, err := helper.BindQuery[contractTypeDTO.ListContractTypesQuery](c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, helper.DefaultOpts)
	list, total, err := h.Svc.List(c.UserContext(), q, p)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "Contract types fetched", list, total, p)
}

// GET /api/v1/contract-types/:id
func (h *ContractTypeController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	m, err := h.Svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Contract type fetched", m)
}

// POST /api/v1/contract-types
func (h *ContractTypeController) Create(c *fiber.Ctx) error {
	in, err := helper.BindBody[contractTypeDTO.CreateContractTypeRequest](c)
	if err != nil {
		return err
	}
	m, err := h.Svc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Contract type created", m)
}

// PUT /api/v1/contract-types/:id
func (h *ContractTypeController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	in, err := helper.BindUpdate[contractTypeDTO.UpdateContractTypeRequest](c)
	if err != nil {
		return err
	}
	m, err := h.Svc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Contract type updated", m)
}

// DELETE /api/v1/contract-types/:id
func (h *ContractTypeController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.Svc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Contract type deleted", fiber.Map{"id": id})
}
