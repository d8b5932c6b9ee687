package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contractDTO "rentku_backend/internals/features/properties/contracts/dto"
	"rentku_backend/internals/features/properties/contracts/service"
	helper "rentku_backend/internals/helpers"
)

type ContractController struct {
	Svc *service.ContractService
}

func NewContractController(db *gorm.DB) *ContractController {
	return &ContractController{Svc: service.NewContractService(db)}
}

// GET /api/v1/contracts
func (h *ContractController) List(c *fiber.Ctx) error {
	q, err := helper.BindQuery[contractDTO.ListContractsQuery](c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, helper.DefaultOpts)
	list, total, err := h.Svc.List(c.UserContext(), q, p)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "Contracts fetched", list, total, p)
}

// GET /api/v1/contracts/:id
func (h *ContractController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	m, err := h.Svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Contract fetched", m)
}

// POST /api/v1/contracts
func (h *ContractController) Create(c *fiber.Ctx) error {
	in, err := helper.BindBody[contractDTO.CreateContractRequest](c)
	if err != nil {
		return err
	}
	m, err := h.Svc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Contract created", m)
}

// PUT /api/v1/contracts/:id
func (h *ContractController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	in, err := helper.BindUpdate[contractDTO.UpdateContractRequest](c)
	if err != nil {
		return err
	}
	m, err := h.Svc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Contract updated", m)
}

// DELETE /api/v1/contracts/:id
func (h *ContractController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.Svc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Contract deleted", fiber.Map{"id": id})
}
