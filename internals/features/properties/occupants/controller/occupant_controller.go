package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	occupantDTO "rentku_backend/internals/features/properties/occupants/dto"
	"rentku_backend/internals/features/properties/occupants/service"
	helper "rentku_backend/internals/helpers"
)

type OccupantController struct {
	Svc *service.OccupantService
}

func NewOccupantController(db *gorm.DB) *OccupantController {
	return &OccupantController{Svc: service.NewOccupantService(db)}
}

// GET /api/v1/occupants
func (h *OccupantController) List(c *fiber.Ctx) error {
	q, err := helper.BindQuery[occupantDTO.ListOccupantsQuery](c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, helper.DefaultOpts)
	list, total, err := h.Svc.List(c.UserContext(), q, p)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "Occupants fetched", list, total, p)
}

// GET /api/v1/occupants/:id
func (h *OccupantController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	m, err := h.Svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Occupant fetched", m)
}

// POST /api/v1/occupants
func (h *OccupantController) Create(c *fiber.Ctx) error {
	in, err := helper.BindBody[occupantDTO.CreateOccupantRequest](c)
	if err != nil {
		return err
	}
	m, err := h.Svc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Occupant created", m)
}

// PUT /api/v1/occupants/:id
func (h *OccupantController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	in, err := helper.BindUpdate[occupantDTO.UpdateOccupantRequest](c)
	if err != nil {
		return err
	}
	m, err := h.Svc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Occupant updated", m)
}

// DELETE /api/v1/occupants/:id
func (h *OccupantController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.Svc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Occupant deleted", fiber.Map{"id": id})
}
