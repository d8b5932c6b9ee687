package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentku_backend/internals/constants"
	csDTO "rentku_backend/internals/features/properties/customer_services/dto"
	"rentku_backend/internals/features/properties/customer_services/service"
	helper "rentku_backend/internals/helpers"
)

type CustomerServiceController struct {
	Svc *service.CustomerServiceService
}

func NewCustomerServiceController(db *gorm.DB) *CustomerServiceController {
	return &CustomerServiceController{Svc: service.NewCustomerServiceService(db)}
}

// GET /api/v1/customer-services
func (h *CustomerServiceController) List(c *fiber.Ctx) error {
	q, err := helper.BindQuery[csDTO.ListCustomerServicesQuery](c)
	if err != nil {
		return err
	}
	if roomID, scoped, err := h.tenantRoom(c); err != nil {
		return err
	} else if scoped {
		q.RoomID = roomID.String()
	}
	p := helper.ParseFiber(c, helper.DefaultOpts)
	list, total, err := h.Svc.List(c.UserContext(), q, p)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "Customer service tickets fetched", list, total, p)
}

// GET /api/v1/customer-services/:id
func (h *CustomerServiceController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	m, err := h.Svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	if roomID, scoped, err := h.tenantRoom(c); err != nil {
		return err
	} else if scoped && m.RoomID != roomID {
		return helper.NotFound("Customer service ticket not found")
	}
	return helper.JsonOK(c, "Customer service ticket fetched", m)
}

// POST /api/v1/customer-services
func (h *CustomerServiceController) Create(c *fiber.Ctx) error {
	in, err := helper.BindBody[csDTO.CreateCustomerServiceRequest](c)
	if err != nil {
		return err
	}
	if roomID, scoped, err := h.tenantRoom(c); err != nil {
		return err
	} else if scoped {
		in.RoomID = roomID
	}
	m, err := h.Svc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Customer service ticket created", m)
}

// PUT /api/v1/customer-services/:id
func (h *CustomerServiceController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	in, err := helper.BindUpdate[csDTO.UpdateCustomerServiceRequest](c)
	if err != nil {
		return err
	}
	m, err := h.Svc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Customer service ticket updated", m)
}

// DELETE /api/v1/customer-services/:id
func (h *CustomerServiceController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.Svc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Customer service ticket deleted", fiber.Map{"id": id})
}

// tenantRoom pins Tenant users to their own room.
func (h *CustomerServiceController) tenantRoom(c *fiber.Ctx) (uuid.UUID, bool, error) {
	if helper.GetUserRole(c) != constants.RoleTenant {
		return uuid.Nil, false, nil
	}
	tenantID, ok := helper.GetTenantIDFromToken(c)
	if !ok {
		return uuid.Nil, false, helper.Forbidden("Account is not linked to a tenant")
	}
	roomID, err := h.Svc.RoomOfTenant(c.UserContext(), tenantID)
	return roomID, true, err
}
