package controller

import (
	"github.com/gofiber/fiber/v2"

	invoiceDTO "rentku_backend/internals/features/billing/invoices/dto"
	"rentku_backend/internals/features/billing/invoices/service"
	helper "rentku_backend/internals/helpers"
)

type ReceiptController struct {
	Svc *service.ReceiptService
}

func NewReceiptController(svc *service.ReceiptService) *ReceiptController {
	return &ReceiptController{Svc: svc}
}

// POST /api/v1/receipts
func (rc *ReceiptController) Create(c *fiber.Ctx) error {
	in, err := helper.BindBody[invoiceDTO.CreateReceiptRequest](c)
	if err != nil {
		return err
	}
	r, err := rc.Svc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Receipt created", invoiceDTO.ToReceiptResponse(*r))
}

// GET /api/v1/receipts
func (rc *ReceiptController) List(c *fiber.Ctx) error {
	q, err := helper.BindQuery[invoiceDTO.ListReceiptsQuery](c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, helper.DefaultOpts)
	list, total, err := rc.Svc.List(c.UserContext(), q, p)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "Receipts fetched", invoiceDTO.ToReceiptResponses(list), total, p)
}

// GET /api/v1/receipts/:id
func (rc *ReceiptController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	r, err := rc.Svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Receipt fetched", invoiceDTO.ToReceiptResponse(*r))
}

// PUT /api/v1/receipts/:id
func (rc *ReceiptController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	in, err := helper.BindUpdate[invoiceDTO.UpdateReceiptRequest](c)
	if err != nil {
		return err
	}
	r, err := rc.Svc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Receipt updated", invoiceDTO.ToReceiptResponse(*r))
}

// POST /api/v1/receipts/:id/send
func (rc *ReceiptController) Send(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	inv, err := rc.Svc.Send(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Receipt sent", invoiceDTO.ToInvoiceResponse(*inv))
}
