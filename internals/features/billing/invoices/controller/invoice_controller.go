package controller

import (
	"github.com/gofiber/fiber/v2"

	invoiceDTO "rentku_backend/internals/features/billing/invoices/dto"
	"rentku_backend/internals/features/billing/invoices/service"
	helper "rentku_backend/internals/helpers"
)

type InvoiceController struct {
	Svc *service.InvoiceService
}

func NewInvoiceController(svc *service.InvoiceService) *InvoiceController {
	return &InvoiceController{Svc: svc}
}

// POST /api/v1/invoices
func (ic *InvoiceController) Create(c *fiber.Ctx) error {
	in, err := helper.BindBody[invoiceDTO.CreateInvoiceRequest](c)
	if err != nil {
		return err
	}
	inv, err := ic.Svc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Invoice created", invoiceDTO.ToInvoiceResponse(*inv))
}

// GET /api/v1/invoices
func (ic *InvoiceController) List(c *fiber.Ctx) error {
	q, err := helper.BindQuery[invoiceDTO.ListInvoicesQuery](c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, helper.DefaultOpts)
	list, total, err := ic.Svc.List(c.UserContext(), q, p)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "Invoices fetched", invoiceDTO.ToInvoiceResponses(list), total, p)
}

// GET /api/v1/invoices/:id
func (ic *InvoiceController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	inv, err := ic.Svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Invoice fetched", invoiceDTO.ToInvoiceResponse(*inv))
}

// PUT /api/v1/invoices/:id
func (ic *InvoiceController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	in, err := helper.BindUpdate[invoiceDTO.UpdateInvoiceRequest](c)
	if err != nil {
		return err
	}
	inv, err := ic.Svc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Invoice updated", invoiceDTO.ToInvoiceResponse(*inv))
}
