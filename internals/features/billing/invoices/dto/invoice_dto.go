package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	billingModel "rentku_backend/internals/features/billing/model"
	helper "rentku_backend/internals/helpers"
)

/* ===================== INVOICE REQUEST ===================== */

// Status accepts Paid only so the service can answer with a clear 400.
type CreateInvoiceRequest struct {
	BillID uuid.UUID `json:"bill_id" validate:"required"`
	Status string    `json:"status" validate:"omitempty,oneof=Pending Paid Overdue"`
}

func (r *CreateInvoiceRequest) Normalize() {
	r.Status = strings.TrimSpace(r.Status)
}

type UpdateInvoiceRequest struct {
	Status *string `json:"status" validate:"omitempty,oneof=Pending Paid Overdue"`
}

func (r UpdateInvoiceRequest) HasAnyField() bool {
	return r.Status != nil
}

type ListInvoicesQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=Pending Paid Overdue"`
	BillID string `query:"bill_id" validate:"omitempty,uuid"`
}

/* ===================== RECEIPT REQUEST ===================== */

type CreateReceiptRequest struct {
	InvoiceID     uuid.UUID  `json:"invoice_id" validate:"required"`
	PaymentMethod string     `json:"payment_method" validate:"omitempty,oneof=Cash Mobile_Banking"`
	PaidDate      *time.Time `json:"paid_date"`
}

func (r *CreateReceiptRequest) Normalize() {
	r.PaymentMethod = strings.TrimSpace(r.PaymentMethod)
	if r.PaymentMethod == "" {
		r.PaymentMethod = "Cash"
	}
}

// UpdateReceiptRequest: "paid_date": null clears the payment.
type UpdateReceiptRequest struct {
	PaymentMethod *string                    `json:"payment_method" validate:"omitempty,oneof=Cash Mobile_Banking"`
	PaidDate      helper.Optional[time.Time] `json:"paid_date"`
}

func (r UpdateReceiptRequest) HasAnyField() bool {
	return r.PaymentMethod != nil || r.PaidDate.Set
}

type ListReceiptsQuery struct {
	InvoiceID     string `query:"invoice_id" validate:"omitempty,uuid"`
	PaymentMethod string `query:"payment_method" validate:"omitempty,oneof=Cash Mobile_Banking"`
	Paid          string `query:"paid" validate:"omitempty,oneof=true false"`
}

/* ===================== RESPONSE ===================== */

type ReceiptResponse struct {
	ID            uuid.UUID  `json:"id"`
	InvoiceID     uuid.UUID  `json:"invoice_id"`
	PaymentMethod string     `json:"payment_method"`
	PaidDate      *time.Time `json:"paid_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type InvoiceResponse struct {
	ID          uuid.UUID        `json:"id"`
	BillID      uuid.UUID        `json:"bill_id"`
	InvoiceNo   string           `json:"invoice_no"`
	Status      string           `json:"status"`
	ReceiptSent bool             `json:"receipt_sent"`
	Receipt     *ReceiptResponse `json:"receipt,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func ToReceiptResponse(m billingModel.ReceiptModel) ReceiptResponse {
	return ReceiptResponse{
		ID:            m.ID,
		InvoiceID:     m.InvoiceID,
		PaymentMethod: m.PaymentMethod,
		PaidDate:      m.PaidDate,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToReceiptResponses(list []billingModel.ReceiptModel) []ReceiptResponse {
	out := make([]ReceiptResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToReceiptResponse(m))
	}
	return out
}

func ToInvoiceResponse(m billingModel.InvoiceModel) InvoiceResponse {
	resp := InvoiceResponse{
		ID:          m.ID,
		BillID:      m.BillID,
		InvoiceNo:   m.InvoiceNo,
		Status:      m.Status,
		ReceiptSent: m.ReceiptSent,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Receipt != nil {
		rc := ToReceiptResponse(*m.Receipt)
		resp.Receipt = &rc
	}
	return resp
}

func ToInvoiceResponses(list []billingModel.InvoiceModel) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToInvoiceResponse(m))
	}
	return out
}
