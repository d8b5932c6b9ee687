// file: internals/features/billing/model/invoice_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// INVOICE (1:1 with bill)
// =========================================================

type InvoiceModel struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	BillID      uuid.UUID `gorm:"column:bill_id;type:uuid;not null;uniqueIndex:uq_invoices_bill" json:"bill_id"`
	InvoiceNo   string    `gorm:"column:invoice_no;size:20;not null;uniqueIndex:uq_invoices_no" json:"invoice_no"`
	Status      string    `gorm:"column:status;type:varchar(10);not null;default:'Pending';index:ix_invoices_status" json:"status"`
	ReceiptSent bool      `gorm:"column:receipt_sent;not null;default:false" json:"receipt_sent"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Receipt *ReceiptModel `gorm:"foreignKey:InvoiceID;references:ID" json:"receipt,omitempty"`
}

func (InvoiceModel) TableName() string {
	return "invoices"
}

func (m *InvoiceModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// =========================================================
// RECEIPT (1:1 with invoice)
// =========================================================

// ReceiptModel: a nil PaidDate means the invoice is not paid yet.
type ReceiptModel struct {
	ID            uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	InvoiceID     uuid.UUID  `gorm:"column:invoice_id;type:uuid;not null;uniqueIndex:uq_receipts_invoice" json:"invoice_id"`
	PaymentMethod string     `gorm:"column:payment_method;type:varchar(20);not null;default:'Cash'" json:"payment_method"`
	PaidDate      *time.Time `gorm:"column:paid_date" json:"paid_date"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ReceiptModel) TableName() string {
	return "receipts"
}

func (m *ReceiptModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
