package service

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentku_backend/internals/constants"
	billingModel "rentku_backend/internals/features/billing/model"
)

/* =========================================================
   Invoice status state machine

   Pending <-> Overdue   direct invoice update only
   * -> Paid             receipt gets a paid_date
   Paid -> Pending       receipt paid_date cleared
========================================================= */

// StatusForReceipt returns the invoice status implied by a receipt write.
// An unpaid receipt leaves Overdue alone and drops Paid back to Pending.
func StatusForReceipt(current string, paidDate *time.Time) string {
	if paidDate != nil {
		return constants.InvoiceStatusPaid
	}
	if current == constants.InvoiceStatusOverdue {
		return constants.InvoiceStatusOverdue
	}
	return constants.InvoiceStatusPending
}

// CanSetDirectly reports whether a client may request status s.
func CanSetDirectly(s string) bool {
	return s == constants.InvoiceStatusPending || s == constants.InvoiceStatusOverdue
}

// NewInvoiceNo returns INV- followed by 8 upper-case hex chars.
func NewInvoiceNo() string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		u := uuid.New()
		copy(b[:], u[:4])
	}
	return constants.InvoiceNoPrefix + strings.ToUpper(hex.EncodeToString(b[:]))
}

// CreateForBill inserts the Pending invoice and its unpaid Cash receipt for
// a freshly created bill. tx must be the caller's transaction.
func CreateForBill(tx *gorm.DB, billID uuid.UUID) (*billingModel.InvoiceModel, error) {
	inv := billingModel.InvoiceModel{
		BillID:      billID,
		InvoiceNo:   NewInvoiceNo(),
		Status:      constants.InvoiceStatusPending,
		ReceiptSent: false,
	}
	if err := tx.Create(&inv).Error; err != nil {
		return nil, err
	}
	rc := billingModel.ReceiptModel{
		InvoiceID:     inv.ID,
		PaymentMethod: constants.PaymentMethodCash,
	}
	if err := tx.Create(&rc).Error; err != nil {
		return nil, err
	}
	inv.Receipt = &rc
	return &inv, nil
}
