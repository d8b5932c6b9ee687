package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rentku_backend/internals/constants"
	database "rentku_backend/internals/databases"
	invoiceDTO "rentku_backend/internals/features/billing/invoices/dto"
	billingModel "rentku_backend/internals/features/billing/model"
	"rentku_backend/internals/features/billing/notification"
	helper "rentku_backend/internals/helpers"
	"rentku_backend/internals/helpers/mailer"
	"rentku_backend/internals/helpers/metrics"
)

const (
	msgReceiptNotFound = "Receipt not found"
	msgReceiptExists   = "Receipt already exists for this invoice."
)

type ReceiptService struct {
	DB       *gorm.DB
	UoW      database.UnitOfWork
	Notifier *notification.Notifier
}

func NewReceiptService(db *gorm.DB, m mailer.Mailer) *ReceiptService {
	return &ReceiptService{
		DB:       db,
		UoW:      database.NewUnitOfWork(db),
		Notifier: notification.New(m),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// setStatus writes the invoice status implied by the receipt's paid date.
func setStatus(tx *gorm.DB, inv *billingModel.InvoiceModel, paidDate *time.Time) error {
	next := StatusForReceipt(inv.Status, paidDate)
	if next == inv.Status {
		return nil
	}
	if err := tx.Model(&billingModel.InvoiceModel{}).
		Where("id = ?", inv.ID).
		Update("status", next).Error; err != nil {
		return err
	}
	inv.Status = next
	return nil
}

// Create records the one receipt of an invoice and syncs the invoice status
// in the same transaction. The invoice row is locked so concurrent creates
// for one invoice serialize; the unique index catches the rest.
func (s *ReceiptService) Create(ctx context.Context, in invoiceDTO.CreateReceiptRequest) (*billingModel.ReceiptModel, error) {
	var rc billingModel.ReceiptModel
	err := s.UoW.Do(ctx, func(tx *gorm.DB) error {
		var inv billingModel.InvoiceModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&inv, "id = ?", in.InvoiceID).Error; err != nil {
			return helper.NotFoundOr(err, msgInvoiceNotFound)
		}

		var n int64
		if err := tx.Model(&billingModel.ReceiptModel{}).Where("invoice_id = ?", inv.ID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return helper.BadRequest(msgReceiptExists)
		}

		rc = billingModel.ReceiptModel{
			InvoiceID:     inv.ID,
			PaymentMethod: in.PaymentMethod,
			PaidDate:      utcPtr(in.PaidDate),
		}
		if err := tx.Create(&rc).Error; err != nil {
			return helper.DuplicateOr(err, msgReceiptExists)
		}
		return setStatus(tx, &inv, rc.PaidDate)
	})
	if err != nil {
		return nil, err
	}
	return &rc, nil
}

func (s *ReceiptService) Get(ctx context.Context, id uuid.UUID) (*billingModel.ReceiptModel, error) {
	var rc billingModel.ReceiptModel
	if err := s.DB.WithContext(ctx).First(&rc, "id = ?", id).Error; err != nil {
		return nil, helper.NotFoundOr(err, msgReceiptNotFound)
	}
	return &rc, nil
}

func (s *ReceiptService) List(ctx context.Context, q invoiceDTO.ListReceiptsQuery, p helper.Params) ([]billingModel.ReceiptModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&billingModel.ReceiptModel{})
	if q.InvoiceID != "" {
		tx = tx.Where("invoice_id = ?", q.InvoiceID)
	}
	if q.PaymentMethod != "" {
		tx = tx.Where("payment_method = ?", q.PaymentMethod)
	}
	switch q.Paid {
	case "true":
		tx = tx.Where("paid_date IS NOT NULL")
	case "false":
		tx = tx.Where("paid_date IS NULL")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []billingModel.ReceiptModel
	if err := tx.Order("created_at DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Update changes method and/or paid date, then recomputes the invoice status.
func (s *ReceiptService) Update(ctx context.Context, id uuid.UUID, in invoiceDTO.UpdateReceiptRequest) (*billingModel.ReceiptModel, error) {
	err := s.UoW.Do(ctx, func(tx *gorm.DB) error {
		var rc billingModel.ReceiptModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&rc, "id = ?", id).Error; err != nil {
			return helper.NotFoundOr(err, msgReceiptNotFound)
		}
		var inv billingModel.InvoiceModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&inv, "id = ?", rc.InvoiceID).Error; err != nil {
			return helper.NotFoundOr(err, msgInvoiceNotFound)
		}

		updates := map[string]any{}
		if in.PaymentMethod != nil {
			updates["payment_method"] = *in.PaymentMethod
		}
		paidDate := rc.PaidDate
		if in.PaidDate.Set {
			paidDate = utcPtr(in.PaidDate.Value)
			updates["paid_date"] = paidDate
		}
		if len(updates) > 0 {
			if err := tx.Model(&billingModel.ReceiptModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}
		return setStatus(tx, &inv, paidDate)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Send mails the receipt to the room's tenant. Allowed only for a Paid
// invoice with a dated receipt; re-sending just delivers again.
func (s *ReceiptService) Send(ctx context.Context, id uuid.UUID) (*billingModel.InvoiceModel, error) {
	rc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	var inv billingModel.InvoiceModel
	if err := s.DB.WithContext(ctx).First(&inv, "id = ?", rc.InvoiceID).Error; err != nil {
		return nil, helper.NotFoundOr(err, msgInvoiceNotFound)
	}
	if inv.Status != constants.InvoiceStatusPaid || rc.PaidDate == nil {
		return nil, helper.BadRequest("Receipt can only be sent for a paid invoice.")
	}

	var bill billingModel.BillModel
	if err := s.DB.WithContext(ctx).First(&bill, "id = ?", inv.BillID).Error; err != nil {
		return nil, helper.NotFoundOr(err, "Bill not found")
	}
	tenant, err := notification.Recipient(ctx, s.DB, bill.RoomID)
	if err != nil {
		return nil, err
	}

	msg := notification.ReceiptMessage(*tenant, *tenant.Room, bill, inv, *rc)
	if err := s.Notifier.Send(ctx, "receipt", msg); err != nil {
		slog.ErrorContext(ctx, "send receipt", "receipt_id", rc.ID, "to", msg.To, "error", err)
		return nil, helper.BadGateway("Failed to deliver the receipt e-mail")
	}

	if !inv.ReceiptSent {
		if err := s.DB.WithContext(ctx).Model(&billingModel.InvoiceModel{}).
			Where("id = ?", inv.ID).
			Update("receipt_sent", true).Error; err != nil {
			return nil, err
		}
		inv.ReceiptSent = true
	}
	metrics.ReceiptsSent.Inc()
	inv.Receipt = rc
	return &inv, nil
}
