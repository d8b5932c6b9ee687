package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rentku_backend/internals/constants"
	database "rentku_backend/internals/databases"
	invoiceDTO "rentku_backend/internals/features/billing/invoices/dto"
	billingModel "rentku_backend/internals/features/billing/model"
	helper "rentku_backend/internals/helpers"
)

const (
	msgInvoiceNotFound = "Invoice not found"
	msgPaidIsDerived   = "Invoice status cannot be set to Paid directly; record a receipt with a paid date instead."
)

type InvoiceService struct {
	DB  *gorm.DB
	UoW database.UnitOfWork
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{DB: db, UoW: database.NewUnitOfWork(db)}
}

// Create opens an invoice for a bill that has none yet. The receipt is
// recorded separately through the receipts endpoint.
func (s *InvoiceService) Create(ctx context.Context, in invoiceDTO.CreateInvoiceRequest) (*billingModel.InvoiceModel, error) {
	status := in.Status
	if status == "" {
		status = constants.InvoiceStatusPending
	}
	if !CanSetDirectly(status) {
		return nil, helper.BadRequest(msgPaidIsDerived)
	}

	var inv billingModel.InvoiceModel
	err := s.UoW.Do(ctx, func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&billingModel.BillModel{}).Where("id = ?", in.BillID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return helper.NotFound("Bill not found")
		}
		if err := tx.Model(&billingModel.InvoiceModel{}).Where("bill_id = ?", in.BillID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return helper.BadRequest("Invoice already exists for this bill.")
		}

		inv = billingModel.InvoiceModel{
			BillID:    in.BillID,
			InvoiceNo: NewInvoiceNo(),
			Status:    status,
		}
		if err := tx.Create(&inv).Error; err != nil {
			return helper.DuplicateOr(err, "Invoice already exists for this bill.")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (s *InvoiceService) Get(ctx context.Context, id uuid.UUID) (*billingModel.InvoiceModel, error) {
	var inv billingModel.InvoiceModel
	if err := s.DB.WithContext(ctx).Preload("Receipt").First(&inv, "id = ?", id).Error; err != nil {
		return nil, helper.NotFoundOr(err, msgInvoiceNotFound)
	}
	return &inv, nil
}

func (s *InvoiceService) List(ctx context.Context, q invoiceDTO.ListInvoicesQuery, p helper.Params) ([]billingModel.InvoiceModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&billingModel.InvoiceModel{})
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.BillID != "" {
		tx = tx.Where("bill_id = ?", q.BillID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []billingModel.InvoiceModel
	if err := tx.Preload("Receipt").
		Order("created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Update moves an unpaid invoice between Pending and Overdue. Paid is only
// ever reached through the receipt.
func (s *InvoiceService) Update(ctx context.Context, id uuid.UUID, in invoiceDTO.UpdateInvoiceRequest) (*billingModel.InvoiceModel, error) {
	if in.Status != nil && !CanSetDirectly(*in.Status) {
		return nil, helper.BadRequest(msgPaidIsDerived)
	}

	err := s.UoW.Do(ctx, func(tx *gorm.DB) error {
		var inv billingModel.InvoiceModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Receipt").
			First(&inv, "id = ?", id).Error; err != nil {
			return helper.NotFoundOr(err, msgInvoiceNotFound)
		}
		if inv.Receipt != nil && inv.Receipt.PaidDate != nil {
			return helper.BadRequest("Invoice is already paid; update its receipt instead.")
		}
		if in.Status == nil {
			return nil
		}
		return tx.Model(&billingModel.InvoiceModel{}).
			Where("id = ?", id).
			Update("status", *in.Status).Error
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}
