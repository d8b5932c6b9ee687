package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	billingModel "rentku_backend/internals/features/billing/model"
	unitsDTO "rentku_backend/internals/features/billing/total_units/dto"
	helper "rentku_backend/internals/helpers"
)

type TotalUnitsService struct {
	DB *gorm.DB
}

func NewTotalUnitsService(db *gorm.DB) *TotalUnitsService {
	return &TotalUnitsService{DB: db}
}

func (s *TotalUnitsService) List(ctx context.Context, q unitsDTO.ListTotalUnitsQuery, p helper.Params) ([]billingModel.TotalUnitsModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&billingModel.TotalUnitsModel{})
	if q.BillID != "" {
		tx = tx.Where("total_units.bill_id = ?", q.BillID)
	}
	if q.RoomID != "" {
		tx = tx.Joins("JOIN bills ON bills.id = total_units.bill_id").
			Where("bills.room_id = ?", q.RoomID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []billingModel.TotalUnitsModel
	if err := tx.Order("total_units.created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (s *TotalUnitsService) Get(ctx context.Context, id uuid.UUID) (*billingModel.TotalUnitsModel, error) {
	var tu billingModel.TotalUnitsModel
	if err := s.DB.WithContext(ctx).First(&tu, "id = ?", id).Error; err != nil {
		return nil, helper.NotFoundOr(err, "Total units not found")
	}
	return &tu, nil
}

func (s *TotalUnitsService) GetByBill(ctx context.Context, billID uuid.UUID) (*billingModel.TotalUnitsModel, error) {
	var tu billingModel.TotalUnitsModel
	if err := s.DB.WithContext(ctx).First(&tu, "bill_id = ?", billID).Error; err != nil {
		return nil, helper.NotFoundOr(err, "Total units not found for this bill")
	}
	return &tu, nil
}

// Update stores a meter reading over the fee-derived estimate. The bill's
// fees and total are untouched.
func (s *TotalUnitsService) Update(ctx context.Context, id uuid.UUID, in unitsDTO.UpdateTotalUnitsRequest) (*billingModel.TotalUnitsModel, error) {
	tu, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if in.ElectricityUnits != nil {
		updates["electricity_units"] = *in.ElectricityUnits
	}
	if in.WaterUnits != nil {
		updates["water_units"] = *in.WaterUnits
	}
	if err := s.DB.WithContext(ctx).Model(tu).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}
