package calculator

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	contractModel "rentku_backend/internals/features/properties/contracts/model"
)

// ActiveContract returns the most recent contract of the room with
// expiry_date > asOf, with its contract type loaded, or nil.
func ActiveContract(ctx context.Context, db *gorm.DB, roomID uuid.UUID, asOf time.Time) (*contractModel.ContractModel, error) {
	var c contractModel.ContractModel
	err := db.WithContext(ctx).
		Preload("ContractType").
		Where("room_id = ? AND expiry_date > ?", roomID, asOf.UTC()).
		Order("created_date DESC").
		Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// DeriveRentalFeeFromContract returns the active contract's type price,
// which overrides the supplied fee; without an active contract the
// supplied fee is returned unchanged.
func DeriveRentalFeeFromContract(ctx context.Context, db *gorm.DB, roomID uuid.UUID, asOf time.Time, supplied *decimal.Decimal) (*decimal.Decimal, error) {
	c, err := ActiveContract(ctx, db, roomID, asOf)
	if err != nil {
		return nil, err
	}
	if c == nil || c.ContractType == nil {
		return supplied, nil
	}
	price := c.ContractType.Price
	return &price, nil
}
