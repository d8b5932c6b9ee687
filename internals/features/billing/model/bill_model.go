// file: internals/features/billing/model/bill_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	roomModel "rentku_backend/internals/features/properties/rooms/model"
	"rentku_backend/internals/helpers/dbtime"
)

// =========================================================
// BILL
// =========================================================

// BillModel: one charge per room per billing period. TotalAmount is always
// recomputed server-side from the fee columns.
type BillModel struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	RoomID uuid.UUID `gorm:"column:room_id;type:uuid;not null;uniqueIndex:uq_bills_room_period,priority:1" json:"room_id"`

	BillingPeriod dbtime.Period `gorm:"column:billing_period;not null;uniqueIndex:uq_bills_room_period,priority:2;index:ix_bills_period" json:"billing_period"`

	RentalFee      decimal.Decimal `gorm:"column:rental_fee;type:decimal(14,2);not null;default:0" json:"rental_fee"`
	ElectricityFee decimal.Decimal `gorm:"column:electricity_fee;type:decimal(14,2);not null;default:0" json:"electricity_fee"`
	WaterFee       decimal.Decimal `gorm:"column:water_fee;type:decimal(14,2);not null;default:0" json:"water_fee"`
	FineFee        decimal.Decimal `gorm:"column:fine_fee;type:decimal(14,2);not null;default:0" json:"fine_fee"`
	ServiceFee     decimal.Decimal `gorm:"column:service_fee;type:decimal(14,2);not null;default:0" json:"service_fee"`
	GroundFee      decimal.Decimal `gorm:"column:ground_fee;type:decimal(14,2);not null;default:0" json:"ground_fee"`
	CarParkingFee  decimal.Decimal `gorm:"column:car_parking_fee;type:decimal(14,2);not null;default:0" json:"car_parking_fee"`
	WifiFee        decimal.Decimal `gorm:"column:wifi_fee;type:decimal(14,2);not null;default:0" json:"wifi_fee"`
	TotalAmount    decimal.Decimal `gorm:"column:total_amount;type:decimal(14,2);not null;default:0" json:"total_amount"`

	DueDate   time.Time `gorm:"column:due_date;not null" json:"due_date"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index:ix_bills_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// relations
	Room       *roomModel.RoomModel `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	TotalUnits *TotalUnitsModel     `gorm:"foreignKey:BillID;references:ID" json:"total_units,omitempty"`
	Invoice    *InvoiceModel        `gorm:"foreignKey:BillID;references:ID" json:"invoice,omitempty"`
}

func (BillModel) TableName() string {
	return "bills"
}

func (m *BillModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// =========================================================
// TOTAL UNITS (1:1 with bill)
// =========================================================

type TotalUnitsModel struct {
	ID               uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	BillID           uuid.UUID       `gorm:"column:bill_id;type:uuid;not null;uniqueIndex:uq_total_units_bill" json:"bill_id"`
	ElectricityUnits decimal.Decimal `gorm:"column:electricity_units;type:decimal(12,2);not null;default:0" json:"electricity_units"`
	WaterUnits       decimal.Decimal `gorm:"column:water_units;type:decimal(12,2);not null;default:0" json:"water_units"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TotalUnitsModel) TableName() string {
	return "total_units"
}

func (m *TotalUnitsModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
