package dto

import (
	"github.com/shopspring/decimal"
)

// UpdateTotalUnitsRequest overrides the derived consumption with a reading.
type UpdateTotalUnitsRequest struct {
	ElectricityUnits *decimal.Decimal `json:"electricity_units" validate:"omitempty,gte=0"`
	WaterUnits       *decimal.Decimal `json:"water_units" validate:"omitempty,gte=0"`
}

func (r UpdateTotalUnitsRequest) HasAnyField() bool {
	return r.ElectricityUnits != nil || r.WaterUnits != nil
}

type ListTotalUnitsQuery struct {
	BillID string `query:"bill_id" validate:"omitempty,uuid"`
	RoomID string `query:"room_id" validate:"omitempty,uuid"`
}
