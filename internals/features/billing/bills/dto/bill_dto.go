package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"rentku_backend/internals/features/billing/calculator"
	invoiceDTO "rentku_backend/internals/features/billing/invoices/dto"
	billingModel "rentku_backend/internals/features/billing/model"
)

/* ===================== REQUEST ===================== */

// CreateBillRequest: total_amount is accepted for compatibility and ignored,
// the server always recomputes it. Units default to fee / rate.
type CreateBillRequest struct {
	RoomID        uuid.UUID `json:"room_id" validate:"required"`
	BillingPeriod string    `json:"billing_period" validate:"omitempty,datetime=2006-01"`

	RentalFee      *decimal.Decimal `json:"rental_fee" validate:"omitempty,gte=0"`
	ElectricityFee *decimal.Decimal `json:"electricity_fee" validate:"omitempty,gte=0"`
	WaterFee       *decimal.Decimal `json:"water_fee" validate:"omitempty,gte=0"`
	FineFee        *decimal.Decimal `json:"fine_fee" validate:"omitempty,gte=0"`
	ServiceFee     *decimal.Decimal `json:"service_fee" validate:"omitempty,gte=0"`
	GroundFee      *decimal.Decimal `json:"ground_fee" validate:"omitempty,gte=0"`
	CarParkingFee  *decimal.Decimal `json:"car_parking_fee" validate:"omitempty,gte=0"`
	WifiFee        *decimal.Decimal `json:"wifi_fee" validate:"omitempty,gte=0"`
	TotalAmount    *decimal.Decimal `json:"total_amount"`

	ElectricityUnits *decimal.Decimal `json:"electricity_units" validate:"omitempty,gte=0"`
	WaterUnits       *decimal.Decimal `json:"water_units" validate:"omitempty,gte=0"`

	DueDate *time.Time `json:"due_date"`
}

func (r *CreateBillRequest) Normalize() {
	r.BillingPeriod = strings.TrimSpace(r.BillingPeriod)
}

func (r CreateBillRequest) Fees() calculator.Fees {
	return calculator.Fees{
		Rental:      r.RentalFee,
		Electricity: r.ElectricityFee,
		Water:       r.WaterFee,
		Service:     r.ServiceFee,
		Ground:      r.GroundFee,
		CarParking:  r.CarParkingFee,
		Wifi:        r.WifiFee,
		Fine:        r.FineFee,
	}
}

// UpdateBillRequest: room_id may be sent but must equal the current room.
type UpdateBillRequest struct {
	RoomID *uuid.UUID `json:"room_id"`

	RentalFee      *decimal.Decimal `json:"rental_fee" validate:"omitempty,gte=0"`
	ElectricityFee *decimal.Decimal `json:"electricity_fee" validate:"omitempty,gte=0"`
	WaterFee       *decimal.Decimal `json:"water_fee" validate:"omitempty,gte=0"`
	FineFee        *decimal.Decimal `json:"fine_fee" validate:"omitempty,gte=0"`
	ServiceFee     *decimal.Decimal `json:"service_fee" validate:"omitempty,gte=0"`
	GroundFee      *decimal.Decimal `json:"ground_fee" validate:"omitempty,gte=0"`
	CarParkingFee  *decimal.Decimal `json:"car_parking_fee" validate:"omitempty,gte=0"`
	WifiFee        *decimal.Decimal `json:"wifi_fee" validate:"omitempty,gte=0"`
	TotalAmount    *decimal.Decimal `json:"total_amount"`

	DueDate *time.Time `json:"due_date"`
}

func (r UpdateBillRequest) HasAnyField() bool {
	return r.RoomID != nil || r.RentalFee != nil || r.ElectricityFee != nil ||
		r.WaterFee != nil || r.FineFee != nil || r.ServiceFee != nil ||
		r.GroundFee != nil || r.CarParkingFee != nil || r.WifiFee != nil ||
		r.TotalAmount != nil || r.DueDate != nil
}

type ListBillsQuery struct {
	RoomID        string `query:"room_id" validate:"omitempty,uuid"`
	BillingPeriod string `query:"billing_period" validate:"omitempty,datetime=2006-01"`
	Status        string `query:"status" validate:"omitempty,oneof=Pending Paid Overdue"`
}

type AutoGenerateRequest struct {
	Period string `json:"period" validate:"omitempty,datetime=2006-01"`
}

func (r *AutoGenerateRequest) Normalize() {
	r.Period = strings.TrimSpace(r.Period)
}

/* ===================== RESPONSE ===================== */

type RoomSummary struct {
	ID     uuid.UUID `json:"id"`
	RoomNo string    `json:"room_no"`
	Floor  int       `json:"floor"`
	Status string    `json:"status"`
}

type TotalUnitsResponse struct {
	ID               uuid.UUID       `json:"id"`
	BillID           uuid.UUID       `json:"bill_id"`
	ElectricityUnits decimal.Decimal `json:"electricity_units"`
	WaterUnits       decimal.Decimal `json:"water_units"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type BillResponse struct {
	ID             uuid.UUID       `json:"id"`
	RoomID         uuid.UUID       `json:"room_id"`
	BillingPeriod  string          `json:"billing_period"`
	RentalFee      decimal.Decimal `json:"rental_fee"`
	ElectricityFee decimal.Decimal `json:"electricity_fee"`
	WaterFee       decimal.Decimal `json:"water_fee"`
	FineFee        decimal.Decimal `json:"fine_fee"`
	ServiceFee     decimal.Decimal `json:"service_fee"`
	GroundFee      decimal.Decimal `json:"ground_fee"`
	CarParkingFee  decimal.Decimal `json:"car_parking_fee"`
	WifiFee        decimal.Decimal `json:"wifi_fee"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	DueDate        time.Time       `json:"due_date"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	Room       *RoomSummary                `json:"room,omitempty"`
	TotalUnits *TotalUnitsResponse         `json:"total_units,omitempty"`
	Invoice    *invoiceDTO.InvoiceResponse `json:"invoice,omitempty"`
}

type AutoGenerateResponse struct {
	Period    string      `json:"period"`
	Generated int         `json:"generated"`
	Skipped   int         `json:"skipped"`
	Failed    int         `json:"failed"`
	BillIDs   []uuid.UUID `json:"bill_ids"`
}

func ToTotalUnitsResponse(m billingModel.TotalUnitsModel) TotalUnitsResponse {
	return TotalUnitsResponse{
		ID:               m.ID,
		BillID:           m.BillID,
		ElectricityUnits: m.ElectricityUnits,
		WaterUnits:       m.WaterUnits,
		UpdatedAt:        m.UpdatedAt,
	}
}

func ToBillResponse(m billingModel.BillModel) BillResponse {
	resp := BillResponse{
		ID:             m.ID,
		RoomID:         m.RoomID,
		BillingPeriod:  m.BillingPeriod.String(),
		RentalFee:      m.RentalFee,
		ElectricityFee: m.ElectricityFee,
		WaterFee:       m.WaterFee,
		FineFee:        m.FineFee,
		ServiceFee:     m.ServiceFee,
		GroundFee:      m.GroundFee,
		CarParkingFee:  m.CarParkingFee,
		WifiFee:        m.WifiFee,
		TotalAmount:    m.TotalAmount,
		DueDate:        m.DueDate,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.Room != nil {
		resp.Room = &RoomSummary{
			ID:     m.Room.ID,
			RoomNo: m.Room.RoomNo,
			Floor:  m.Room.Floor,
			Status: m.Room.Status,
		}
	}
	if m.TotalUnits != nil {
		tu := ToTotalUnitsResponse(*m.TotalUnits)
		resp.TotalUnits = &tu
	}
	if m.Invoice != nil {
		inv := invoiceDTO.ToInvoiceResponse(*m.Invoice)
		resp.Invoice = &inv
	}
	return resp
}

func ToBillResponses(list []billingModel.BillModel) []BillResponse {
	out := make([]BillResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToBillResponse(m))
	}
	return out
}
