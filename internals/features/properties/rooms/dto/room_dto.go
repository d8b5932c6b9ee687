package dto

import (
	"strings"

	"github.com/shopspring/decimal"
)

type CreateRoomRequest struct {
	RoomNo        string           `json:"room_no" validate:"required,max=20"`
	Floor         int              `json:"floor" validate:"gte=0"`
	Dimension     *string          `json:"dimension" validate:"omitempty,max=50"`
	NoOfBedRoom   int              `json:"no_of_bed_room" validate:"gte=0"`
	MaxNoOfPeople int              `json:"max_no_of_people" validate:"gte=1"`
	Status        string           `json:"status" validate:"omitempty,oneof=Available Rented InMaintenance Purchased"`
	SellingPrice  *decimal.Decimal `json:"selling_price" validate:"omitempty,gte=0"`
	Description   *string          `json:"description" validate:"omitempty,max=2000"`
}

func (r *CreateRoomRequest) Normalize() {
	r.RoomNo = strings.TrimSpace(r.RoomNo)
	if r.Status == "" {
		r.Status = "Available"
	}
	if r.MaxNoOfPeople == 0 {
		r.MaxNoOfPeople = 1
	}
}

type UpdateRoomRequest struct {
	RoomNo        *string          `json:"room_no" validate:"omitempty,min=1,max=20"`
	Floor         *int             `json:"floor" validate:"omitempty,gte=0"`
	Dimension     *string          `json:"dimension" validate:"omitempty,max=50"`
	NoOfBedRoom   *int             `json:"no_of_bed_room" validate:"omitempty,gte=0"`
	MaxNoOfPeople *int             `json:"max_no_of_people" validate:"omitempty,gte=1"`
	Status        *string          `json:"status" validate:"omitempty,oneof=Available Rented InMaintenance Purchased"`
	SellingPrice  *decimal.Decimal `json:"selling_price" validate:"omitempty,gte=0"`
	Description   *string          `json:"description" validate:"omitempty,max=2000"`
}

func (r *UpdateRoomRequest) Normalize() {
	if r.RoomNo != nil {
		v := strings.TrimSpace(*r.RoomNo)
		r.RoomNo = &v
	}
}

func (r UpdateRoomRequest) HasAnyField() bool {
	return r.RoomNo != nil || r.Floor != nil || r.Dimension != nil ||
		r.NoOfBedRoom != nil || r.MaxNoOfPeople != nil || r.Status != nil ||
		r.SellingPrice != nil || r.Description != nil
}

type ListRoomsQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=Available Rented InMaintenance Purchased"`
	Floor  string `query:"floor" validate:"omitempty,numeric"`
	Search string `query:"search" validate:"omitempty,max=50"`
}
