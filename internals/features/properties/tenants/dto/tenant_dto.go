package dto

import (
	"strings"

	"github.com/google/uuid"
)

type CreateTenantRequest struct {
	Name        string    `json:"name" validate:"required,max=100"`
	Email       string    `json:"email" validate:"required,email,max=255"`
	NRC         string    `json:"nrc" validate:"required,max=50"`
	PhoneNo     string    `json:"phone_no" validate:"required,max=30"`
	EmergencyNo *string   `json:"emergency_no" validate:"omitempty,max=30"`
	RoomID      uuid.UUID `json:"room_id" validate:"required"`
}

func (r *CreateTenantRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.NRC = strings.TrimSpace(r.NRC)
	r.PhoneNo = strings.TrimSpace(r.PhoneNo)
}

type UpdateTenantRequest struct {
	Name        *string    `json:"name" validate:"omitempty,min=1,max=100"`
	Email       *string    `json:"email" validate:"omitempty,email,max=255"`
	NRC         *string    `json:"nrc" validate:"omitempty,min=1,max=50"`
	PhoneNo     *string    `json:"phone_no" validate:"omitempty,min=1,max=30"`
	EmergencyNo *string    `json:"emergency_no" validate:"omitempty,max=30"`
	RoomID      *uuid.UUID `json:"room_id"`
}

func (r *UpdateTenantRequest) Normalize() {
	trim := func(p **string, lower bool) {
		if *p == nil {
			return
		}
		v := strings.TrimSpace(**p)
		if lower {
			v = strings.ToLower(v)
		}
		*p = &v
	}
	trim(&r.Name, false)
	trim(&r.Email, true)
	trim(&r.NRC, false)
	trim(&r.PhoneNo, false)
}

func (r UpdateTenantRequest) HasAnyField() bool {
	return r.Name != nil || r.Email != nil || r.NRC != nil ||
		r.PhoneNo != nil || r.EmergencyNo != nil || r.RoomID != nil
}

type ListTenantsQuery struct {
	RoomID string `query:"room_id" validate:"omitempty,uuid"`
	Search string `query:"search" validate:"omitempty,max=100"`
}
