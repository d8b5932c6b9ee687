package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateCustomerServiceRequest struct {
	RoomID      uuid.UUID  `json:"room_id"`
	Category    string     `json:"category" validate:"required,oneof=Complain Maintenance Other"`
	Description string     `json:"description" validate:"required,max=2000"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=High Medium Low"`
	Attachments []string   `json:"attachments" validate:"omitempty,max=10,dive,url"`
	IssuedDate  *time.Time `json:"issued_date"`
}

func (r *CreateCustomerServiceRequest) Normalize() {
	r.Description = strings.TrimSpace(r.Description)
	if r.Priority == "" {
		r.Priority = "Medium"
	}
}

type UpdateCustomerServiceRequest struct {
	Category    *string   `json:"category" validate:"omitempty,oneof=Complain Maintenance Other"`
	Description *string   `json:"description" validate:"omitempty,min=1,max=2000"`
	Status      *string   `json:"status" validate:"omitempty,oneof=Pending Ongoing Resolved"`
	Priority    *string   `json:"priority" validate:"omitempty,oneof=High Medium Low"`
	Attachments *[]string `json:"attachments" validate:"omitempty,max=10,dive,url"`
}

func (r UpdateCustomerServiceRequest) HasAnyField() bool {
	return r.Category != nil || r.Description != nil || r.Status != nil ||
		r.Priority != nil || r.Attachments != nil
}

type ListCustomerServicesQuery struct {
	RoomID   string `query:"room_id" validate:"omitempty,uuid"`
	Status   string `query:"status" validate:"omitempty,oneof=Pending Ongoing Resolved"`
	Category string `query:"category" validate:"omitempty,oneof=Complain Maintenance Other"`
	Priority string `query:"priority" validate:"omitempty,oneof=High Medium Low"`
}
