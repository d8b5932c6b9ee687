package dto

import (
	"strings"

	"github.com/google/uuid"
)

type CreateOccupantRequest struct {
	TenantID uuid.UUID `json:"tenant_id" validate:"required"`
	Name     string    `json:"name" validate:"required,max=100"`
	NRC      *string   `json:"nrc" validate:"omitempty,max=50"`
	Relation *string   `json:"relation" validate:"omitempty,max=50"`
}

func (r *CreateOccupantRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

type UpdateOccupantRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	NRC      *string `json:"nrc" validate:"omitempty,max=50"`
	Relation *string `json:"relation" validate:"omitempty,max=50"`
}

func (r UpdateOccupantRequest) HasAnyField() bool {
	return r.Name != nil || r.NRC != nil || r.Relation != nil
}

type ListOccupantsQuery struct {
	TenantID string `query:"tenant_id" validate:"omitempty,uuid"`
}
