package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateContractRequest: created_date defaults to now and expiry_date to
// created_date plus the contract type duration.
type CreateContractRequest struct {
	TenantID       uuid.UUID  `json:"tenant_id" validate:"required"`
	RoomID         uuid.UUID  `json:"room_id" validate:"required"`
	ContractTypeID uuid.UUID  `json:"contract_type_id" validate:"required"`
	CreatedDate    *time.Time `json:"created_date"`
	ExpiryDate     *time.Time `json:"expiry_date"`
}

type UpdateContractRequest struct {
	ContractTypeID *uuid.UUID `json:"contract_type_id"`
	CreatedDate    *time.Time `json:"created_date"`
	ExpiryDate     *time.Time `json:"expiry_date"`
}

func (r UpdateContractRequest) HasAnyField() bool {
	return r.ContractTypeID != nil || r.CreatedDate != nil || r.ExpiryDate != nil
}

type ListContractsQuery struct {
	TenantID string `query:"tenant_id" validate:"omitempty,uuid"`
	RoomID   string `query:"room_id" validate:"omitempty,uuid"`
	Active   string `query:"active" validate:"omitempty,oneof=true false"`
}
