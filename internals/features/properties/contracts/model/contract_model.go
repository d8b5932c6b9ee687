// file: internals/features/properties/contracts/model/contract_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	contractTypeModel "rentku_backend/internals/features/properties/contract_types/model"
)

// ContractModel binds a tenant to a room under a contract type.
// It is active while expiry_date is after the reference instant.
type ContractModel struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	TenantID       uuid.UUID `gorm:"column:tenant_id;type:uuid;not null;index:ix_contracts_tenant" json:"tenant_id"`
	RoomID         uuid.UUID `gorm:"column:room_id;type:uuid;not null;index:ix_contracts_room_expiry,priority:1" json:"room_id"`
	ContractTypeID uuid.UUID `gorm:"column:contract_type_id;type:uuid;not null;index:ix_contracts_type" json:"contract_type_id"`

	ContractType *contractTypeModel.ContractTypeModel `gorm:"foreignKey:ContractTypeID;references:ID" json:"contract_type,omitempty"`

	CreatedDate time.Time `gorm:"column:created_date;not null" json:"created_date"`
	ExpiryDate  time.Time `gorm:"column:expiry_date;not null;index:ix_contracts_room_expiry,priority:2" json:"expiry_date"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ContractModel) TableName() string {
	return "contracts"
}

func (m *ContractModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// IsActiveAt reports whether the contract has not expired at t.
func (m ContractModel) IsActiveAt(t time.Time) bool {
	return m.ExpiryDate.After(t)
}
