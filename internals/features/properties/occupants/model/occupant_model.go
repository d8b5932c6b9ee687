// file: internals/features/properties/occupants/model/occupant_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OccupantModel: additional people living in a tenant's room.
type OccupantModel struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	TenantID uuid.UUID `gorm:"column:tenant_id;type:uuid;not null;index:ix_occupants_tenant" json:"tenant_id"`
	Name     string    `gorm:"column:name;size:100;not null" json:"name"`
	NRC      *string   `gorm:"column:nrc;size:50" json:"nrc,omitempty"`
	Relation *string   `gorm:"column:relation;size:50" json:"relation,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (OccupantModel) TableName() string {
	return "occupants"
}

func (m *OccupantModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
