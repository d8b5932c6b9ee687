// file: internals/features/properties/customer_services/model/customer_service_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CustomerServiceModel: maintenance / complaint ticket raised for a room.
type CustomerServiceModel struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	RoomID      uuid.UUID      `gorm:"column:room_id;type:uuid;not null;index:ix_cs_room" json:"room_id"`
	Category    string         `gorm:"column:category;type:varchar(20);not null" json:"category"`
	Description string         `gorm:"column:description;not null" json:"description"`
	Status      string         `gorm:"column:status;type:varchar(20);not null;default:'Pending';index:ix_cs_status" json:"status"`
	Priority    string         `gorm:"column:priority;type:varchar(10);not null;default:'Medium'" json:"priority"`
	Attachments datatypes.JSON `gorm:"column:attachments" json:"attachments,omitempty"`
	IssuedDate  time.Time      `gorm:"column:issued_date;not null" json:"issued_date"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CustomerServiceModel) TableName() string {
	return "customer_services"
}

func (m *CustomerServiceModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.IssuedDate.IsZero() {
		m.IssuedDate = time.Now().UTC()
	}
	return nil
}
