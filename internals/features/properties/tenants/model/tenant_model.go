// file: internals/features/properties/tenants/model/tenant_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	roomModel "rentku_backend/internals/features/properties/rooms/model"
)

// TenantModel: one tenant per room, the room is the billing anchor.
type TenantModel struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"column:name;size:100;not null" json:"name"`
	Email       string    `gorm:"column:email;size:255;not null" json:"email"`
	NRC         string    `gorm:"column:nrc;size:50;not null;uniqueIndex:uq_tenants_nrc" json:"nrc"`
	PhoneNo     string    `gorm:"column:phone_no;size:30;not null" json:"phone_no"`
	EmergencyNo *string   `gorm:"column:emergency_no;size:30" json:"emergency_no,omitempty"`

	RoomID uuid.UUID            `gorm:"column:room_id;type:uuid;not null;uniqueIndex:uq_tenants_room" json:"room_id"`
	Room   *roomModel.RoomModel `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	// kapan masuk ke room_id sekarang; batas bawah riwayat tagihan tenant
	MovedInAt time.Time `gorm:"column:moved_in_at;not null;default:CURRENT_TIMESTAMP" json:"moved_in_at"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TenantModel) TableName() string {
	return "tenants"
}

func (m *TenantModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.MovedInAt.IsZero() {
		m.MovedInAt = tx.NowFunc()
	}
	return nil
}
