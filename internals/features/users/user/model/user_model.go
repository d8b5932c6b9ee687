package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserName string     `gorm:"size:50;not null" json:"user_name"`
	Email    string     `gorm:"size:255;not null;uniqueIndex:uq_users_email" json:"email"`
	Password string     `gorm:"not null" json:"-"`
	Role     string     `gorm:"type:varchar(20);not null;default:'Staff'" json:"role"`
	TenantID *uuid.UUID `gorm:"type:uuid;index:ix_users_tenant" json:"tenant_id,omitempty"`
	IsActive bool       `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
