// file: internals/features/properties/rooms/model/room_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RoomModel struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	RoomNo        string          `gorm:"column:room_no;size:20;not null;uniqueIndex:uq_rooms_room_no" json:"room_no"`
	Floor         int             `gorm:"column:floor;not null;index:ix_rooms_floor" json:"floor"`
	Dimension     *string         `gorm:"column:dimension;size:50" json:"dimension,omitempty"`
	NoOfBedRoom   int             `gorm:"column:no_of_bed_room;not null;default:1" json:"no_of_bed_room"`
	MaxNoOfPeople int             `gorm:"column:max_no_of_people;not null;default:1" json:"max_no_of_people"`
	Status        string          `gorm:"column:status;type:varchar(20);not null;default:'Available';index:ix_rooms_status" json:"status"`
	SellingPrice  decimal.Decimal `gorm:"column:selling_price;type:decimal(14,2);not null;default:0" json:"selling_price"`
	Description   *string         `gorm:"column:description" json:"description,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (RoomModel) TableName() string {
	return "rooms"
}

func (m *RoomModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
