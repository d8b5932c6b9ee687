// file: internals/features/properties/contract_types/model/contract_type_model.go
package model

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// =========================================================
// Facilities: text[] on Postgres, encoded text elsewhere
// =========================================================

type Facilities []string

func (f Facilities) Value() (driver.Value, error) {
	if f == nil {
		return pq.StringArray{}.Value()
	}
	return pq.StringArray(f).Value()
}

func (f *Facilities) Scan(src any) error {
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return err
	}
	*f = Facilities(arr)
	return nil
}

func (Facilities) GormDataType() string {
	return "string"
}

func (Facilities) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

// =========================================================
// MODEL
// =========================================================

type ContractTypeModel struct {
	ID         uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name       string          `gorm:"column:name;size:100;not null;uniqueIndex:uq_contract_types_name" json:"name"`
	Duration   int             `gorm:"column:duration;not null" json:"duration"` // months
	Price      decimal.Decimal `gorm:"column:price;type:decimal(14,2);not null" json:"price"`
	Facilities Facilities      `gorm:"column:facilities" json:"facilities"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ContractTypeModel) TableName() string {
	return "contract_types"
}

func (m *ContractTypeModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
