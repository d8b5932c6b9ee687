package contract_types

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/bytedance/sonic"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	contractTypeModel "rentku_backend/internals/features/properties/contract_types/model"
)

type ContractTypeSeed struct {
	Name       string          `json:"name"`
	Duration   int             `json:"duration"`
	Price      decimal.Decimal `json:"price"`
	Facilities []string        `json:"facilities"`
}

// SeedContractTypesFromJSON upserts by name, leaving existing rows alone.
func SeedContractTypesFromJSON(db *gorm.DB, filePath string) error {
	slog.Info("seeding contract types", "file", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}
	var inputs []ContractTypeSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		return fmt.Errorf("decode %s: %w", filePath, err)
	}

	rows := make([]contractTypeModel.ContractTypeModel, 0, len(inputs))
	for _, in := range inputs {
		rows = append(rows, contractTypeModel.ContractTypeModel{
			Name:       in.Name,
			Duration:   in.Duration,
			Price:      in.Price,
			Facilities: contractTypeModel.Facilities(in.Facilities),
		})
	}
	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&rows)
	if res.Error != nil {
		return res.Error
	}
	slog.Info("contract types seeded", "inserted", res.RowsAffected)
	return nil
}
