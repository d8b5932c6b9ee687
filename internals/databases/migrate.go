package database

import (
	"log/slog"

	"gorm.io/gorm"

	billingModel "rentku_backend/internals/features/billing/model"
	contractTypeModel "rentku_backend/internals/features/properties/contract_types/model"
	contractModel "rentku_backend/internals/features/properties/contracts/model"
	csModel "rentku_backend/internals/features/properties/customer_services/model"
	occupantModel "rentku_backend/internals/features/properties/occupants/model"
	roomModel "rentku_backend/internals/features/properties/rooms/model"
	tenantModel "rentku_backend/internals/features/properties/tenants/model"
	authModel "rentku_backend/internals/features/users/auth/model"
	userModel "rentku_backend/internals/features/users/user/model"
)

// Models lists every table in dependency order, parents first.
func Models() []any {
	return []any{
		&roomModel.RoomModel{},
		&tenantModel.TenantModel{},
		&occupantModel.OccupantModel{},
		&contractTypeModel.ContractTypeModel{},
		&contractModel.ContractModel{},
		&csModel.CustomerServiceModel{},
		&billingModel.BillModel{},
		&billingModel.TotalUnitsModel{},
		&billingModel.InvoiceModel{},
		&billingModel.ReceiptModel{},
		&userModel.UserModel{},
		&authModel.RefreshTokenModel{},
		&authModel.TokenBlacklist{},
	}
}

// Migrate brings the schema up to date with the models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}
	slog.Info("schema migrated", "tables", len(Models()))
	return nil
}
