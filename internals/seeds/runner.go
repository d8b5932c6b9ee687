package seeds

import (
	"path/filepath"

	"gorm.io/gorm"

	contractTypes "rentku_backend/internals/seeds/contract_types"
	users "rentku_backend/internals/seeds/users"
)

// RunAllSeeds loads the JSON fixtures under dir (normally internals/seeds).
// Every seeder skips rows that already exist.
func RunAllSeeds(db *gorm.DB, dir string) error {
	//* Users
	if err := users.SeedAdminFromEnv(db); err != nil {
		return err
	}
	if err := users.SeedUsersFromJSON(db, filepath.Join(dir, "users", "data_users.json")); err != nil {
		return err
	}

	//* Contract types
	return contractTypes.SeedContractTypesFromJSON(db, filepath.Join(dir, "contract_types", "data_contract_types.json"))
}
