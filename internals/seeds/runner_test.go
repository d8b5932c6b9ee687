package seeds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentku_backend/internals/databases/dbtest"
	contractTypeModel "rentku_backend/internals/features/properties/contract_types/model"
	userModel "rentku_backend/internals/features/users/user/model"
	helper "rentku_backend/internals/helpers"
)

func TestRunAllSeedsIsIdempotent(t *testing.T) {
	t.Setenv("SEED_ADMIN_EMAIL", "Owner@Rentku.Local ")
	t.Setenv("SEED_ADMIN_PASSWORD", "s3cret-pass")
	db := dbtest.Open(t)

	require.NoError(t, RunAllSeeds(db, "."))
	require.NoError(t, RunAllSeeds(db, "."))

	var users, types int64
	require.NoError(t, db.Model(&userModel.UserModel{}).Count(&users).Error)
	require.NoError(t, db.Model(&contractTypeModel.ContractTypeModel{}).Count(&types).Error)
	assert.EqualValues(t, 3, users)
	assert.EqualValues(t, 3, types)

	var owner userModel.UserModel
	require.NoError(t, db.Where("email = ?", "owner@rentku.local").Take(&owner).Error)
	assert.Equal(t, "Admin", owner.Role)
	assert.NoError(t, helper.CheckPasswordHash(owner.Password, "s3cret-pass"))

	var yearly contractTypeModel.ContractTypeModel
	require.NoError(t, db.Where("name = ?", "Yearly").Take(&yearly).Error)
	assert.Equal(t, 12, yearly.Duration)
	assert.NotEmpty(t, yearly.Facilities)
}

func TestRunAllSeedsMissingDir(t *testing.T) {
	db := dbtest.Open(t)
	assert.Error(t, RunAllSeeds(db, "does-not-exist"))
}
