package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rentku_backend/internals/constants"
	"rentku_backend/internals/databases/dbtest"
	contractTypeModel "rentku_backend/internals/features/properties/contract_types/model"
	contractDTO "rentku_backend/internals/features/properties/contracts/dto"
	roomModel "rentku_backend/internals/features/properties/rooms/model"
	tenantModel "rentku_backend/internals/features/properties/tenants/model"
	helper "rentku_backend/internals/helpers"
)

var fixedNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

type fixture struct {
	room    roomModel.RoomModel
	tenant  tenantModel.TenantModel
	monthly contractTypeModel.ContractTypeModel
	yearly  contractTypeModel.ContractTypeModel
}

func setup(t *testing.T) (*ContractService, *gorm.DB, fixture) {
	t.Helper()
	db := dbtest.Open(t)
	svc := NewContractService(db)
	svc.Now = func() time.Time { return fixedNow }

	var f fixture
	f.room = roomModel.RoomModel{RoomNo: "B-1", Floor: 2, Status: constants.RoomStatusRented}
	require.NoError(t, db.Create(&f.room).Error)
	f.tenant = tenantModel.TenantModel{Name: "Tenant", Email: "t@example.com", NRC: "NRC-1", PhoneNo: "09", RoomID: f.room.ID}
	require.NoError(t, db.Create(&f.tenant).Error)
	f.monthly = contractTypeModel.ContractTypeModel{Name: "Monthly", Duration: 1, Price: decimal.NewFromInt(250000)}
	require.NoError(t, db.Create(&f.monthly).Error)
	f.yearly = contractTypeModel.ContractTypeModel{Name: "Yearly", Duration: 12, Price: decimal.NewFromInt(200000)}
	require.NoError(t, db.Create(&f.yearly).Error)
	return svc, db, f
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "expected *fiber.Error, got %v", err)
	return fe.Code
}

func (f fixture) request(typeID uuid.UUID) contractDTO.CreateContractRequest {
	return contractDTO.CreateContractRequest{TenantID: f.tenant.ID, RoomID: f.room.ID, ContractTypeID: typeID}
}

func TestCreateDerivesExpiryFromDuration(t *testing.T) {
	svc, _, f := setup(t)

	c, err := svc.Create(context.Background(), f.request(f.yearly.ID))
	require.NoError(t, err)
	assert.True(t, c.CreatedDate.Equal(fixedNow))
	assert.True(t, c.ExpiryDate.Equal(time.Date(2027, 3, 15, 10, 0, 0, 0, time.UTC)), "got %v", c.ExpiryDate)
	require.NotNil(t, c.ContractType)
	assert.Equal(t, "Yearly", c.ContractType.Name)
}

func TestCreateClampsMonthEnd(t *testing.T) {
	svc, _, f := setup(t)

	start := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	req := f.request(f.monthly.ID)
	req.CreatedDate = &start
	c, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, c.ExpiryDate.Equal(time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)), "got %v", c.ExpiryDate)
}

func TestCreateRejections(t *testing.T) {
	svc, db, f := setup(t)
	ctx := context.Background()

	other := roomModel.RoomModel{RoomNo: "B-2", Floor: 2}
	require.NoError(t, db.Create(&other).Error)
	req := f.request(f.monthly.ID)
	req.RoomID = other.ID
	_, err := svc.Create(ctx, req)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, statusOf(t, err), "tenant lives elsewhere")

	_, err = svc.Create(ctx, f.request(uuid.New()))
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, statusOf(t, err), "unknown contract type")

	past := fixedNow.AddDate(0, -1, 0)
	req = f.request(f.monthly.ID)
	req.ExpiryDate = &past
	_, err = svc.Create(ctx, req)
	var vErr *helper.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "expiry_date", vErr.Errors[0].Path)

	_, err = svc.Create(ctx, f.request(f.monthly.ID))
	require.NoError(t, err)
	_, err = svc.Create(ctx, f.request(f.yearly.ID))
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, statusOf(t, err), "room already has an active contract")
}

func TestCreateAfterExpiredContract(t *testing.T) {
	svc, _, f := setup(t)
	ctx := context.Background()

	start := fixedNow.AddDate(0, -3, 0)
	req := f.request(f.monthly.ID)
	req.CreatedDate = &start
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, f.request(f.yearly.ID))
	require.NoError(t, err)
}

func TestUpdateSwitchesType(t *testing.T) {
	svc, _, f := setup(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, f.request(f.monthly.ID))
	require.NoError(t, err)

	got, err := svc.Update(ctx, c.ID, contractDTO.UpdateContractRequest{ContractTypeID: &f.yearly.ID})
	require.NoError(t, err)
	assert.Equal(t, f.yearly.ID, got.ContractTypeID)
	assert.True(t, got.ExpiryDate.Equal(time.Date(2027, 3, 15, 10, 0, 0, 0, time.UTC)), "got %v", got.ExpiryDate)

	early := fixedNow.AddDate(0, 0, -1)
	_, err = svc.Update(ctx, c.ID, contractDTO.UpdateContractRequest{ExpiryDate: &early})
	require.ErrorAs(t, err, new(*helper.ValidationError))

	_, err = svc.Update(ctx, uuid.New(), contractDTO.UpdateContractRequest{ExpiryDate: &early})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, statusOf(t, err))
}

func TestListActive(t *testing.T) {
	svc, _, f := setup(t)
	ctx := context.Background()

	start := fixedNow.AddDate(0, -3, 0)
	req := f.request(f.monthly.ID)
	req.CreatedDate = &start
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)
	_, err = svc.Create(ctx, f.request(f.yearly.ID))
	require.NoError(t, err)

	p := helper.Params{Page: 1, PerPage: 10}
	list, total, err := svc.List(ctx, contractDTO.ListContractsQuery{Active: "true"}, p)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, f.yearly.ID, list[0].ContractTypeID)

	_, total, err = svc.List(ctx, contractDTO.ListContractsQuery{Active: "false"}, p)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	_, total, err = svc.List(ctx, contractDTO.ListContractsQuery{TenantID: f.tenant.ID.String()}, p)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}
