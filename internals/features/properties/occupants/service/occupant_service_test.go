package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rentku_backend/internals/constants"
	"rentku_backend/internals/databases/dbtest"
	occupantDTO "rentku_backend/internals/features/properties/occupants/dto"
	roomModel "rentku_backend/internals/features/properties/rooms/model"
	tenantModel "rentku_backend/internals/features/properties/tenants/model"
	helper "rentku_backend/internals/helpers"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "expected *fiber.Error, got %v", err)
	return fe.Code
}

func tenantInRoom(t *testing.T, db *gorm.DB, maxPeople int) tenantModel.TenantModel {
	t.Helper()
	room := roomModel.RoomModel{RoomNo: uuid.NewString()[:8], Floor: 1, MaxNoOfPeople: maxPeople, Status: constants.RoomStatusRented}
	require.NoError(t, db.Create(&room).Error)
	tn := tenantModel.TenantModel{Name: "Tenant", Email: "t@example.com", NRC: uuid.NewString(), PhoneNo: "09", RoomID: room.ID}
	require.NoError(t, db.Create(&tn).Error)
	return tn
}

func TestCreateRespectsRoomCapacity(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewOccupantService(db)
	ctx := context.Background()
	tn := tenantInRoom(t, db, 3)

	// tenant + two occupants fill a room for three
	for _, name := range []string{"Ma Hla", "Ko Zaw"} {
		_, err := svc.Create(ctx, occupantDTO.CreateOccupantRequest{TenantID: tn.ID, Name: name})
		require.NoError(t, err)
	}

	_, err := svc.Create(ctx, occupantDTO.CreateOccupantRequest{TenantID: tn.ID, Name: "One Too Many"})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, statusOf(t, err))
}

func TestCreateSingleRoomHasNoSpace(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewOccupantService(db)
	tn := tenantInRoom(t, db, 1)

	_, err := svc.Create(context.Background(), occupantDTO.CreateOccupantRequest{TenantID: tn.ID, Name: "Ma Hla"})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, statusOf(t, err))
}

func TestCreateUnknownTenant(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewOccupantService(db)

	_, err := svc.Create(context.Background(), occupantDTO.CreateOccupantRequest{TenantID: uuid.New(), Name: "X"})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, statusOf(t, err))
}

func TestUpdateListDelete(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewOccupantService(db)
	ctx := context.Background()
	tn := tenantInRoom(t, db, 4)

	o, err := svc.Create(ctx, occupantDTO.CreateOccupantRequest{TenantID: tn.ID, Name: "Ma Hla"})
	require.NoError(t, err)

	rel := "Sister"
	got, err := svc.Update(ctx, o.ID, occupantDTO.UpdateOccupantRequest{Relation: &rel})
	require.NoError(t, err)
	require.NotNil(t, got.Relation)
	assert.Equal(t, "Sister", *got.Relation)
	assert.Equal(t, "Ma Hla", got.Name)

	list, total, err := svc.List(ctx, occupantDTO.ListOccupantsQuery{TenantID: tn.ID.String()}, helper.Params{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, o.ID))
	err = svc.Delete(ctx, o.ID)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, statusOf(t, err))
}
