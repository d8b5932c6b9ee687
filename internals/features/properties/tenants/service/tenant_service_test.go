package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rentku_backend/internals/constants"
	"rentku_backend/internals/databases/dbtest"
	occupantModel "rentku_backend/internals/features/properties/occupants/model"
	roomModel "rentku_backend/internals/features/properties/rooms/model"
	tenantDTO "rentku_backend/internals/features/properties/tenants/dto"
	tenantModel "rentku_backend/internals/features/properties/tenants/model"
	userModel "rentku_backend/internals/features/users/user/model"
	helper "rentku_backend/internals/helpers"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "expected *fiber.Error, got %v", err)
	return fe.Code
}

func newRoom(t *testing.T, db *gorm.DB, no string) roomModel.RoomModel {
	t.Helper()
	r := roomModel.RoomModel{RoomNo: no, Floor: 2, MaxNoOfPeople: 3, Status: constants.RoomStatusAvailable}
	require.NoError(t, db.Create(&r).Error)
	return r
}

func roomStatus(t *testing.T, db *gorm.DB, id uuid.UUID) string {
	t.Helper()
	var r roomModel.RoomModel
	require.NoError(t, db.First(&r, "id = ?", id).Error)
	return r.Status
}

func createReq(roomID uuid.UUID, nrc string) tenantDTO.CreateTenantRequest {
	return tenantDTO.CreateTenantRequest{
		Name:    "Aung Aung",
		Email:   nrc + "@example.com",
		NRC:     nrc,
		PhoneNo: "0912345",
		RoomID:  roomID,
	}
}

func TestCreateClaimsRoom(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewTenantService(db)
	ctx := context.Background()
	room := newRoom(t, db, "A-1")

	got, err := svc.Create(ctx, createReq(room.ID, "12/ABC(N)001"))
	require.NoError(t, err)
	require.NotNil(t, got.Room)
	assert.Equal(t, room.ID, got.Room.ID)
	assert.Equal(t, constants.RoomStatusRented, roomStatus(t, db, room.ID))
}

func TestCreateRejectsOccupiedRoomAndDuplicateNRC(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewTenantService(db)
	ctx := context.Background()
	a := newRoom(t, db, "A-1")
	b := newRoom(t, db, "A-2")

	_, err := svc.Create(ctx, createReq(a.ID, "NRC-1"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, createReq(a.ID, "NRC-2"))
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, statusOf(t, err))

	_, err = svc.Create(ctx, createReq(b.ID, "NRC-1"))
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, statusOf(t, err))
	assert.Equal(t, constants.RoomStatusAvailable, roomStatus(t, db, b.ID), "failed create must not claim the room")

	_, err = svc.Create(ctx, createReq(uuid.New(), "NRC-3"))
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, statusOf(t, err))
}

func TestUpdateMovesRoom(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewTenantService(db)
	ctx := context.Background()
	a := newRoom(t, db, "A-1")
	b := newRoom(t, db, "A-2")

	tn, err := svc.Create(ctx, createReq(a.ID, "NRC-1"))
	require.NoError(t, err)
	assert.False(t, tn.MovedInAt.IsZero())
	longAgo := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Model(&tenantModel.TenantModel{}).Where("id = ?", tn.ID).Update("moved_in_at", longAgo).Error)

	name := "Ko Ko"
	got, err := svc.Update(ctx, tn.ID, tenantDTO.UpdateTenantRequest{Name: &name, RoomID: &b.ID})
	require.NoError(t, err)
	assert.Equal(t, "Ko Ko", got.Name)
	assert.Equal(t, b.ID, got.RoomID)
	assert.Equal(t, constants.RoomStatusAvailable, roomStatus(t, db, a.ID))
	assert.Equal(t, constants.RoomStatusRented, roomStatus(t, db, b.ID))
	assert.True(t, got.MovedInAt.After(longAgo), "moving rooms restarts the tenancy")

	// other edits keep it
	phone := "0998877"
	got, err = svc.Update(ctx, tn.ID, tenantDTO.UpdateTenantRequest{PhoneNo: &phone})
	require.NoError(t, err)
	assert.True(t, got.MovedInAt.After(longAgo))
	moved := got.MovedInAt
	got, err = svc.Update(ctx, tn.ID, tenantDTO.UpdateTenantRequest{Name: &name})
	require.NoError(t, err)
	assert.True(t, got.MovedInAt.Equal(moved))
}

func TestUpdateRejectsTakenRoomAndNRC(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewTenantService(db)
	ctx := context.Background()
	a := newRoom(t, db, "A-1")
	b := newRoom(t, db, "A-2")

	first, err := svc.Create(ctx, createReq(a.ID, "NRC-1"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, createReq(b.ID, "NRC-2"))
	require.NoError(t, err)

	_, err = svc.Update(ctx, first.ID, tenantDTO.UpdateTenantRequest{RoomID: &b.ID})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, statusOf(t, err))

	nrc := "NRC-2"
	_, err = svc.Update(ctx, first.ID, tenantDTO.UpdateTenantRequest{NRC: &nrc})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, statusOf(t, err))

	// same NRC is not a conflict with itself
	own := "NRC-1"
	_, err = svc.Update(ctx, first.ID, tenantDTO.UpdateTenantRequest{NRC: &own})
	require.NoError(t, err)

	_, err = svc.Update(ctx, uuid.New(), tenantDTO.UpdateTenantRequest{NRC: &own})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, statusOf(t, err))
}

func TestDeleteReleasesRoom(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewTenantService(db)
	ctx := context.Background()
	room := newRoom(t, db, "A-1")

	tn, err := svc.Create(ctx, createReq(room.ID, "NRC-1"))
	require.NoError(t, err)
	require.NoError(t, db.Create(&occupantModel.OccupantModel{TenantID: tn.ID, Name: "Ma Ma"}).Error)
	tenantID := tn.ID
	u := userModel.UserModel{UserName: "aung", Email: "aung@example.com", Password: "x", Role: constants.RoleTenant, TenantID: &tenantID, IsActive: true}
	require.NoError(t, db.Create(&u).Error)

	require.NoError(t, svc.Delete(ctx, tn.ID))

	assert.Equal(t, constants.RoomStatusAvailable, roomStatus(t, db, room.ID))
	var n int64
	require.NoError(t, db.Model(&occupantModel.OccupantModel{}).Where("tenant_id = ?", tn.ID).Count(&n).Error)
	assert.Zero(t, n)

	var reloaded userModel.UserModel
	require.NoError(t, db.First(&reloaded, "id = ?", u.ID).Error)
	assert.Nil(t, reloaded.TenantID)
	assert.False(t, reloaded.IsActive)

	_, err = svc.Get(ctx, tn.ID)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, statusOf(t, err))

	err = svc.Delete(ctx, tn.ID)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, statusOf(t, err))
}

func TestListSearch(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewTenantService(db)
	ctx := context.Background()
	a := newRoom(t, db, "A-1")
	b := newRoom(t, db, "A-2")

	_, err := svc.Create(ctx, createReq(a.ID, "NRC-1"))
	require.NoError(t, err)
	other := createReq(b.ID, "NRC-2")
	other.Name = "Su Su"
	_, err = svc.Create(ctx, other)
	require.NoError(t, err)

	p := helper.Params{Page: 1, PerPage: 10}
	list, total, err := svc.List(ctx, tenantDTO.ListTenantsQuery{Search: "su"}, p)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, "Su Su", list[0].Name)

	_, total, err = svc.List(ctx, tenantDTO.ListTenantsQuery{RoomID: a.ID.String()}, p)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	_, total, err = svc.List(ctx, tenantDTO.ListTenantsQuery{}, p)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}
