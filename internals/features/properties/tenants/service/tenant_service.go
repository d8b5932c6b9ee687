package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentku_backend/internals/constants"
	database "rentku_backend/internals/databases"
	occupantModel "rentku_backend/internals/features/properties/occupants/model"
	roomModel "rentku_backend/internals/features/properties/rooms/model"
	tenantDTO "rentku_backend/internals/features/properties/tenants/dto"
	tenantModel "rentku_backend/internals/features/properties/tenants/model"
	userModel "rentku_backend/internals/features/users/user/model"
	helper "rentku_backend/internals/helpers"
)

const (
	msgNRCTaken     = "NRC already exists"
	msgRoomOccupied = "Room is already occupied"
	msgNotFound     = "Tenant not found"
)

type TenantService struct {
	DB  *gorm.DB
	UoW database.UnitOfWork
}

func NewTenantService(db *gorm.DB) *TenantService {
	return &TenantService{DB: db, UoW: database.NewUnitOfWork(db)}
}

func nrcTaken(tx *gorm.DB, nrc string, except uuid.UUID) error {
	var n int64
	if err := tx.Model(&tenantModel.TenantModel{}).
		Where("nrc = ? AND id <> ?", nrc, except).
		Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return helper.BadRequest(msgNRCTaken)
	}
	return nil
}

// claimRoom checks the room exists and is free, then marks it Rented.
func claimRoom(tx *gorm.DB, roomID, except uuid.UUID) error {
	var room roomModel.RoomModel
	if err := tx.First(&room, "id = ?", roomID).Error; err != nil {
		return helper.NotFoundOr(err, "Room not found")
	}
	var n int64
	if err := tx.Model(&tenantModel.TenantModel{}).
		Where("room_id = ? AND id <> ?", roomID, except).
		Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return helper.BadRequest(msgRoomOccupied)
	}
	return setRoomStatus(tx, roomID, constants.RoomStatusRented)
}

func setRoomStatus(tx *gorm.DB, roomID uuid.UUID, status string) error {
	return tx.Model(&roomModel.RoomModel{}).Where("id = ?", roomID).Update("status", status).Error
}

func (s *TenantService) Create(ctx context.Context, in tenantDTO.CreateTenantRequest) (*tenantModel.TenantModel, error) {
	t := tenantModel.TenantModel{
		Name:        in.Name,
		Email:       in.Email,
		NRC:         in.NRC,
		PhoneNo:     in.PhoneNo,
		EmergencyNo: in.EmergencyNo,
		RoomID:      in.RoomID,
	}
	err := s.UoW.Do(ctx, func(tx *gorm.DB) error {
		if err := nrcTaken(tx, in.NRC, uuid.Nil); err != nil {
			return err
		}
		if err := claimRoom(tx, in.RoomID, uuid.Nil); err != nil {
			return err
		}
		if err := tx.Create(&t).Error; err != nil {
			return helper.DuplicateOr(err, "Tenant already exists for this NRC or room")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, t.ID)
}

func (s *TenantService) Get(ctx context.Context, id uuid.UUID) (*tenantModel.TenantModel, error) {
	var t tenantModel.TenantModel
	if err := s.DB.WithContext(ctx).Preload("Room").First(&t, "id = ?", id).Error; err != nil {
		return nil, helper.NotFoundOr(err, msgNotFound)
	}
	return &t, nil
}

func (s *TenantService) List(ctx context.Context, q tenantDTO.ListTenantsQuery, p helper.Params) ([]tenantModel.TenantModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&tenantModel.TenantModel{})
	if q.RoomID != "" {
		tx = tx.Where("room_id = ?", q.RoomID)
	}
	if v := strings.TrimSpace(q.Search); v != "" {
		like := "%" + strings.ToLower(v) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(nrc) LIKE ?", like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []tenantModel.TenantModel
	if err := tx.Preload("Room").Order("created_at DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Update may move the tenant to another free room; the old room goes back
// to Available.
func (s *TenantService) Update(ctx context.Context, id uuid.UUID, in tenantDTO.UpdateTenantRequest) (*tenantModel.TenantModel, error) {
	err := s.UoW.Do(ctx, func(tx *gorm.DB) error {
		var t tenantModel.TenantModel
		if err := tx.First(&t, "id = ?", id).Error; err != nil {
			return helper.NotFoundOr(err, msgNotFound)
		}

		updates := map[string]any{}
		if in.Name != nil {
			updates["name"] = *in.Name
		}
		if in.Email != nil {
			updates["email"] = *in.Email
		}
		if in.NRC != nil && *in.NRC != t.NRC {
			if err := nrcTaken(tx, *in.NRC, id); err != nil {
				return err
			}
			updates["nrc"] = *in.NRC
		}
		if in.PhoneNo != nil {
			updates["phone_no"] = *in.PhoneNo
		}
		if in.EmergencyNo != nil {
			updates["emergency_no"] = *in.EmergencyNo
		}
		if in.RoomID != nil && *in.RoomID != t.RoomID {
			if err := claimRoom(tx, *in.RoomID, id); err != nil {
				return err
			}
			if err := setRoomStatus(tx, t.RoomID, constants.RoomStatusAvailable); err != nil {
				return err
			}
			updates["room_id"] = *in.RoomID
			updates["moved_in_at"] = tx.NowFunc()
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&tenantModel.TenantModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return helper.DuplicateOr(err, "Tenant already exists for this NRC or room")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete moves a tenant out: occupants go, linked logins are detached and
// the room is Available again. Contracts and bills stay as history.
func (s *TenantService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.UoW.Do(ctx, func(tx *gorm.DB) error {
		var t tenantModel.TenantModel
		if err := tx.First(&t, "id = ?", id).Error; err != nil {
			return helper.NotFoundOr(err, msgNotFound)
		}
		if err := tx.Where("tenant_id = ?", id).Delete(&occupantModel.OccupantModel{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&userModel.UserModel{}).
			Where("tenant_id = ?", id).
			Updates(map[string]any{"tenant_id": nil, "is_active": false}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&tenantModel.TenantModel{}, "id = ?", id).Error; err != nil {
			return err
		}
		return setRoomStatus(tx, t.RoomID, constants.RoomStatusAvailable)
	})
}
