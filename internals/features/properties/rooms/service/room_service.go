package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentku_backend/internals/constants"
	billingModel "rentku_backend/internals/features/billing/model"
	roomDTO "rentku_backend/internals/features/properties/rooms/dto"
	roomModel "rentku_backend/internals/features/properties/rooms/model"
	tenantModel "rentku_backend/internals/features/properties/tenants/model"
	helper "rentku_backend/internals/helpers"
)

const msgRoomNoTaken = "Room number already exists"

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) Create(ctx context.Context, in roomDTO.CreateRoomRequest) (*roomModel.RoomModel, error) {
	m := roomModel.RoomModel{
		RoomNo:        in.RoomNo,
		Floor:         in.Floor,
		Dimension:     in.Dimension,
		NoOfBedRoom:   in.NoOfBedRoom,
		MaxNoOfPeople: in.MaxNoOfPeople,
		Status:        in.Status,
		Description:   in.Description,
	}
	if in.SellingPrice != nil {
		m.SellingPrice = *in.SellingPrice
	}
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, helper.DuplicateOr(err, msgRoomNoTaken)
	}
	return &m, nil
}

func (s *RoomService) Get(ctx context.Context, id uuid.UUID) (*roomModel.RoomModel, error) {
	var m roomModel.RoomModel
	if err := s.DB.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, helper.NotFoundOr(err, "Room not found")
	}
	return &m, nil
}

func (s *RoomService) List(ctx context.Context, q roomDTO.ListRoomsQuery, p helper.Params) ([]roomModel.RoomModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&roomModel.RoomModel{})
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.Floor != "" {
		tx = tx.Where("floor = ?", q.Floor)
	}
	if v := strings.TrimSpace(q.Search); v != "" {
		tx = tx.Where("LOWER(room_no) LIKE ?", "%"+strings.ToLower(v)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []roomModel.RoomModel
	if err := tx.Order("floor ASC, room_no ASC").Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (s *RoomService) Update(ctx context.Context, id uuid.UUID, in roomDTO.UpdateRoomRequest) (*roomModel.RoomModel, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.RoomNo != nil {
		updates["room_no"] = *in.RoomNo
	}
	if in.Floor != nil {
		updates["floor"] = *in.Floor
	}
	if in.Dimension != nil {
		updates["dimension"] = *in.Dimension
	}
	if in.NoOfBedRoom != nil {
		updates["no_of_bed_room"] = *in.NoOfBedRoom
	}
	if in.MaxNoOfPeople != nil {
		updates["max_no_of_people"] = *in.MaxNoOfPeople
	}
	if in.Status != nil {
		updates["status"] = *in.Status
	}
	if in.SellingPrice != nil {
		updates["selling_price"] = *in.SellingPrice
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}

	if err := s.DB.WithContext(ctx).Model(m).Updates(updates).Error; err != nil {
		return nil, helper.DuplicateOr(err, msgRoomNoTaken)
	}
	return s.Get(ctx, id)
}

// Delete removes a room that has never been occupied or billed.
func (s *RoomService) Delete(ctx context.Context, id uuid.UUID) error {
	m, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if m.Status == constants.RoomStatusRented {
		return helper.BadRequest("Room is rented and cannot be deleted")
	}

	db := s.DB.WithContext(ctx)
	var n int64
	if err := db.Model(&tenantModel.TenantModel{}).Where("room_id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return helper.BadRequest("Room still has a tenant")
	}
	if err := db.Model(&billingModel.BillModel{}).Where("room_id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return helper.BadRequest("Room has bills and cannot be deleted")
	}
	return db.Delete(&roomModel.RoomModel{}, "id = ?", id).Error
}
