package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	occupantDTO "rentku_backend/internals/features/properties/occupants/dto"
	occupantModel "rentku_backend/internals/features/properties/occupants/model"
	roomModel "rentku_backend/internals/features/properties/rooms/model"
	tenantModel "rentku_backend/internals/features/properties/tenants/model"
	helper "rentku_backend/internals/helpers"
)

type OccupantService struct {
	DB *gorm.DB
}

func NewOccupantService(db *gorm.DB) *OccupantService {
	return &OccupantService{DB: db}
}

// Create adds an occupant while the room still has space for one more
// person (tenant included).
func (s *OccupantService) Create(ctx context.Context, in occupantDTO.CreateOccupantRequest) (*occupantModel.OccupantModel, error) {
	db := s.DB.WithContext(ctx)

	var t tenantModel.TenantModel
	if err := db.First(&t, "id = ?", in.TenantID).Error; err != nil {
		return nil, helper.NotFoundOr(err, "Tenant not found")
	}
	var room roomModel.RoomModel
	if err := db.First(&room, "id = ?", t.RoomID).Error; err != nil {
		return nil, helper.NotFoundOr(err, "Room not found")
	}
	var n int64
	if err := db.Model(&occupantModel.OccupantModel{}).Where("tenant_id = ?", t.ID).Count(&n).Error; err != nil {
		return nil, err
	}
	if int(n)+1 >= room.MaxNoOfPeople {
		return nil, helper.BadRequest("Room has reached its maximum number of people")
	}

	m := occupantModel.OccupantModel{
		TenantID: in.TenantID,
		Name:     in.Name,
		NRC:      in.NRC,
		Relation: in.Relation,
	}
	if err := db.Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *OccupantService) Get(ctx context.Context, id uuid.UUID) (*occupantModel.OccupantModel, error) {
	var m occupantModel.OccupantModel
	if err := s.DB.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, helper.NotFoundOr(err, "Occupant not found")
	}
	return &m, nil
}

func (s *OccupantService) List(ctx context.Context, q occupantDTO.ListOccupantsQuery, p helper.Params) ([]occupantModel.OccupantModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&occupantModel.OccupantModel{})
	if q.TenantID != "" {
		tx = tx.Where("tenant_id = ?", q.TenantID)
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []occupantModel.OccupantModel
	if err := tx.Order("created_at ASC").Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (s *OccupantService) Update(ctx context.Context, id uuid.UUID, in occupantDTO.UpdateOccupantRequest) (*occupantModel.OccupantModel, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.NRC != nil {
		updates["nrc"] = *in.NRC
	}
	if in.Relation != nil {
		updates["relation"] = *in.Relation
	}
	if err := s.DB.WithContext(ctx).Model(m).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *OccupantService) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Delete(&occupantModel.OccupantModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return helper.NotFound("Occupant not found")
	}
	return nil
}
