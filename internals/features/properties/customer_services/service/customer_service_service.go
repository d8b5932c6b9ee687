package service

import (
	"context"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"rentku_backend/internals/constants"
	csDTO "rentku_backend/internals/features/properties/customer_services/dto"
	csModel "rentku_backend/internals/features/properties/customer_services/model"
	roomModel "rentku_backend/internals/features/properties/rooms/model"
	tenantModel "rentku_backend/internals/features/properties/tenants/model"
	helper "rentku_backend/internals/helpers"
)

const msgTicketNotFound = "Customer service ticket not found"

type CustomerServiceService struct {
	DB *gorm.DB
}

func NewCustomerServiceService(db *gorm.DB) *CustomerServiceService {
	return &CustomerServiceService{DB: db}
}

func attachments(list []string) (datatypes.JSON, error) {
	if len(list) == 0 {
		return nil, nil
	}
	b, err := sonic.Marshal(list)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

// RoomOfTenant resolves the room a Tenant user may raise tickets for.
func (s *CustomerServiceService) RoomOfTenant(ctx context.Context, tenantID uuid.UUID) (uuid.UUID, error) {
	var t tenantModel.TenantModel
	if err := s.DB.WithContext(ctx).Select("id", "room_id").First(&t, "id = ?", tenantID).Error; err != nil {
		return uuid.Nil, helper.NotFoundOr(err, "Tenant not found")
	}
	return t.RoomID, nil
}

func (s *CustomerServiceService) Create(ctx context.Context, in csDTO.CreateCustomerServiceRequest) (*csModel.CustomerServiceModel, error) {
	if in.RoomID == uuid.Nil {
		return nil, helper.NewValidationError("room_id", "room_id is required")
	}
	db := s.DB.WithContext(ctx)
	var n int64
	if err := db.Model(&roomModel.RoomModel{}).Where("id = ?", in.RoomID).Count(&n).Error; err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, helper.NotFound("Room not found")
	}

	att, err := attachments(in.Attachments)
	if err != nil {
		return nil, err
	}
	m := csModel.CustomerServiceModel{
		RoomID:      in.RoomID,
		Category:    in.Category,
		Description: in.Description,
		Status:      constants.TicketStatusPending,
		Priority:    in.Priority,
		Attachments: att,
	}
	if in.IssuedDate != nil {
		m.IssuedDate = in.IssuedDate.UTC()
	}
	if err := db.Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *CustomerServiceService) Get(ctx context.Context, id uuid.UUID) (*csModel.CustomerServiceModel, error) {
	var m csModel.CustomerServiceModel
	if err := s.DB.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, helper.NotFoundOr(err, msgTicketNotFound)
	}
	return &m, nil
}

func (s *CustomerServiceService) List(ctx context.Context, q csDTO.ListCustomerServicesQuery, p helper.Params) ([]csModel.CustomerServiceModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&csModel.CustomerServiceModel{})
	if q.RoomID != "" {
		tx = tx.Where("room_id = ?", q.RoomID)
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.Priority != "" {
		tx = tx.Where("priority = ?", q.Priority)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []csModel.CustomerServiceModel
	if err := tx.Order("issued_date DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (s *CustomerServiceService) Update(ctx context.Context, id uuid.UUID, in csDTO.UpdateCustomerServiceRequest) (*csModel.CustomerServiceModel, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if in.Category != nil {
		updates["category"] = *in.Category
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Status != nil {
		updates["status"] = *in.Status
	}
	if in.Priority != nil {
		updates["priority"] = *in.Priority
	}
	if in.Attachments != nil {
		att, err := attachments(*in.Attachments)
		if err != nil {
			return nil, err
		}
		updates["attachments"] = att
	}
	if err := s.DB.WithContext(ctx).Model(m).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *CustomerServiceService) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Delete(&csModel.CustomerServiceModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return helper.NotFound(msgTicketNotFound)
	}
	return nil
}
