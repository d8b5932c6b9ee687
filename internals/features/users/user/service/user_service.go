package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentku_backend/internals/constants"
	tenantModel "rentku_backend/internals/features/properties/tenants/model"
	userDTO "rentku_backend/internals/features/users/user/dto"
	userModel "rentku_backend/internals/features/users/user/model"
	helper "rentku_backend/internals/helpers"
)

const emailTaken = "Email is already registered"

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func (s *UserService) ensureTenant(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	var n int64
	if err := s.DB.WithContext(ctx).Model(&tenantModel.TenantModel{}).Where("id = ?", *id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return helper.NotFound("Tenant not found")
	}
	return nil
}

func (s *UserService) Create(ctx context.Context, in userDTO.CreateUserRequest) (*userModel.UserModel, error) {
	if err := s.ensureTenant(ctx, in.TenantID); err != nil {
		return nil, err
	}
	hashed, err := helper.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := userModel.UserModel{
		UserName: in.UserName,
		Email:    in.Email,
		Password: hashed,
		Role:     in.Role,
		IsActive: true,
	}
	if in.Role == constants.RoleTenant {
		u.TenantID = in.TenantID
	}
	if err := s.DB.WithContext(ctx).Create(&u).Error; err != nil {
		return nil, helper.DuplicateOr(err, emailTaken)
	}
	return &u, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*userModel.UserModel, error) {
	var u userModel.UserModel
	if err := s.DB.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, helper.NotFoundOr(err, "User not found")
	}
	return &u, nil
}

func (s *UserService) List(ctx context.Context, q userDTO.ListUsersQuery, p helper.Params) ([]userModel.UserModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&userModel.UserModel{})
	if q.Role != "" {
		tx = tx.Where("role = ?", q.Role)
	}
	if v := strings.TrimSpace(q.Search); v != "" {
		like := "%" + strings.ToLower(v) + "%"
		tx = tx.Where("LOWER(user_name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []userModel.UserModel
	if err := tx.Order("created_at DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, in userDTO.UpdateUserRequest) (*userModel.UserModel, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureTenant(ctx, in.TenantID); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.UserName != nil {
		updates["user_name"] = *in.UserName
	}
	if in.Email != nil {
		updates["email"] = *in.Email
	}
	if in.Password != nil {
		hashed, err := helper.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hashed
	}
	if in.Role != nil {
		updates["role"] = *in.Role
	}
	if in.TenantID != nil {
		updates["tenant_id"] = *in.TenantID
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}

	role := u.Role
	if in.Role != nil {
		role = *in.Role
	}
	if role == constants.RoleTenant && u.TenantID == nil && in.TenantID == nil {
		return nil, helper.NewValidationError("tenant_id", "tenant_id is required for Tenant users")
	}
	if role != constants.RoleTenant {
		updates["tenant_id"] = nil
	}

	if err := s.DB.WithContext(ctx).Model(u).Updates(updates).Error; err != nil {
		return nil, helper.DuplicateOr(err, emailTaken)
	}
	return s.Get(ctx, id)
}
