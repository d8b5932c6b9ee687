package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	userModel "rentku_backend/internals/features/users/user/model"
)

/* ===================== REQUEST ===================== */

type CreateUserRequest struct {
	UserName string     `json:"user_name" validate:"required,min=3,max=50"`
	Email    string     `json:"email" validate:"required,email,max=255"`
	Password string     `json:"password" validate:"required,min=8,max=72"`
	Role     string     `json:"role" validate:"required,oneof=Admin Staff Tenant"`
	TenantID *uuid.UUID `json:"tenant_id" validate:"required_if=Role Tenant"`
}

func (r *CreateUserRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type UpdateUserRequest struct {
	UserName *string    `json:"user_name" validate:"omitempty,min=3,max=50"`
	Email    *string    `json:"email" validate:"omitempty,email,max=255"`
	Password *string    `json:"password" validate:"omitempty,min=8,max=72"`
	Role     *string    `json:"role" validate:"omitempty,oneof=Admin Staff Tenant"`
	TenantID *uuid.UUID `json:"tenant_id"`
	IsActive *bool      `json:"is_active"`
}

func (r *UpdateUserRequest) Normalize() {
	if r.UserName != nil {
		v := strings.TrimSpace(*r.UserName)
		r.UserName = &v
	}
	if r.Email != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &v
	}
}

func (r UpdateUserRequest) HasAnyField() bool {
	return r.UserName != nil || r.Email != nil || r.Password != nil ||
		r.Role != nil || r.TenantID != nil || r.IsActive != nil
}

type ListUsersQuery struct {
	Role   string `query:"role" validate:"omitempty,oneof=Admin Staff Tenant"`
	Search string `query:"search" validate:"omitempty,max=100"`
	Page   int    `query:"page" validate:"omitempty,min=1"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

/* ===================== RESPONSE ===================== */

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	UserName  string     `json:"user_name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	TenantID  *uuid.UUID `json:"tenant_id,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func ToUserResponse(u userModel.UserModel) UserResponse {
	return UserResponse{
		ID:        u.ID,
		UserName:  u.UserName,
		Email:     u.Email,
		Role:      u.Role,
		TenantID:  u.TenantID,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func ToUserResponses(list []userModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, ToUserResponse(u))
	}
	return out
}
