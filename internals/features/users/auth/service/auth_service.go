// internals/features/users/auth/service/auth_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentku_backend/internals/configs"
	authDTO "rentku_backend/internals/features/users/auth/dto"
	authModel "rentku_backend/internals/features/users/auth/model"
	authRepo "rentku_backend/internals/features/users/auth/repository"
	userDTO "rentku_backend/internals/features/users/user/dto"
	userModel "rentku_backend/internals/features/users/user/model"
	helper "rentku_backend/internals/helpers"
)

const invalidCredentials = "Invalid email or password"

type AuthService struct {
	DB     *gorm.DB
	Tokens TokenIssuer
	Now    func() time.Time
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		DB: db,
		Tokens: TokenIssuer{
			AccessSecret:  configs.JWTSecret,
			RefreshSecret: configs.JWTRefreshSecret,
			AccessTTL:     configs.AccessTokenTTL,
			RefreshTTL:    configs.RefreshTokenTTL,
		},
		Now: func() time.Time { return time.Now().UTC() },
	}
}

// Session is the outcome of a login or refresh: an access token for the
// body and a refresh token for the HTTP-only cookie.
type Session struct {
	AccessToken    string
	RefreshToken   string
	RefreshExpires time.Time
	User           userModel.UserModel
}

func (s *AuthService) Response(sess *Session) authDTO.LoginResponse {
	return authDTO.LoginResponse{
		AccessToken: sess.AccessToken,
		ExpiresIn:   int64(s.Tokens.AccessTTL.Seconds()),
		User:        userDTO.ToUserResponse(sess.User),
	}
}

/* ==========================
   LOGIN
========================== */

func (s *AuthService) Login(ctx context.Context, in authDTO.LoginRequest, userAgent, ip string) (*Session, error) {
	user, err := authRepo.FindUserByEmail(ctx, s.DB, in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Unauthorized(invalidCredentials)
		}
		return nil, err
	}
	if err := helper.CheckPasswordHash(user.Password, in.Password); err != nil {
		return nil, helper.Unauthorized(invalidCredentials)
	}
	if !user.IsActive {
		return nil, helper.Forbidden("Your account has been deactivated")
	}
	return s.issue(ctx, s.DB, *user, userAgent, ip)
}

/* ==========================
   REFRESH (rotate)
========================== */

// Refresh requires a valid refresh JWT whose hash matches a stored,
// non-revoked, non-expired row. The old row is revoked.
func (s *AuthService) Refresh(ctx context.Context, raw, userAgent, ip string) (*Session, error) {
	if raw == "" {
		return nil, helper.Unauthorized("Refresh token is missing")
	}
	userID, err := s.Tokens.ParseRefresh(raw)
	if err != nil {
		return nil, helper.Unauthorized("Refresh token is invalid")
	}

	now := s.Now()
	hash := helper.HashToken(raw, s.Tokens.RefreshSecret)
	stored, err := authRepo.FindActiveRefreshToken(ctx, s.DB, hash, now)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Unauthorized("Refresh token does not match")
		}
		return nil, err
	}
	if stored.UserID != userID {
		return nil, helper.Unauthorized("Refresh token does not match")
	}

	user, err := authRepo.FindUserByID(ctx, s.DB, userID)
	if err != nil {
		return nil, helper.NotFoundOr(err, "User not found")
	}
	if !user.IsActive {
		return nil, helper.Forbidden("Your account has been deactivated")
	}

	// revoke + issue satu transaksi; yang kalah balapan dapat 401
	var sess *Session
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := authRepo.RevokeRefreshToken(ctx, tx, hash, now)
		if err != nil {
			return err
		}
		if n == 0 {
			return helper.Unauthorized("Refresh token has already been used")
		}
		sess, err = s.issue(ctx, tx, *user, userAgent, ip)
		return err
	})
	if err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *AuthService) issue(ctx context.Context, db *gorm.DB, user userModel.UserModel, userAgent, ip string) (*Session, error) {
	now := s.Now()

	access, err := s.Tokens.IssueAccess(user, now)
	if err != nil {
		return nil, err
	}
	refresh, refreshExp, err := s.Tokens.IssueRefresh(user.ID, now)
	if err != nil {
		return nil, err
	}

	if err := authRepo.CreateRefreshToken(ctx, db, &authModel.RefreshTokenModel{
		UserID:    user.ID,
		TokenHash: helper.HashToken(refresh, s.Tokens.RefreshSecret),
		ExpiresAt: refreshExp,
		UserAgent: strptr(userAgent),
		IP:        strptr(ip),
	}); err != nil {
		return nil, err
	}

	return &Session{
		AccessToken:    access,
		RefreshToken:   refresh,
		RefreshExpires: refreshExp,
		User:           user,
	}, nil
}

/* ==========================
   LOGOUT
========================== */

// Logout is idempotent: missing tokens are skipped.
func (s *AuthService) Logout(ctx context.Context, accessToken, refreshToken string) error {
	now := s.Now()

	if accessToken != "" {
		exp, ok := s.Tokens.AccessExpiry(accessToken)
		if !ok || exp.Before(now) {
			exp = now.Add(s.Tokens.AccessTTL)
		}
		hash := helper.HashToken(accessToken, s.Tokens.AccessSecret)
		if err := authRepo.BlacklistToken(ctx, s.DB, hash, exp); err != nil {
			return err
		}
	}
	if refreshToken != "" {
		hash := helper.HashToken(refreshToken, s.Tokens.RefreshSecret)
		if _, err := authRepo.RevokeRefreshToken(ctx, s.DB, hash, now); err != nil {
			return err
		}
	}
	return nil
}

/* ==========================
   ME / PASSWORD
========================== */

func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*userModel.UserModel, error) {
	user, err := authRepo.FindUserByID(ctx, s.DB, userID)
	if err != nil {
		return nil, helper.NotFoundOr(err, "User not found")
	}
	return user, nil
}

// ChangePassword revokes every refresh token of the user on success.
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, in authDTO.ChangePasswordRequest) error {
	user, err := authRepo.FindUserByID(ctx, s.DB, userID)
	if err != nil {
		return helper.NotFoundOr(err, "User not found")
	}
	if err := helper.CheckPasswordHash(user.Password, in.CurrentPassword); err != nil {
		return helper.BadRequest("Current password is incorrect")
	}
	hashed, err := helper.HashPassword(in.NewPassword)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := authRepo.UpdateUserPassword(ctx, tx, userID, hashed); err != nil {
			return err
		}
		return authRepo.RevokeAllForUser(ctx, tx, userID, s.Now())
	})
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
