// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "rentku_backend/internals/features/users/auth/model"
	userModel "rentku_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func FindUserByEmail(ctx context.Context, db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UpdateUserPassword(ctx context.Context, db *gorm.DB, userID uuid.UUID, hashed string) error {
	return db.WithContext(ctx).Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Update("password", hashed).Error
}

/* ====================== REFRESH TOKEN ====================== */

func CreateRefreshToken(ctx context.Context, db *gorm.DB, rt *authModel.RefreshTokenModel) error {
	return db.WithContext(ctx).Create(rt).Error
}

// FindActiveRefreshToken: belum di-revoke, belum expired
func FindActiveRefreshToken(ctx context.Context, db *gorm.DB, hash string, now time.Time) (*authModel.RefreshTokenModel, error) {
	var rt authModel.RefreshTokenModel
	if err := db.WithContext(ctx).
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at > ?", hash, now).
		First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

// RevokeRefreshToken returns how many live rows it revoked; 0 means the
// token was already revoked (or never stored).
func RevokeRefreshToken(ctx context.Context, db *gorm.DB, hash string, now time.Time) (int64, error) {
	res := db.WithContext(ctx).Model(&authModel.RefreshTokenModel{}).
		Where("token_hash = ? AND revoked_at IS NULL", hash).
		Update("revoked_at", now)
	return res.RowsAffected, res.Error
}

func RevokeAllForUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, now time.Time) error {
	return db.WithContext(ctx).Model(&authModel.RefreshTokenModel{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", now).Error
}

/* ====================== BLACKLIST ====================== */

// BlacklistToken is idempotent on the token hash.
func BlacklistToken(ctx context.Context, db *gorm.DB, hash string, expiredAt time.Time) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&authModel.TokenBlacklist{Token: hash, ExpiredAt: expiredAt}).Error
}

func IsBlacklisted(ctx context.Context, db *gorm.DB, hash string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&authModel.TokenBlacklist{}).
		Where("token = ?", hash).
		Count(&n).Error
	return n > 0, err
}

// DeleteExpiredBlacklist removes entries whose token already expired.
func DeleteExpiredBlacklist(ctx context.Context, db *gorm.DB, before time.Time) (int64, error) {
	res := db.WithContext(ctx).Unscoped().
		Where("expired_at < ?", before).
		Delete(&authModel.TokenBlacklist{})
	return res.RowsAffected, res.Error
}

// DeleteStaleRefreshTokens removes revoked or expired refresh tokens.
func DeleteStaleRefreshTokens(ctx context.Context, db *gorm.DB, before time.Time) (int64, error) {
	res := db.WithContext(ctx).
		Where("expires_at < ? OR revoked_at IS NOT NULL", before).
		Delete(&authModel.RefreshTokenModel{})
	return res.RowsAffected, res.Error
}
