package users

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	userModel "rentku_backend/internals/features/users/user/model"
	helper "rentku_backend/internals/helpers"
)

type UserSeed struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SeedUsersFromJSON inserts users that do not exist yet (matched by email).
func SeedUsersFromJSON(db *gorm.DB, filePath string) error {
	slog.Info("seeding users", "file", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}
	var inputs []UserSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		return fmt.Errorf("decode %s: %w", filePath, err)
	}
	for _, in := range inputs {
		if err := seedUser(db, in); err != nil {
			slog.Error("seed user failed", "email", in.Email, "error", err)
		}
	}
	return nil
}

// SeedAdminFromEnv creates the first Admin from SEED_ADMIN_EMAIL and
// SEED_ADMIN_PASSWORD when both are set.
func SeedAdminFromEnv(db *gorm.DB) error {
	email := strings.TrimSpace(os.Getenv("SEED_ADMIN_EMAIL"))
	pass := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || pass == "" {
		return nil
	}
	return seedUser(db, UserSeed{UserName: "admin", Email: email, Password: pass, Role: "Admin"})
}

func seedUser(db *gorm.DB, in UserSeed) error {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	var existing userModel.UserModel
	err := db.Where("email = ?", email).Take(&existing).Error
	if err == nil {
		slog.Info("user exists, skipped", "email", email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := helper.HashPassword(in.Password)
	if err != nil {
		return err
	}
	u := userModel.UserModel{
		UserName: in.UserName,
		Email:    email,
		Password: hashed,
		Role:     in.Role,
		IsActive: true,
	}
	if err := db.Create(&u).Error; err != nil {
		return err
	}
	slog.Info("user seeded", "email", email, "role", in.Role)
	return nil
}
