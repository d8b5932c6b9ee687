package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentku_backend/internals/configs"
	authDTO "rentku_backend/internals/features/users/auth/dto"
	"rentku_backend/internals/features/users/auth/service"
	userDTO "rentku_backend/internals/features/users/user/dto"
	helper "rentku_backend/internals/helpers"
)

type AuthController struct {
	Svc *service.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{Svc: service.NewAuthService(db)}
}

func secureCookies() bool {
	return configs.GetEnv("APP_ENV") == "production"
}

// POST /api/v1/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	in, err := helper.BindBody[authDTO.LoginRequest](c)
	if err != nil {
		return err
	}
	sess, err := ac.Svc.Login(c.UserContext(), in, c.Get("User-Agent"), c.IP())
	if err != nil {
		return err
	}
	helper.SetRefreshCookie(c, sess.RefreshToken, sess.RefreshExpires, secureCookies())
	return helper.JsonOK(c, "Login successful", ac.Svc.Response(sess))
}

// POST /api/v1/auth/refresh-token
func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	sess, err := ac.Svc.Refresh(c.UserContext(), helper.GetRefreshTokenFromCookie(c), c.Get("User-Agent"), c.IP())
	if err != nil {
		return err
	}
	helper.SetRefreshCookie(c, sess.RefreshToken, sess.RefreshExpires, secureCookies())
	return helper.JsonOK(c, "Token refreshed", authDTO.RefreshResponse{
		AccessToken: sess.AccessToken,
		ExpiresIn:   int64(ac.Svc.Tokens.AccessTTL.Seconds()),
	})
}

// POST /api/v1/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if err := ac.Svc.Logout(c.UserContext(), helper.GetRawAccessToken(c), helper.GetRefreshTokenFromCookie(c)); err != nil {
		return err
	}
	helper.ClearRefreshCookie(c, secureCookies())
	return helper.JsonOK(c, "Logout successful", nil)
}

// GET /api/v1/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	user, err := ac.Svc.Me(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "User fetched", userDTO.ToUserResponse(*user))
}

// POST /api/v1/auth/change-password
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	in, err := helper.BindBody[authDTO.ChangePasswordRequest](c)
	if err != nil {
		return err
	}
	if err := ac.Svc.ChangePassword(c.UserContext(), userID, in); err != nil {
		return err
	}
	helper.ClearRefreshCookie(c, secureCookies())
	return helper.JsonUpdated(c, "Password changed successfully", nil)
}
