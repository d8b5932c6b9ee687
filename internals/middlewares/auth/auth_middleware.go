// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"rentku_backend/internals/configs"
	authRepo "rentku_backend/internals/features/users/auth/repository"
	helper "rentku_backend/internals/helpers"
)

func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) already verified earlier in the chain
		if c.Locals("token_checked") != nil {
			return c.Next()
		}

		// 2) Ambil Authorization
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.Unauthorized(err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			slog.Error("JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		// 3) Cek blacklist
		blacklisted, err := authRepo.IsBlacklisted(c.UserContext(), db, helper.HashToken(tokenString, secretKey))
		if err != nil {
			return err
		}
		if blacklisted {
			return helper.Unauthorized("Unauthorized - Token is blacklisted")
		}

		// 4) Parse & verifikasi JWT
		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true, ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			return helper.Unauthorized("Unauthorized - Token parse error")
		}
		if typ, _ := claims["typ"].(string); typ != "access" {
			return helper.Unauthorized("Unauthorized - Invalid token type")
		}

		// 5) Validasi exp
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return helper.Unauthorized("Unauthorized - Token expired")
		}

		// 6) Ambil user_id & validasi user aktif
		userID, err := extractUserID(claims)
		if err != nil {
			return helper.Unauthorized("Unauthorized - Invalid or missing user ID")
		}
		if err := ensureUserActive(db, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Unauthorized("Unauthorized - User not found")
			}
			if errors.Is(err, errUserInactive) {
				return helper.Forbidden("Your account has been deactivated")
			}
			return err
		}

		// 7) Simpan info klaim ke context
		c.Locals(helper.LocUserID, userID.String())
		helper.SetRawAccessToken(c, tokenString)
		storeBasicClaimsToLocals(c, claims)
		c.Locals("token_checked", true)

		return c.Next()
	}
}
