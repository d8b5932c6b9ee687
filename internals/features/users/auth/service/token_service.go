// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	userModel "rentku_backend/internals/features/users/user/model"
)

var errInvalidToken = errors.New("invalid token")

// TokenIssuer signs and verifies HS256 access and refresh tokens.
type TokenIssuer struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

func (t TokenIssuer) buildAccessClaims(user userModel.UserModel, now time.Time) jwt.MapClaims {
	claims := jwt.MapClaims{
		"typ":       "access",
		"sub":       user.ID.String(),
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"jti":       uuid.NewString(),
		"iat":       now.Unix(),
		"exp":       now.Add(t.AccessTTL).Unix(),
	}
	if user.TenantID != nil {
		claims["tenant_id"] = user.TenantID.String()
	}
	return claims
}

func (t TokenIssuer) buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": "refresh",
		"sub": userID.String(),
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(t.RefreshTTL).Unix(),
	}
}

func (t TokenIssuer) IssueAccess(user userModel.UserModel, now time.Time) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, t.buildAccessClaims(user, now)).
		SignedString([]byte(t.AccessSecret))
}

func (t TokenIssuer) IssueRefresh(userID uuid.UUID, now time.Time) (string, time.Time, error) {
	exp := now.Add(t.RefreshTTL)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, t.buildRefreshClaims(userID, now)).
		SignedString([]byte(t.RefreshSecret))
	return tok, exp, err
}

// ParseRefresh verifies signature, expiry and typ and returns the subject.
func (t TokenIssuer) ParseRefresh(raw string) (uuid.UUID, error) {
	tok, err := jwt.Parse(raw, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return []byte(t.RefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, errInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errInvalidToken
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return uuid.Nil, errInvalidToken
	}
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errInvalidToken
	}
	return id, nil
}

// AccessExpiry reads exp from an access token without failing on expiry,
// used to size blacklist entries.
func (t TokenIssuer) AccessExpiry(raw string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return []byte(t.AccessSecret), nil
	}); err != nil {
		return time.Time{}, false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(int64(exp), 0), true
}
