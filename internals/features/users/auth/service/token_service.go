// file: internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"uniportal_backend/internals/configs"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// TokenClaims is what the auth middleware unpacks into locals.
type TokenClaims struct {
	UserID    uuid.UUID
	Role      string
	UserName  string
	StudentID *uuid.UUID
}

// GenerateAccessToken signs a short-lived JWT carrying the identity
// the portal screens need (role, display name, linked student id).
func GenerateAccessToken(claims TokenClaims) (string, error) {
	now := time.Now()
	mapClaims := jwt.MapClaims{
		"id":        claims.UserID.String(),
		"role":      claims.Role,
		"user_name": claims.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTokenTTL).Unix(),
	}
	if claims.StudentID != nil {
		mapClaims["student_id"] = claims.StudentID.String()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// GenerateRefreshToken returns an opaque random token plus a signed wrapper.
// Only the hash of the opaque token is stored server-side.
func GenerateRefreshToken(userID uuid.UUID) (opaque string, signed string, err error) {
	buf := make([]byte, 32)
	if _, err = rand.Read(buf); err != nil {
		return "", "", err
	}
	opaque = hex.EncodeToString(buf)

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID.String(),
		"tok": opaque,
		"iat": now.Unix(),
		"exp": now.Add(RefreshTokenTTL).Unix(),
	})
	signed, err = token.SignedString([]byte(configs.JWTRefreshSecret))
	return opaque, signed, err
}

// ParseRefreshToken validates the signed wrapper and pulls out the
// user id and opaque token for the DB lookup.
func ParseRefreshToken(signed string) (uuid.UUID, string, error) {
	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, "", errors.New("invalid refresh token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, "", errors.New("invalid refresh token claims")
	}
	rawID, _ := claims["id"].(string)
	opaque, _ := claims["tok"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil || opaque == "" {
		return uuid.Nil, "", errors.New("invalid refresh token claims")
	}
	return userID, opaque, nil
}

// AccessTokenExpiry reads exp from an already-issued token so logout can
// blacklist it only until it would have expired anyway.
func AccessTokenExpiry(tokenStr string) time.Time {
	parser := jwt.Parser{SkipClaimsValidation: true}
	token, _, err := parser.ParseUnverified(tokenStr, jwt.MapClaims{})
	if err != nil {
		return time.Now().Add(AccessTokenTTL)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return time.Now().Add(AccessTokenTTL)
	}
	if exp, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(exp), 0)
	}
	return time.Now().Add(AccessTokenTTL)
}
