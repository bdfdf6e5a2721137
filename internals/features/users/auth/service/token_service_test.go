// file: internals/features/users/auth/service/token_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uniportal_backend/internals/configs"
)

func init() {
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"
}

func TestGenerateAccessTokenCarriesClaims(t *testing.T) {
	userID := uuid.New()
	studentID := uuid.New()

	signed, err := GenerateAccessToken(TokenClaims{
		UserID:    userID,
		Role:      "student",
		UserName:  "jdoe",
		StudentID: &studentID,
	})
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, userID.String(), claims["id"])
	assert.Equal(t, "student", claims["role"])
	assert.Equal(t, "jdoe", claims["user_name"])
	assert.Equal(t, studentID.String(), claims["student_id"])
}

func TestGenerateAccessTokenOmitsStudentIDForStaff(t *testing.T) {
	signed, err := GenerateAccessToken(TokenClaims{
		UserID:   uuid.New(),
		Role:     "lecturer",
		UserName: "prof",
	})
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	require.NoError(t, err)

	claims := token.Claims.(jwt.MapClaims)
	_, hasStudent := claims["student_id"]
	assert.False(t, hasStudent)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	opaque, signed, err := GenerateRefreshToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, opaque)

	parsedID, parsedOpaque, err := ParseRefreshToken(signed)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
	assert.Equal(t, opaque, parsedOpaque)
}

func TestParseRefreshTokenRejectsAccessSecret(t *testing.T) {
	// A token signed with the access secret must not refresh a session.
	signed, err := GenerateAccessToken(TokenClaims{UserID: uuid.New(), Role: "student", UserName: "x"})
	require.NoError(t, err)

	_, _, err = ParseRefreshToken(signed)
	assert.Error(t, err)
}

func TestAccessTokenExpiryFallsBackOnGarbage(t *testing.T) {
	before := time.Now()
	exp := AccessTokenExpiry("not-a-jwt")
	assert.WithinDuration(t, before.Add(AccessTokenTTL), exp, 5*time.Second)
}

func TestAccessTokenExpiryReadsExpClaim(t *testing.T) {
	signed, err := GenerateAccessToken(TokenClaims{UserID: uuid.New(), Role: "student", UserName: "x"})
	require.NoError(t, err)

	exp := AccessTokenExpiry(signed)
	assert.WithinDuration(t, time.Now().Add(AccessTokenTTL), exp, 5*time.Second)
}
