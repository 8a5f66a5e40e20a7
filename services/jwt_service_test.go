package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTServiceGenerateAndExtract(t *testing.T) {
	svc := NewJWTService(newTestConfig())

	token, err := svc.GenerateToken("s1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	studentID, err := svc.ExtractStudentID(token)
	require.NoError(t, err)
	assert.Equal(t, "s1", studentID)
}

func TestJWTServiceRejectsWrongSecret(t *testing.T) {
	svc := NewJWTService(newTestConfig())

	other := newTestConfig()
	other.JWTSecretKey = "a-different-secret"
	otherSvc := NewJWTService(other)

	token, err := otherSvc.GenerateToken("s1")
	require.NoError(t, err)

	_, err = svc.ExtractStudentID(token)
	assert.Error(t, err)
}

func TestJWTServiceRejectsExpiredToken(t *testing.T) {
	cfg := newTestConfig()
	svc := NewJWTService(cfg)

	// 用同一密钥手工签发一个过期令牌
	claims := &JWTClaims{
		StudentID: "s1",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "s1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
			Issuer:    "safetrack-http-service",
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecretKey))
	require.NoError(t, err)

	_, err = svc.ExtractStudentID(expired)
	assert.Error(t, err)
}

func TestJWTServiceRejectsMalformedToken(t *testing.T) {
	svc := NewJWTService(newTestConfig())

	_, err := svc.ExtractStudentID("not-a-token")
	assert.Error(t, err)
}
