package auth

import (
	"testing"
	"time"

	"farmlink/config"
	"farmlink/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	caller := entity.Caller{
		UID:   "uid-123",
		Email: "farmer@example.com",
		Name:  "Green Acres",
		Roles: entity.Roles{entity.RoleFarmer},
	}

	token, err := svc.GenerateAccessToken(caller, time.Minute)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "uid-123", claims.Subject)
	assert.Equal(t, "farmer@example.com", claims.Email)
	assert.Equal(t, "Green Acres", claims.Name)
	assert.Equal(t, []string{"farmer"}, claims.Roles)
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret-one-secret-one"))
	require.NoError(t, err)
	other, err := NewJWTService(newTestConfig("secret-two-secret-two"))
	require.NoError(t, err)

	caller := entity.Caller{UID: "uid-1"}

	expired, err := svc.GenerateAccessToken(caller, -time.Hour)
	require.NoError(t, err)
	foreign, err := other.GenerateAccessToken(caller, time.Minute)
	require.NoError(t, err)
	noSubject, err := svc.GenerateAccessToken(entity.Caller{}, time.Minute)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "uid-1"}).
		SignedString([]byte("secret-one-secret-one"))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "uid-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"expired":      expired,
		"wrong secret": foreign,
		"no subject":   noSubject,
		"no expiry":    noExpiry,
		"alg none":     unsigned,
		"garbage":      "not-a-jwt",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ValidateToken(token)
			assert.Error(t, err)
		})
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
}
