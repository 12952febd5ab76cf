// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"farmlink/config"
	"farmlink/internal/domain/entity"
	"farmlink/internal/domain/service"
	"farmlink/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtService verifies the HS256 access tokens issued by the identity provider.
type jwtService struct {
	accessSecret []byte
	leeway       time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		leeway:       30 * time.Second,
	}, nil
}

// GenerateAccessToken issues a signed access token for the caller.
func (s *jwtService) GenerateAccessToken(caller entity.Caller, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Email: caller.Email,
		Name:  caller.Name,
		Roles: caller.Roles.ToStrings(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   caller.UID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateToken checks signature, algorithm and expiry, and requires a subject.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(s.leeway),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid access token")
	}
	if !token.Valid || claims.Subject == "" {
		return nil, errors.New("access token has no subject")
	}

	return claims, nil
}
