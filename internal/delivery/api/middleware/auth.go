package middleware

import (
	"slices"
	"strings"

	"farmlink/config"
	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const callerKey = "caller"

// AuthMiddleware turns a bearer token into the request's entity.Caller.
type AuthMiddleware struct {
	tokenSvc    service.TokenService
	adminEmails []string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	var adminEmails []string
	if cfg.Admin != nil {
		for _, email := range cfg.Admin.Emails {
			if email = entity.NormalizeEmail(email); email != "" {
				adminEmails = append(adminEmails, email)
			}
		}
	}

	return &AuthMiddleware{tokenSvc: tokenSvc, adminEmails: adminEmails}
}

// Authenticate rejects the request with UNAUTHENTICATED before any handler runs unless
// it carries a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WrapMessage("authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			return domainerrors.ErrUnauthenticated.WrapMessage("authorization header must be a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			return domainerrors.ErrUnauthenticated.WrapMessage(err.Error())
		}

		caller := entity.Caller{
			UID:   claims.Subject,
			Email: entity.NormalizeEmail(claims.Email),
			Name:  claims.Name,
			Roles: entity.RolesFromStrings(claims.Roles),
		}
		if caller.Email != "" && slices.Contains(m.adminEmails, caller.Email) {
			caller.Roles = caller.Roles.With(entity.RoleAdmin)
		}

		c.Set(callerKey, caller)

		return next(c)
	}
}

// GetCaller returns the caller set by Authenticate.
func GetCaller(c echo.Context) (entity.Caller, bool) {
	caller, ok := c.Get(callerKey).(entity.Caller)

	return caller, ok && caller.UID != ""
}

// MustCaller returns the authenticated caller or an UNAUTHENTICATED error for routes
// mounted without Authenticate.
func MustCaller(c echo.Context) (entity.Caller, error) {
	caller, ok := GetCaller(c)
	if !ok {
		return entity.Caller{}, domainerrors.ErrUnauthenticated.WrapMessage("no caller on request")
	}

	return caller, nil
}
