package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"refill-system/internal/dto"
	"refill-system/pkg/contextkeys"
	apperrors "refill-system/pkg/errors"
	"refill-system/pkg/service"
	"refill-system/pkg/utils"
)

// PermissionResolver resolves the permission set of a role, normally backed
// by the Redis-cached auth permission service.
type PermissionResolver interface {
	GetPermissionsForRole(ctx context.Context, roleID uint64) (map[string]bool, error)
}

// Gate decides whether a permission set allows an operation. The authz
// gatekeeper implements it.
type Gate interface {
	Can(perms map[string]bool, permission string) bool
}

type AuthMiddleware struct {
	jwtService service.JWTService
	resolver   PermissionResolver
	gate       Gate
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, resolver PermissionResolver, gate Gate, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		resolver:   resolver,
		gate:       gate,
		logger:     logger,
	}
}

// Auth authenticates the request with a Bearer access token and stores the
// operator claims in the request context.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			return utils.ErrorResponse(c, err, m.logger)
		}

		if claims.IsRefreshToken {
			return utils.ErrorResponse(c, apperrors.ErrTokenIsNotAccess, m.logger)
		}

		userClaims := &dto.UserClaims{UserID: claims.UserID, RoleID: claims.RoleID}
		ctx := context.WithValue(c.Request().Context(), contextkeys.ClaimsKey, userClaims)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// Permit requires a permission for the route. Denials from the gate are
// final; the audit log stays closed to mutation even for superusers.
func (m *AuthMiddleware) Permit(permission string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := utils.GetClaimsFromContext(c.Request().Context())
			if err != nil {
				return utils.ErrorResponse(c, err, m.logger)
			}

			perms, err := m.resolver.GetPermissionsForRole(c.Request().Context(), claims.RoleID)
			if err != nil {
				return utils.ErrorResponse(c, err, m.logger)
			}

			if !m.gate.Can(perms, permission) {
				m.logger.Warn("permission denied",
					zap.Uint64("userID", claims.UserID),
					zap.Uint64("roleID", claims.RoleID),
					zap.String("permission", permission),
				)
				return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
			}

			return next(c)
		}
	}
}
