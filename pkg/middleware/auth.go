package middleware

import (
	"context"
	"net/http"
	"strings"

	"printfront/pkg/constants"
	"printfront/pkg/contextkeys"
	apperrors "printfront/pkg/errors"
	"printfront/pkg/service"
	"printfront/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthMiddleware struct {
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		logger:     logger,
	}
}

// Auth - middleware principal : lit le jeton de session émis par le backend,
// en extrait l'utilisateur et son rôle, les pose dans le contexte.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			m.logger.Warn("AuthMiddleware: en-tête Authorization vide")
			return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrEmptyAuthHeader.Error(), apperrors.ErrEmptyAuthHeader, nil), m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("AuthMiddleware: format de l'en-tête Authorization invalide")
			return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrInvalidAuthHeader.Error(), apperrors.ErrInvalidAuthHeader, nil), m.logger)
		}

		tokenString := parts[1]

		claims, err := m.jwtService.ParseToken(tokenString)
		if err != nil {
			m.logger.Warn("AuthMiddleware: jeton rejeté", zap.Error(err))
			return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusUnauthorized, err.Error(), err, nil), m.logger)
		}

		if !constants.IsKnownRole(claims.Role) {
			m.logger.Warn("AuthMiddleware: rôle inconnu", zap.String("role", claims.Role))
			return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusForbidden, apperrors.ErrUnknownRole.Error(), apperrors.ErrUnknownRole, map[string]interface{}{"role": claims.Role}), m.logger)
		}

		ctx := c.Request().Context()
		ctx = context.WithValue(ctx, contextkeys.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, contextkeys.UserRoleKey, constants.Role(claims.Role))
		ctx = context.WithValue(ctx, contextkeys.UserTokenKey, tokenString)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// UserIDFromContext retrouve l'identifiant utilisateur posé par Auth.
func UserIDFromContext(ctx context.Context) (uint64, error) {
	id, ok := ctx.Value(contextkeys.UserIDKey).(int)
	if !ok || id < 0 {
		return 0, apperrors.ErrUserNotFoundInContext
	}
	return uint64(id), nil
}

// RoleFromContext retrouve le rôle posé par Auth.
func RoleFromContext(ctx context.Context) (constants.Role, error) {
	role, ok := ctx.Value(contextkeys.UserRoleKey).(constants.Role)
	if !ok {
		return "", apperrors.ErrUserNotFoundInContext
	}
	return role, nil
}

// TokenFromContext retrouve le jeton brut, retransmis tel quel au backend.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(contextkeys.UserTokenKey).(string)
	return token
}
