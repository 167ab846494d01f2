package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventario-system/internal/services"
	"inventario-system/pkg/api"
	"inventario-system/pkg/contextkeys"
	apperrors "inventario-system/pkg/errors"
)

type AuthMiddleware struct {
	authService services.AuthServiceInterface
	logger      *zap.Logger
}

func NewAuthMiddleware(authService services.AuthServiceInterface, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		logger:      logger,
	}
}

// Auth resuelve la identidad del portador del token y la deja en el
// contexto. Cualquier fallo responde 401 con mensaje genérico.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			m.logger.Warn("petición sin encabezado de autorización",
				zap.String("uri", c.Request().RequestURI))
			return api.ErrorResponse(c, apperrors.NewHttpError(http.StatusUnauthorized, "No autorizado", apperrors.ErrEmptyAuthHeader, nil))
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return api.ErrorResponse(c, apperrors.NewHttpError(http.StatusUnauthorized, "No autorizado", apperrors.ErrInvalidAuthHeader, nil))
		}

		usuario, err := m.authService.UsuarioPorToken(c.Request().Context(), parts[1])
		if err != nil {
			m.logger.Warn("token rechazado", zap.Error(err))
			return api.ErrorResponse(c, apperrors.NewHttpError(http.StatusUnauthorized, "Token inválido", err, nil))
		}

		ctx := c.Request().Context()
		ctx = context.WithValue(ctx, contextkeys.CedulaKey, usuario.CedulaUsuario)
		ctx = context.WithValue(ctx, contextkeys.NombreRolKey, usuario.NombreRol)
		ctx = context.WithValue(ctx, contextkeys.NombreUserKey, usuario.NombreUsuario)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRol restringe la ruta a un rol concreto; va siempre detrás de Auth.
func (m *AuthMiddleware) RequireRol(rol string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actual, _ := c.Request().Context().Value(contextkeys.NombreRolKey).(string)
			if actual != rol {
				m.logger.Warn("acceso denegado por rol",
					zap.String("rol_requerido", rol),
					zap.String("rol_actual", actual),
				)
				return api.ErrorResponse(c, apperrors.NewHttpError(http.StatusForbidden, "Acceso denegado. Solo superusuarios.", apperrors.ErrForbidden, nil))
			}
			return next(c)
		}
	}
}
