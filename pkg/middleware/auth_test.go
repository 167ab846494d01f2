package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventario-system/internal/dto"
	"inventario-system/internal/entities"
	apperrors "inventario-system/pkg/errors"
	"inventario-system/pkg/utils"
)

type fakeAuthService struct {
	usuario *entities.Usuario
}

func (f *fakeAuthService) Login(_ context.Context, _ dto.LoginDTO) (*dto.LoginRespuestaDTO, error) {
	return nil, apperrors.ErrInvalidCredentials
}

func (f *fakeAuthService) UsuarioPorToken(_ context.Context, token string) (*entities.Usuario, error) {
	if f.usuario == nil || token != "token-valido" {
		return nil, apperrors.ErrInvalidToken
	}
	return f.usuario, nil
}

func ejecutar(t *testing.T, mw *AuthMiddleware, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/equipos", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		cedula, rol, err := utils.ActorDelContexto(c.Request().Context())
		require.NoError(t, err)
		assert.Equal(t, int64(123), cedula)
		assert.NotEmpty(t, rol)
		return c.NoContent(http.StatusOK)
	}

	_ = mw.Auth(handler)(c)
	return rec
}

func TestAuthMiddleware_TokenValidoDejaIdentidadEnContexto(t *testing.T) {
	mw := NewAuthMiddleware(&fakeAuthService{usuario: &entities.Usuario{
		CedulaUsuario: 123,
		NombreUsuario: "Usuario de Prueba",
		NombreRol:     "TECNICO",
	}}, zap.NewNop())

	rec := ejecutar(t, mw, "Bearer token-valido")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RechazaSinEncabezado(t *testing.T) {
	mw := NewAuthMiddleware(&fakeAuthService{}, zap.NewNop())

	rec := ejecutar(t, mw, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RechazaFormatoInvalido(t *testing.T) {
	mw := NewAuthMiddleware(&fakeAuthService{}, zap.NewNop())

	rec := ejecutar(t, mw, "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RechazaTokenDesconocido(t *testing.T) {
	mw := NewAuthMiddleware(&fakeAuthService{}, zap.NewNop())

	rec := ejecutar(t, mw, "Bearer token-revocado")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRolFiltraPorRol(t *testing.T) {
	usuario := &entities.Usuario{CedulaUsuario: 123, NombreRol: "TECNICO"}
	mw := NewAuthMiddleware(&fakeAuthService{usuario: usuario}, zap.NewNop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/usuarios", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer token-valido")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw.Auth(mw.RequireRol("SUPERUSUARIO")(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}))

	_ = handler(c)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// con el rol correcto pasa
	usuario.NombreRol = "SUPERUSUARIO"
	req = httptest.NewRequest(http.MethodGet, "/api/usuarios", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer token-valido")
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)

	_ = handler(c)
	assert.Equal(t, http.StatusOK, rec.Code)
}
