package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"inventario-system/internal/controllers"
	"inventario-system/internal/dto"
	"inventario-system/internal/entities"
	apperrors "inventario-system/pkg/errors"
	"inventario-system/pkg/middleware"
)

type fakeAuthService struct {
	usuarios map[string]*entities.Usuario // token -> usuario
}

func (f *fakeAuthService) Login(_ context.Context, _ dto.LoginDTO) (*dto.LoginRespuestaDTO, error) {
	return nil, apperrors.ErrInvalidCredentials
}

func (f *fakeAuthService) UsuarioPorToken(_ context.Context, token string) (*entities.Usuario, error) {
	usuario, ok := f.usuarios[token]
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}
	return usuario, nil
}

type fakeUsuarioService struct{}

func (f *fakeUsuarioService) Listar(_ context.Context) ([]entities.Usuario, error) { return nil, nil }
func (f *fakeUsuarioService) Crear(_ context.Context, _ dto.CrearUsuarioDTO) error { return nil }
func (f *fakeUsuarioService) Actualizar(_ context.Context, _ int64, _ dto.ActualizarUsuarioDTO) error {
	return nil
}
func (f *fakeUsuarioService) Desactivar(_ context.Context, _ int64) error { return nil }
func (f *fakeUsuarioService) ListarRoles(_ context.Context) ([]entities.Rol, error) {
	return []entities.Rol{{IDRol: 1, NombreRol: "SUPERUSUARIO"}}, nil
}

func servidorUsuarios(t *testing.T) *echo.Echo {
	t.Helper()

	logger := zap.NewNop()
	authSvc := &fakeAuthService{usuarios: map[string]*entities.Usuario{
		"token-tecnico": {CedulaUsuario: 111, NombreUsuario: "Técnico Uno", NombreRol: "TECNICO"},
		"token-admin":   {CedulaUsuario: 222, NombreUsuario: "Admin", NombreRol: "SUPERUSUARIO"},
	}}

	e := echo.New()
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(authSvc, logger)
	secureGroup := api.Group("", authMW.Auth)

	usuarioCtrl := controllers.NewUsuarioController(&fakeUsuarioService{}, logger)
	runUsuarioRouter(secureGroup, usuarioCtrl, authMW)

	return e
}

func pedir(e *echo.Echo, ruta, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, ruta, nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRutasUsuario_RolesAccesibleParaCualquierAutenticado(t *testing.T) {
	e := servidorUsuarios(t)

	rec := pedir(e, "/api/roles", "token-tecnico")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "SUPERUSUARIO")
}

func TestRutasUsuario_GestionDeUsuariosSoloAdministrador(t *testing.T) {
	e := servidorUsuarios(t)

	assert.Equal(t, http.StatusForbidden, pedir(e, "/api/usuarios", "token-tecnico").Code)
	assert.Equal(t, http.StatusOK, pedir(e, "/api/usuarios", "token-admin").Code)
}

func TestRutasUsuario_SinTokenNoHayAcceso(t *testing.T) {
	e := servidorUsuarios(t)

	req := httptest.NewRequest(http.MethodGet, "/api/roles", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
