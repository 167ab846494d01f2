package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventario-system/internal/dto"
	"inventario-system/internal/services"
	"inventario-system/pkg/api"
	apperrors "inventario-system/pkg/errors"
)

type UsuarioController struct {
	usuarioService services.UsuarioServiceInterface
	logger         *zap.Logger
}

func NewUsuarioController(usuarioService services.UsuarioServiceInterface, logger *zap.Logger) *UsuarioController {
	return &UsuarioController{
		usuarioService: usuarioService,
		logger:         logger,
	}
}

func (c *UsuarioController) Listar(ctx echo.Context) error {
	usuarios, err := c.usuarioService.Listar(ctx.Request().Context())
	if err != nil {
		return manejarError(ctx, c.logger, err, "No se pudo obtener la lista de usuarios")
	}

	return api.SuccessList(ctx, "Usuarios obtenidos", usuarios)
}

func (c *UsuarioController) Crear(ctx echo.Context) error {
	var payload dto.CrearUsuarioDTO
	if err := ctx.Bind(&payload); err != nil {
		return errorDeBind(ctx, err)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	if err := c.usuarioService.Crear(ctx.Request().Context(), payload); err != nil {
		return manejarError(ctx, c.logger, err, "No se pudo crear el usuario")
	}

	return api.SuccessOne(ctx, http.StatusCreated, "Usuario creado", payload.Cedula)
}

func (c *UsuarioController) Actualizar(ctx echo.Context) error {
	cedula, err := cedulaDeRuta(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	var payload dto.ActualizarUsuarioDTO
	if err := ctx.Bind(&payload); err != nil {
		return errorDeBind(ctx, err)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	if err := c.usuarioService.Actualizar(ctx.Request().Context(), cedula, payload); err != nil {
		return manejarError(ctx, c.logger, err, "No se pudo actualizar el usuario")
	}

	return api.SuccessOne(ctx, http.StatusOK, "Usuario actualizado", cedula)
}

func (c *UsuarioController) Desactivar(ctx echo.Context) error {
	cedula, err := cedulaDeRuta(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	if err := c.usuarioService.Desactivar(ctx.Request().Context(), cedula); err != nil {
		return manejarError(ctx, c.logger, err, "No se pudo desactivar el usuario")
	}

	return api.SuccessOne(ctx, http.StatusOK, "Usuario desactivado", cedula)
}

func (c *UsuarioController) Roles(ctx echo.Context) error {
	roles, err := c.usuarioService.ListarRoles(ctx.Request().Context())
	if err != nil {
		return manejarError(ctx, c.logger, err, "No se pudo obtener la lista de roles")
	}

	return api.SuccessList(ctx, "Roles obtenidos", roles)
}

func cedulaDeRuta(ctx echo.Context) (int64, error) {
	cedula, err := strconv.ParseInt(ctx.Param("cedula"), 10, 64)
	if err != nil {
		return 0, apperrors.NewHttpError(http.StatusBadRequest, "La cédula debe ser un número", err, nil)
	}
	return cedula, nil
}
