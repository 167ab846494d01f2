package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventario-system/internal/dto"
	"inventario-system/internal/services"
	"inventario-system/pkg/api"
	"inventario-system/pkg/utils"
)

type MantenimientoController struct {
	mantenimientoService services.MantenimientoServiceInterface
	logger               *zap.Logger
}

func NewMantenimientoController(mantenimientoService services.MantenimientoServiceInterface, logger *zap.Logger) *MantenimientoController {
	return &MantenimientoController{
		mantenimientoService: mantenimientoService,
		logger:               logger,
	}
}

func (c *MantenimientoController) Registrar(ctx echo.Context) error {
	var payload dto.CrearMantenimientoDTO
	if err := ctx.Bind(&payload); err != nil {
		return errorDeBind(ctx, err)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	res, err := c.mantenimientoService.Registrar(ctx.Request().Context(), payload)
	if err != nil {
		return manejarError(ctx, c.logger, err, "No se pudo registrar el mantenimiento")
	}

	return api.SuccessOne(ctx, http.StatusOK, "Mantenimiento registrado", res)
}

func (c *MantenimientoController) PorEquipo(ctx echo.Context) error {
	equipo := ctx.Param("equipo")

	mantenimientos, err := c.mantenimientoService.ListarPorEquipo(ctx.Request().Context(), equipo)
	if err != nil {
		return manejarError(ctx, c.logger, err, "No se pudo obtener el historial de mantenimientos")
	}

	return api.SuccessList(ctx, "Historial de mantenimientos obtenido", mantenimientos)
}

func (c *MantenimientoController) Todos(ctx echo.Context) error {
	busqueda := utils.ParseOpcional(ctx.Request().URL.Query(), "busqueda")

	mantenimientos, err := c.mantenimientoService.ListarTodos(ctx.Request().Context(), busqueda)
	if err != nil {
		return manejarError(ctx, c.logger, err, "No se pudo obtener la lista de mantenimientos")
	}

	return api.SuccessList(ctx, "Lista de mantenimientos obtenida", mantenimientos)
}
