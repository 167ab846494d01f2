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

type TrasladoController struct {
	trasladoService services.TrasladoServiceInterface
	logger          *zap.Logger
}

func NewTrasladoController(trasladoService services.TrasladoServiceInterface, logger *zap.Logger) *TrasladoController {
	return &TrasladoController{
		trasladoService: trasladoService,
		logger:          logger,
	}
}

func (c *TrasladoController) Registrar(ctx echo.Context) error {
	var payload dto.CrearTrasladoDTO
	if err := ctx.Bind(&payload); err != nil {
		return errorDeBind(ctx, err)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	res, err := c.trasladoService.Registrar(ctx.Request().Context(), payload)
	if err != nil {
		return manejarError(ctx, c.logger, err, "No se pudo registrar el traslado")
	}

	return api.SuccessOne(ctx, http.StatusOK, "Traslado registrado", res)
}

func (c *TrasladoController) PorEquipo(ctx echo.Context) error {
	equipo := ctx.Param("equipo")

	traslados, err := c.trasladoService.ListarPorEquipo(ctx.Request().Context(), equipo)
	if err != nil {
		return manejarError(ctx, c.logger, err, "No se pudo obtener el historial de traslados")
	}

	return api.SuccessList(ctx, "Historial de traslados obtenido", traslados)
}

func (c *TrasladoController) Todos(ctx echo.Context) error {
	busqueda := utils.ParseOpcional(ctx.Request().URL.Query(), "busqueda")

	traslados, err := c.trasladoService.ListarTodos(ctx.Request().Context(), busqueda)
	if err != nil {
		return manejarError(ctx, c.logger, err, "No se pudo obtener la lista de traslados")
	}

	return api.SuccessList(ctx, "Lista de traslados obtenida", traslados)
}
