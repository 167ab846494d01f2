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

type EquipoController struct {
	equipoService services.EquipoServiceInterface
	logger        *zap.Logger
}

func NewEquipoController(equipoService services.EquipoServiceInterface, logger *zap.Logger) *EquipoController {
	return &EquipoController{
		equipoService: equipoService,
		logger:        logger,
	}
}

func (c *EquipoController) Registrar(ctx echo.Context) error {
	var payload dto.RegistrarEquipoDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("Registrar: error de bind", zap.Error(err))
		return errorDeBind(ctx, err)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	res, err := c.equipoService.Registrar(ctx.Request().Context(), payload)
	if err != nil {
		return manejarError(ctx, c.logger, err, "No se pudo registrar el equipo")
	}

	return api.SuccessOne(ctx, http.StatusOK, "Equipo "+res.Accion, res)
}

func (c *EquipoController) Listar(ctx echo.Context) error {
	query := ctx.Request().URL.Query()
	filtro := dto.FiltroEquiposDTO{
		Unidad:   utils.ParseOpcional(query, "unidad"),
		Estado:   utils.ParseOpcional(query, "estado"),
		Tipo:     utils.ParseOpcional(query, "tipo"),
		Area:     utils.ParseOpcional(query, "area"),
		Busqueda: utils.ParseOpcional(query, "busqueda"),
	}

	equipos, err := c.equipoService.Listar(ctx.Request().Context(), filtro)
	if err != nil {
		return manejarError(ctx, c.logger, err, "No se pudo obtener la lista de equipos")
	}

	return api.SuccessList(ctx, "Lista de equipos obtenida", equipos)
}

func (c *EquipoController) Buscar(ctx echo.Context) error {
	nombre := ctx.Param("nombre")

	equipo, err := c.equipoService.Buscar(ctx.Request().Context(), nombre)
	if err != nil {
		return manejarError(ctx, c.logger, err, "No se pudo obtener el equipo")
	}

	return api.SuccessOne(ctx, http.StatusOK, "Equipo encontrado", equipo)
}

func (c *EquipoController) CambiarEstado(ctx echo.Context) error {
	nombre := ctx.Param("nombre")

	var payload dto.CambiarEstadoDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CambiarEstado: error de bind", zap.String("equipo", nombre), zap.Error(err))
		return errorDeBind(ctx, err)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	_, nombreRol, err := utils.ActorDelContexto(ctx.Request().Context())
	if err != nil {
		return manejarError(ctx, c.logger, err, "No se pudo identificar al actor")
	}

	res, err := c.equipoService.CambiarEstado(ctx.Request().Context(), nombre, payload.Estado, nombreRol)
	if err != nil {
		return manejarError(ctx, c.logger, err, "No se pudo actualizar el estado del equipo")
	}

	return api.SuccessOne(ctx, http.StatusOK, "Estado actualizado", res)
}
