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

type ResponsableController struct {
	responsableService services.ResponsableServiceInterface
	logger             *zap.Logger
}

func NewResponsableController(responsableService services.ResponsableServiceInterface, logger *zap.Logger) *ResponsableController {
	return &ResponsableController{
		responsableService: responsableService,
		logger:             logger,
	}
}

func (c *ResponsableController) Asignar(ctx echo.Context) error {
	var payload dto.AsignarResponsableDTO
	if err := ctx.Bind(&payload); err != nil {
		return errorDeBind(ctx, err)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	res, err := c.responsableService.Asignar(ctx.Request().Context(), payload)
	if err != nil {
		return manejarError(ctx, c.logger, err, "No se pudo asignar el responsable")
	}

	return api.SuccessOne(ctx, http.StatusOK, "Responsable asignado correctamente", res)
}

func (c *ResponsableController) Liberar(ctx echo.Context) error {
	equipo := ctx.Param("equipo")

	res, err := c.responsableService.Liberar(ctx.Request().Context(), equipo)
	if err != nil {
		return manejarError(ctx, c.logger, err, "No se pudo liberar el responsable")
	}

	return api.SuccessOne(ctx, http.StatusOK, "Responsable liberado correctamente", res)
}

// Historial devuelve todas las asignaciones del equipo, la vigente primero;
// un equipo sin asignaciones obtiene una lista vacía, no un error.
func (c *ResponsableController) Historial(ctx echo.Context) error {
	equipo := ctx.Param("equipo")

	historial, err := c.responsableService.Historial(ctx.Request().Context(), equipo)
	if err != nil {
		return manejarError(ctx, c.logger, err, "No se pudo obtener el historial de responsables")
	}

	return api.SuccessList(ctx, "Historial de responsables obtenido", historial)
}

func (c *ResponsableController) Todos(ctx echo.Context) error {
	busqueda := utils.ParseOpcional(ctx.Request().URL.Query(), "busqueda")

	responsables, err := c.responsableService.ListarTodos(ctx.Request().Context(), busqueda)
	if err != nil {
		return manejarError(ctx, c.logger, err, "No se pudo obtener la lista de responsables")
	}

	return api.SuccessList(ctx, "Lista de responsables obtenida", responsables)
}
