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

type ReporteController struct {
	reporteService services.ReporteServiceInterface
	logger         *zap.Logger
}

func NewReporteController(reporteService services.ReporteServiceInterface, logger *zap.Logger) *ReporteController {
	return &ReporteController{
		reporteService: reporteService,
		logger:         logger,
	}
}

func (c *ReporteController) Estadisticas(ctx echo.Context) error {
	stats, err := c.reporteService.Estadisticas(ctx.Request().Context())
	if err != nil {
		return manejarError(ctx, c.logger, err, "No se pudieron calcular las estadísticas")
	}

	return api.SuccessOne(ctx, http.StatusOK, "Estadísticas calculadas", stats)
}

func (c *ReporteController) HistorialEstados(ctx echo.Context) error {
	query := ctx.Request().URL.Query()
	filtro := dto.FiltroHistorialEstadosDTO{
		Equipo:      utils.ParseOpcional(query, "equipo"),
		FechaInicio: utils.ParseFecha(query, "fecha_inicio"),
		FechaFin:    utils.ParseFecha(query, "fecha_fin"),
	}

	historial, err := c.reporteService.HistorialEstados(ctx.Request().Context(), filtro)
	if err != nil {
		return manejarError(ctx, c.logger, err, "No se pudo generar el reporte de historial de estados")
	}

	return api.SuccessList(ctx, "Reporte de historial de estados generado", historial)
}

func (c *ReporteController) EquiposPorTecnico(ctx echo.Context) error {
	carga, err := c.reporteService.CargaPorTecnico(ctx.Request().Context())
	if err != nil {
		return manejarError(ctx, c.logger, err, "No se pudo generar el reporte de equipos por técnico")
	}

	return api.SuccessList(ctx, "Reporte de equipos por técnico generado", carga)
}

func (c *ReporteController) MantenimientosPeriodo(ctx echo.Context) error {
	query := ctx.Request().URL.Query()
	filtro := dto.FiltroMantenimientosPeriodoDTO{
		FechaInicio: utils.ParseFecha(query, "fecha_inicio"),
		FechaFin:    utils.ParseFecha(query, "fecha_fin"),
		Tipo:        utils.ParseOpcional(query, "tipo"),
	}

	mantenimientos, err := c.reporteService.MantenimientosPeriodo(ctx.Request().Context(), filtro)
	if err != nil {
		return manejarError(ctx, c.logger, err, "No se pudo generar el reporte de mantenimientos")
	}

	return api.SuccessList(ctx, "Reporte de mantenimientos generado", mantenimientos)
}
