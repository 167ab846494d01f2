package controllers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventario-system/internal/services"
)

type ExportacionController struct {
	exportacionService services.ExportacionServiceInterface
	logger             *zap.Logger
}

func NewExportacionController(exportacionService services.ExportacionServiceInterface, logger *zap.Logger) *ExportacionController {
	return &ExportacionController{
		exportacionService: exportacionService,
		logger:             logger,
	}
}

func (c *ExportacionController) CSV(ctx echo.Context) error {
	contenido, nombre, err := c.exportacionService.ExportarCSV(ctx.Request().Context())
	if err != nil {
		return manejarError(ctx, c.logger, err, "No se pudo generar el archivo CSV")
	}

	return descargarArchivo(ctx, contenido, nombre, "text/csv; charset=utf-8")
}

func (c *ExportacionController) Excel(ctx echo.Context) error {
	contenido, nombre, err := c.exportacionService.ExportarExcel(ctx.Request().Context())
	if err != nil {
		return manejarError(ctx, c.logger, err, "No se pudo generar el archivo Excel")
	}

	return descargarArchivo(ctx, contenido, nombre,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

func descargarArchivo(ctx echo.Context, contenido []byte, nombre, contentType string) error {
	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, nombre))
	return ctx.Blob(http.StatusOK, contentType, contenido)
}
