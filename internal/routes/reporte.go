package routes

import (
	"github.com/labstack/echo/v4"

	"inventario-system/internal/controllers"
)

func runReporteRouter(secureGroup *echo.Group, reporteCtrl *controllers.ReporteController) {
	secureGroup.GET("/estadisticas", reporteCtrl.Estadisticas)
	secureGroup.GET("/reportes/historial-estados", reporteCtrl.HistorialEstados)
	secureGroup.GET("/reportes/equipos-por-tecnico", reporteCtrl.EquiposPorTecnico)
	secureGroup.GET("/reportes/mantenimientos-periodo", reporteCtrl.MantenimientosPeriodo)
}
