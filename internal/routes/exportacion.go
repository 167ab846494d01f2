package routes

import (
	"github.com/labstack/echo/v4"

	"inventario-system/internal/controllers"
)

func runExportacionRouter(secureGroup *echo.Group, exportacionCtrl *controllers.ExportacionController) {
	secureGroup.GET("/exportar/csv", exportacionCtrl.CSV)
	secureGroup.GET("/exportar/excel", exportacionCtrl.Excel)
}
