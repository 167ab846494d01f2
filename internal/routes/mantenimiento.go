package routes

import (
	"github.com/labstack/echo/v4"

	"inventario-system/internal/controllers"
)

func runMantenimientoRouter(secureGroup *echo.Group, mantenimientoCtrl *controllers.MantenimientoController) {
	secureGroup.POST("/mantenimientos", mantenimientoCtrl.Registrar)
	secureGroup.GET("/mantenimientos", mantenimientoCtrl.Todos)
	secureGroup.GET("/mantenimientos/:equipo", mantenimientoCtrl.PorEquipo)
}
