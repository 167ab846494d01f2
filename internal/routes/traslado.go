package routes

import (
	"github.com/labstack/echo/v4"

	"inventario-system/internal/controllers"
)

func runTrasladoRouter(secureGroup *echo.Group, trasladoCtrl *controllers.TrasladoController) {
	secureGroup.POST("/traslados", trasladoCtrl.Registrar)
	secureGroup.GET("/traslados", trasladoCtrl.Todos)
	secureGroup.GET("/traslados/:equipo", trasladoCtrl.PorEquipo)
}
