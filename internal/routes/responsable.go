package routes

import (
	"github.com/labstack/echo/v4"

	"inventario-system/internal/controllers"
)

func runResponsableRouter(secureGroup *echo.Group, responsableCtrl *controllers.ResponsableController) {
	secureGroup.POST("/responsables", responsableCtrl.Asignar)
	secureGroup.PUT("/responsables/:equipo", responsableCtrl.Liberar)
	secureGroup.GET("/responsables", responsableCtrl.Todos)
	secureGroup.GET("/responsables/historial/:equipo", responsableCtrl.Historial)
	secureGroup.GET("/responsables/:equipo", responsableCtrl.Historial)
}
