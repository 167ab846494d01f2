package routes

import (
	"github.com/labstack/echo/v4"

	"inventario-system/internal/controllers"
)

// El registro de equipos queda abierto para que las estaciones puedan
// reportarse solas; el resto de operaciones exige sesión.
func runEquipoRouter(api *echo.Group, secureGroup *echo.Group, equipoCtrl *controllers.EquipoController) {
	api.POST("/equipos", equipoCtrl.Registrar)

	secureGroup.GET("/equipos", equipoCtrl.Listar)
	secureGroup.GET("/equipos/:nombre", equipoCtrl.Buscar)
	secureGroup.PUT("/equipos/:nombre/estado", equipoCtrl.CambiarEstado)
}
