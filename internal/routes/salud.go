package routes

import (
	"github.com/labstack/echo/v4"

	"inventario-system/internal/controllers"
)

func runSaludRouter(api *echo.Group, saludCtrl *controllers.SaludController) {
	api.GET("/health", saludCtrl.Salud)
}
