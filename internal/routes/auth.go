package routes

import (
	"github.com/labstack/echo/v4"

	"inventario-system/internal/controllers"
)

func runAuthRouter(api *echo.Group, authCtrl *controllers.AuthController) {
	api.POST("/login", authCtrl.Login)
}
