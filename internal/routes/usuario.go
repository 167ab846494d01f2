package routes

import (
	"github.com/labstack/echo/v4"

	"inventario-system/internal/controllers"
	"inventario-system/pkg/middleware"
)

// La gestión de usuarios está reservada al rol administrador; el catálogo
// de roles lo puede consultar cualquier usuario autenticado.
func runUsuarioRouter(secureGroup *echo.Group, usuarioCtrl *controllers.UsuarioController, authMW *middleware.AuthMiddleware) {
	adminGroup := secureGroup.Group("", authMW.RequireRol(rolAdministrador))

	adminGroup.GET("/usuarios", usuarioCtrl.Listar)
	adminGroup.POST("/usuarios", usuarioCtrl.Crear)
	adminGroup.PUT("/usuarios/:cedula", usuarioCtrl.Actualizar)
	adminGroup.DELETE("/usuarios/:cedula", usuarioCtrl.Desactivar)

	secureGroup.GET("/roles", usuarioCtrl.Roles)
}
