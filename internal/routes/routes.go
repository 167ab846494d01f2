package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventario-system/internal/controllers"
	"inventario-system/internal/repositories"
	"inventario-system/internal/services"
	"inventario-system/pkg/config"
	"inventario-system/pkg/middleware"
	"inventario-system/pkg/service"
)

// rolAdministrador es el único rol con acceso a la gestión de usuarios.
const rolAdministrador = "SUPERUSUARIO"

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	logger.Info("InitRouter: creando rutas")

	api := e.Group("/api")
	txManager := repositories.NewTxManager(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- repositorios ---
	equipoRepo := repositories.NewEquipoRepository(dbConn)
	historialRepo := repositories.NewHistorialEstadoRepository(dbConn)
	mantenimientoRepo := repositories.NewMantenimientoRepository(dbConn)
	trasladoRepo := repositories.NewTrasladoRepository(dbConn)
	responsableRepo := repositories.NewResponsableRepository(dbConn)
	reporteRepo := repositories.NewReporteRepository(dbConn)
	usuarioRepo := repositories.NewUsuarioRepository(dbConn)

	// --- servicios ---
	authService := services.NewAuthService(usuarioRepo, cacheRepo, jwtSvc, logger, cfg.Cache.AuthTTL)
	equipoService := services.NewEquipoService(equipoRepo, historialRepo, txManager, logger)
	mantenimientoService := services.NewMantenimientoService(mantenimientoRepo, logger)
	trasladoService := services.NewTrasladoService(trasladoRepo, equipoRepo, txManager, logger)
	responsableService := services.NewResponsableService(responsableRepo, logger)
	reporteService := services.NewReporteService(reporteRepo, historialRepo, mantenimientoRepo, cacheRepo, logger, cfg.Cache.StatsTTL)
	exportacionService := services.NewExportacionService(equipoRepo, logger)
	usuarioService := services.NewUsuarioService(usuarioRepo, logger)

	// --- controladores ---
	authController := controllers.NewAuthController(authService, logger)
	equipoController := controllers.NewEquipoController(equipoService, logger)
	mantenimientoController := controllers.NewMantenimientoController(mantenimientoService, logger)
	trasladoController := controllers.NewTrasladoController(trasladoService, logger)
	responsableController := controllers.NewResponsableController(responsableService, logger)
	reporteController := controllers.NewReporteController(reporteService, logger)
	exportacionController := controllers.NewExportacionController(exportacionService, logger)
	usuarioController := controllers.NewUsuarioController(usuarioService, logger)
	saludController := controllers.NewSaludController(equipoService, logger)

	authMW := middleware.NewAuthMiddleware(authService, logger)
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, authController)
	runSaludRouter(api, saludController)
	runEquipoRouter(api, secureGroup, equipoController)
	runMantenimientoRouter(secureGroup, mantenimientoController)
	runTrasladoRouter(secureGroup, trasladoController)
	runResponsableRouter(secureGroup, responsableController)
	runReporteRouter(secureGroup, reporteController)
	runExportacionRouter(secureGroup, exportacionController)
	runUsuarioRouter(secureGroup, usuarioController, authMW)

	logger.Info("InitRouter: rutas creadas")
}
