package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventario-system/internal/services"
	"inventario-system/pkg/api"
)

type SaludController struct {
	equipoService services.EquipoServiceInterface
	logger        *zap.Logger
}

func NewSaludController(equipoService services.EquipoServiceInterface, logger *zap.Logger) *SaludController {
	return &SaludController{
		equipoService: equipoService,
		logger:        logger,
	}
}

type estadoServicio struct {
	Estado       string    `json:"estado"`
	Hora         time.Time `json:"hora"`
	TotalEquipos int64     `json:"total_equipos"`
}

// Salud verifica la disponibilidad del servicio y de la base de datos.
func (c *SaludController) Salud(ctx echo.Context) error {
	total, err := c.equipoService.ContarEquipos(ctx.Request().Context())
	if err != nil {
		return manejarError(ctx, c.logger, err, "El servicio no puede acceder a la base de datos")
	}

	return api.SuccessOne(ctx, http.StatusOK, "Servicio en línea", estadoServicio{
		Estado:       "online",
		Hora:         time.Now(),
		TotalEquipos: total,
	})
}
