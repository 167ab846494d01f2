package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"inventario-system/internal/dto"
	"inventario-system/internal/entities"
	"inventario-system/internal/repositories"
)

const estadisticasCacheKey = "reporte:estadisticas"

type ReporteServiceInterface interface {
	Estadisticas(ctx context.Context) (*entities.Estadisticas, error)
	HistorialEstados(ctx context.Context, filtro dto.FiltroHistorialEstadosDTO) ([]entities.HistorialEstado, error)
	CargaPorTecnico(ctx context.Context) ([]entities.CargaTecnico, error)
	MantenimientosPeriodo(ctx context.Context, filtro dto.FiltroMantenimientosPeriodoDTO) ([]entities.Mantenimiento, error)
}

type ReporteService struct {
	reporteRepo       repositories.ReporteRepositoryInterface
	historialRepo     repositories.HistorialEstadoRepositoryInterface
	mantenimientoRepo repositories.MantenimientoRepositoryInterface
	cacheRepo         repositories.CacheRepositoryInterface
	logger            *zap.Logger
	statsTTL          time.Duration
}

func NewReporteService(
	reporteRepo repositories.ReporteRepositoryInterface,
	historialRepo repositories.HistorialEstadoRepositoryInterface,
	mantenimientoRepo repositories.MantenimientoRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	statsTTL time.Duration,
) ReporteServiceInterface {
	return &ReporteService{
		reporteRepo:       reporteRepo,
		historialRepo:     historialRepo,
		mantenimientoRepo: mantenimientoRepo,
		cacheRepo:         cacheRepo,
		logger:            logger,
		statsTTL:          statsTTL,
	}
}

// Estadisticas se sirve desde Redis mientras no venza el TTL; los conteos
// no necesitan ser instantáneamente exactos.
func (s *ReporteService) Estadisticas(ctx context.Context) (*entities.Estadisticas, error) {
	if cached, err := s.cacheRepo.Get(ctx, estadisticasCacheKey); err == nil && cached != "" {
		var stats entities.Estadisticas
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	}

	stats, err := s.reporteRepo.Estadisticas(ctx)
	if err != nil {
		s.logger.Error("error al calcular estadísticas", zap.Error(err))
		return nil, err
	}

	if data, err := json.Marshal(stats); err == nil {
		_ = s.cacheRepo.Set(ctx, estadisticasCacheKey, string(data), s.statsTTL)
	}
	return stats, nil
}

func (s *ReporteService) HistorialEstados(ctx context.Context, filtro dto.FiltroHistorialEstadosDTO) ([]entities.HistorialEstado, error) {
	return s.historialRepo.Reporte(ctx, filtro)
}

func (s *ReporteService) CargaPorTecnico(ctx context.Context) ([]entities.CargaTecnico, error) {
	return s.reporteRepo.CargaPorTecnico(ctx)
}

func (s *ReporteService) MantenimientosPeriodo(ctx context.Context, filtro dto.FiltroMantenimientosPeriodoDTO) ([]entities.Mantenimiento, error) {
	return s.mantenimientoRepo.ReportePeriodo(ctx, filtro)
}
