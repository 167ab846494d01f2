package services

import (
	"context"

	"go.uber.org/zap"

	"inventario-system/internal/dto"
	"inventario-system/internal/entities"
	"inventario-system/internal/repositories"
	"inventario-system/pkg/utils"
)

type MantenimientoServiceInterface interface {
	Registrar(ctx context.Context, payload dto.CrearMantenimientoDTO) (*dto.RegistroCreadoDTO, error)
	ListarPorEquipo(ctx context.Context, equipo string) ([]entities.Mantenimiento, error)
	ListarTodos(ctx context.Context, busqueda *string) ([]entities.Mantenimiento, error)
}

type MantenimientoService struct {
	mantenimientoRepo repositories.MantenimientoRepositoryInterface
	logger            *zap.Logger
}

func NewMantenimientoService(
	mantenimientoRepo repositories.MantenimientoRepositoryInterface,
	logger *zap.Logger,
) MantenimientoServiceInterface {
	return &MantenimientoService{
		mantenimientoRepo: mantenimientoRepo,
		logger:            logger,
	}
}

func (s *MantenimientoService) Registrar(ctx context.Context, payload dto.CrearMantenimientoDTO) (*dto.RegistroCreadoDTO, error) {
	tecnico := utils.CedulaOpcional(ctx)

	id, err := s.mantenimientoRepo.Crear(ctx, payload, tecnico)
	if err != nil {
		s.logger.Error("error al registrar mantenimiento", zap.String("equipo", payload.Equipo), zap.Error(err))
		return nil, err
	}

	s.logger.Info("mantenimiento registrado",
		zap.String("equipo", payload.Equipo),
		zap.String("tipo", payload.Tipo),
		zap.Int64("id", id),
	)
	return &dto.RegistroCreadoDTO{ID: id}, nil
}

func (s *MantenimientoService) ListarPorEquipo(ctx context.Context, equipo string) ([]entities.Mantenimiento, error) {
	return s.mantenimientoRepo.ListarPorEquipo(ctx, equipo)
}

func (s *MantenimientoService) ListarTodos(ctx context.Context, busqueda *string) ([]entities.Mantenimiento, error) {
	return s.mantenimientoRepo.ListarTodos(ctx, busqueda)
}
