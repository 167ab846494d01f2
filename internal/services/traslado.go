package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"inventario-system/internal/dto"
	"inventario-system/internal/entities"
	"inventario-system/internal/repositories"
	"inventario-system/pkg/utils"
)

type TrasladoServiceInterface interface {
	Registrar(ctx context.Context, payload dto.CrearTrasladoDTO) (*dto.RegistroCreadoDTO, error)
	ListarPorEquipo(ctx context.Context, equipo string) ([]entities.Traslado, error)
	ListarTodos(ctx context.Context, busqueda *string) ([]entities.Traslado, error)
}

type TrasladoService struct {
	trasladoRepo repositories.TrasladoRepositoryInterface
	equipoRepo   repositories.EquipoRepositoryInterface
	txManager    repositories.TxManagerInterface
	logger       *zap.Logger
}

func NewTrasladoService(
	trasladoRepo repositories.TrasladoRepositoryInterface,
	equipoRepo repositories.EquipoRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) TrasladoServiceInterface {
	return &TrasladoService{
		trasladoRepo: trasladoRepo,
		equipoRepo:   equipoRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Registrar agrega el traslado y mueve unidad_actual al destino en una sola
// transacción; unidad_actual nunca puede divergir del último traslado.
func (s *TrasladoService) Registrar(ctx context.Context, payload dto.CrearTrasladoDTO) (*dto.RegistroCreadoDTO, error) {
	tecnico := utils.CedulaOpcional(ctx)

	var id int64
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		id, err = s.trasladoRepo.InsertarTx(ctx, tx, payload, tecnico)
		if err != nil {
			return err
		}
		return s.equipoRepo.ActualizarUnidadTx(ctx, tx, payload.Equipo, payload.Destino)
	})
	if err != nil {
		s.logger.Error("error al registrar traslado",
			zap.String("equipo", payload.Equipo),
			zap.String("destino", payload.Destino),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("traslado registrado",
		zap.String("equipo", payload.Equipo),
		zap.String("origen", payload.Origen),
		zap.String("destino", payload.Destino),
	)
	return &dto.RegistroCreadoDTO{ID: id}, nil
}

func (s *TrasladoService) ListarPorEquipo(ctx context.Context, equipo string) ([]entities.Traslado, error) {
	return s.trasladoRepo.ListarPorEquipo(ctx, equipo)
}

func (s *TrasladoService) ListarTodos(ctx context.Context, busqueda *string) ([]entities.Traslado, error) {
	return s.trasladoRepo.ListarTodos(ctx, busqueda)
}
