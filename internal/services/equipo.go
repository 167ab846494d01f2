package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"inventario-system/internal/dto"
	"inventario-system/internal/entities"
	"inventario-system/internal/repositories"
)

type EquipoServiceInterface interface {
	Registrar(ctx context.Context, payload dto.RegistrarEquipoDTO) (*dto.ResultadoRegistroDTO, error)
	Buscar(ctx context.Context, nombre string) (*entities.Equipo, error)
	Listar(ctx context.Context, filtro dto.FiltroEquiposDTO) ([]entities.Equipo, error)
	CambiarEstado(ctx context.Context, nombre, nuevoEstado, nombreRol string) (*dto.CambioEstadoResultadoDTO, error)
	ContarEquipos(ctx context.Context) (int64, error)
}

type EquipoService struct {
	equipoRepo    repositories.EquipoRepositoryInterface
	historialRepo repositories.HistorialEstadoRepositoryInterface
	txManager     repositories.TxManagerInterface
	logger        *zap.Logger
}

func NewEquipoService(
	equipoRepo repositories.EquipoRepositoryInterface,
	historialRepo repositories.HistorialEstadoRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) EquipoServiceInterface {
	return &EquipoService{
		equipoRepo:    equipoRepo,
		historialRepo: historialRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

// Registrar es el upsert por nombre: inserta si no existe, reemplaza todos
// los campos mutables si existe.
func (s *EquipoService) Registrar(ctx context.Context, payload dto.RegistrarEquipoDTO) (*dto.ResultadoRegistroDTO, error) {
	creado, err := s.equipoRepo.Registrar(ctx, payload)
	if err != nil {
		s.logger.Error("error al registrar equipo", zap.String("equipo", payload.NombreEquipo), zap.Error(err))
		return nil, err
	}

	accion := "actualizado"
	if creado {
		accion = "registrado"
	}
	s.logger.Info("equipo "+accion, zap.String("equipo", payload.NombreEquipo))

	return &dto.ResultadoRegistroDTO{NombreEquipo: payload.NombreEquipo, Accion: accion}, nil
}

func (s *EquipoService) Buscar(ctx context.Context, nombre string) (*entities.Equipo, error) {
	return s.equipoRepo.Buscar(ctx, nombre)
}

func (s *EquipoService) Listar(ctx context.Context, filtro dto.FiltroEquiposDTO) ([]entities.Equipo, error) {
	return s.equipoRepo.Listar(ctx, filtro)
}

func (s *EquipoService) ContarEquipos(ctx context.Context) (int64, error) {
	return s.equipoRepo.ContarTodos(ctx)
}

// rolActor reduce el rol de la aplicación a la etiqueta que consumen los
// triggers de auditoría de la base.
func rolActor(nombreRol string) string {
	if nombreRol == "ADMINISTRADOR" || nombreRol == "SUPERUSUARIO" {
		return "ADMIN"
	}
	return "TECNICO"
}

// CambiarEstado lee el estado vigente, escribe el nuevo y agrega la fila de
// historial en una única transacción: o ambas escrituras son visibles o
// ninguna. No se valida la transición: cualquier cadena es un estado válido.
func (s *EquipoService) CambiarEstado(ctx context.Context, nombre, nuevoEstado, nombreRol string) (*dto.CambioEstadoResultadoDTO, error) {
	var resultado *dto.CambioEstadoResultadoDTO

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		estadoAnterior, err := s.equipoRepo.EstadoActualTx(ctx, tx, nombre)
		if err != nil {
			return err
		}

		actor := rolActor(nombreRol)
		if err := s.equipoRepo.ActualizarEstadoTx(ctx, tx, nombre, nuevoEstado, actor); err != nil {
			return err
		}

		if _, err := s.historialRepo.InsertarTx(ctx, tx, nombre, estadoAnterior, nuevoEstado, actor); err != nil {
			return err
		}

		resultado = &dto.CambioEstadoResultadoDTO{
			NombreEquipo:   nombre,
			EstadoAnterior: estadoAnterior,
			EstadoNuevo:    nuevoEstado,
		}
		return nil
	})
	if err != nil {
		s.logger.Error("error al cambiar estado del equipo",
			zap.String("equipo", nombre),
			zap.String("estado_nuevo", nuevoEstado),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("estado de equipo actualizado",
		zap.String("equipo", nombre),
		zap.String("estado_anterior", resultado.EstadoAnterior),
		zap.String("estado_nuevo", resultado.EstadoNuevo),
	)
	return resultado, nil
}
