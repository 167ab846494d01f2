package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"inventario-system/internal/dto"
	"inventario-system/internal/entities"
	"inventario-system/internal/repositories"
	apperrors "inventario-system/pkg/errors"
)

type ResponsableServiceInterface interface {
	Asignar(ctx context.Context, payload dto.AsignarResponsableDTO) (*dto.RegistroCreadoDTO, error)
	Liberar(ctx context.Context, equipo string) (*dto.LiberacionResultadoDTO, error)
	Historial(ctx context.Context, equipo string) ([]entities.Responsable, error)
	ListarTodos(ctx context.Context, busqueda *string) ([]entities.Responsable, error)
}

type ResponsableService struct {
	responsableRepo repositories.ResponsableRepositoryInterface
	logger          *zap.Logger

	// exclusión mutua por equipo para el check-then-insert de Asignar;
	// el índice único parcial de la base es el respaldo entre procesos
	locks sync.Map // nombre de equipo -> *sync.Mutex
}

func NewResponsableService(
	responsableRepo repositories.ResponsableRepositoryInterface,
	logger *zap.Logger,
) ResponsableServiceInterface {
	return &ResponsableService{
		responsableRepo: responsableRepo,
		logger:          logger,
	}
}

func (s *ResponsableService) lockEquipo(equipo string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(equipo, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (s *ResponsableService) rechazoPorActivo(nombreTecnico string) error {
	return apperrors.NewHttpError(
		http.StatusBadRequest,
		fmt.Sprintf("Este equipo ya tiene un responsable activo: %s. Debe liberarlo primero.", nombreTecnico),
		apperrors.ErrResponsableActivo,
		nil,
	)
}

// Asignar rechaza la petición si el equipo ya tiene responsable activo; el
// rechazo siempre nombra al técnico que bloquea. Bajo asignaciones
// concurrentes gana exactamente una: las demás reciben el mismo rechazo.
func (s *ResponsableService) Asignar(ctx context.Context, payload dto.AsignarResponsableDTO) (*dto.RegistroCreadoDTO, error) {
	mu := s.lockEquipo(payload.Equipo)
	mu.Lock()
	defer mu.Unlock()

	activo, err := s.responsableRepo.BuscarActivo(ctx, payload.Equipo)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if activo != nil {
		s.logger.Warn("asignación rechazada: responsable activo existente",
			zap.String("equipo", payload.Equipo),
			zap.Int64("tecnico_activo", activo.TecnicoCedula),
		)
		return nil, s.rechazoPorActivo(activo.Tecnico.String)
	}

	id, err := s.responsableRepo.Asignar(ctx, payload)
	if err != nil {
		// Perdimos la carrera contra otro proceso: el índice único rechazó
		// el insert. Se reconsulta para poder nombrar al técnico ganador.
		if errors.Is(err, apperrors.ErrResponsableActivo) {
			if activo, findErr := s.responsableRepo.BuscarActivo(ctx, payload.Equipo); findErr == nil {
				return nil, s.rechazoPorActivo(activo.Tecnico.String)
			}
			return nil, s.rechazoPorActivo("otro técnico")
		}
		s.logger.Error("error al asignar responsable", zap.String("equipo", payload.Equipo), zap.Error(err))
		return nil, err
	}

	s.logger.Info("responsable asignado",
		zap.String("equipo", payload.Equipo),
		zap.Int64("tecnico", payload.Tecnico),
	)
	return &dto.RegistroCreadoDTO{ID: id}, nil
}

// Liberar es idempotente: sin responsable activo devuelve cero liberados.
func (s *ResponsableService) Liberar(ctx context.Context, equipo string) (*dto.LiberacionResultadoDTO, error) {
	mu := s.lockEquipo(equipo)
	mu.Lock()
	defer mu.Unlock()

	liberados, err := s.responsableRepo.Liberar(ctx, equipo)
	if err != nil {
		s.logger.Error("error al liberar responsable", zap.String("equipo", equipo), zap.Error(err))
		return nil, err
	}

	s.logger.Info("responsable liberado", zap.String("equipo", equipo), zap.Int64("liberados", liberados))
	return &dto.LiberacionResultadoDTO{NombreEquipo: equipo, Liberados: liberados}, nil
}

func (s *ResponsableService) Historial(ctx context.Context, equipo string) ([]entities.Responsable, error) {
	return s.responsableRepo.Historial(ctx, equipo)
}

func (s *ResponsableService) ListarTodos(ctx context.Context, busqueda *string) ([]entities.Responsable, error) {
	return s.responsableRepo.ListarTodos(ctx, busqueda)
}
