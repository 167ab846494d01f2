package services

import (
	"context"

	"go.uber.org/zap"

	"inventario-system/internal/dto"
	"inventario-system/internal/entities"
	"inventario-system/internal/repositories"
	"inventario-system/pkg/utils"
)

type UsuarioServiceInterface interface {
	Listar(ctx context.Context) ([]entities.Usuario, error)
	Crear(ctx context.Context, payload dto.CrearUsuarioDTO) error
	Actualizar(ctx context.Context, cedula int64, payload dto.ActualizarUsuarioDTO) error
	Desactivar(ctx context.Context, cedula int64) error
	ListarRoles(ctx context.Context) ([]entities.Rol, error)
}

type UsuarioService struct {
	usuarioRepo repositories.UsuarioRepositoryInterface
	logger      *zap.Logger
}

func NewUsuarioService(usuarioRepo repositories.UsuarioRepositoryInterface, logger *zap.Logger) UsuarioServiceInterface {
	return &UsuarioService{usuarioRepo: usuarioRepo, logger: logger}
}

func (s *UsuarioService) Listar(ctx context.Context) ([]entities.Usuario, error) {
	return s.usuarioRepo.Listar(ctx)
}

func (s *UsuarioService) Crear(ctx context.Context, payload dto.CrearUsuarioDTO) error {
	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		return err
	}

	if err := s.usuarioRepo.Crear(ctx, payload, hash); err != nil {
		s.logger.Error("error al crear usuario", zap.Int64("cedula", payload.Cedula), zap.Error(err))
		return err
	}

	s.logger.Info("usuario creado", zap.Int64("cedula", payload.Cedula), zap.Int64("rol", payload.RolID))
	return nil
}

func (s *UsuarioService) Actualizar(ctx context.Context, cedula int64, payload dto.ActualizarUsuarioDTO) error {
	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		return err
	}

	if err := s.usuarioRepo.Actualizar(ctx, cedula, payload, hash); err != nil {
		s.logger.Error("error al actualizar usuario", zap.Int64("cedula", cedula), zap.Error(err))
		return err
	}
	return nil
}

func (s *UsuarioService) Desactivar(ctx context.Context, cedula int64) error {
	if err := s.usuarioRepo.Desactivar(ctx, cedula); err != nil {
		s.logger.Error("error al desactivar usuario", zap.Int64("cedula", cedula), zap.Error(err))
		return err
	}
	s.logger.Info("usuario desactivado", zap.Int64("cedula", cedula))
	return nil
}

func (s *UsuarioService) ListarRoles(ctx context.Context) ([]entities.Rol, error) {
	return s.usuarioRepo.ListarRoles(ctx)
}
