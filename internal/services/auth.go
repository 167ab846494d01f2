package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"inventario-system/internal/dto"
	"inventario-system/internal/entities"
	"inventario-system/internal/repositories"
	apperrors "inventario-system/pkg/errors"
	"inventario-system/pkg/service"
	"inventario-system/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginRespuestaDTO, error)
	UsuarioPorToken(ctx context.Context, token string) (*entities.Usuario, error)
}

type AuthService struct {
	usuarioRepo repositories.UsuarioRepositoryInterface
	cacheRepo   repositories.CacheRepositoryInterface
	jwtSvc      service.JWTService
	logger      *zap.Logger
	cacheTTL    time.Duration
}

func NewAuthService(
	usuarioRepo repositories.UsuarioRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtSvc service.JWTService,
	logger *zap.Logger,
	cacheTTL time.Duration,
) AuthServiceInterface {
	return &AuthService{
		usuarioRepo: usuarioRepo,
		cacheRepo:   cacheRepo,
		jwtSvc:      jwtSvc,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

func cacheKeyToken(token string) string {
	return fmt.Sprintf("auth:token:%s", token)
}

// Login verifica credenciales contra usuarios habilitados, emite un token y
// lo persiste en la fila del usuario: un solo token vivo por usuario, el
// anterior queda revocado. El mensaje de fallo es genérico a propósito.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginRespuestaDTO, error) {
	usuario, err := s.usuarioRepo.BuscarActivoPorCedula(ctx, payload.Cedula)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewHttpError(http.StatusUnauthorized, "Credenciales inválidas", apperrors.ErrInvalidCredentials, nil)
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(payload.Password, usuario.Password) {
		s.logger.Warn("intento de login con contraseña incorrecta", zap.Int64("cedula", payload.Cedula))
		return nil, apperrors.NewHttpError(http.StatusUnauthorized, "Credenciales inválidas", apperrors.ErrInvalidCredentials, nil)
	}

	token, err := s.jwtSvc.GenerateToken(usuario.CedulaUsuario, usuario.NombreRol)
	if err != nil {
		return nil, err
	}

	// invalida el caché del token anterior antes de reemplazarlo
	if usuario.Token.Valid {
		_ = s.cacheRepo.Del(ctx, cacheKeyToken(usuario.Token.String))
	}
	if err := s.usuarioRepo.GuardarToken(ctx, usuario.CedulaUsuario, token); err != nil {
		return nil, err
	}

	s.logger.Info("login correcto", zap.Int64("cedula", usuario.CedulaUsuario), zap.String("rol", usuario.NombreRol))
	return &dto.LoginRespuestaDTO{Token: token, Usuario: usuario}, nil
}

// UsuarioPorToken resuelve el portador del token: firma y vigencia del JWT,
// usuario habilitado y coincidencia con el token persistido (revocación).
// El resultado se cachea brevemente en Redis.
func (s *AuthService) UsuarioPorToken(ctx context.Context, token string) (*entities.Usuario, error) {
	if cached, err := s.cacheRepo.Get(ctx, cacheKeyToken(token)); err == nil && cached != "" {
		var usuario entities.Usuario
		if err := json.Unmarshal([]byte(cached), &usuario); err == nil {
			return &usuario, nil
		}
	}

	claims, err := s.jwtSvc.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	usuario, err := s.usuarioRepo.BuscarActivoPorCedula(ctx, claims.Cedula)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, err
	}

	if !usuario.Token.Valid || usuario.Token.String != token {
		return nil, apperrors.ErrTokenRevoked
	}

	if data, err := json.Marshal(usuario); err == nil {
		_ = s.cacheRepo.Set(ctx, cacheKeyToken(token), string(data), s.cacheTTL)
	}
	return usuario, nil
}
