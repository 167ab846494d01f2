package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventario-system/internal/dto"
	"inventario-system/internal/entities"
	apperrors "inventario-system/pkg/errors"
)

const usuarioTable = "usuarios"

const usuarioJoin = `usuarios u JOIN roles r ON u.fk_id_rol = r.id_rol`
const usuarioColumns = `u.cedula_usuario, u.nombre_usuario, u.password_usuario, u.token,
	u.fk_id_rol, r.nombre_rol, u.estado_usuario, u.fecha_creacion_usuario`

type UsuarioRepositoryInterface interface {
	BuscarPorCedula(ctx context.Context, cedula int64) (*entities.Usuario, error)
	BuscarActivoPorCedula(ctx context.Context, cedula int64) (*entities.Usuario, error)
	GuardarToken(ctx context.Context, cedula int64, token string) error
	Listar(ctx context.Context) ([]entities.Usuario, error)
	Crear(ctx context.Context, payload dto.CrearUsuarioDTO, passwordHash string) error
	Actualizar(ctx context.Context, cedula int64, payload dto.ActualizarUsuarioDTO, passwordHash string) error
	Desactivar(ctx context.Context, cedula int64) error
	ListarRoles(ctx context.Context) ([]entities.Rol, error)
}

type UsuarioRepository struct {
	storage *pgxpool.Pool
}

func NewUsuarioRepository(storage *pgxpool.Pool) UsuarioRepositoryInterface {
	return &UsuarioRepository{storage: storage}
}

func scanUsuario(row pgx.Row) (*entities.Usuario, error) {
	var u entities.Usuario
	err := row.Scan(
		&u.CedulaUsuario, &u.NombreUsuario, &u.Password, &u.Token,
		&u.RolID, &u.NombreRol, &u.EstadoUsuario, &u.FechaCreacionUsuario,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UsuarioRepository) BuscarPorCedula(ctx context.Context, cedula int64) (*entities.Usuario, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE u.cedula_usuario = $1", usuarioColumns, usuarioJoin)
	return scanUsuario(r.storage.QueryRow(ctx, query, cedula))
}

// BuscarActivoPorCedula solo devuelve usuarios habilitados; es la consulta
// del middleware de autenticación.
func (r *UsuarioRepository) BuscarActivoPorCedula(ctx context.Context, cedula int64) (*entities.Usuario, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE u.cedula_usuario = $1 AND u.estado_usuario = TRUE", usuarioColumns, usuarioJoin)
	return scanUsuario(r.storage.QueryRow(ctx, query, cedula))
}

func (r *UsuarioRepository) GuardarToken(ctx context.Context, cedula int64, token string) error {
	query := fmt.Sprintf("UPDATE %s SET token = $1 WHERE cedula_usuario = $2", usuarioTable)
	result, err := r.storage.Exec(ctx, query, token, cedula)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UsuarioRepository) Listar(ctx context.Context) ([]entities.Usuario, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY u.fecha_creacion_usuario DESC", usuarioColumns, usuarioJoin)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	usuarios := make([]entities.Usuario, 0)
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, err
		}
		usuarios = append(usuarios, *u)
	}
	return usuarios, rows.Err()
}

func (r *UsuarioRepository) Crear(ctx context.Context, p dto.CrearUsuarioDTO, passwordHash string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (cedula_usuario, nombre_usuario, password_usuario, fk_id_rol)
		VALUES ($1, $2, $3, $4)
	`, usuarioTable)

	_, err := r.storage.Exec(ctx, query, p.Cedula, p.Nombre, passwordHash, p.RolID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == fkViolationCode {
			return apperrors.ErrReferenciaInvalida
		}
		return err
	}
	return nil
}

func (r *UsuarioRepository) Actualizar(ctx context.Context, cedula int64, p dto.ActualizarUsuarioDTO, passwordHash string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET nombre_usuario = $1, password_usuario = $2, fk_id_rol = $3, estado_usuario = $4
		WHERE cedula_usuario = $5
	`, usuarioTable)

	result, err := r.storage.Exec(ctx, query, p.Nombre, passwordHash, p.RolID, p.Estado, cedula)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Desactivar es la baja lógica: los usuarios nunca se borran físicamente.
func (r *UsuarioRepository) Desactivar(ctx context.Context, cedula int64) error {
	query := fmt.Sprintf("UPDATE %s SET estado_usuario = FALSE WHERE cedula_usuario = $1", usuarioTable)
	result, err := r.storage.Exec(ctx, query, cedula)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UsuarioRepository) ListarRoles(ctx context.Context) ([]entities.Rol, error) {
	rows, err := r.storage.Query(ctx, "SELECT id_rol, nombre_rol FROM roles ORDER BY id_rol")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := make([]entities.Rol, 0)
	for rows.Next() {
		var rol entities.Rol
		if err := rows.Scan(&rol.IDRol, &rol.NombreRol); err != nil {
			return nil, err
		}
		roles = append(roles, rol)
	}
	return roles, rows.Err()
}
