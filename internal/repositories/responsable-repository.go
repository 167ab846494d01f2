package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventario-system/internal/dto"
	"inventario-system/internal/entities"
	apperrors "inventario-system/pkg/errors"
)

const responsableTable = "responsables_equipo"

// Código SQLSTATE de violación de restricción de unicidad.
const uniqueViolationCode = "23505"

type ResponsableRepositoryInterface interface {
	BuscarActivo(ctx context.Context, equipo string) (*entities.Responsable, error)
	Asignar(ctx context.Context, payload dto.AsignarResponsableDTO) (int64, error)
	Liberar(ctx context.Context, equipo string) (int64, error)
	Historial(ctx context.Context, equipo string) ([]entities.Responsable, error)
	ListarTodos(ctx context.Context, busqueda *string) ([]entities.Responsable, error)
}

type ResponsableRepository struct {
	storage *pgxpool.Pool
}

func NewResponsableRepository(storage *pgxpool.Pool) ResponsableRepositoryInterface {
	return &ResponsableRepository{storage: storage}
}

func (r *ResponsableRepository) BuscarActivo(ctx context.Context, equipo string) (*entities.Responsable, error) {
	query := fmt.Sprintf(`
		SELECT r.id, r.fk_equipo_id, r.fk_tecnico_id, r.observacion, r.fecha_inicio, r.fecha_fin, r.activo,
		       u.nombre_usuario AS tecnico
		FROM %s r
		JOIN usuarios u ON r.fk_tecnico_id = u.cedula_usuario
		WHERE r.fk_equipo_id = $1 AND r.activo = TRUE
	`, responsableTable)

	var resp entities.Responsable
	err := r.storage.QueryRow(ctx, query, equipo).Scan(
		&resp.ID, &resp.Equipo, &resp.TecnicoCedula, &resp.Observacion,
		&resp.FechaInicio, &resp.FechaFin, &resp.Activo, &resp.Tecnico,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &resp, nil
}

// Asignar inserta la fila activa. El índice único parcial sobre
// (fk_equipo_id) WHERE activo es el respaldo de almacenamiento contra la
// carrera check-then-act: el perdedor recibe ErrResponsableActivo.
func (r *ResponsableRepository) Asignar(ctx context.Context, p dto.AsignarResponsableDTO) (int64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (fk_equipo_id, fk_tecnico_id, observacion)
		VALUES ($1, $2, $3)
		RETURNING id
	`, responsableTable)

	var id int64
	err := r.storage.QueryRow(ctx, query, p.Equipo, p.Tecnico, p.Observacion).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case uniqueViolationCode:
				return 0, apperrors.ErrResponsableActivo
			case fkViolationCode:
				return 0, apperrors.ErrReferenciaInvalida
			}
		}
		return 0, err
	}
	return id, nil
}

// Liberar cierra toda fila activa del equipo. Sin fila activa es un no-op
// con cero filas afectadas, no un error.
func (r *ResponsableRepository) Liberar(ctx context.Context, equipo string) (int64, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET activo = FALSE, fecha_fin = CURRENT_TIMESTAMP
		WHERE fk_equipo_id = $1 AND activo = TRUE
	`, responsableTable)

	result, err := r.storage.Exec(ctx, query, equipo)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

func (r *ResponsableRepository) baseSelect() sq.SelectBuilder {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	return psql.Select(
		"r.id", "r.fk_equipo_id", "r.fk_tecnico_id", "r.observacion",
		"r.fecha_inicio", "r.fecha_fin", "r.activo",
		"u.nombre_usuario AS tecnico", "e.marca_equipo", "e.modelo_equipo",
	).
		From(responsableTable + " r").
		Join("usuarios u ON r.fk_tecnico_id = u.cedula_usuario").
		Join("equipos e ON r.fk_equipo_id = e.nombre_equipo")
}

func (r *ResponsableRepository) queryList(ctx context.Context, builder sq.SelectBuilder) ([]entities.Responsable, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta de responsables: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responsables := make([]entities.Responsable, 0)
	for rows.Next() {
		var resp entities.Responsable
		err := rows.Scan(
			&resp.ID, &resp.Equipo, &resp.TecnicoCedula, &resp.Observacion,
			&resp.FechaInicio, &resp.FechaFin, &resp.Activo,
			&resp.Tecnico, &resp.MarcaEquipo, &resp.ModeloEquipo,
		)
		if err != nil {
			return nil, err
		}
		responsables = append(responsables, resp)
	}
	return responsables, rows.Err()
}

func (r *ResponsableRepository) Historial(ctx context.Context, equipo string) ([]entities.Responsable, error) {
	builder := r.baseSelect().
		Where(sq.Eq{"r.fk_equipo_id": equipo}).
		OrderBy("r.fecha_inicio DESC")
	return r.queryList(ctx, builder)
}

func (r *ResponsableRepository) ListarTodos(ctx context.Context, busqueda *string) ([]entities.Responsable, error) {
	builder := r.baseSelect()
	if busqueda != nil {
		patron := "%" + *busqueda + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"r.fk_equipo_id": patron},
			sq.ILike{"e.ip_equipo": patron},
		})
	}
	builder = builder.OrderBy("r.fecha_inicio DESC")
	return r.queryList(ctx, builder)
}
