package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventario-system/internal/dto"
	"inventario-system/internal/entities"
	apperrors "inventario-system/pkg/errors"
)

const mantenimientoTable = "historial_mantenimiento"

// Código SQLSTATE de violación de clave foránea.
const fkViolationCode = "23503"

type MantenimientoRepositoryInterface interface {
	Crear(ctx context.Context, payload dto.CrearMantenimientoDTO, tecnico *int64) (int64, error)
	ListarPorEquipo(ctx context.Context, equipo string) ([]entities.Mantenimiento, error)
	ListarTodos(ctx context.Context, busqueda *string) ([]entities.Mantenimiento, error)
	ReportePeriodo(ctx context.Context, filtro dto.FiltroMantenimientosPeriodoDTO) ([]entities.Mantenimiento, error)
}

type MantenimientoRepository struct {
	storage *pgxpool.Pool
}

func NewMantenimientoRepository(storage *pgxpool.Pool) MantenimientoRepositoryInterface {
	return &MantenimientoRepository{storage: storage}
}

// Crear no verifica la existencia del equipo: la restricción de clave
// foránea rechaza las referencias huérfanas y eso se traduce a ErrReferenciaInvalida.
func (r *MantenimientoRepository) Crear(ctx context.Context, p dto.CrearMantenimientoDTO, tecnico *int64) (int64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (fk_equipo_id, tipo_mantenimiento, descripcion_mantenimiento, fk_tecnico_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, mantenimientoTable)

	var id int64
	err := r.storage.QueryRow(ctx, query, p.Equipo, p.Tipo, p.Descripcion, tecnico).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == fkViolationCode {
			return 0, apperrors.ErrReferenciaInvalida
		}
		return 0, err
	}
	return id, nil
}

func (r *MantenimientoRepository) baseSelect() sq.SelectBuilder {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	return psql.Select(
		"m.id", "m.fk_equipo_id", "m.tipo_mantenimiento", "m.descripcion_mantenimiento",
		"m.fk_tecnico_id", "m.fecha_mantenimiento",
		"u.nombre_usuario AS tecnico", "e.marca_equipo", "e.modelo_equipo",
	).
		From(mantenimientoTable + " m").
		LeftJoin("usuarios u ON m.fk_tecnico_id = u.cedula_usuario").
		LeftJoin("equipos e ON m.fk_equipo_id = e.nombre_equipo")
}

func (r *MantenimientoRepository) queryList(ctx context.Context, builder sq.SelectBuilder) ([]entities.Mantenimiento, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta de mantenimientos: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mantenimientos := make([]entities.Mantenimiento, 0)
	for rows.Next() {
		var m entities.Mantenimiento
		err := rows.Scan(
			&m.ID, &m.Equipo, &m.Tipo, &m.Descripcion, &m.TecnicoCedula, &m.Fecha,
			&m.Tecnico, &m.MarcaEquipo, &m.ModeloEquipo,
		)
		if err != nil {
			return nil, err
		}
		mantenimientos = append(mantenimientos, m)
	}
	return mantenimientos, rows.Err()
}

func (r *MantenimientoRepository) ListarPorEquipo(ctx context.Context, equipo string) ([]entities.Mantenimiento, error) {
	builder := r.baseSelect().
		Where(sq.Eq{"m.fk_equipo_id": equipo}).
		OrderBy("m.fecha_mantenimiento DESC")
	return r.queryList(ctx, builder)
}

func (r *MantenimientoRepository) ListarTodos(ctx context.Context, busqueda *string) ([]entities.Mantenimiento, error) {
	builder := r.baseSelect()
	if busqueda != nil {
		patron := "%" + *busqueda + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"m.fk_equipo_id": patron},
			sq.ILike{"e.ip_equipo": patron},
		})
	}
	builder = builder.OrderBy("m.fecha_mantenimiento DESC")
	return r.queryList(ctx, builder)
}

func (r *MantenimientoRepository) ReportePeriodo(ctx context.Context, filtro dto.FiltroMantenimientosPeriodoDTO) ([]entities.Mantenimiento, error) {
	builder := r.baseSelect()
	if filtro.FechaInicio != nil {
		builder = builder.Where(sq.GtOrEq{"m.fecha_mantenimiento": *filtro.FechaInicio})
	}
	if filtro.FechaFin != nil {
		builder = builder.Where(sq.LtOrEq{"m.fecha_mantenimiento": *filtro.FechaFin})
	}
	if filtro.Tipo != nil {
		builder = builder.Where(sq.Eq{"m.tipo_mantenimiento": *filtro.Tipo})
	}
	builder = builder.OrderBy("m.fecha_mantenimiento DESC")
	return r.queryList(ctx, builder)
}
