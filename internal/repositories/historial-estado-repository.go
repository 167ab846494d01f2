package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventario-system/internal/dto"
	"inventario-system/internal/entities"
)

const historialEstadoTable = "historial_estado"

type HistorialEstadoRepositoryInterface interface {
	InsertarTx(ctx context.Context, tx pgx.Tx, equipo, estadoAnterior, estadoNuevo, rolActor string) (int64, error)
	Reporte(ctx context.Context, filtro dto.FiltroHistorialEstadosDTO) ([]entities.HistorialEstado, error)
}

type HistorialEstadoRepository struct {
	storage *pgxpool.Pool
}

func NewHistorialEstadoRepository(storage *pgxpool.Pool) HistorialEstadoRepositoryInterface {
	return &HistorialEstadoRepository{storage: storage}
}

// InsertarTx agrega la fila del libro de transiciones dentro de la misma
// transacción que actualiza el estado del equipo.
func (r *HistorialEstadoRepository) InsertarTx(ctx context.Context, tx pgx.Tx, equipo, estadoAnterior, estadoNuevo, rolActor string) (int64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (fk_equipo_id, estado_anterior, estado_nuevo, rol_actor)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, historialEstadoTable)

	var id int64
	err := tx.QueryRow(ctx, query, equipo, estadoAnterior, estadoNuevo, rolActor).Scan(&id)
	return id, err
}

func (r *HistorialEstadoRepository) Reporte(ctx context.Context, filtro dto.FiltroHistorialEstadosDTO) ([]entities.HistorialEstado, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	builder := psql.Select(
		"h.id", "h.fk_equipo_id", "h.estado_anterior", "h.estado_nuevo", "h.rol_actor", "h.fecha_estado",
		"e.marca_equipo", "e.modelo_equipo", "e.unidad_actual",
	).
		From(historialEstadoTable + " h").
		Join("equipos e ON h.fk_equipo_id = e.nombre_equipo")

	if filtro.Equipo != nil {
		builder = builder.Where(sq.Eq{"h.fk_equipo_id": *filtro.Equipo})
	}
	if filtro.FechaInicio != nil {
		builder = builder.Where(sq.GtOrEq{"h.fecha_estado": *filtro.FechaInicio})
	}
	if filtro.FechaFin != nil {
		builder = builder.Where(sq.LtOrEq{"h.fecha_estado": *filtro.FechaFin})
	}

	builder = builder.OrderBy("h.fecha_estado DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir el reporte de historial de estados: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	historial := make([]entities.HistorialEstado, 0)
	for rows.Next() {
		var h entities.HistorialEstado
		err := rows.Scan(
			&h.ID, &h.Equipo, &h.EstadoAnterior, &h.EstadoNuevo, &h.RolActor, &h.FechaEstado,
			&h.MarcaEquipo, &h.ModeloEquipo, &h.UnidadActual,
		)
		if err != nil {
			return nil, err
		}
		historial = append(historial, h)
	}
	return historial, rows.Err()
}
