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

const trasladoTable = "historial_traslados"

type TrasladoRepositoryInterface interface {
	InsertarTx(ctx context.Context, tx pgx.Tx, payload dto.CrearTrasladoDTO, tecnico *int64) (int64, error)
	ListarPorEquipo(ctx context.Context, equipo string) ([]entities.Traslado, error)
	ListarTodos(ctx context.Context, busqueda *string) ([]entities.Traslado, error)
}

type TrasladoRepository struct {
	storage *pgxpool.Pool
}

func NewTrasladoRepository(storage *pgxpool.Pool) TrasladoRepositoryInterface {
	return &TrasladoRepository{storage: storage}
}

// InsertarTx agrega el traslado; el servicio actualiza unidad_actual del
// equipo dentro de la misma transacción, nunca por separado.
func (r *TrasladoRepository) InsertarTx(ctx context.Context, tx pgx.Tx, p dto.CrearTrasladoDTO, tecnico *int64) (int64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (fk_equipo_id, sede_origen, sede_destino, observacion, fk_tecnico_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, trasladoTable)

	var id int64
	err := tx.QueryRow(ctx, query, p.Equipo, p.Origen, p.Destino, p.Motivo, tecnico).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == fkViolationCode {
			return 0, apperrors.ErrReferenciaInvalida
		}
		return 0, err
	}
	return id, nil
}

func (r *TrasladoRepository) baseSelect() sq.SelectBuilder {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	return psql.Select(
		"t.id", "t.fk_equipo_id", "t.sede_origen", "t.sede_destino", "t.observacion",
		"t.fk_tecnico_id", "t.fecha",
		"u.nombre_usuario AS tecnico", "e.marca_equipo", "e.modelo_equipo",
	).
		From(trasladoTable + " t").
		LeftJoin("usuarios u ON t.fk_tecnico_id = u.cedula_usuario").
		LeftJoin("equipos e ON t.fk_equipo_id = e.nombre_equipo")
}

func (r *TrasladoRepository) queryList(ctx context.Context, builder sq.SelectBuilder) ([]entities.Traslado, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta de traslados: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	traslados := make([]entities.Traslado, 0)
	for rows.Next() {
		var t entities.Traslado
		err := rows.Scan(
			&t.ID, &t.Equipo, &t.SedeOrigen, &t.SedeDestino, &t.Observacion,
			&t.TecnicoCedula, &t.Fecha,
			&t.Tecnico, &t.MarcaEquipo, &t.ModeloEquipo,
		)
		if err != nil {
			return nil, err
		}
		traslados = append(traslados, t)
	}
	return traslados, rows.Err()
}

func (r *TrasladoRepository) ListarPorEquipo(ctx context.Context, equipo string) ([]entities.Traslado, error) {
	builder := r.baseSelect().
		Where(sq.Eq{"t.fk_equipo_id": equipo}).
		OrderBy("t.fecha DESC")
	return r.queryList(ctx, builder)
}

func (r *TrasladoRepository) ListarTodos(ctx context.Context, busqueda *string) ([]entities.Traslado, error) {
	builder := r.baseSelect()
	if busqueda != nil {
		patron := "%" + *busqueda + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"t.fk_equipo_id": patron},
			sq.ILike{"e.ip_equipo": patron},
		})
	}
	builder = builder.OrderBy("t.fecha DESC")
	return r.queryList(ctx, builder)
}
