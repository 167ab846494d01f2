package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventario-system/internal/dto"
	"inventario-system/internal/entities"
	apperrors "inventario-system/pkg/errors"
)

const equipoTable = "equipos"

const equipoColumns = `nombre_equipo, marca_equipo, modelo_equipo, tipo_equipo, tipo_area, unidad_actual,
	procesador_equipo, ram_equipo, tipo_ram, disco_equipo, sistema_operativo, ip_equipo, mac_equipo,
	arquitectura_equipo, placa_torre, placa_monitor, serial_equipo, office, version_office,
	licencia_windows_equipo, antivirus_equipo, observaciones, estado_equipo,
	fecha_creacion_equipo, fecha_actualizacion_equipo`

type EquipoRepositoryInterface interface {
	Registrar(ctx context.Context, payload dto.RegistrarEquipoDTO) (creado bool, err error)
	Buscar(ctx context.Context, nombre string) (*entities.Equipo, error)
	Listar(ctx context.Context, filtro dto.FiltroEquiposDTO) ([]entities.Equipo, error)
	ContarTodos(ctx context.Context) (int64, error)

	// Pasos del cambio de estado; siempre dentro de una transacción.
	EstadoActualTx(ctx context.Context, tx pgx.Tx, nombre string) (string, error)
	ActualizarEstadoTx(ctx context.Context, tx pgx.Tx, nombre, estado, rolActor string) error
	ActualizarUnidadTx(ctx context.Context, tx pgx.Tx, nombre, unidad string) error
}

type EquipoRepository struct {
	storage *pgxpool.Pool
}

func NewEquipoRepository(storage *pgxpool.Pool) EquipoRepositoryInterface {
	return &EquipoRepository{storage: storage}
}

func scanEquipo(row pgx.Row) (*entities.Equipo, error) {
	var e entities.Equipo
	err := row.Scan(
		&e.NombreEquipo, &e.MarcaEquipo, &e.ModeloEquipo, &e.TipoEquipo, &e.TipoArea, &e.UnidadActual,
		&e.ProcesadorEquipo, &e.RamEquipo, &e.TipoRam, &e.DiscoEquipo, &e.SistemaOperativo, &e.IpEquipo,
		&e.MacEquipo, &e.ArquitecturaEquipo, &e.PlacaTorre, &e.PlacaMonitor, &e.SerialEquipo, &e.Office,
		&e.VersionOffice, &e.LicenciaWindowsEquipo, &e.AntivirusEquipo, &e.Observaciones, &e.EstadoEquipo,
		&e.FechaCreacionEquipo, &e.FechaActualizacionEquipo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// Registrar hace el upsert por nombre en una sola sentencia atómica.
// En el UPDATE se reemplazan todos los campos mutables; nombre_equipo y
// fecha_creacion_equipo no se tocan. xmax = 0 distingue insert de update.
func (r *EquipoRepository) Registrar(ctx context.Context, p dto.RegistrarEquipoDTO) (bool, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (
			nombre_equipo, marca_equipo, modelo_equipo, tipo_equipo, tipo_area, unidad_actual,
			procesador_equipo, ram_equipo, tipo_ram, disco_equipo, sistema_operativo, ip_equipo, mac_equipo,
			arquitectura_equipo, placa_torre, placa_monitor, serial_equipo, office, version_office,
			licencia_windows_equipo, antivirus_equipo, observaciones
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		ON CONFLICT (nombre_equipo) DO UPDATE SET
			marca_equipo = EXCLUDED.marca_equipo,
			modelo_equipo = EXCLUDED.modelo_equipo,
			tipo_equipo = EXCLUDED.tipo_equipo,
			tipo_area = EXCLUDED.tipo_area,
			unidad_actual = EXCLUDED.unidad_actual,
			procesador_equipo = EXCLUDED.procesador_equipo,
			ram_equipo = EXCLUDED.ram_equipo,
			tipo_ram = EXCLUDED.tipo_ram,
			disco_equipo = EXCLUDED.disco_equipo,
			sistema_operativo = EXCLUDED.sistema_operativo,
			ip_equipo = EXCLUDED.ip_equipo,
			mac_equipo = EXCLUDED.mac_equipo,
			arquitectura_equipo = EXCLUDED.arquitectura_equipo,
			placa_torre = EXCLUDED.placa_torre,
			placa_monitor = EXCLUDED.placa_monitor,
			serial_equipo = EXCLUDED.serial_equipo,
			office = EXCLUDED.office,
			version_office = EXCLUDED.version_office,
			licencia_windows_equipo = EXCLUDED.licencia_windows_equipo,
			antivirus_equipo = EXCLUDED.antivirus_equipo,
			observaciones = EXCLUDED.observaciones,
			fecha_actualizacion_equipo = CURRENT_TIMESTAMP
		RETURNING (xmax = 0) AS insertado
	`, equipoTable)

	var insertado bool
	err := r.storage.QueryRow(ctx, query,
		p.NombreEquipo, p.Marca, p.Modelo, p.TipoEquipo, p.TipoArea, p.Unidad,
		p.Procesador, p.Ram, p.TipoRam, p.Discos, p.SistemaOperativo, p.Ip, p.Mac,
		p.Arquitectura, p.PlacaTorre, p.PlacaMonitor, p.Serial, p.Office, p.VersionOffice,
		p.LicenciaWindows, p.Antivirus, p.Observaciones,
	).Scan(&insertado)
	if err != nil {
		return false, err
	}
	return insertado, nil
}

func (r *EquipoRepository) Buscar(ctx context.Context, nombre string) (*entities.Equipo, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE nombre_equipo = $1", equipoColumns, equipoTable)
	return scanEquipo(r.storage.QueryRow(ctx, query, nombre))
}

// Listar aplica los filtros con un conjunto cerrado de predicados; nunca se
// interpola texto del usuario en el SQL.
func (r *EquipoRepository) Listar(ctx context.Context, filtro dto.FiltroEquiposDTO) ([]entities.Equipo, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	builder := psql.Select(equipoColumns).From(equipoTable)

	if filtro.Unidad != nil {
		builder = builder.Where(sq.Eq{"unidad_actual": *filtro.Unidad})
	}
	if filtro.Estado != nil {
		builder = builder.Where(sq.Eq{"estado_equipo": *filtro.Estado})
	}
	if filtro.Tipo != nil {
		builder = builder.Where(sq.Eq{"tipo_equipo": *filtro.Tipo})
	}
	if filtro.Area != nil {
		builder = builder.Where(sq.Eq{"tipo_area": *filtro.Area})
	}
	if filtro.Busqueda != nil {
		patron := "%" + *filtro.Busqueda + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"nombre_equipo": patron},
			sq.ILike{"ip_equipo": patron},
		})
	}

	builder = builder.OrderBy("nombre_equipo ASC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta de equipos: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	equipos := make([]entities.Equipo, 0)
	for rows.Next() {
		e, err := scanEquipo(rows)
		if err != nil {
			return nil, err
		}
		equipos = append(equipos, *e)
	}
	return equipos, rows.Err()
}

func (r *EquipoRepository) ContarTodos(ctx context.Context) (int64, error) {
	var total int64
	err := r.storage.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", equipoTable)).Scan(&total)
	return total, err
}

func (r *EquipoRepository) EstadoActualTx(ctx context.Context, tx pgx.Tx, nombre string) (string, error) {
	var estado string
	query := fmt.Sprintf("SELECT estado_equipo FROM %s WHERE nombre_equipo = $1 FOR UPDATE", equipoTable)
	err := tx.QueryRow(ctx, query, nombre).Scan(&estado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", err
	}
	return estado, nil
}

// ActualizarEstadoTx etiqueta la sesión con el rol del actor (app.rol) antes
// del UPDATE; los triggers de auditoría de la base lo consumen.
func (r *EquipoRepository) ActualizarEstadoTx(ctx context.Context, tx pgx.Tx, nombre, estado, rolActor string) error {
	if _, err := tx.Exec(ctx, "SELECT set_config('app.rol', $1, true)", rolActor); err != nil {
		return err
	}

	query := fmt.Sprintf("UPDATE %s SET estado_equipo = $1, fecha_actualizacion_equipo = CURRENT_TIMESTAMP WHERE nombre_equipo = $2", equipoTable)
	result, err := tx.Exec(ctx, query, estado, nombre)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipoRepository) ActualizarUnidadTx(ctx context.Context, tx pgx.Tx, nombre, unidad string) error {
	query := fmt.Sprintf("UPDATE %s SET unidad_actual = $1, fecha_actualizacion_equipo = CURRENT_TIMESTAMP WHERE nombre_equipo = $2", equipoTable)
	result, err := tx.Exec(ctx, query, unidad, nombre)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
