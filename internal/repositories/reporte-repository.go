package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"inventario-system/internal/entities"
)

type ReporteRepositoryInterface interface {
	Estadisticas(ctx context.Context) (*entities.Estadisticas, error)
	CargaPorTecnico(ctx context.Context) ([]entities.CargaTecnico, error)
}

type ReporteRepository struct {
	storage *pgxpool.Pool
}

func NewReporteRepository(storage *pgxpool.Pool) ReporteRepositoryInterface {
	return &ReporteRepository{storage: storage}
}

func (r *ReporteRepository) contarAgrupado(ctx context.Context, columna string) (map[string]int64, error) {
	// columna viene de un conjunto cerrado interno, nunca del usuario
	query := fmt.Sprintf("SELECT COALESCE(%s, 'SIN DATO'), COUNT(*) FROM equipos GROUP BY %s", columna, columna)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	conteos := make(map[string]int64)
	for rows.Next() {
		var clave string
		var total int64
		if err := rows.Scan(&clave, &total); err != nil {
			return nil, err
		}
		conteos[clave] = total
	}
	return conteos, rows.Err()
}

func (r *ReporteRepository) Estadisticas(ctx context.Context) (*entities.Estadisticas, error) {
	stats := &entities.Estadisticas{}

	if err := r.storage.QueryRow(ctx, "SELECT COUNT(*) FROM equipos").Scan(&stats.TotalEquipos); err != nil {
		return nil, err
	}

	var err error
	if stats.PorEstado, err = r.contarAgrupado(ctx, "estado_equipo"); err != nil {
		return nil, err
	}
	if stats.PorUnidad, err = r.contarAgrupado(ctx, "unidad_actual"); err != nil {
		return nil, err
	}
	if stats.PorTipo, err = r.contarAgrupado(ctx, "tipo_equipo"); err != nil {
		return nil, err
	}

	return stats, nil
}

// CargaPorTecnico incluye a los técnicos sin equipos asignados (LEFT JOIN,
// total 0) y concatena los nombres de los equipos activos.
func (r *ReporteRepository) CargaPorTecnico(ctx context.Context) ([]entities.CargaTecnico, error) {
	query := `
		SELECT u.nombre_usuario, u.cedula_usuario,
		       COUNT(r.fk_equipo_id) AS total_equipos,
		       string_agg(r.fk_equipo_id, ', ') AS equipos
		FROM usuarios u
		LEFT JOIN responsables_equipo r ON u.cedula_usuario = r.fk_tecnico_id AND r.activo = TRUE
		WHERE u.estado_usuario = TRUE
		GROUP BY u.cedula_usuario, u.nombre_usuario
		ORDER BY total_equipos DESC
	`

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	carga := make([]entities.CargaTecnico, 0)
	for rows.Next() {
		var c entities.CargaTecnico
		if err := rows.Scan(&c.NombreUsuario, &c.CedulaUsuario, &c.TotalEquipos, &c.Equipos); err != nil {
			return nil, err
		}
		carga = append(carga, c)
	}
	return carga, rows.Err()
}
