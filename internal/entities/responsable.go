package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Responsable es una asignación de responsabilidad sobre un equipo.
// Invariante: como máximo una fila con activo = true por equipo.
type Responsable struct {
	ID            int64       `json:"id" db:"id"`
	Equipo        string      `json:"fk_equipo_id" db:"fk_equipo_id"`
	TecnicoCedula int64       `json:"fk_tecnico_id" db:"fk_tecnico_id"`
	Observacion   null.String `json:"observacion" db:"observacion"`
	FechaInicio   time.Time   `json:"fecha_inicio" db:"fecha_inicio"`
	FechaFin      *time.Time  `json:"fecha_fin" db:"fecha_fin"`
	Activo        bool        `json:"activo" db:"activo"`

	Tecnico      null.String `json:"tecnico,omitempty" db:"-"`
	MarcaEquipo  null.String `json:"marca_equipo,omitempty" db:"-"`
	ModeloEquipo null.String `json:"modelo_equipo,omitempty" db:"-"`
}

// CargaTecnico es la fila del reporte equipos-por-técnico.
type CargaTecnico struct {
	NombreUsuario string      `json:"nombre_usuario" db:"nombre_usuario"`
	CedulaUsuario int64       `json:"cedula_usuario" db:"cedula_usuario"`
	TotalEquipos  int64       `json:"total_equipos" db:"total_equipos"`
	Equipos       null.String `json:"equipos" db:"equipos"`
}

// Estadisticas son los conteos agregados del inventario.
type Estadisticas struct {
	TotalEquipos int64            `json:"total_equipos"`
	PorEstado    map[string]int64 `json:"por_estado"`
	PorUnidad    map[string]int64 `json:"por_unidad"`
	PorTipo      map[string]int64 `json:"por_tipo"`
}
