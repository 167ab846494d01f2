package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// HistorialEstado es una fila inmutable del libro de cambios de estado.
// El último estado_nuevo de un equipo siempre coincide con su estado_equipo.
type HistorialEstado struct {
	ID             int64     `json:"id" db:"id"`
	Equipo         string    `json:"fk_equipo_id" db:"fk_equipo_id"`
	EstadoAnterior string    `json:"estado_anterior" db:"estado_anterior"`
	EstadoNuevo    string    `json:"estado_nuevo" db:"estado_nuevo"`
	RolActor       string    `json:"rol_actor" db:"rol_actor"`
	FechaEstado    time.Time `json:"fecha_estado" db:"fecha_estado"`

	// Datos del equipo, solo en reportes (LEFT JOIN)
	MarcaEquipo  null.String `json:"marca_equipo,omitempty" db:"-"`
	ModeloEquipo null.String `json:"modelo_equipo,omitempty" db:"-"`
	UnidadActual null.String `json:"unidad_actual,omitempty" db:"-"`
}

// Mantenimiento es un registro de bitácora puramente informativo.
type Mantenimiento struct {
	ID            int64     `json:"id" db:"id"`
	Equipo        string    `json:"fk_equipo_id" db:"fk_equipo_id"`
	Tipo          string    `json:"tipo_mantenimiento" db:"tipo_mantenimiento"`
	Descripcion   string    `json:"descripcion_mantenimiento" db:"descripcion_mantenimiento"`
	TecnicoCedula *int64    `json:"fk_tecnico_id" db:"fk_tecnico_id"`
	Fecha         time.Time `json:"fecha_mantenimiento" db:"fecha_mantenimiento"`

	Tecnico      null.String `json:"tecnico,omitempty" db:"-"`
	MarcaEquipo  null.String `json:"marca_equipo,omitempty" db:"-"`
	ModeloEquipo null.String `json:"modelo_equipo,omitempty" db:"-"`
}

// Traslado registra un cambio de sede. Su inserción actualiza
// unidad_actual del equipo dentro de la misma transacción.
type Traslado struct {
	ID            int64       `json:"id" db:"id"`
	Equipo        string      `json:"fk_equipo_id" db:"fk_equipo_id"`
	SedeOrigen    string      `json:"sede_origen" db:"sede_origen"`
	SedeDestino   string      `json:"sede_destino" db:"sede_destino"`
	Observacion   null.String `json:"observacion" db:"observacion"`
	TecnicoCedula *int64      `json:"fk_tecnico_id" db:"fk_tecnico_id"`
	Fecha         time.Time   `json:"fecha" db:"fecha"`

	Tecnico      null.String `json:"tecnico,omitempty" db:"-"`
	MarcaEquipo  null.String `json:"marca_equipo,omitempty" db:"-"`
	ModeloEquipo null.String `json:"modelo_equipo,omitempty" db:"-"`
}
