package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Equipo es el registro canónico de un activo. La clave natural es
// nombre_equipo y es inmutable una vez creado el registro.
type Equipo struct {
	NombreEquipo string `json:"nombre_equipo" db:"nombre_equipo"`

	MarcaEquipo           null.String `json:"marca_equipo" db:"marca_equipo"`
	ModeloEquipo          null.String `json:"modelo_equipo" db:"modelo_equipo"`
	TipoEquipo            null.String `json:"tipo_equipo" db:"tipo_equipo"`
	TipoArea              null.String `json:"tipo_area" db:"tipo_area"`
	UnidadActual          null.String `json:"unidad_actual" db:"unidad_actual"`
	ProcesadorEquipo      null.String `json:"procesador_equipo" db:"procesador_equipo"`
	RamEquipo             null.String `json:"ram_equipo" db:"ram_equipo"`
	TipoRam               null.String `json:"tipo_ram" db:"tipo_ram"`
	DiscoEquipo           null.String `json:"disco_equipo" db:"disco_equipo"`
	SistemaOperativo      null.String `json:"sistema_operativo" db:"sistema_operativo"`
	IpEquipo              null.String `json:"ip_equipo" db:"ip_equipo"`
	MacEquipo             null.String `json:"mac_equipo" db:"mac_equipo"`
	ArquitecturaEquipo    null.String `json:"arquitectura_equipo" db:"arquitectura_equipo"`
	PlacaTorre            null.String `json:"placa_torre" db:"placa_torre"`
	PlacaMonitor          null.String `json:"placa_monitor" db:"placa_monitor"`
	SerialEquipo          null.String `json:"serial_equipo" db:"serial_equipo"`
	Office                null.String `json:"office" db:"office"`
	VersionOffice         null.String `json:"version_office" db:"version_office"`
	LicenciaWindowsEquipo null.String `json:"licencia_windows_equipo" db:"licencia_windows_equipo"`
	AntivirusEquipo       null.String `json:"antivirus_equipo" db:"antivirus_equipo"`
	Observaciones         null.String `json:"observaciones" db:"observaciones"`

	EstadoEquipo string `json:"estado_equipo" db:"estado_equipo"`

	FechaCreacionEquipo      time.Time `json:"fecha_creacion_equipo" db:"fecha_creacion_equipo"`
	FechaActualizacionEquipo time.Time `json:"fecha_actualizacion_equipo" db:"fecha_actualizacion_equipo"`
}
