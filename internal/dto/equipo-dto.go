package dto

import "github.com/aarondl/null/v8"

// RegistrarEquipoDTO es el payload del upsert por nombre. Todos los campos
// salvo el nombre son opcionales; el upsert reemplaza el registro completo,
// así que el cliente debe reenviar también los campos que no cambian.
type RegistrarEquipoDTO struct {
	NombreEquipo string `json:"nombre_equipo" validate:"required"`

	Marca            null.String `json:"marca"`
	Modelo           null.String `json:"modelo"`
	TipoEquipo       null.String `json:"tipo_equipo"`
	TipoArea         null.String `json:"tipo_area"`
	Unidad           null.String `json:"unidad"`
	Procesador       null.String `json:"procesador"`
	Ram              null.String `json:"ram"`
	TipoRam          null.String `json:"tipo_ram"`
	Discos           null.String `json:"discos"`
	SistemaOperativo null.String `json:"sistema_operativo"`
	Ip               null.String `json:"ip"`
	Mac              null.String `json:"mac"`
	Arquitectura     null.String `json:"arquitectura"`
	PlacaTorre       null.String `json:"placa_torre"`
	PlacaMonitor     null.String `json:"placa_monitor"`
	Serial           null.String `json:"serial"`
	Office           null.String `json:"office"`
	VersionOffice    null.String `json:"version_office"`
	LicenciaWindows  null.String `json:"licencia_windows"`
	Antivirus        null.String `json:"antivirus"`
	Observaciones    null.String `json:"observaciones"`
}

type ResultadoRegistroDTO struct {
	NombreEquipo string `json:"nombre_equipo"`
	Accion       string `json:"accion"` // "registrado" | "actualizado"
}

type CambiarEstadoDTO struct {
	Estado string `json:"estado" validate:"required"`
}

type CambioEstadoResultadoDTO struct {
	NombreEquipo   string `json:"nombre_equipo"`
	EstadoAnterior string `json:"estado_anterior"`
	EstadoNuevo    string `json:"estado_nuevo"`
}

// FiltroEquiposDTO compone de forma conjuntiva; busqueda hace substring
// (case-insensitive) sobre nombre o IP.
type FiltroEquiposDTO struct {
	Unidad   *string
	Estado   *string
	Tipo     *string
	Area     *string
	Busqueda *string
}
