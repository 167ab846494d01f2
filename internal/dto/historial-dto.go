package dto

import (
	"time"

	"github.com/aarondl/null/v8"
)

type CrearMantenimientoDTO struct {
	Equipo      string `json:"equipo" validate:"required"`
	Tipo        string `json:"tipo" validate:"required"`
	Descripcion string `json:"descripcion" validate:"required"`
}

type CrearTrasladoDTO struct {
	Equipo  string      `json:"equipo" validate:"required"`
	Origen  string      `json:"origen" validate:"required"`
	Destino string      `json:"destino" validate:"required"`
	Motivo  null.String `json:"motivo"`
}

type RegistroCreadoDTO struct {
	ID int64 `json:"id"`
}

type FiltroHistorialEstadosDTO struct {
	Equipo      *string
	FechaInicio *time.Time
	FechaFin    *time.Time
}

type FiltroMantenimientosPeriodoDTO struct {
	FechaInicio *time.Time
	FechaFin    *time.Time
	Tipo        *string
}
