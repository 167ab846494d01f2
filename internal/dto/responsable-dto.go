package dto

import "github.com/aarondl/null/v8"

type AsignarResponsableDTO struct {
	Equipo      string      `json:"equipo" validate:"required"`
	Tecnico     int64       `json:"tecnico" validate:"required"`
	Observacion null.String `json:"observacion"`
}

type LiberacionResultadoDTO struct {
	NombreEquipo string `json:"nombre_equipo"`
	Liberados    int64  `json:"liberados"`
}
