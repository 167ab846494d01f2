package dto

import "inventario-system/internal/entities"

type LoginDTO struct {
	Cedula   int64  `json:"cedula" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRespuestaDTO struct {
	Token   string            `json:"token"`
	Usuario *entities.Usuario `json:"user"`
}
