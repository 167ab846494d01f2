package dto

type CrearUsuarioDTO struct {
	Cedula   int64  `json:"cedula" validate:"required"`
	Nombre   string `json:"nombre" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	RolID    int64  `json:"rol_id" validate:"required"`
}

type ActualizarUsuarioDTO struct {
	Nombre   string `json:"nombre" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	RolID    int64  `json:"rol_id" validate:"required"`
	Estado   bool   `json:"estado"`
}
