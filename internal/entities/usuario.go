package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Usuario struct {
	CedulaUsuario int64  `json:"cedula_usuario" db:"cedula_usuario"`
	NombreUsuario string `json:"nombre_usuario" db:"nombre_usuario"`

	Password string      `json:"-" db:"password_usuario"`
	Token    null.String `json:"-" db:"token"`

	RolID         int64  `json:"id_rol" db:"fk_id_rol"`
	NombreRol     string `json:"nombre_rol" db:"nombre_rol"`
	EstadoUsuario bool   `json:"estado_usuario" db:"estado_usuario"`

	FechaCreacionUsuario time.Time `json:"fecha_creacion_usuario" db:"fecha_creacion_usuario"`
}

type Rol struct {
	IDRol     int64  `json:"id_rol" db:"id_rol"`
	NombreRol string `json:"nombre_rol" db:"nombre_rol"`
}
