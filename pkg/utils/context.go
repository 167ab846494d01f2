package utils

import (
	"context"

	"inventario-system/pkg/contextkeys"
	apperrors "inventario-system/pkg/errors"
)

// ActorDelContexto recupera la identidad que dejó el middleware de
// autenticación. La cédula puede faltar solo en rutas sin auth.
func ActorDelContexto(ctx context.Context) (cedula int64, nombreRol string, err error) {
	ced, ok := ctx.Value(contextkeys.CedulaKey).(int64)
	if !ok {
		return 0, "", apperrors.ErrUserNotFoundInContext
	}
	rol, _ := ctx.Value(contextkeys.NombreRolKey).(string)
	return ced, rol, nil
}

// CedulaOpcional devuelve nil cuando la petición no viene autenticada; los
// libros de mantenimiento y traslado admiten técnico nulo.
func CedulaOpcional(ctx context.Context) *int64 {
	if ced, ok := ctx.Value(contextkeys.CedulaKey).(int64); ok {
		return &ced
	}
	return nil
}
