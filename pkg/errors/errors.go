package errors

import "fmt"

var (
	// Tokens
	ErrInvalidSigningMethod = fmt.Errorf("método de firma del token no válido")
	ErrInvalidToken         = fmt.Errorf("token inválido")
	ErrTokenExpired         = fmt.Errorf("el token ha expirado")
	ErrTokenRevoked         = fmt.Errorf("el token fue revocado")

	// Autenticación / autorización
	ErrEmptyAuthHeader    = fmt.Errorf("falta el encabezado de autorización")
	ErrInvalidAuthHeader  = fmt.Errorf("formato de encabezado de autorización inválido")
	ErrInvalidCredentials = fmt.Errorf("credenciales inválidas")
	ErrUnauthorized       = fmt.Errorf("no autorizado")
	ErrForbidden          = fmt.Errorf("acceso denegado")

	// Contexto
	ErrUserNotFoundInContext = fmt.Errorf("usuario no encontrado en el contexto de la petición")

	// Generales
	ErrNotFound           = fmt.Errorf("registro no encontrado")
	ErrBadRequest         = fmt.Errorf("petición inválida")
	ErrReferenciaInvalida = fmt.Errorf("el registro referenciado no existe")

	// Reglas de negocio
	ErrResponsableActivo = fmt.Errorf("el equipo ya tiene un responsable activo")
)

// HttpError lleva el código HTTP y el mensaje que se muestra al cliente.
// El error interno (Err) se registra pero nunca se expone en la respuesta.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details map[string]interface{}) *HttpError {
	return &HttpError{
		Code:    code,
		Message: message,
		Err:     err,
		Details: details,
	}
}
