package contextkeys

type contextKey string

const (
	CedulaKey     contextKey = "Cedula"
	NombreRolKey  contextKey = "NombreRol"
	NombreUserKey contextKey = "NombreUsuario"
)
