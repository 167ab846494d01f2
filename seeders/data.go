package seeders

var rolesData = []string{
	"SUPERUSUARIO",
	"ADMINISTRADOR",
	"TECNICO",
}
